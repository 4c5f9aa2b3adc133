package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-server/internal/server"
	"github.com/rocketscienceinc/tictactoe-server/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type gameManagers interface {
	New(logger *slog.Logger) *usecase.GameManager
}

type Server struct {
	logger      *slog.Logger
	managers    gameManagers
	readTimeout time.Duration

	upgrader websocket.Upgrader
	conns    *server.Connections
}

func New(logger *slog.Logger, managers gameManagers, readTimeout time.Duration) *Server {
	return &Server{
		logger:      logger.With("component", "websocket"),
		managers:    managers,
		readTimeout: readTimeout,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		conns: server.NewConnections(),
	}
}

// Handler - serves the game on /ws.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server and serves until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	return that.Serve(ctx, listener)
}

// Serve - serves WebSocket upgrades from listener until ctx is cancelled.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		that.conns.Interrupt()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	that.logger.Info("Listening", "addr", listener.Addr().String())

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Wait - blocks until every connection worker has finished or ctx is done.
func (that *Server) Wait(ctx context.Context) error {
	return that.conns.Wait(ctx)
}

// upgradeToWebSocket - upgrades the connection to WebSocket and serves it.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	if err = that.conns.Track(conn); err != nil {
		_ = conn.Close()
		return
	}

	defer that.conns.Release(conn)
	defer conn.Close()

	// a cycle in progress is finished even if the request is cancelled meanwhile
	that.handleMessages(context.WithoutCancel(req.Context()), conn)
}
