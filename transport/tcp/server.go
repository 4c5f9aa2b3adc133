package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/protocol"
	"github.com/rocketscienceinc/tictactoe-server/internal/server"
	"github.com/rocketscienceinc/tictactoe-server/internal/usecase"
)

type gameManagers interface {
	New(logger *slog.Logger) *usecase.GameManager
}

type Server struct {
	logger      *slog.Logger
	managers    gameManagers
	readTimeout time.Duration

	conns *server.Connections
}

func New(logger *slog.Logger, managers gameManagers, readTimeout time.Duration) *Server {
	return &Server{
		logger:      logger.With("component", "tcp"),
		managers:    managers,
		readTimeout: readTimeout,

		conns: server.NewConnections(),
	}
}

// Start - listens on all interfaces and serves until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	return that.Serve(ctx, listener)
}

// Serve - accepts connections from listener and runs one worker per connection.
// It returns nil once ctx is cancelled; live workers are waited for with Wait.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	log := that.logger.With("method", "Serve")

	go func() {
		<-ctx.Done()
		_ = listener.Close()
		that.conns.Interrupt()
	}()

	log.Info("Listening", "addr", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("failed to accept connection: %w", err)
		}

		if err = that.conns.Track(conn); err != nil {
			_ = conn.Close()
			continue
		}

		go that.serveConn(ctx, conn)
	}
}

// Wait - blocks until every connection worker has finished or ctx is done.
func (that *Server) Wait(ctx context.Context) error {
	return that.conns.Wait(ctx)
}

func (that *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer that.conns.Release(conn)
	defer conn.Close()

	log := that.logger.With("session", uuid.NewString(), "remote", conn.RemoteAddr().String())
	log.Info("client connected")

	manager := that.managers.New(log)
	reader := protocol.NewReader(conn, protocol.FromClient)
	writer := protocol.NewWriter(conn)

	// a cycle in progress is finished even if shutdown starts meanwhile
	handleCtx := context.WithoutCancel(ctx)

	for {
		if err := that.conns.Extend(conn, that.readTimeout); err != nil {
			log.Info("client disconnected", "reason", err)
			return
		}

		var replies []protocol.Packet

		packet, err := reader.ReadPacket()
		if err != nil {
			replies, err = manager.HandleError(err)
		} else {
			log.Debug("received packet", "packet", packet.String())
			replies, err = manager.Handle(handleCtx, packet)
		}

		for _, reply := range replies {
			if writeErr := writer.WritePacket(reply); writeErr != nil {
				log.Error("client disconnected", "reason", writeErr)
				return
			}
		}

		if err != nil {
			if errors.Is(err, apperror.ErrConnectionClosed) {
				log.Info("client disconnected", "reason", err)
			} else {
				log.Error("client disconnected", "reason", err)
			}
			return
		}
	}
}
