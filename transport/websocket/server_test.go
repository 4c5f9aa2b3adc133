package websocket

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/protocol"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository"
	"github.com/rocketscienceinc/tictactoe-server/internal/service"
	"github.com/rocketscienceinc/tictactoe-server/internal/usecase"
)

func startServer(t *testing.T) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	managers := usecase.NewGameManagerFactory(service.NewBotService(), repository.NewNoopOutcomeRepository())
	srv := New(logger, managers, time.Minute)

	httpServer := httptest.NewServer(srv.Handler())
	t.Cleanup(httpServer.Close)

	return "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	return conn
}

func exchange(t *testing.T, conn *websocket.Conn, data string) protocol.Packet {
	t.Helper()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(data)))

	return receive(t, conn)
}

func receive(t *testing.T, conn *websocket.Conn) protocol.Packet {
	t.Helper()

	messageType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, messageType)

	packet, err := protocol.Decode(data)
	require.NoError(t, err)

	return packet
}

func TestServer_Session(t *testing.T) {
	// Given: a client connected over WebSocket
	url := startServer(t)
	conn := dial(t, url)

	// When: the client loads an empty board playing X
	reply := exchange(t, conn, "LOAD:X,2,2,2,2,2,2,2,2,2")

	// Then: the board comes back unchanged
	assert.Equal(t, protocol.BoardPacket(entity.NewBoard()), reply)

	// When: the client moves, the bot answers in the same message flow
	reply = exchange(t, conn, "MOVE:0,0")
	require.Equal(t, protocol.KindBoard, reply.Kind)
	assert.Equal(t, entity.PlayerX, reply.Board[0])

	// When: malformed and server-only packets are sent
	assert.Equal(t, protocol.ErrorPacket(protocol.ErrorUnknownCommand), exchange(t, conn, "HELO"))
	assert.Equal(t, protocol.ErrorPacket(protocol.ErrorUnknownCommand), exchange(t, conn, "BORD:2,2,2,2,2,2,2,2,2"))

	// Then: the game is still there
	over := exchange(t, conn, "ENDG")
	assert.Equal(t, protocol.OverPacket(protocol.WinnerNone, reply.Board), over)

	// When: the client closes
	assert.Equal(t, protocol.ClosePacket(), exchange(t, conn, "CLOS"))

	// Then: the server sends a normal close frame
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), err)
}

func TestServer_Shutdown(t *testing.T) {
	// Given: a served listener with an idle client
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	managers := usecase.NewGameManagerFactory(service.NewBotService(), repository.NewNoopOutcomeRepository())
	srv := New(logger, managers, time.Minute)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ctx, listener)
	}()

	url := "ws://" + listener.Addr().String() + "/ws"
	conn := dial(t, url)

	assert.Equal(t, protocol.ErrorPacket(protocol.ErrorNoGame), exchange(t, conn, "ENDG"))

	// When: the context is cancelled
	cancel()

	// Then: Serve returns, the worker finishes and the client is disconnected
	select {
	case err = <-served:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	require.NoError(t, srv.Wait(waitCtx))

	_, _, err = conn.ReadMessage()
	assert.Error(t, err)

	// and new connections are refused
	late, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if late != nil {
		_ = late.Close()
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	assert.Error(t, err)
}
