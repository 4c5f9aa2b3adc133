package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/protocol"
)

// handleMessages - serves one connection; every text message carries exactly one packet.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) {
	log := that.logger.With("session", uuid.NewString(), "remote", conn.RemoteAddr().String())
	log.Info("client connected")

	manager := that.managers.New(log)

	for {
		if err := that.conns.Extend(conn, that.readTimeout); err != nil {
			log.Info("client disconnected", "reason", err)
			return
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Info("client disconnected", "reason", fmt.Errorf("%w: %w", apperror.ErrConnectionClosed, err))
			return
		}

		var replies []protocol.Packet

		packet, err := protocol.Decode(data)
		if err != nil {
			replies, err = manager.HandleError(err)
		} else {
			log.Debug("received packet", "packet", packet.String())
			replies, err = manager.Handle(ctx, packet)
		}

		for _, reply := range replies {
			if writeErr := sendPacket(conn, reply); writeErr != nil {
				log.Error("client disconnected", "reason", writeErr)
				return
			}
		}

		if err != nil {
			if errors.Is(err, apperror.ErrConnectionClosed) {
				log.Info("client disconnected", "reason", err)
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			} else {
				log.Error("client disconnected", "reason", err)
			}
			return
		}
	}
}

func sendPacket(conn *websocket.Conn, packet protocol.Packet) error {
	if err := conn.WriteMessage(websocket.TextMessage, protocol.Encode(packet)); err != nil {
		return fmt.Errorf("%w: %s: %w", apperror.ErrSendFailure, packet.Kind, err)
	}

	return nil
}
