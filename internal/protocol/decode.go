package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

// DecodeError - the bytes do not form a packet of a known kind and shape.
type DecodeError struct {
	Data   string
	Reason string
}

func (that *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode packet %q: %s", that.Data, that.Reason)
}

func (that *DecodeError) Unwrap() error {
	return apperror.ErrUnknownCommand
}

func decodeError(data []byte, format string, args ...any) *DecodeError {
	return &DecodeError{Data: string(data), Reason: fmt.Sprintf(format, args...)}
}

// Decode - parses one complete packet. The payload must match the kind's shape exactly.
func Decode(data []byte) (Packet, error) {
	if len(data) < tagSize {
		return Packet{}, decodeError(data, "too short")
	}

	kind := Kind(data[:tagSize])
	if !kind.IsKnown() {
		return Packet{}, decodeError(data, "unknown kind %q", kind)
	}

	if !kind.HasPayload() {
		if len(data) != tagSize {
			return Packet{}, decodeError(data, "%s carries no payload", kind)
		}
		return Packet{Kind: kind}, nil
	}

	if len(data) < tagSize+1 || data[tagSize] != separator {
		return Packet{}, decodeError(data, "missing %q after %s", separator, kind)
	}

	payload := string(data[tagSize+1:])

	packet, err := decodePayload(kind, payload)
	if err != nil {
		return Packet{}, decodeError(data, "%v", err)
	}

	return packet, nil
}

func decodePayload(kind Kind, payload string) (Packet, error) {
	switch kind {
	case KindMove:
		fields, err := splitFields(payload, 2)
		if err != nil {
			return Packet{}, err
		}

		row, err := parseCoordinate(fields[0])
		if err != nil {
			return Packet{}, err
		}

		col, err := parseCoordinate(fields[1])
		if err != nil {
			return Packet{}, err
		}

		return MovePacket(row, col), nil

	case KindLoadGame:
		fields, err := splitFields(payload, 1+entity.BoardSize)
		if err != nil {
			return Packet{}, err
		}

		turn := entity.Mark(strings.ToUpper(fields[0]))
		if !turn.IsPlayer() {
			return Packet{}, fmt.Errorf("invalid turn %q", fields[0])
		}

		board, err := parseBoard(fields[1:])
		if err != nil {
			return Packet{}, err
		}

		return LoadPacket(turn, board), nil

	case KindBoard:
		fields, err := splitFields(payload, entity.BoardSize)
		if err != nil {
			return Packet{}, err
		}

		board, err := parseBoard(fields)
		if err != nil {
			return Packet{}, err
		}

		return BoardPacket(board), nil

	case KindOver:
		fields, err := splitFields(payload, 1+entity.BoardSize)
		if err != nil {
			return Packet{}, err
		}

		winner := Winner(strings.ToUpper(fields[0]))
		if winner != WinnerServer && winner != WinnerClient && winner != WinnerNone {
			return Packet{}, fmt.Errorf("invalid result tag %q", fields[0])
		}

		board, err := parseBoard(fields[1:])
		if err != nil {
			return Packet{}, err
		}

		return OverPacket(winner, board), nil

	case KindError:
		for _, text := range errorTexts {
			if payload == string(text) {
				return ErrorPacket(text), nil
			}
		}

		return Packet{}, fmt.Errorf("invalid error text %q", payload)
	}

	return Packet{}, fmt.Errorf("unexpected payload for %s", kind)
}

func splitFields(payload string, want int) ([]string, error) {
	fields := strings.Split(payload, delimiter)
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d fields, got %d", want, len(fields))
	}

	return fields, nil
}

func parseCoordinate(field string) (int, error) {
	if len(field) != 1 || field[0] < '0' || field[0] >= '0'+entity.BoardSide {
		return 0, fmt.Errorf("invalid coordinate %q", field)
	}

	return int(field[0] - '0'), nil
}

func parseBoard(fields []string) (entity.Board, error) {
	var board entity.Board

	for i, field := range fields {
		if len(field) != 1 {
			return entity.Board{}, fmt.Errorf("invalid cell %q", field)
		}

		switch field[0] {
		case '0':
			board[i] = entity.PlayerX
		case '1':
			board[i] = entity.PlayerO
		case '2':
			board[i] = entity.EmptyCell
		default:
			return entity.Board{}, fmt.Errorf("invalid cell %q", field)
		}
	}

	return board, nil
}

// ErrorPacketFor - maps a protocol-level error to its EROR packet.
func ErrorPacketFor(err error) (Packet, bool) {
	switch {
	case errors.Is(err, apperror.ErrUnknownCommand):
		return ErrorPacket(ErrorUnknownCommand), true
	case errors.Is(err, apperror.ErrBadMove):
		return ErrorPacket(ErrorBadMove), true
	case errors.Is(err, apperror.ErrNoGame):
		return ErrorPacket(ErrorNoGame), true
	default:
		return Packet{}, false
	}
}
