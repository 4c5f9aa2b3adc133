package protocol

import (
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestEncode(t *testing.T) {
	board := entity.Board{x, o, e, e, x, e, e, e, o}

	tests := []struct {
		packet Packet
		want   string
	}{
		{NewGamePacket(), "NEWG"},
		{EndGamePacket(), "ENDG"},
		{ClosePacket(), "CLOS"},
		{MovePacket(1, 2), "MOVE:1,2"},
		{LoadPacket(o, board), "LOAD:O,0,1,2,2,0,2,2,2,1"},
		{BoardPacket(board), "BORD:0,1,2,2,0,2,2,2,1"},
		{OverPacket(WinnerClient, board), "OVER:C,0,1,2,2,0,2,2,2,1"},
		{ErrorPacket(ErrorBadMove), "EROR:BAD MOVE"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, string(Encode(tc.packet)))
			assert.Equal(t, tc.want, tc.packet.String())
		})
	}
}

// allBoards - every assignment of X, O and empty to nine cells.
func allBoards() []entity.Board {
	boards := []entity.Board{{}}
	for cell := range entity.BoardSize {
		next := make([]entity.Board, 0, len(boards)*3)
		for _, board := range boards {
			for _, mark := range []entity.Mark{x, o, e} {
				board[cell] = mark
				next = append(next, board)
			}
		}
		boards = next
	}
	return boards
}

func TestDecode_RoundTrip(t *testing.T) {
	// Given: every packet value that can be constructed
	packets := []Packet{NewGamePacket(), EndGamePacket(), ClosePacket()}
	for row := range entity.BoardSide {
		for col := range entity.BoardSide {
			packets = append(packets, MovePacket(row, col))
		}
	}
	for _, text := range errorTexts {
		packets = append(packets, ErrorPacket(text))
	}
	for _, board := range allBoards() {
		packets = append(packets,
			BoardPacket(board),
			LoadPacket(x, board),
			LoadPacket(o, board),
			OverPacket(WinnerServer, board),
			OverPacket(WinnerClient, board),
			OverPacket(WinnerNone, board),
		)
	}

	// When/Then: decoding the encoding gives the same packet back
	for _, packet := range packets {
		decoded, err := Decode(Encode(packet))
		require.NoError(t, err, packet.String())
		if decoded != packet {
			t.Fatalf("round trip changed %s into %s", packet, decoded)
		}
	}
}

func TestDecode(t *testing.T) {
	t.Run("Lower-case turn and result tags are accepted", func(t *testing.T) {
		packet, err := Decode([]byte("LOAD:o,2,2,2,2,0,2,2,2,2"))
		require.NoError(t, err)
		assert.Equal(t, LoadPacket(o, entity.Board{e, e, e, e, x, e, e, e, e}), packet)

		packet, err = Decode([]byte("OVER:n,0,1,0,0,1,1,1,0,0"))
		require.NoError(t, err)
		assert.Equal(t, WinnerNone, packet.Winner)
	})

	invalid := []string{
		"",
		"NEW",
		"HELO",
		"NEWG:",
		"NEWGX",
		"CLOS:1",
		"MOVE",
		"MOVE:",
		"MOVE1,1",
		"MOVE;1,1",
		"MOVE:9,9",
		"MOVE:3,0",
		"MOVE:0,-1",
		"MOVE:1",
		"MOVE:1,1,1",
		"MOVE:a,b",
		"MOVE:01,1",
		"LOAD:Z,2,2,2,2,2,2,2,2,2",
		"LOAD:X,2,2,2,2,2,2,2,2",
		"LOAD:X,2,2,2,2,2,2,2,2,3",
		"LOAD:X,2,2,2,2,2,2,2,2,2,2",
		"BORD:2,2,2,2,2,2,2,2,x",
		"OVER:Q,2,2,2,2,2,2,2,2,2",
		"EROR:OOPS",
		"EROR:bad move",
	}

	for _, data := range invalid {
		t.Run("rejects "+data, func(t *testing.T) {
			// When: malformed bytes are decoded
			_, err := Decode([]byte(data))

			// Then: a DecodeError classified as an unknown command is returned
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.ErrorIs(t, err, apperror.ErrUnknownCommand)
			assert.Equal(t, data, decodeErr.Data)
		})
	}
}

func TestErrorPacketFor(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorText
	}{
		{&DecodeError{Reason: "x"}, ErrorUnknownCommand},
		{apperror.ErrUnknownCommand, ErrorUnknownCommand},
		{apperror.ErrBadMove, ErrorBadMove},
		{apperror.ErrNoGame, ErrorNoGame},
	}

	for _, tc := range tests {
		packet, ok := ErrorPacketFor(tc.err)
		require.True(t, ok, tc.err.Error())
		assert.Equal(t, ErrorPacket(tc.want), packet)
	}

	_, ok := ErrorPacketFor(errors.New("disk on fire"))
	assert.False(t, ok)

	_, ok = ErrorPacketFor(apperror.ErrConnectionClosed)
	assert.False(t, ok)
}

func TestKind_SentBy(t *testing.T) {
	for _, kind := range []Kind{KindNewGame, KindEndGame, KindMove, KindLoadGame} {
		assert.True(t, kind.SentBy(FromClient), kind)
		assert.False(t, kind.SentBy(FromServer), kind)
	}
	for _, kind := range []Kind{KindBoard, KindOver, KindError} {
		assert.True(t, kind.SentBy(FromServer), kind)
		assert.False(t, kind.SentBy(FromClient), kind)
	}
	assert.True(t, KindClose.SentBy(FromClient))
	assert.True(t, KindClose.SentBy(FromServer))
}
