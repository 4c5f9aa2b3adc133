package protocol

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

// Kind - the 4-byte tag that starts every packet.
type Kind string

const (
	KindNewGame  Kind = "NEWG"
	KindEndGame  Kind = "ENDG"
	KindMove     Kind = "MOVE"
	KindLoadGame Kind = "LOAD"
	KindBoard    Kind = "BORD"
	KindOver     Kind = "OVER"
	KindError    Kind = "EROR"
	KindClose    Kind = "CLOS"
)

const (
	tagSize   = 4
	separator = ':'
	delimiter = ","
)

// Winner - the result tag of an OVER packet.
type Winner string

const (
	WinnerServer Winner = "S"
	WinnerClient Winner = "C"
	WinnerNone   Winner = "N"
)

// ErrorText - the fixed payloads of an EROR packet.
type ErrorText string

const (
	ErrorUnknownCommand ErrorText = "UNKNOWN CMD"
	ErrorBadMove        ErrorText = "BAD MOVE"
	ErrorNoGame         ErrorText = "NO GAME"
)

var errorTexts = []ErrorText{ErrorUnknownCommand, ErrorBadMove, ErrorNoGame}

// Direction - which side of the connection sends a packet.
type Direction int

const (
	FromClient Direction = iota
	FromServer
)

var kinds = map[Kind]struct {
	hasPayload bool
	from       []Direction
}{
	KindNewGame:  {false, []Direction{FromClient}},
	KindEndGame:  {false, []Direction{FromClient}},
	KindMove:     {true, []Direction{FromClient}},
	KindLoadGame: {true, []Direction{FromClient}},
	KindBoard:    {true, []Direction{FromServer}},
	KindOver:     {true, []Direction{FromServer}},
	KindError:    {true, []Direction{FromServer}},
	KindClose:    {false, []Direction{FromClient, FromServer}},
}

func (that Kind) IsKnown() bool {
	_, ok := kinds[that]
	return ok
}

// HasPayload - payload-less packets consist of the tag alone.
func (that Kind) HasPayload() bool {
	return kinds[that].hasPayload
}

// SentBy - reports whether packets of this kind travel in the given direction.
func (that Kind) SentBy(dir Direction) bool {
	for _, d := range kinds[that].from {
		if d == dir {
			return true
		}
	}
	return false
}

// Packet - one protocol message. Only the fields of its kind are set:
// MOVE uses Row and Col, LOAD uses Turn and Board, BORD uses Board,
// OVER uses Winner and Board, EROR uses Error.
type Packet struct {
	Kind   Kind
	Row    int
	Col    int
	Turn   entity.Mark
	Board  entity.Board
	Winner Winner
	Error  ErrorText
}

func NewGamePacket() Packet {
	return Packet{Kind: KindNewGame}
}

func EndGamePacket() Packet {
	return Packet{Kind: KindEndGame}
}

func ClosePacket() Packet {
	return Packet{Kind: KindClose}
}

func MovePacket(row, col int) Packet {
	return Packet{Kind: KindMove, Row: row, Col: col}
}

func LoadPacket(turn entity.Mark, board entity.Board) Packet {
	return Packet{Kind: KindLoadGame, Turn: turn, Board: board}
}

func BoardPacket(board entity.Board) Packet {
	return Packet{Kind: KindBoard, Board: board}
}

func OverPacket(winner Winner, board entity.Board) Packet {
	return Packet{Kind: KindOver, Winner: winner, Board: board}
}

func ErrorPacket(text ErrorText) Packet {
	return Packet{Kind: KindError, Error: text}
}

func (that Packet) String() string {
	return string(Encode(that))
}

// Encode - renders the packet in its wire form, e.g. "MOVE:1,2".
func Encode(packet Packet) []byte {
	var sb strings.Builder

	sb.WriteString(string(packet.Kind))

	if !packet.Kind.HasPayload() {
		return []byte(sb.String())
	}

	sb.WriteByte(separator)

	switch packet.Kind {
	case KindMove:
		sb.WriteByte(digit(packet.Row))
		sb.WriteString(delimiter)
		sb.WriteByte(digit(packet.Col))
	case KindLoadGame:
		sb.WriteString(string(packet.Turn))
		sb.WriteString(delimiter)
		writeBoard(&sb, packet.Board)
	case KindBoard:
		writeBoard(&sb, packet.Board)
	case KindOver:
		sb.WriteString(string(packet.Winner))
		sb.WriteString(delimiter)
		writeBoard(&sb, packet.Board)
	case KindError:
		sb.WriteString(string(packet.Error))
	}

	return []byte(sb.String())
}

func writeBoard(sb *strings.Builder, board entity.Board) {
	for i, mark := range board {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		sb.WriteByte(cellCode(mark))
	}
}

// cellCode - wire encoding of a cell: 0=X, 1=O, 2=empty.
func cellCode(mark entity.Mark) byte {
	switch mark {
	case entity.PlayerX:
		return '0'
	case entity.PlayerO:
		return '1'
	default:
		return '2'
	}
}

func digit(n int) byte {
	return byte('0' + n)
}
