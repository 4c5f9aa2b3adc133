package entity

import (
	"fmt"
	"iter"
	"strings"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Mark - the content of a board cell.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// Result - the outcome of a game; ResultNone while it is still being played.
type Result string

const (
	ResultNone Result = ""
	ResultXWon Result = "X"
	ResultOWon Result = "O"
	ResultDraw Result = "-"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// WinResult - returns the result of a game won by this mark.
func (that Mark) WinResult() Result {
	switch that {
	case PlayerX:
		return ResultXWon
	case PlayerO:
		return ResultOWon
	default:
		return ResultNone
	}
}

// Winner - returns the mark that won, or EmptyCell for a draw or an unfinished game.
func (that Result) Winner() Mark {
	switch that {
	case ResultXWon:
		return PlayerX
	case ResultOWon:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Board - 3x3 grid linearized row-major, index = y*3 + x.
type Board [BoardSize]Mark

// NewBoard - returns an empty board.
func NewBoard() Board {
	return Board{}
}

// CellIndex - converts (x, y) to a linear index; x is the column, y the row.
func CellIndex(x, y int) (int, error) {
	if x < 0 || x >= BoardSide || y < 0 || y >= BoardSide {
		return 0, fmt.Errorf("%w: cell (%d,%d) is off the board", apperror.ErrBadMove, x, y)
	}

	return y*BoardSide + x, nil
}

// Move - places mark at (x, y). The caller is responsible for whose turn it is.
func (that *Board) Move(mark Mark, x, y int) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: invalid mark %q", apperror.ErrBadMove, mark)
	}

	cell, err := CellIndex(x, y)
	if err != nil {
		return err
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell (%d,%d) is occupied", apperror.ErrBadMove, x, y)
	}

	that[cell] = mark

	return nil
}

// Result - a line of three wins; otherwise a full board is a draw.
func (that Board) Result() Result {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a.WinResult()
		}
	}

	for _, cell := range that {
		if cell == EmptyCell {
			return ResultNone
		}
	}

	return ResultDraw
}

// InferredTurn - used when the board was supplied from outside rather than built move by move.
func (that Board) InferredTurn() Mark {
	var countX, countO int

	for _, cell := range that {
		switch cell {
		case PlayerX:
			countX++
		case PlayerO:
			countO++
		}
	}

	if countX > countO {
		return PlayerO
	}

	return PlayerX
}

func (that Board) IsEmpty() bool {
	return that == Board{}
}

// CandidateMoves - yields (child, cell) for every empty cell in increasing cell order.
func (that Board) CandidateMoves(mark Mark) iter.Seq2[Board, int] {
	return func(yield func(Board, int) bool) {
		for cell := range that {
			if that[cell] != EmptyCell {
				continue
			}

			child := that
			child[cell] = mark

			if !yield(child, cell) {
				return
			}
		}
	}
}

func (that Board) String() string {
	var sb strings.Builder

	for row := range BoardSide {
		for col := range BoardSide {
			mark := that[row*BoardSide+col]
			if mark == EmptyCell {
				mark = "."
			}
			sb.WriteString(string(mark))
		}
		if row < BoardSide-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
