package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = PlayerX
	o = PlayerO
	e = EmptyCell
)

func TestBoard_Move(t *testing.T) {
	t.Run("Places the mark at column x, row y", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X moves to column 2, row 1
		err := board.Move(PlayerX, 2, 1)

		// Then: cell 5 holds X
		require.NoError(t, err)
		assert.Equal(t, Board{e, e, e, e, e, x, e, e, e}, board)
	})

	t.Run("Rejects an occupied cell and leaves the board untouched", func(t *testing.T) {
		// Given: a board with X in the centre
		board := Board{e, e, e, e, x, e, e, e, e}

		// When: O tries the centre
		err := board.Move(PlayerO, 1, 1)

		// Then: ErrBadMove is returned
		require.ErrorIs(t, err, apperror.ErrBadMove)
		assert.Equal(t, Board{e, e, e, e, x, e, e, e, e}, board)
	})

	t.Run("Rejects coordinates off the board", func(t *testing.T) {
		for _, tc := range []struct{ x, y int }{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {9, 9}} {
			board := NewBoard()

			err := board.Move(PlayerX, tc.x, tc.y)

			require.ErrorIs(t, err, apperror.ErrBadMove, "x=%d y=%d", tc.x, tc.y)
			assert.True(t, board.IsEmpty())
		}
	})

	t.Run("Rejects an empty mark", func(t *testing.T) {
		board := NewBoard()

		err := board.Move(EmptyCell, 0, 0)

		require.ErrorIs(t, err, apperror.ErrBadMove)
	})
}

func TestBoard_Result(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Result
	}{
		{"empty board", Board{}, ResultNone},
		{"row win for X", Board{x, x, x, o, o, e, e, e, e}, ResultXWon},
		{"column win for O", Board{o, x, x, o, x, e, o, e, e}, ResultOWon},
		{"main diagonal", Board{x, o, o, e, x, e, e, e, x}, ResultXWon},
		{"anti diagonal", Board{x, x, o, e, o, e, o, e, x}, ResultOWon},
		{"draw", Board{x, o, x, x, o, o, o, x, x}, ResultDraw},
		{"ongoing", Board{x, o, e, e, x, e, e, e, o}, ResultNone},
		{"full board with a line is a win", Board{x, x, x, o, o, x, x, o, o}, ResultXWon},
		{"full board with a diagonal is a win", Board{o, x, x, x, o, o, x, x, o}, ResultOWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.board.Result())
		})
	}
}

func TestBoard_ResultPrefersWinOverDraw(t *testing.T) {
	// Given: every full board reachable by filling cells
	var check func(board Board, cell int)
	check = func(board Board, cell int) {
		if cell == BoardSize {
			result := board.Result()
			hasLine := false
			for _, combo := range WinCombos {
				a := board[combo[0]]
				if a == board[combo[1]] && a == board[combo[2]] {
					hasLine = true
				}
			}

			// Then: a full board with a line is never reported as a draw
			if hasLine {
				assert.NotEqual(t, ResultDraw, result, board.String())
			} else {
				assert.Equal(t, ResultDraw, result, board.String())
			}
			return
		}

		for _, mark := range []Mark{PlayerX, PlayerO} {
			board[cell] = mark
			check(board, cell+1)
		}
	}

	check(Board{}, 0)
}

func TestBoard_InferredTurn(t *testing.T) {
	assert.Equal(t, PlayerX, Board{}.InferredTurn())
	assert.Equal(t, PlayerO, Board{x, e, e, e, e, e, e, e, e}.InferredTurn())
	assert.Equal(t, PlayerX, Board{x, o, e, e, e, e, e, e, e}.InferredTurn())
	assert.Equal(t, PlayerX, Board{o, e, e, e, e, e, e, e, e}.InferredTurn())
}

func TestBoard_CandidateMoves(t *testing.T) {
	// Given: a board with three occupied cells
	board := Board{x, e, o, e, x, e, e, e, e}

	collect := func() ([]int, []Board) {
		var cells []int
		var children []Board
		for child, cell := range board.CandidateMoves(PlayerO) {
			cells = append(cells, cell)
			children = append(children, child)
		}
		return cells, children
	}

	// When: the candidates are enumerated twice
	cells, children := collect()
	again, _ := collect()

	// Then: empty cells come in increasing order and the sequence restarts identically
	assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, cells)
	assert.Equal(t, cells, again)
	assert.Equal(t, Board{x, o, o, e, x, e, e, e, e}, children[0])
	assert.Equal(t, Board{x, e, o, e, x, e, e, e, e}, board, "parent board must not change")

	t.Run("Stops early when the consumer breaks", func(t *testing.T) {
		count := 0
		for range NewBoard().CandidateMoves(PlayerX) {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("Full board has no candidates", func(t *testing.T) {
		count := 0
		for range (Board{x, o, x, x, o, o, o, x, x}).CandidateMoves(PlayerX) {
			count++
		}
		assert.Zero(t, count)
	})
}

func TestBoard_String(t *testing.T) {
	assert.Equal(t, "X.O/.X./...", Board{x, e, o, e, x, e, e, e, e}.String())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}
