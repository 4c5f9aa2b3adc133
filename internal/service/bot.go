package service

import (
	"errors"
	"math"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const (
	winPayoff  = 10
	lossPayoff = -10
	drawPayoff = 0
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Move - a move chosen by the bot together with its minimax payoff.
type Move struct {
	X      int
	Y      int
	Cell   int
	Payoff int
}

type BotService interface {
	BestMove(board entity.Board, mark entity.Mark) (Move, error)
}

type botService struct {
	intn func(n int) int
}

// NewBotService - returns a minimax bot; the opening move on an empty board is random.
func NewBotService() BotService {
	return &botService{intn: rand.Intn} //nolint: gosec // it's ok
}

// NewBotServiceWithRandom - same as NewBotService with the random source supplied by the caller.
func NewBotServiceWithRandom(intn func(n int) int) BotService {
	return &botService{intn: intn}
}

func (that *botService) BestMove(board entity.Board, mark entity.Mark) (Move, error) {
	if board.IsEmpty() {
		// every opening has the same payoff on a 3x3 board
		return newMove(that.intn(entity.BoardSize), drawPayoff), nil
	}

	if board.Result() != entity.ResultNone {
		return Move{}, ErrNoAvailableMoves
	}

	payoff, cell := minimax(board, mark, mark, true)
	if cell < 0 {
		return Move{}, ErrNoAvailableMoves
	}

	return newMove(cell, payoff), nil
}

// minimax - returns the payoff of board for self and the move leading to it.
// Ties keep the lowest cell index.
func minimax(board entity.Board, self, turn entity.Mark, maximizing bool) (int, int) {
	switch result := board.Result(); result {
	case entity.ResultNone:
	case entity.ResultDraw:
		return drawPayoff, -1
	default:
		if result.Winner() == self {
			return winPayoff, -1
		}
		return lossPayoff, -1
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	bestCell := -1

	for child, cell := range board.CandidateMoves(turn) {
		payoff, _ := minimax(child, self, turn.Opponent(), !maximizing)

		if maximizing && payoff > best || !maximizing && payoff < best {
			best = payoff
			bestCell = cell
		}
	}

	return best, bestCell
}

func newMove(cell, payoff int) Move {
	return Move{
		X:      cell % entity.BoardSide,
		Y:      cell / entity.BoardSide,
		Cell:   cell,
		Payoff: payoff,
	}
}
