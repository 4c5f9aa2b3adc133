package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInProgress
	PhaseEnded
)

func (that Phase) String() string {
	switch that {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("phase(%d)", int(that))
	}
}

// Game - the state of one connection's game. Turn is meaningful only in progress,
// Result only once ended.
type Game struct {
	Board  Board
	Phase  Phase
	Turn   Mark
	Result Result

	// Aborted is set when the game was ended by the client before a natural result.
	Aborted bool
}

// NewGame - returns an idle game.
func NewGame() *Game {
	return &Game{Phase: PhaseIdle}
}

// StartNewGame - resets the board and gives the first move to X.
func (that *Game) StartNewGame() {
	that.Board = NewBoard()
	that.Phase = PhaseInProgress
	that.Turn = PlayerX
	that.Result = ResultNone
	that.Aborted = false
}

// LoadGame - resumes a game from an externally supplied board.
func (that *Game) LoadGame(board Board) {
	that.Board = board
	that.Aborted = false

	if result := board.Result(); result != ResultNone {
		that.finish(result)
		return
	}

	that.Phase = PhaseInProgress
	that.Turn = board.InferredTurn()
	that.Result = ResultNone
}

// ApplyMove - plays the current turn's mark at (x, y).
func (that *Game) ApplyMove(x, y int) error {
	if !that.IsOngoing() {
		return apperror.ErrNoGame
	}

	if err := that.Board.Move(that.Turn, x, y); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	if result := that.Board.Result(); result != ResultNone {
		that.finish(result)
		return nil
	}

	that.Turn = that.Turn.Opponent()

	return nil
}

// EndGame - aborts the game in progress. An unfinished game is recorded as a draw.
func (that *Game) EndGame() error {
	if !that.IsOngoing() {
		return apperror.ErrNoGame
	}

	result := that.Board.Result()
	if result == ResultNone {
		result = ResultDraw
		that.Aborted = true
	}

	that.finish(result)

	return nil
}

func (that Game) IsOngoing() bool {
	return that.Phase == PhaseInProgress
}

func (that Game) IsFinished() bool {
	return that.Phase == PhaseEnded
}

func (that *Game) finish(result Result) {
	that.Phase = PhaseEnded
	that.Result = result
	that.Turn = EmptyCell
}
