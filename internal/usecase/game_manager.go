package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/protocol"
	"github.com/rocketscienceinc/tictactoe-server/internal/service"
)

type botService interface {
	BestMove(board entity.Board, mark entity.Mark) (service.Move, error)
}

type outcomeRecorder interface {
	RecordOutcome(ctx context.Context, outcome entity.Outcome) error
}

// GameManager - serves the packets of a single connection. It owns that
// connection's game and bot and must not be shared between connections.
type GameManager struct {
	logger   *slog.Logger
	bot      botService
	outcomes outcomeRecorder
	rnd      *rand.Rand

	game   *entity.Game
	player *entity.Player
}

func NewGameManager(logger *slog.Logger, bot botService, outcomes outcomeRecorder, rnd *rand.Rand) *GameManager {
	return &GameManager{
		logger:   logger,
		bot:      bot,
		outcomes: outcomes,
		rnd:      rnd,

		game:   entity.NewGame(),
		player: entity.NewBotPlayer(),
	}
}

// GameManagerFactory - builds one GameManager per connection around the shared bot and recorder.
type GameManagerFactory struct {
	bot      botService
	outcomes outcomeRecorder
}

func NewGameManagerFactory(bot botService, outcomes outcomeRecorder) *GameManagerFactory {
	return &GameManagerFactory{
		bot:      bot,
		outcomes: outcomes,
	}
}

func (that *GameManagerFactory) New(logger *slog.Logger) *GameManager {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok

	return NewGameManager(logger, that.bot, that.outcomes, rnd)
}

// Game - the connection's current game.
func (that *GameManager) Game() entity.Game {
	return *that.game
}

// BotMark - the mark the bot plays in the current game.
func (that *GameManager) BotMark() entity.Mark {
	return that.player.Mark
}

// Handle - processes one packet and returns the replies in sending order.
// A returned error means the connection must be closed after the replies are sent.
func (that *GameManager) Handle(ctx context.Context, packet protocol.Packet) ([]protocol.Packet, error) {
	var (
		replies []protocol.Packet
		err     error
	)

	switch packet.Kind {
	case protocol.KindNewGame:
		replies, err = that.handleNewGame()
	case protocol.KindLoadGame:
		replies, err = that.handleLoadGame(packet)
	case protocol.KindMove:
		replies, err = that.handleMove(packet)
	case protocol.KindEndGame:
		replies, err = that.handleEndGame()
	case protocol.KindClose:
		that.logger.Info("client closed the connection")
		return []protocol.Packet{protocol.ClosePacket()}, apperror.ErrConnectionClosed
	default:
		err = fmt.Errorf("%w: %s is not a client packet", apperror.ErrUnknownCommand, packet.Kind)
	}

	if err != nil {
		return that.HandleError(err)
	}

	if that.game.IsFinished() {
		replies = append(replies, that.finishGame(ctx))
	}

	return replies, nil
}

// HandleError - turns a protocol-level error into its error packet; any other
// error is returned so the connection gets closed.
func (that *GameManager) HandleError(err error) ([]protocol.Packet, error) {
	reply, ok := protocol.ErrorPacketFor(err)
	if !ok {
		return nil, err
	}

	that.logger.Warn("protocol error", "error", err, "reply", reply.String())

	return []protocol.Packet{reply}, nil
}

func (that *GameManager) handleNewGame() ([]protocol.Packet, error) {
	that.game.StartNewGame()
	that.player.AssignRandomMark(that.rnd)

	that.logger.Info("new game", "client", that.player.Mark.Opponent())

	if that.player.Mark == that.game.Turn {
		if err := that.botMove(); err != nil {
			return nil, err
		}
	}

	return []protocol.Packet{protocol.BoardPacket(that.game.Board)}, nil
}

func (that *GameManager) handleLoadGame(packet protocol.Packet) ([]protocol.Packet, error) {
	that.player.AssignAgainst(packet.Turn)
	that.game.LoadGame(packet.Board)

	that.logger.Info("loaded game", "client", packet.Turn, "board", packet.Board.String(), "phase", that.game.Phase.String())

	if !that.game.IsOngoing() {
		return nil, nil
	}

	if that.game.Turn == that.player.Mark {
		if err := that.botMove(); err != nil {
			return nil, err
		}
	}

	return []protocol.Packet{protocol.BoardPacket(that.game.Board)}, nil
}

func (that *GameManager) handleMove(packet protocol.Packet) ([]protocol.Packet, error) {
	if !that.game.IsOngoing() {
		return nil, apperror.ErrNoGame
	}

	// the wire carries row first, the board takes the column as x
	if err := that.game.ApplyMove(packet.Col, packet.Row); err != nil {
		return nil, err
	}

	that.logger.Info("client move", "row", packet.Row, "col", packet.Col)

	if that.game.IsFinished() {
		return nil, nil
	}

	if err := that.botMove(); err != nil {
		return nil, err
	}

	return []protocol.Packet{protocol.BoardPacket(that.game.Board)}, nil
}

func (that *GameManager) handleEndGame() ([]protocol.Packet, error) {
	if err := that.game.EndGame(); err != nil {
		return nil, err
	}

	that.logger.Info("game aborted by client")

	return nil, nil
}

func (that *GameManager) botMove() error {
	move, err := that.bot.BestMove(that.game.Board, that.player.Mark)
	if err != nil {
		return fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = that.game.ApplyMove(move.X, move.Y); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Info("bot move", "row", move.Y, "col", move.X, "payoff", move.Payoff)

	return nil
}

// finishGame - builds the OVER packet for a finished game and records its outcome.
func (that *GameManager) finishGame(ctx context.Context) protocol.Packet {
	outcome := that.player.Outcome(that.game.Result)

	winner := protocol.WinnerNone
	switch outcome {
	case entity.OutcomeBotWon:
		winner = protocol.WinnerServer
	case entity.OutcomeClientWon:
		winner = protocol.WinnerClient
	}

	if that.game.Aborted {
		outcome = entity.OutcomeAborted
	}

	that.logger.Info("game end", "outcome", outcome, "board", that.game.Board.String())

	if err := that.outcomes.RecordOutcome(ctx, outcome); err != nil {
		that.logger.Error("failed to record outcome", "error", err)
	}

	return protocol.OverPacket(winner, that.game.Board)
}
