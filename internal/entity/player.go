package entity

import "math/rand"

// Player - the computer opponent of a connection.
type Player struct {
	Mark Mark
}

// NewBotPlayer - returns a bot playing O until a game assigns it a mark.
func NewBotPlayer() *Player {
	return &Player{Mark: PlayerO}
}

// AssignRandomMark - gives the bot X or O with equal probability.
func (that *Player) AssignRandomMark(rnd *rand.Rand) {
	if rnd.Intn(2) == 0 {
		that.Mark = PlayerX
		return
	}
	that.Mark = PlayerO
}

// AssignAgainst - gives the bot the mark opposite to the client's.
func (that *Player) AssignAgainst(clientMark Mark) {
	that.Mark = clientMark.Opponent()
}

// Outcome - classifies a finished game from the bot's point of view.
func (that *Player) Outcome(result Result) Outcome {
	switch result.Winner() {
	case that.Mark:
		return OutcomeBotWon
	case that.Mark.Opponent():
		return OutcomeClientWon
	default:
		return OutcomeDraw
	}
}

// Outcome - the result of a finished game as seen by the server.
type Outcome string

const (
	OutcomeBotWon    Outcome = "bot_won"
	OutcomeClientWon Outcome = "client_won"
	OutcomeDraw      Outcome = "draw"
	OutcomeAborted   Outcome = "aborted"
)
