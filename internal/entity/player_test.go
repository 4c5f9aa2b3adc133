package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_AssignRandomMark(t *testing.T) {
	// Given: a bot and a seeded random source
	player := NewBotPlayer()
	rnd := rand.New(rand.NewSource(42))

	// When: marks are assigned many times
	seen := map[Mark]int{}
	for range 200 {
		player.AssignRandomMark(rnd)
		seen[player.Mark]++
	}

	// Then: only X and O are assigned and both show up
	assert.Len(t, seen, 2)
	assert.Positive(t, seen[PlayerX])
	assert.Positive(t, seen[PlayerO])
}

func TestPlayer_AssignAgainst(t *testing.T) {
	player := NewBotPlayer()

	player.AssignAgainst(PlayerO)
	assert.Equal(t, PlayerX, player.Mark)

	player.AssignAgainst(PlayerX)
	assert.Equal(t, PlayerO, player.Mark)
}

func TestPlayer_Outcome(t *testing.T) {
	player := &Player{Mark: PlayerO}

	tests := []struct {
		result Result
		want   Outcome
	}{
		{ResultOWon, OutcomeBotWon},
		{ResultXWon, OutcomeClientWon},
		{ResultDraw, OutcomeDraw},
	}

	for _, tc := range tests {
		t.Run(string(tc.want), func(t *testing.T) {
			assert.Equal(t, tc.want, player.Outcome(tc.result))
		})
	}
}
