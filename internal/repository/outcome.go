package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const outcomesKey = "tictactoe:outcomes"

var outcomes = []entity.Outcome{
	entity.OutcomeBotWon,
	entity.OutcomeClientWon,
	entity.OutcomeDraw,
	entity.OutcomeAborted,
}

// OutcomeRepository - counters of finished games by outcome.
type OutcomeRepository interface {
	RecordOutcome(ctx context.Context, outcome entity.Outcome) error
	Totals(ctx context.Context) (map[entity.Outcome]int64, error)
}

type dbOutcome struct {
	client *redis.Client
}

func NewOutcomeRepository(client *redis.Client) OutcomeRepository {
	return &dbOutcome{
		client: client,
	}
}

func (that *dbOutcome) RecordOutcome(ctx context.Context, outcome entity.Outcome) error {
	if err := that.client.HIncrBy(ctx, outcomesKey, string(outcome), 1).Err(); err != nil {
		return fmt.Errorf("failed to increment %s counter: %w", outcome, err)
	}

	return nil
}

func (that *dbOutcome) Totals(ctx context.Context) (map[entity.Outcome]int64, error) {
	response, err := that.client.HGetAll(ctx, outcomesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get outcome counters: %w", err)
	}

	totals := emptyTotals()
	for field, value := range response {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter %s=%q: %w", field, value, err)
		}
		totals[entity.Outcome(field)] = count
	}

	return totals, nil
}

type noopOutcome struct{}

// NewNoopOutcomeRepository - used when Redis is disabled; records nothing and reports zeros.
func NewNoopOutcomeRepository() OutcomeRepository {
	return noopOutcome{}
}

func (noopOutcome) RecordOutcome(context.Context, entity.Outcome) error {
	return nil
}

func (noopOutcome) Totals(context.Context) (map[entity.Outcome]int64, error) {
	return emptyTotals(), nil
}

func emptyTotals() map[entity.Outcome]int64 {
	totals := make(map[entity.Outcome]int64, len(outcomes))
	for _, outcome := range outcomes {
		totals[outcome] = 0
	}

	return totals
}
