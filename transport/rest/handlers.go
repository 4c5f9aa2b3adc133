package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	StatsHandler(w http.ResponseWriter, r *http.Request)
}

type statsSource interface {
	Totals(ctx context.Context) (map[entity.Outcome]int64, error)
}

type handlers struct {
	logger *slog.Logger
	stats  statsSource
}

func NewHandlers(logger *slog.Logger, stats statsSource) Handlers {
	return &handlers{
		logger: logger,
		stats:  stats,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// StatsHandler - outcome counters of finished games as a JSON object.
func (that *handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StatsHandler")

	totals, err := that.stats.Totals(r.Context())
	if err != nil {
		log.Error("failed to get outcome counters", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(totals); err != nil {
		log.Error("failed to write response", "error", err)
	}
}
