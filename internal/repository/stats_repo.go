package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wordrobe/internal/models"
	"wordrobe/internal/store"
)

const statsDateLayout = "2006-01-02"

// StatsRepository tracks problems solved per local day
type StatsRepository struct {
	kv  store.KV
	now func() time.Time
}

// NewStatsRepository creates a stats repository. A nil now uses time.Now.
func NewStatsRepository(kv store.KV, now func() time.Time) *StatsRepository {
	if now == nil {
		now = time.Now
	}
	return &StatsRepository{kv: kv, now: now}
}

// Today returns the date key for the current local day
func (r *StatsRepository) Today() string {
	return r.now().Format(statsDateLayout)
}

// Load returns today's stats. Stats from another day or malformed values
// come back zeroed with today's date.
func (r *StatsRepository) Load(ctx context.Context, playerID string) (models.DailyStats, error) {
	today := r.Today()
	raw, err := store.Namespace(r.kv, PlayerPrefix(playerID)).Get(ctx, KeyDailyStats)
	if errors.Is(err, models.ErrNotFound) {
		return models.NewDailyStats(today), nil
	}
	if err != nil {
		return models.DailyStats{}, fmt.Errorf("failed to load daily stats: %w", err)
	}

	var stats models.DailyStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil || stats.Date != today {
		return models.NewDailyStats(today), nil
	}
	return stats, nil
}

// Increment records one solved problem in mode and returns the new totals
func (r *StatsRepository) Increment(ctx context.Context, playerID string, mode models.GameMode) (models.DailyStats, error) {
	stats, err := r.Load(ctx, playerID)
	if err != nil {
		return stats, err
	}
	stats.Record(mode)

	data, err := json.Marshal(stats)
	if err != nil {
		return stats, fmt.Errorf("failed to encode daily stats: %w", err)
	}
	if err := store.Namespace(r.kv, PlayerPrefix(playerID)).Set(ctx, KeyDailyStats, string(data)); err != nil {
		return stats, fmt.Errorf("failed to save daily stats: %w", err)
	}
	return stats, nil
}
