package service

import (
	"context"

	"wordrobe/internal/models"
	"wordrobe/internal/repository"
)

// StatsService reports daily progress
type StatsService struct {
	stats *repository.StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(stats *repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// Today returns the player's stats for the current local day
func (s *StatsService) Today(ctx context.Context, playerID string) (models.DailyStats, error) {
	return s.stats.Load(ctx, playerID)
}
