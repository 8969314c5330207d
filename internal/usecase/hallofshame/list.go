package hallofshame

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/hallofshame"
	"github.com/BruksfildServices01/venue-site/internal/dto"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

type ListEntries struct {
	repo domain.Repository
}

func NewListEntries(repo domain.Repository) *ListEntries {
	return &ListEntries{repo: repo}
}

func (uc *ListEntries) Execute(ctx context.Context, gameKey string) ([]models.HallOfShameEntry, error) {
	return uc.repo.ListByDateDesc(ctx, strings.ToLower(strings.TrimSpace(gameKey)))
}

// LeaderboardStats aggregates the public leaderboard, optionally for one game.
type LeaderboardStats struct {
	repo domain.Repository
}

func NewLeaderboardStats(repo domain.Repository) *LeaderboardStats {
	return &LeaderboardStats{repo: repo}
}

func (uc *LeaderboardStats) Execute(ctx context.Context, gameKey string) ([]dto.PlayerStatsDTO, error) {
	entries, err := uc.repo.ListByDateDesc(ctx, strings.ToLower(strings.TrimSpace(gameKey)))
	if err != nil {
		return nil, err
	}
	return domain.Stats(entries), nil
}
