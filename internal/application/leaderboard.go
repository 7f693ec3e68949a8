package application

import (
	"context"
	"fmt"

	"github.com/codementorhq/codementor-go/internal/api"
	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

// Leaderboard drives the per-course ranking screen. Scores are computed
// server-side; the client only positions the current user in the list.
type Leaderboard struct {
	App *container.App
}

func NewLeaderboard(app *container.App) *Leaderboard {
	return &Leaderboard{App: app}
}

// Load fetches the ranking for one course and period.
func (l *Leaderboard) Load(ctx context.Context, courseID string, period entity.LeaderboardPeriod) ([]entity.LeaderboardEntry, error) {
	if period == "" {
		period = entity.PeriodAllTime
	}
	var entries []entity.LeaderboardEntry
	err := l.App.API.Get(ctx, "/courses/"+courseID+"/leaderboard", &entries,
		api.WithParam("period", string(period)))
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return entries, nil
}

// Rank returns the current user's 1-based position, or zero when the user
// is not in the list.
func (l *Leaderboard) Rank(entries []entity.LeaderboardEntry) int {
	user := l.App.Auth.User()
	if user == nil {
		return 0
	}
	for i, entry := range entries {
		if entry.UserID == user.ID {
			return i + 1
		}
	}
	return 0
}

// RankBadge formats the rank for display, or "" when the user is absent.
func (l *Leaderboard) RankBadge(entries []entity.LeaderboardEntry) string {
	rank := l.Rank(entries)
	if rank == 0 {
		return ""
	}
	return fmt.Sprintf("Your Rank: #%d", rank)
}
