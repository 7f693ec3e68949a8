package entity

// LeaderboardPeriod selects the ranking window.
type LeaderboardPeriod string

const (
	PeriodWeek    LeaderboardPeriod = "week"
	PeriodMonth   LeaderboardPeriod = "month"
	PeriodAllTime LeaderboardPeriod = "all-time"
)

// LeaderboardEntry is one row of a per-course ranking. Score is computed
// server-side and opaque to the client.
type LeaderboardEntry struct {
	UserID               string  `json:"userId"`
	Name                 string  `json:"name"`
	Avatar               string  `json:"avatar,omitempty"`
	Score                float64 `json:"score"`
	AssignmentsCompleted int     `json:"assignmentsCompleted"`
}
