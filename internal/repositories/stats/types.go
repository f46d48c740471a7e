package stats

import "github.com/clubdesk/matchday/internal/models"

type UpsertStatsInput struct {
	MatchID string
	Rows    []*models.PlayerMatchStats
}

type GetMatchStatsInput struct {
	MatchID string
}

type GetMatchStatsOutput struct {
	Rows []*models.PlayerMatchStats
}
