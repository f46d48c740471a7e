package matchstate

import "github.com/clubdesk/matchday/internal/models"

type GetMatchStateInput struct {
	MatchID string
}

type SaveMatchStateInput struct {
	State *models.MatchState
}

type GetLineupInput struct {
	MatchID string
}

type SaveLineupInput struct {
	Lineup *models.Lineup
}

type GetBenchInput struct {
	MatchID string
}

type SaveBenchInput struct {
	Bench *models.Bench
}
