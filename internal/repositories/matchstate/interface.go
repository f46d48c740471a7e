package matchstate

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/clubdesk/matchday/internal/repositories/matchstate Repository

import (
	"context"

	"github.com/clubdesk/matchday/internal/models"
)

// Repository defines the interface for the per-match mutable rows: the
// clock/phase state, the starting lineup and the bench roster.
type Repository interface {
	// GetMatchState retrieves the clock/phase row for a match. A match
	// with no row yet yields a zero-value state (not started, paused).
	GetMatchState(ctx context.Context, input *GetMatchStateInput) (*models.MatchState, error)

	// SaveMatchState persists the clock/phase row
	SaveMatchState(ctx context.Context, input *SaveMatchStateInput) error

	// GetLineup retrieves the starting lineup for a match
	GetLineup(ctx context.Context, input *GetLineupInput) (*models.Lineup, error)

	// SaveLineup persists the starting lineup
	SaveLineup(ctx context.Context, input *SaveLineupInput) error

	// GetBench retrieves the bench roster for a match
	GetBench(ctx context.Context, input *GetBenchInput) (*models.Bench, error)

	// SaveBench persists the bench roster
	SaveBench(ctx context.Context, input *SaveBenchInput) error
}
