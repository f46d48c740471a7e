package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/clubdesk/matchday/internal/repositories/stats Repository

import (
	"context"
)

// Repository defines the interface for persisted per-participant match
// statistics rows.
type Repository interface {
	// UpsertStats writes all of a match's statistics rows in a single
	// transaction, replacing any rows from a prior finalization
	UpsertStats(ctx context.Context, input *UpsertStatsInput) error

	// GetMatchStats retrieves all statistics rows for a match
	GetMatchStats(ctx context.Context, input *GetMatchStatsInput) (*GetMatchStatsOutput, error)
}
