package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/clubdesk/matchday/internal/repositories/event Repository

import (
	"context"

	"github.com/clubdesk/matchday/internal/models"
)

// Repository defines the interface for the append-only match event log.
// No business validation happens here; command-level rules live in the
// livematch service.
type Repository interface {
	// AppendEvent persists an event at the tail of the match log and
	// returns it with its sequence number assigned
	AppendEvent(ctx context.Context, input *AppendEventInput) (*models.MatchEvent, error)

	// GetEvent retrieves a single event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.MatchEvent, error)

	// RemoveEvent deletes an event wholesale. Deletion is the only
	// correction mechanism for the log.
	RemoveEvent(ctx context.Context, input *RemoveEventInput) error

	// ListEvents returns a match's events in append order, oldest first
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)
}
