package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/clubdesk/matchday/internal/services/notifier Service

import "context"

// Service is the match change-notification channel. A notification only
// says that something about a match changed; subscribers are expected to
// re-fetch the authoritative rows and recompute, never to trust the
// payload as ground truth.
type Service interface {
	// PublishMatchUpdate announces a change to a match
	PublishMatchUpdate(ctx context.Context, input *PublishMatchUpdateInput) error

	// SubscribeMatchUpdates subscribes to a match's change feed
	SubscribeMatchUpdates(ctx context.Context, input *SubscribeMatchUpdatesInput) (*SubscribeMatchUpdatesOutput, error)
}
