package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/clubdesk/matchday/internal/common/clock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "match_updates:"

// Config holds configuration for the notifier service
type Config struct {
	// Redis client used for pub/sub
	RedisClient *redis.Client

	// Clock stamps outgoing notifications
	Clock clock.Clock

	// Logger for subscription plumbing
	Logger *zap.Logger
}

// service implements the Service interface using redis pub/sub
type service struct {
	client *redis.Client
	clock  clock.Clock
	logger *zap.Logger
}

// New creates a new notifier service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
		logger: logger,
	}, nil
}

// PublishMatchUpdate announces a change to a match
func (s *service) PublishMatchUpdate(ctx context.Context, input *PublishMatchUpdateInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	update := &MatchUpdate{
		MatchID: input.MatchID,
		Kind:    input.Kind,
		At:      s.clock.Now(),
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal match update: %w", err)
	}

	channel := fmt.Sprintf("%s%s", channelPrefix, input.MatchID)
	if err := s.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish match update: %w", err)
	}

	return nil
}

// SubscribeMatchUpdates subscribes to a match's change feed
func (s *service) SubscribeMatchUpdates(ctx context.Context, input *SubscribeMatchUpdatesInput) (*SubscribeMatchUpdatesOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	channel := fmt.Sprintf("%s%s", channelPrefix, input.MatchID)
	pubsub := s.client.Subscribe(ctx, channel)

	// Force the subscription to be established before returning so a
	// publish immediately after subscribe is not lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to match updates: %w", err)
	}

	// done unblocks a relay stuck sending to a consumer that stopped
	// reading before closing; pubsub.Close alone only ends the range
	updates := make(chan *MatchUpdate)
	done := make(chan struct{})
	go func() {
		defer close(updates)
		for msg := range pubsub.Channel() {
			var update MatchUpdate
			if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
				s.logger.Warn("dropping malformed match update",
					zap.String("match_id", input.MatchID),
					zap.Error(err))
				continue
			}
			select {
			case updates <- &update:
			case <-done:
				return
			}
		}
	}()

	var closeOnce sync.Once
	return &SubscribeMatchUpdatesOutput{
		Updates: updates,
		Close: func() error {
			closeOnce.Do(func() {
				close(done)
			})
			return pubsub.Close()
		},
	}, nil
}
