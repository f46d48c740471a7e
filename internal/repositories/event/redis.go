package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clubdesk/matchday/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix    = "match_event:"
	matchLogKeyPrefix = "match_log:"
	matchSeqKeyPrefix = "match_log_seq:"
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AppendEvent persists an event at the tail of the match log
func (r *redisRepository) AppendEvent(ctx context.Context, input *AppendEventInput) (*models.MatchEvent, error) {
	if input == nil || input.Event == nil {
		return nil, errors.New("input and event cannot be nil")
	}

	stored := *input.Event

	if stored.ID == "" {
		return nil, errors.New("event ID cannot be empty")
	}

	if stored.MatchID == "" {
		return nil, errors.New("event match ID cannot be empty")
	}

	// Claim the next sequence number for the match. The counter is the
	// single source of append order; Minute is display-only.
	seqKey := fmt.Sprintf("%s%s", matchSeqKeyPrefix, stored.MatchID)
	seq, err := r.client.Incr(ctx, seqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim event sequence: %w", err)
	}
	stored.Seq = seq

	eventJSON, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := r.client.Pipeline()

	// Store the event row
	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, stored.ID)
	pipe.Set(ctx, eventKey, eventJSON, 0)

	// Index it in the match log sorted set, scored by sequence
	logKey := fmt.Sprintf("%s%s", matchLogKeyPrefix, stored.MatchID)
	pipe.ZAdd(ctx, logKey, redis.Z{
		Score:  float64(seq),
		Member: stored.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return &stored, nil
}

// GetEvent retrieves a single event by ID
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.MatchEvent, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)
	eventJSON, err := r.client.Get(ctx, eventKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event models.MatchEvent
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// RemoveEvent deletes an event and drops it from the match log index
func (r *redisRepository) RemoveEvent(ctx context.Context, input *RemoveEventInput) error {
	if input == nil || input.MatchID == "" || input.EventID == "" {
		return errors.New("input, match ID and event ID cannot be empty")
	}

	logKey := fmt.Sprintf("%s%s", matchLogKeyPrefix, input.MatchID)
	removed, err := r.client.ZRem(ctx, logKey, input.EventID).Result()
	if err != nil {
		return fmt.Errorf("failed to remove event from log: %w", err)
	}

	if removed == 0 {
		return ErrEventNotFound
	}

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)
	if err := r.client.Del(ctx, eventKey).Err(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// ListEvents returns a match's events in append order, oldest first
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	logKey := fmt.Sprintf("%s%s", matchLogKeyPrefix, input.MatchID)
	eventIDs, err := r.client.ZRange(ctx, logKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read match log: %w", err)
	}

	events := make([]*models.MatchEvent, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, eventID)
		eventJSON, err := r.client.Get(ctx, eventKey).Result()
		if err != nil {
			if err == redis.Nil {
				// Index entry without a row; skip rather than fail the replay
				continue
			}
			return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
		}

		var event models.MatchEvent
		if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %s: %w", eventID, err)
		}

		events = append(events, &event)
	}

	return &ListEventsOutput{
		Events: events,
	}, nil
}
