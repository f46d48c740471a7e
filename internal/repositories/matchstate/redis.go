package matchstate

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
	stateKeyPrefix  = "match_state:"
	lineupKeyPrefix = "match_lineup:"
	benchKeyPrefix  = "match_bench:"
)

// ErrLineupNotFound is returned when no lineup has been saved for a match
var ErrLineupNotFound = errors.New("lineup not found")

// Config holds configuration for the Redis match state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match state repository
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

// GetMatchState retrieves the clock/phase row for a match
func (r *redisRepository) GetMatchState(ctx context.Context, input *GetMatchStateInput) (*models.MatchState, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.MatchID)
	stateJSON, err := r.client.Get(ctx, stateKey).Result()
	if err != nil {
		if err == redis.Nil {
			// No row yet: the match has not been touched
			return &models.MatchState{
				MatchID: input.MatchID,
				Phase:   models.PhaseNotStarted,
			}, nil
		}
		return nil, fmt.Errorf("failed to get match state: %w", err)
	}

	var state models.MatchState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match state: %w", err)
	}

	return &state, nil
}

// SaveMatchState persists the clock/phase row
func (r *redisRepository) SaveMatchState(ctx context.Context, input *SaveMatchStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	if input.State.MatchID == "" {
		return errors.New("state match ID cannot be empty")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal match state: %w", err)
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.State.MatchID)
	if err := r.client.Set(ctx, stateKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save match state: %w", err)
	}

	return nil
}

// GetLineup retrieves the starting lineup for a match
func (r *redisRepository) GetLineup(ctx context.Context, input *GetLineupInput) (*models.Lineup, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	lineupKey := fmt.Sprintf("%s%s", lineupKeyPrefix, input.MatchID)
	lineupJSON, err := r.client.Get(ctx, lineupKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrLineupNotFound
		}
		return nil, fmt.Errorf("failed to get lineup: %w", err)
	}

	var lineup models.Lineup
	if err := json.Unmarshal([]byte(lineupJSON), &lineup); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lineup: %w", err)
	}

	return &lineup, nil
}

// SaveLineup persists the starting lineup
func (r *redisRepository) SaveLineup(ctx context.Context, input *SaveLineupInput) error {
	if input == nil || input.Lineup == nil {
		return errors.New("input and lineup cannot be nil")
	}

	if input.Lineup.MatchID == "" {
		return errors.New("lineup match ID cannot be empty")
	}

	lineupJSON, err := json.Marshal(input.Lineup)
	if err != nil {
		return fmt.Errorf("failed to marshal lineup: %w", err)
	}

	lineupKey := fmt.Sprintf("%s%s", lineupKeyPrefix, input.Lineup.MatchID)
	if err := r.client.Set(ctx, lineupKey, lineupJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save lineup: %w", err)
	}

	return nil
}

// GetBench retrieves the bench roster for a match
func (r *redisRepository) GetBench(ctx context.Context, input *GetBenchInput) (*models.Bench, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	benchKey := fmt.Sprintf("%s%s", benchKeyPrefix, input.MatchID)
	benchJSON, err := r.client.Get(ctx, benchKey).Result()
	if err != nil {
		if err == redis.Nil {
			// No bench saved yet: empty roster
			return &models.Bench{
				MatchID: input.MatchID,
			}, nil
		}
		return nil, fmt.Errorf("failed to get bench: %w", err)
	}

	var bench models.Bench
	if err := json.Unmarshal([]byte(benchJSON), &bench); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bench: %w", err)
	}

	return &bench, nil
}

// SaveBench persists the bench roster
func (r *redisRepository) SaveBench(ctx context.Context, input *SaveBenchInput) error {
	if input == nil || input.Bench == nil {
		return errors.New("input and bench cannot be nil")
	}

	if input.Bench.MatchID == "" {
		return errors.New("bench match ID cannot be empty")
	}

	benchJSON, err := json.Marshal(input.Bench)
	if err != nil {
		return fmt.Errorf("failed to marshal bench: %w", err)
	}

	benchKey := fmt.Sprintf("%s%s", benchKeyPrefix, input.Bench.MatchID)
	if err := r.client.Set(ctx, benchKey, benchJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save bench: %w", err)
	}

	return nil
}
