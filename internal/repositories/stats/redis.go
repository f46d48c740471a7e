package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/clubdesk/matchday/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	statsKeyPrefix      = "match_stats:"
	statsIndexKeyPrefix = "match_stats_index:"
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
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

// UpsertStats writes all of a match's statistics rows in one MULTI/EXEC
// transaction so a partially-persisted finalization is never visible
func (r *redisRepository) UpsertStats(ctx context.Context, input *UpsertStatsInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	marshalled := make(map[string][]byte, len(input.Rows))
	members := make([]interface{}, 0, len(input.Rows))
	for _, row := range input.Rows {
		if row == nil || row.ParticipantID == "" {
			return errors.New("stats rows must carry a participant ID")
		}
		rowJSON, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal stats row: %w", err)
		}
		marshalled[row.ParticipantID] = rowJSON
		members = append(members, row.ParticipantID)
	}

	indexKey := fmt.Sprintf("%s%s", statsIndexKeyPrefix, input.MatchID)

	// Drop rows from a prior finalization before rewriting. The whole
	// replacement happens inside one transaction.
	previous, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read stats index: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, participantID := range previous {
			pipe.Del(ctx, r.rowKey(input.MatchID, participantID))
		}
		pipe.Del(ctx, indexKey)

		for participantID, rowJSON := range marshalled {
			pipe.Set(ctx, r.rowKey(input.MatchID, participantID), rowJSON, 0)
		}
		if len(members) > 0 {
			pipe.SAdd(ctx, indexKey, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert stats: %w", err)
	}

	return nil
}

// GetMatchStats retrieves all statistics rows for a match, ordered by
// participant ID
func (r *redisRepository) GetMatchStats(ctx context.Context, input *GetMatchStatsInput) (*GetMatchStatsOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", statsIndexKeyPrefix, input.MatchID)
	participantIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats index: %w", err)
	}
	sort.Strings(participantIDs)

	rows := make([]*models.PlayerMatchStats, 0, len(participantIDs))
	for _, participantID := range participantIDs {
		rowJSON, err := r.client.Get(ctx, r.rowKey(input.MatchID, participantID)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get stats row for %s: %w", participantID, err)
		}

		var row models.PlayerMatchStats
		if err := json.Unmarshal([]byte(rowJSON), &row); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stats row for %s: %w", participantID, err)
		}
		rows = append(rows, &row)
	}

	return &GetMatchStatsOutput{
		Rows: rows,
	}, nil
}

func (r *redisRepository) rowKey(matchID, participantID string) string {
	return fmt.Sprintf("%s%s:%s", statsKeyPrefix, matchID, participantID)
}
