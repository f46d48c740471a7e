package stats

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/clubdesk/matchday/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) row(participantID string, minutes int) *models.PlayerMatchStats {
	return &models.PlayerMatchStats{
		MatchID:       "test-match-id",
		ParticipantID: participantID,
		Started:       true,
		MinutesPlayed: minutes,
		WasInSquad:    true,
	}
}

func (s *RedisRepositoryTestSuite) TestUpsertAndGetStats() {
	err := s.repo.UpsertStats(context.Background(), &UpsertStatsInput{
		MatchID: "test-match-id",
		Rows: []*models.PlayerMatchStats{
			s.row("player-2", 90),
			s.row("player-1", 45),
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetMatchStats(context.Background(), &GetMatchStatsInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Rows, 2)

	// Ordered by participant ID
	s.Equal("player-1", output.Rows[0].ParticipantID)
	s.Equal(45, output.Rows[0].MinutesPlayed)
	s.Equal("player-2", output.Rows[1].ParticipantID)
	s.Equal(90, output.Rows[1].MinutesPlayed)
}

func (s *RedisRepositoryTestSuite) TestUpsertReplacesPriorRows() {
	err := s.repo.UpsertStats(context.Background(), &UpsertStatsInput{
		MatchID: "test-match-id",
		Rows: []*models.PlayerMatchStats{
			s.row("player-1", 45),
			s.row("player-gone", 90),
		},
	})
	s.Require().NoError(err)

	// Re-finalize with a different row set
	err = s.repo.UpsertStats(context.Background(), &UpsertStatsInput{
		MatchID: "test-match-id",
		Rows: []*models.PlayerMatchStats{
			s.row("player-1", 60),
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetMatchStats(context.Background(), &GetMatchStatsInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Rows, 1)
	s.Equal("player-1", output.Rows[0].ParticipantID)
	s.Equal(60, output.Rows[0].MinutesPlayed)
}

func (s *RedisRepositoryTestSuite) TestGetStatsEmptyMatch() {
	output, err := s.repo.GetMatchStats(context.Background(), &GetMatchStatsInput{
		MatchID: "unknown-match-id",
	})
	s.Require().NoError(err)
	s.Empty(output.Rows)
}
