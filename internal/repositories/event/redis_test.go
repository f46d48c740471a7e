package event

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/clubdesk/matchday/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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

	// Set up test time
	s.testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testEvent(id string, eventType models.EventType) *models.MatchEvent {
	return &models.MatchEvent{
		ID:            id,
		MatchID:       "test-match-id",
		Type:          eventType,
		Team:          models.TeamUs,
		Minute:        23,
		Phase:         models.PhaseFirstHalf,
		ParticipantID: "test-participant-id",
		CreatedAt:     s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestAppendAndListEvents() {
	first, err := s.repo.AppendEvent(context.Background(), &AppendEventInput{
		Event: s.testEvent("event-1", models.EventTypeGoal),
	})
	s.Require().NoError(err)
	s.Equal(int64(1), first.Seq)

	second, err := s.repo.AppendEvent(context.Background(), &AppendEventInput{
		Event: s.testEvent("event-2", models.EventTypeYellowCard),
	})
	s.Require().NoError(err)
	s.Equal(int64(2), second.Seq)

	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Events, 2)

	// Oldest first, ordered by sequence
	s.Equal("event-1", output.Events[0].ID)
	s.Equal(models.EventTypeGoal, output.Events[0].Type)
	s.Equal("event-2", output.Events[1].ID)
	s.Equal(models.EventTypeYellowCard, output.Events[1].Type)
	s.Equal(models.PhaseFirstHalf, output.Events[0].Phase)
	s.Equal(s.testNow.Unix(), output.Events[0].CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestAppendPreservesMetadata() {
	event := s.testEvent("event-sub", models.EventTypeSubstitution)
	event.ParticipantID = ""
	event.Metadata = models.EventMetadata{
		OutID: "player-out",
		InID:  "player-in",
	}

	_, err := s.repo.AppendEvent(context.Background(), &AppendEventInput{
		Event: event,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetEvent(context.Background(), &GetEventInput{
		EventID: "event-sub",
	})
	s.Require().NoError(err)
	s.Equal("player-out", retrieved.Metadata.OutID)
	s.Equal("player-in", retrieved.Metadata.InID)
}

func (s *RedisRepositoryTestSuite) TestRemoveEvent() {
	_, err := s.repo.AppendEvent(context.Background(), &AppendEventInput{
		Event: s.testEvent("event-1", models.EventTypeGoal),
	})
	s.Require().NoError(err)

	err = s.repo.RemoveEvent(context.Background(), &RemoveEventInput{
		MatchID: "test-match-id",
		EventID: "event-1",
	})
	s.Require().NoError(err)

	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	s.Empty(output.Events)

	_, err = s.repo.GetEvent(context.Background(), &GetEventInput{
		EventID: "event-1",
	})
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *RedisRepositoryTestSuite) TestRemoveEventNotFound() {
	err := s.repo.RemoveEvent(context.Background(), &RemoveEventInput{
		MatchID: "test-match-id",
		EventID: "missing-event",
	})
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *RedisRepositoryTestSuite) TestSequenceSurvivesDeletion() {
	_, err := s.repo.AppendEvent(context.Background(), &AppendEventInput{
		Event: s.testEvent("event-1", models.EventTypeGoal),
	})
	s.Require().NoError(err)

	err = s.repo.RemoveEvent(context.Background(), &RemoveEventInput{
		MatchID: "test-match-id",
		EventID: "event-1",
	})
	s.Require().NoError(err)

	// A later append must not reuse the deleted event's position
	next, err := s.repo.AppendEvent(context.Background(), &AppendEventInput{
		Event: s.testEvent("event-2", models.EventTypeSave),
	})
	s.Require().NoError(err)
	s.Equal(int64(2), next.Seq)
}

func (s *RedisRepositoryTestSuite) TestListEventsEmptyMatch() {
	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		MatchID: "unknown-match-id",
	})
	s.Require().NoError(err)
	s.Empty(output.Events)
}
