package notifier

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/clubdesk/matchday/internal/common/clock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type NotifierTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	service Service
}

func (s *NotifierTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	svc, err := New(&Config{
		RedisClient: s.client,
		Clock:       &clock.DefaultClock{},
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *NotifierTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func (s *NotifierTestSuite) TestPublishReachesSubscriber() {
	ctx := context.Background()

	subscription, err := s.service.SubscribeMatchUpdates(ctx, &SubscribeMatchUpdatesInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	defer subscription.Close()

	err = s.service.PublishMatchUpdate(ctx, &PublishMatchUpdateInput{
		MatchID: "test-match-id",
		Kind:    UpdateKindEventAppended,
	})
	s.Require().NoError(err)

	select {
	case update := <-subscription.Updates:
		s.Equal("test-match-id", update.MatchID)
		s.Equal(UpdateKindEventAppended, update.Kind)
	case <-time.After(2 * time.Second):
		s.Fail("timed out waiting for match update")
	}
}

func (s *NotifierTestSuite) TestSubscriberOnlySeesItsMatch() {
	ctx := context.Background()

	subscription, err := s.service.SubscribeMatchUpdates(ctx, &SubscribeMatchUpdatesInput{
		MatchID: "match-a",
	})
	s.Require().NoError(err)
	defer subscription.Close()

	err = s.service.PublishMatchUpdate(ctx, &PublishMatchUpdateInput{
		MatchID: "match-b",
		Kind:    UpdateKindClockChanged,
	})
	s.Require().NoError(err)

	select {
	case update := <-subscription.Updates:
		s.Failf("unexpected update", "got update for %s", update.MatchID)
	case <-time.After(200 * time.Millisecond):
		// No cross-match delivery
	}
}

func (s *NotifierTestSuite) TestCloseUnblocksUndrainedRelay() {
	ctx := context.Background()

	// Warm up the connection pool so its goroutines are in the baseline
	s.Require().NoError(s.client.Ping(ctx).Err())
	baseline := runtime.NumGoroutine()

	subscription, err := s.service.SubscribeMatchUpdates(ctx, &SubscribeMatchUpdatesInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)

	// Publish with nobody reading so the relay ends up blocked mid-send
	err = s.service.PublishMatchUpdate(ctx, &PublishMatchUpdateInput{
		MatchID: "test-match-id",
		Kind:    UpdateKindEventAppended,
	})
	s.Require().NoError(err)

	time.Sleep(100 * time.Millisecond)

	s.Require().NoError(subscription.Close())

	s.Eventually(func() bool {
		return runtime.NumGoroutine() <= baseline
	}, 2*time.Second, 10*time.Millisecond, "relay goroutine still running after close")
}

func (s *NotifierTestSuite) TestCloseEndsStream() {
	ctx := context.Background()

	subscription, err := s.service.SubscribeMatchUpdates(ctx, &SubscribeMatchUpdatesInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)

	s.Require().NoError(subscription.Close())

	select {
	case _, open := <-subscription.Updates:
		s.False(open)
	case <-time.After(2 * time.Second):
		s.Fail("updates channel was not closed")
	}
}
