package livematch

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubdesk/matchday/internal/models"
	"github.com/clubdesk/matchday/internal/replay"
	eventRepo "github.com/clubdesk/matchday/internal/repositories/event"
	stateRepo "github.com/clubdesk/matchday/internal/repositories/matchstate"
	statsRepo "github.com/clubdesk/matchday/internal/repositories/stats"
	"github.com/clubdesk/matchday/internal/services/notifier"
	"go.uber.org/zap"
)

// FinalizeMatch replays the entire event log into per-participant
// statistics, persists them together with the final score and moves the
// match to its terminal phase.
//
// Ordering makes the command retryable: the statistics rows are written
// first in one transaction, and only then is the result/phase row
// flipped. A failure anywhere leaves the match un-ended, and a repeat
// finalize overwrites the rows it already wrote.
func (s *service) FinalizeMatch(ctx context.Context, input *FinalizeMatchInput) (*FinalizeMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	state, lineup, err := s.loadMutableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	bench, err := s.stateRepo.GetBench(ctx, &stateRepo.GetBenchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	listOutput, err := s.eventRepo.ListEvents(ctx, &eventRepo.ListEventsInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events := listOutput.Events

	now := s.clock.Now()

	// The end minute respects stoppage-time events and a clock that ran
	// long, with a regulation-length floor for aborted sessions
	endMinute := replay.EndMinute(events, state.CurrentMinute(now))

	rows := replay.BuildFinalStats(lineup.Slots, bench.ParticipantIDs, events, endMinute)
	for _, row := range rows {
		row.MatchID = input.MatchID
	}

	err = s.statsRepo.UpsertStats(ctx, &statsRepo.UpsertStatsInput{
		MatchID: input.MatchID,
		Rows:    rows,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist match statistics: %w", err)
	}

	score := replay.ProjectScore(events)

	// Fold any running interval before sealing the state
	state.AccumulatedOffsetSeconds = state.ElapsedSeconds(now)
	state.RunningSince = nil
	state.Result = &score
	state.Phase = models.PhaseEnded
	state.UpdatedAt = now

	if err := s.saveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to seal match state: %w", err)
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindMatchFinalized)

	s.logger.Info("match finalized",
		zap.String("match_id", input.MatchID),
		zap.Int("end_minute", endMinute),
		zap.Int("participants", len(rows)))

	return &FinalizeMatchOutput{
		Score: score,
		Rows:  rows,
	}, nil
}
