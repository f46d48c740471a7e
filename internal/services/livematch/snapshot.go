package livematch

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/clubdesk/matchday/internal/models"
	"github.com/clubdesk/matchday/internal/replay"
	eventRepo "github.com/clubdesk/matchday/internal/repositories/event"
	stateRepo "github.com/clubdesk/matchday/internal/repositories/matchstate"
)

// GetSnapshot recomputes the full derived picture of the match from the
// authoritative log. Snapshots never patch previous results
// incrementally; every call replays the log from scratch so readers
// converge after out-of-order delivery.
func (s *service) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	state, err := s.stateRepo.GetMatchState(ctx, &stateRepo.GetMatchStateInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	lineup, err := s.stateRepo.GetLineup(ctx, &stateRepo.GetLineupInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		if !errors.Is(err, stateRepo.ErrLineupNotFound) {
			return nil, err
		}
		lineup = &models.Lineup{MatchID: input.MatchID}
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

	onField := replay.DeriveOnField(lineup.Slots, events)

	// Reconcile the optimistic overlay against the fresh replay, then
	// apply whatever is still pending on top of the confirmed picture
	pending := s.reconcilePending(input.MatchID, events)
	for _, entry := range pending {
		for slotID, participantID := range onField {
			if participantID == entry.OutID {
				onField[slotID] = entry.InID
				break
			}
		}
	}

	now := s.clock.Now()

	output := &GetSnapshotOutput{
		MatchID:              input.MatchID,
		Phase:                state.Phase,
		Score:                replay.ProjectScore(events),
		Result:               state.Result,
		ElapsedSeconds:       state.ElapsedSeconds(now),
		Minute:               state.CurrentMinute(now),
		ClockRunning:         state.Running(),
		LineupValid:          lineup.Valid(),
		OnField:              s.orderOnField(lineup.FormationID, onField),
		Bench:                bench.ParticipantIDs,
		SubbedOff:            sortedIDs(replay.SubbedOff(events)),
		Events:               newestFirst(events),
		PendingSubstitutions: pending,
	}

	return output, nil
}

// orderOnField labels the derived slot occupancy with formation roles
// and returns it in formation display order. Slots the formation does
// not know about are appended alphabetically with a midfield role.
func (s *service) orderOnField(formationID string, onField map[string]string) []*OnFieldSlot {
	formation := s.formations[formationID]

	slots := make([]*OnFieldSlot, 0, len(onField))
	seen := make(map[string]bool, len(onField))

	if formation != nil {
		for _, formationSlot := range formation.Slots {
			participantID, occupied := onField[formationSlot.SlotID]
			if !occupied || participantID == "" {
				continue
			}
			slots = append(slots, &OnFieldSlot{
				SlotID:        formationSlot.SlotID,
				Role:          formationSlot.Role,
				ParticipantID: participantID,
			})
			seen[formationSlot.SlotID] = true
		}
	}

	rest := make([]string, 0)
	for slotID, participantID := range onField {
		if !seen[slotID] && participantID != "" {
			rest = append(rest, slotID)
		}
	}
	sort.Strings(rest)
	for _, slotID := range rest {
		slots = append(slots, &OnFieldSlot{
			SlotID:        slotID,
			Role:          formation.RoleForSlot(slotID),
			ParticipantID: onField[slotID],
		})
	}

	return slots
}

func sortedIDs(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func newestFirst(events []*models.MatchEvent) []*models.MatchEvent {
	reversed := make([]*models.MatchEvent, len(events))
	for i, event := range events {
		reversed[len(events)-1-i] = event
	}
	return reversed
}
