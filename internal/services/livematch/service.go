package livematch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/clubdesk/matchday/internal/common/clock"
	"github.com/clubdesk/matchday/internal/common/uuid"
	"github.com/clubdesk/matchday/internal/models"
	"github.com/clubdesk/matchday/internal/replay"
	eventRepo "github.com/clubdesk/matchday/internal/repositories/event"
	stateRepo "github.com/clubdesk/matchday/internal/repositories/matchstate"
	statsRepo "github.com/clubdesk/matchday/internal/repositories/stats"
	"github.com/clubdesk/matchday/internal/services/notifier"
	"go.uber.org/zap"
)

var knownEventTypes = map[models.EventType]bool{
	models.EventTypeGoal:           true,
	models.EventTypeOwnGoal:        true,
	models.EventTypePenaltyScored:  true,
	models.EventTypePenaltyMissed:  true,
	models.EventTypeAssist:         true,
	models.EventTypeYellowCard:     true,
	models.EventTypeRedCard:        true,
	models.EventTypeFoul:           true,
	models.EventTypeSave:           true,
	models.EventTypeNote:           true,
	models.EventTypeSubstitution:   true,
}

var knownPhases = map[models.MatchPhase]bool{
	models.PhaseNotStarted: true,
	models.PhaseFirstHalf:  true,
	models.PhaseHalfTime:   true,
	models.PhaseSecondHalf: true,
	models.PhaseExtraTime:  true,
	models.PhaseEnded:      true,
}

// service implements the Service interface
type service struct {
	eventRepo  eventRepo.Repository
	stateRepo  stateRepo.Repository
	statsRepo  statsRepo.Repository
	notifier   notifier.Service
	clock      clock.Clock
	uuid       uuid.UUID
	logger     *zap.Logger
	formations map[string]*models.Formation

	// Optimistic substitution overlay, per match. View-only state: it
	// is applied on top of snapshots and reconciled against the log,
	// never persisted.
	mu      sync.Mutex
	pending map[string][]*PendingSubstitution
}

// New creates a new live match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}

	if cfg.StateRepo == nil {
		return nil, ErrNilStateRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	formations := cfg.Formations
	if formations == nil {
		formations = models.DefaultFormations
	}

	return &service{
		eventRepo:  cfg.EventRepo,
		stateRepo:  cfg.StateRepo,
		statsRepo:  cfg.StatsRepo,
		notifier:   cfg.Notifier,
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
		logger:     logger,
		formations: formations,
		pending:    make(map[string][]*PendingSubstitution),
	}, nil
}

// SetLineup fixes the starting lineup for a match
func (s *service) SetLineup(ctx context.Context, input *SetLineupInput) (*SetLineupOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	state, err := s.stateRepo.GetMatchState(ctx, &stateRepo.GetMatchStateInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	if state.Phase == models.PhaseEnded {
		return nil, ErrMatchEnded
	}

	lineup := &models.Lineup{
		MatchID:     input.MatchID,
		FormationID: input.FormationID,
		Slots:       input.Slots,
		UpdatedAt:   s.clock.Now(),
	}

	err = s.stateRepo.SaveLineup(ctx, &stateRepo.SaveLineupInput{
		Lineup: lineup,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindRosterChanged)

	return &SetLineupOutput{
		Valid: lineup.Valid(),
	}, nil
}

// SetBench fixes the bench roster for a match
func (s *service) SetBench(ctx context.Context, input *SetBenchInput) (*SetBenchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	state, err := s.stateRepo.GetMatchState(ctx, &stateRepo.GetMatchStateInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	if state.Phase == models.PhaseEnded {
		return nil, ErrMatchEnded
	}

	err = s.stateRepo.SaveBench(ctx, &stateRepo.SaveBenchInput{
		Bench: &models.Bench{
			MatchID:        input.MatchID,
			ParticipantIDs: input.ParticipantIDs,
			UpdatedAt:      s.clock.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindRosterChanged)

	return &SetBenchOutput{}, nil
}

// PostEvent appends an event to the match log
func (s *service) PostEvent(ctx context.Context, input *PostEventInput) (*PostEventOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	if !knownEventTypes[input.Type] {
		return nil, ErrInvalidEventType
	}

	// Load the state and lineup gates shared by all mutations
	state, lineup, err := s.loadMutableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	return s.appendStamped(ctx, input, state, lineup, s.clock.Now())
}

// appendStamped validates and appends an event against already-loaded
// match rows, stamping the minute from the given instant. Substitute
// shares this path so its optimistic overlay entry and the confirmed
// event carry the same minute.
func (s *service) appendStamped(ctx context.Context, input *PostEventInput, state *models.MatchState, lineup *models.Lineup, now time.Time) (*PostEventOutput, error) {
	team := input.Team
	if team == "" {
		team = models.TeamUs
	}

	if input.Type == models.EventTypeNote && input.Comment == "" {
		return nil, ErrNoteRequiresComment
	}

	metadata := input.Metadata
	if input.Type == models.EventTypeSubstitution {
		// Substitutions are always internal to the tracked team
		team = models.TeamUs

		if err := s.validateSubstitution(ctx, input.MatchID, lineup, &metadata); err != nil {
			return nil, err
		}
	}

	event := &models.MatchEvent{
		ID:            s.uuid.NewUUID(),
		MatchID:       input.MatchID,
		Type:          input.Type,
		Team:          team,
		Minute:        state.CurrentMinute(now),
		Phase:         state.Phase,
		ParticipantID: input.ParticipantID,
		AssistID:      input.AssistID,
		Comment:       input.Comment,
		Metadata:      metadata,
		CreatedAt:     now,
	}

	appended, err := s.eventRepo.AppendEvent(ctx, &eventRepo.AppendEventInput{
		Event: event,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	// Keep the bench roster consistent with on-field reality
	if appended.IsSubstitution() {
		if err := s.swapBench(ctx, input.MatchID, appended.Metadata.OutID, appended.Metadata.InID); err != nil {
			s.logger.Warn("bench update after substitution failed",
				zap.String("match_id", input.MatchID),
				zap.Error(err))
		}
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindEventAppended)

	return &PostEventOutput{
		Event: appended,
	}, nil
}

// DeleteEvent removes an event wholesale
func (s *service) DeleteEvent(ctx context.Context, input *DeleteEventInput) (*DeleteEventOutput, error) {
	if input == nil || input.MatchID == "" || input.EventID == "" {
		return nil, errors.New("input, match ID and event ID cannot be empty")
	}

	state, err := s.stateRepo.GetMatchState(ctx, &stateRepo.GetMatchStateInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	if state.Phase == models.PhaseEnded {
		return nil, ErrMatchEnded
	}

	err = s.eventRepo.RemoveEvent(ctx, &eventRepo.RemoveEventInput{
		MatchID: input.MatchID,
		EventID: input.EventID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindEventRemoved)

	return &DeleteEventOutput{}, nil
}

// Substitute posts a substitution event with an optimistic pending entry
func (s *service) Substitute(ctx context.Context, input *SubstituteInput) (*SubstituteOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	state, lineup, err := s.loadMutableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	// One instant stamps both the optimistic entry and the confirmed
	// event, so the two can never disagree across a minute boundary
	now := s.clock.Now()

	// Register the optimistic entry before issuing the append so
	// concurrent snapshot readers see the swap immediately
	pending := &PendingSubstitution{
		CorrelationID: s.uuid.NewUUID(),
		OutID:         input.OutID,
		InID:          input.InID,
		Minute:        state.CurrentMinute(now),
	}
	s.addPending(input.MatchID, pending)

	output, err := s.appendStamped(ctx, &PostEventInput{
		MatchID: input.MatchID,
		Type:    models.EventTypeSubstitution,
		Metadata: models.EventMetadata{
			OutID: input.OutID,
			InID:  input.InID,
		},
	}, state, lineup, now)
	if err != nil {
		// Roll back the overlay for this specific command
		s.removePending(input.MatchID, pending.CorrelationID)
		return nil, err
	}

	return &SubstituteOutput{
		Event:         output.Event,
		CorrelationID: pending.CorrelationID,
	}, nil
}

// StartClock starts the match clock; no-op if already running
func (s *service) StartClock(ctx context.Context, input *StartClockInput) (*StartClockOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	state, _, err := s.loadMutableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if state.Running() {
		return &StartClockOutput{State: state}, nil
	}

	now := s.clock.Now()
	state.RunningSince = &now
	state.UpdatedAt = now

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindClockChanged)

	return &StartClockOutput{State: state}, nil
}

// PauseClock pauses the match clock, banking the running interval
func (s *service) PauseClock(ctx context.Context, input *PauseClockInput) (*PauseClockOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	state, err := s.stateRepo.GetMatchState(ctx, &stateRepo.GetMatchStateInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	if state.Phase == models.PhaseEnded {
		return nil, ErrMatchEnded
	}

	if !state.Running() {
		return &PauseClockOutput{State: state}, nil
	}

	now := s.clock.Now()
	state.AccumulatedOffsetSeconds = state.ElapsedSeconds(now)
	state.RunningSince = nil
	state.UpdatedAt = now

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindClockChanged)

	return &PauseClockOutput{State: state}, nil
}

// ResetClock zeroes the match clock regardless of prior state
func (s *service) ResetClock(ctx context.Context, input *ResetClockInput) (*ResetClockOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	state, err := s.stateRepo.GetMatchState(ctx, &stateRepo.GetMatchStateInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	if state.Phase == models.PhaseEnded {
		return nil, ErrMatchEnded
	}

	state.AccumulatedOffsetSeconds = 0
	state.RunningSince = nil
	state.UpdatedAt = s.clock.Now()

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindClockChanged)

	return &ResetClockOutput{State: state}, nil
}

// SetPhase moves the match to another phase
func (s *service) SetPhase(ctx context.Context, input *SetPhaseInput) (*SetPhaseOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	if !knownPhases[input.Phase] {
		return nil, ErrInvalidPhase
	}

	state, err := s.stateRepo.GetMatchState(ctx, &stateRepo.GetMatchStateInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	// Ended is terminal: no phase changes out of it
	if state.Phase == models.PhaseEnded {
		return nil, ErrMatchEnded
	}

	state.Phase = input.Phase
	state.UpdatedAt = s.clock.Now()

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	s.publish(ctx, input.MatchID, notifier.UpdateKindPhaseChanged)

	return &SetPhaseOutput{State: state}, nil
}

// loadMutableMatch fetches the state and lineup and applies the two
// gates shared by every mutating command: the match must not have ended
// and the starting lineup must be complete.
func (s *service) loadMutableMatch(ctx context.Context, matchID string) (*models.MatchState, *models.Lineup, error) {
	state, err := s.stateRepo.GetMatchState(ctx, &stateRepo.GetMatchStateInput{
		MatchID: matchID,
	})
	if err != nil {
		return nil, nil, err
	}

	if state.Phase == models.PhaseEnded {
		return nil, nil, ErrMatchEnded
	}

	lineup, err := s.stateRepo.GetLineup(ctx, &stateRepo.GetLineupInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, stateRepo.ErrLineupNotFound) {
			return nil, nil, ErrLineupIncomplete
		}
		return nil, nil, err
	}

	if !lineup.Valid() {
		return nil, nil, ErrLineupIncomplete
	}

	return state, lineup, nil
}

// validateSubstitution enforces the command-level substitution rules:
// the outgoing player must currently be on the field, the incoming
// player must be on the bench and must never have been substituted off.
func (s *service) validateSubstitution(ctx context.Context, matchID string, lineup *models.Lineup, metadata *models.EventMetadata) error {
	if metadata.OutID == "" || metadata.InID == "" {
		return ErrSubstitutionIncomplete
	}

	listOutput, err := s.eventRepo.ListEvents(ctx, &eventRepo.ListEventsInput{
		MatchID: matchID,
	})
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	onField := replay.DeriveOnField(lineup.Slots, listOutput.Events)
	if !replay.IsOnField(onField, metadata.OutID) {
		return ErrPlayerNotOnField
	}

	if replay.SubbedOff(listOutput.Events)[metadata.InID] {
		return ErrPlayerAlreadySubbedOff
	}

	if replay.IsOnField(onField, metadata.InID) {
		return ErrPlayerNotOnBench
	}

	bench, err := s.stateRepo.GetBench(ctx, &stateRepo.GetBenchInput{
		MatchID: matchID,
	})
	if err != nil {
		return err
	}

	if !bench.Contains(metadata.InID) {
		return ErrPlayerNotOnBench
	}

	return nil
}

// swapBench moves the outgoing player onto the bench and the incoming
// player off it after a confirmed substitution
func (s *service) swapBench(ctx context.Context, matchID, outID, inID string) error {
	bench, err := s.stateRepo.GetBench(ctx, &stateRepo.GetBenchInput{
		MatchID: matchID,
	})
	if err != nil {
		return err
	}

	bench.Remove(inID)
	bench.Add(outID)
	bench.UpdatedAt = s.clock.Now()

	return s.stateRepo.SaveBench(ctx, &stateRepo.SaveBenchInput{
		Bench: bench,
	})
}

func (s *service) saveState(ctx context.Context, state *models.MatchState) error {
	return s.stateRepo.SaveMatchState(ctx, &stateRepo.SaveMatchStateInput{
		State: state,
	})
}

// publish fires a change notification. Best effort: a dropped
// notification only delays subscribers until their next refresh, so
// failures are logged rather than failing the command.
func (s *service) publish(ctx context.Context, matchID string, kind notifier.UpdateKind) {
	err := s.notifier.PublishMatchUpdate(ctx, &notifier.PublishMatchUpdateInput{
		MatchID: matchID,
		Kind:    kind,
	})
	if err != nil {
		s.logger.Warn("failed to publish match update",
			zap.String("match_id", matchID),
			zap.String("kind", string(kind)),
			zap.Error(err))
	}
}

func (s *service) addPending(matchID string, pending *PendingSubstitution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[matchID] = append(s.pending[matchID], pending)
}

func (s *service) removePending(matchID, correlationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.pending[matchID]
	kept := make([]*PendingSubstitution, 0, len(entries))
	for _, entry := range entries {
		if entry.CorrelationID != correlationID {
			kept = append(kept, entry)
		}
	}
	s.pending[matchID] = kept
}

// reconcilePending clears the whole overlay for a match as soon as any
// substitution shows up in a fresh replay. Clearing on any confirmation
// rather than pair-matching avoids permanent drift if a specific
// confirmation is missed; the snapshot consumers recompute from the log
// anyway. Returns the entries still pending.
func (s *service) reconcilePending(matchID string, events []*models.MatchEvent) []*PendingSubstitution {
	confirmed := false
	for _, event := range events {
		if event.IsSubstitution() {
			confirmed = true
			break
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if confirmed {
		delete(s.pending, matchID)
		return nil
	}

	entries := s.pending[matchID]
	result := make([]*PendingSubstitution, len(entries))
	copy(result, entries)
	return result
}
