package livematch

import (
	"github.com/clubdesk/matchday/internal/common/clock"
	"github.com/clubdesk/matchday/internal/common/uuid"
	"github.com/clubdesk/matchday/internal/models"
	eventRepo "github.com/clubdesk/matchday/internal/repositories/event"
	stateRepo "github.com/clubdesk/matchday/internal/repositories/matchstate"
	statsRepo "github.com/clubdesk/matchday/internal/repositories/stats"
	"github.com/clubdesk/matchday/internal/services/notifier"
	"go.uber.org/zap"
)

// Config holds configuration for the live match service
type Config struct {
	// Repository dependencies
	EventRepo eventRepo.Repository
	StateRepo stateRepo.Repository
	StatsRepo statsRepo.Repository

	// Service dependencies
	Notifier      notifier.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger for anomaly reporting; optional
	Logger *zap.Logger

	// Formations overrides the formation metadata table; optional,
	// defaults to models.DefaultFormations
	Formations map[string]*models.Formation
}

// SetLineupInput contains parameters for fixing the starting lineup
type SetLineupInput struct {
	// MatchID is the match being set up
	MatchID string

	// FormationID names the formation the slots belong to
	FormationID string

	// Slots maps slot id to participant id
	Slots map[string]string
}

// SetLineupOutput contains the result of fixing the starting lineup
type SetLineupOutput struct {
	// Valid indicates the lineup reached the tracking threshold
	Valid bool
}

// SetBenchInput contains parameters for fixing the bench roster
type SetBenchInput struct {
	// MatchID is the match being set up
	MatchID string

	// ParticipantIDs are the bench members
	ParticipantIDs []string
}

// SetBenchOutput contains the result of fixing the bench roster
type SetBenchOutput struct{}

// PostEventInput contains parameters for appending a match event
type PostEventInput struct {
	// MatchID is the match the event belongs to
	MatchID string

	// Type is the kind of event
	Type models.EventType

	// Team is the side the event is credited to; defaults to us
	Team models.TeamSide

	// ParticipantID optionally attributes the event to a participant
	ParticipantID string

	// AssistID optionally credits a secondary participant
	AssistID string

	// Comment is free text, required for note events
	Comment string

	// Metadata is the structured payload; substitutions require
	// OutID and InID
	Metadata models.EventMetadata
}

// PostEventOutput contains the result of appending a match event
type PostEventOutput struct {
	// Event is the persisted event with minute, phase and sequence set
	Event *models.MatchEvent
}

// DeleteEventInput contains parameters for removing an event
type DeleteEventInput struct {
	// MatchID is the match the event belongs to
	MatchID string

	// EventID is the event to remove
	EventID string
}

// DeleteEventOutput contains the result of removing an event
type DeleteEventOutput struct{}

// SubstituteInput contains parameters for a substitution command
type SubstituteInput struct {
	// MatchID is the match the substitution belongs to
	MatchID string

	// OutID is the participant leaving the field
	OutID string

	// InID is the participant entering from the bench
	InID string
}

// SubstituteOutput contains the result of a substitution command
type SubstituteOutput struct {
	// Event is the persisted substitution event
	Event *models.MatchEvent

	// CorrelationID identifies the optimistic pending entry that was
	// registered for this command
	CorrelationID string
}

// StartClockInput contains parameters for starting the clock
type StartClockInput struct {
	MatchID string
}

// StartClockOutput contains the clock state after the command
type StartClockOutput struct {
	State *models.MatchState
}

// PauseClockInput contains parameters for pausing the clock
type PauseClockInput struct {
	MatchID string
}

// PauseClockOutput contains the clock state after the command
type PauseClockOutput struct {
	State *models.MatchState
}

// ResetClockInput contains parameters for resetting the clock
type ResetClockInput struct {
	MatchID string
}

// ResetClockOutput contains the clock state after the command
type ResetClockOutput struct {
	State *models.MatchState
}

// SetPhaseInput contains parameters for a phase transition
type SetPhaseInput struct {
	// MatchID is the match being moved
	MatchID string

	// Phase is the target phase
	Phase models.MatchPhase
}

// SetPhaseOutput contains the result of a phase transition
type SetPhaseOutput struct {
	State *models.MatchState
}

// FinalizeMatchInput contains parameters for finalizing a match
type FinalizeMatchInput struct {
	MatchID string
}

// FinalizeMatchOutput contains the result of finalizing a match
type FinalizeMatchOutput struct {
	// Score is the final scoreline persisted as the match result
	Score models.Score

	// Rows are the persisted per-participant statistics
	Rows []*models.PlayerMatchStats
}

// GetSnapshotInput contains parameters for reading the derived match view
type GetSnapshotInput struct {
	MatchID string
}

// OnFieldSlot is one occupied position in the derived on-field picture
type OnFieldSlot struct {
	// SlotID is the formation slot
	SlotID string `json:"slot_id"`

	// Role is the display grouping for the slot
	Role models.SlotRole `json:"role"`

	// ParticipantID is the player occupying the slot
	ParticipantID string `json:"participant_id"`
}

// PendingSubstitution is an optimistic, not-yet-confirmed substitution
type PendingSubstitution struct {
	// CorrelationID ties the entry back to its Substitute command
	CorrelationID string `json:"correlation_id"`

	// OutID is the participant leaving the field
	OutID string `json:"out_id"`

	// InID is the participant entering the field
	InID string `json:"in_id"`

	// Minute is the match minute the command was issued at
	Minute int `json:"minute"`
}

// GetSnapshotOutput is the full derived picture of a match, recomputed
// from the authoritative log on every read
type GetSnapshotOutput struct {
	// MatchID is the match the snapshot describes
	MatchID string `json:"match_id"`

	// Phase is the current match phase
	Phase models.MatchPhase `json:"phase"`

	// Score is the projected scoreline
	Score models.Score `json:"score"`

	// Result is the persisted final score, present once finalized
	Result *models.Score `json:"result,omitempty"`

	// ElapsedSeconds is the clock reading at snapshot time
	ElapsedSeconds int `json:"elapsed_seconds"`

	// Minute is the 1-indexed current match minute
	Minute int `json:"minute"`

	// ClockRunning indicates whether the clock is ticking
	ClockRunning bool `json:"clock_running"`

	// LineupValid indicates the match has a complete starting eleven
	LineupValid bool `json:"lineup_valid"`

	// OnField is the derived slot occupancy in formation order, with
	// any pending substitutions applied on top
	OnField []*OnFieldSlot `json:"on_field"`

	// Bench is the current bench roster
	Bench []string `json:"bench"`

	// SubbedOff lists participants who have left the field and may not
	// return
	SubbedOff []string `json:"subbed_off"`

	// Events is the match log, newest first for display
	Events []*models.MatchEvent `json:"events"`

	// PendingSubstitutions are optimistic entries not yet confirmed by
	// the log
	PendingSubstitutions []*PendingSubstitution `json:"pending_substitutions,omitempty"`
}
