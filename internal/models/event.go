package models

import (
	"time"
)

// EventType represents the kind of match event being recorded
type EventType string

const (
	// EventTypeGoal indicates a goal scored from open play
	EventTypeGoal EventType = "goal"

	// EventTypeOwnGoal indicates a goal scored against the player's own team
	EventTypeOwnGoal EventType = "own_goal"

	// EventTypePenaltyScored indicates a converted penalty kick
	EventTypePenaltyScored EventType = "pen_scored"

	// EventTypePenaltyMissed indicates a missed penalty kick
	EventTypePenaltyMissed EventType = "pen_missed"

	// EventTypeAssist indicates an assist credited on its own
	EventTypeAssist EventType = "assist"

	// EventTypeYellowCard indicates a caution shown to a player
	EventTypeYellowCard EventType = "yellow_card"

	// EventTypeRedCard indicates a sending-off
	EventTypeRedCard EventType = "red_card"

	// EventTypeFoul indicates a foul committed by a player
	EventTypeFoul EventType = "foul"

	// EventTypeSave indicates a save made by the goalkeeper
	EventTypeSave EventType = "save"

	// EventTypeNote indicates a free-text annotation on the timeline
	EventTypeNote EventType = "note"

	// EventTypeSubstitution indicates a player swap between field and bench
	EventTypeSubstitution EventType = "substitution"
)

// TeamSide identifies which team an event is credited to
type TeamSide string

const (
	// TeamUs is the tracked team
	TeamUs TeamSide = "us"

	// TeamOpponent is the opposing team
	TeamOpponent TeamSide = "opponent"
)

// EventMetadata carries the structured payload of an event.
// Substitutions require OutID and InID; everything else is free-form.
type EventMetadata struct {
	// OutID is the participant leaving the field (substitutions only)
	OutID string `json:"out_id,omitempty"`

	// InID is the participant entering the field (substitutions only)
	InID string `json:"in_id,omitempty"`

	// Extra holds any additional free-form payload
	Extra map[string]string `json:"extra,omitempty"`
}

// MatchEvent is a single entry in a match's append-only event log.
// Events are never mutated once persisted; deleting an event wholesale
// is the only correction mechanism.
type MatchEvent struct {
	// ID is the unique identifier for the event
	ID string `json:"id"`

	// MatchID is the match this event belongs to
	MatchID string `json:"match_id"`

	// Type is the kind of event
	Type EventType `json:"type"`

	// Team is the side the event is credited to
	Team TeamSide `json:"team"`

	// Minute is the match minute at post time. Display only; replay
	// order is governed by Seq, never by Minute.
	Minute int `json:"minute"`

	// Phase is the match phase in effect when the event was posted
	Phase MatchPhase `json:"phase"`

	// ParticipantID is the roster participant the event is attributed to
	ParticipantID string `json:"participant_id,omitempty"`

	// AssistID is an optional secondary participant credited with an assist
	AssistID string `json:"assist_id,omitempty"`

	// Comment is optional free text, required for note events
	Comment string `json:"comment,omitempty"`

	// Metadata is the structured payload
	Metadata EventMetadata `json:"metadata"`

	// Seq is the append-order sequence number within the match log.
	// Chronological replay folds events in ascending Seq.
	Seq int64 `json:"seq"`

	// CreatedAt is when the event was appended
	CreatedAt time.Time `json:"created_at"`
}

// IsSubstitution reports whether the event is a substitution
func (e *MatchEvent) IsSubstitution() bool {
	return e.Type == EventTypeSubstitution
}
