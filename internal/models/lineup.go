package models

import (
	"time"
)

// MinLineupSize is the number of assigned slots required before a match
// can be tracked live
const MinLineupSize = 11

// Lineup is the starting lineup for a match: a mapping from formation
// slot identifiers to participant ids, fixed at kickoff. Substitutions
// never mutate the lineup row; the current on-field picture is always
// derived by replaying the event log over it.
type Lineup struct {
	// MatchID is the match this lineup belongs to
	MatchID string `json:"match_id"`

	// FormationID identifies the formation the slots belong to
	FormationID string `json:"formation_id"`

	// Slots maps slot id to the participant occupying it
	Slots map[string]string `json:"slots"`

	// UpdatedAt is when the lineup was last written
	UpdatedAt time.Time `json:"updated_at"`
}

// Valid reports whether the lineup has enough assigned slots to track
// the match live
func (l *Lineup) Valid() bool {
	if l == nil {
		return false
	}
	assigned := 0
	for _, participantID := range l.Slots {
		if participantID != "" {
			assigned++
		}
	}
	return assigned >= MinLineupSize
}

// Contains reports whether the participant occupies any lineup slot
func (l *Lineup) Contains(participantID string) bool {
	if l == nil || participantID == "" {
		return false
	}
	for _, id := range l.Slots {
		if id == participantID {
			return true
		}
	}
	return false
}

// Bench is the set of participants currently eligible to be substituted
// in. Membership shifts as substitutions occur: a substituted-out player
// joins the bench, a substituted-in player leaves it.
type Bench struct {
	// MatchID is the match this bench belongs to
	MatchID string `json:"match_id"`

	// ParticipantIDs are the bench members
	ParticipantIDs []string `json:"participant_ids"`

	// UpdatedAt is when the bench was last written
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether the participant is on the bench
func (b *Bench) Contains(participantID string) bool {
	if b == nil {
		return false
	}
	for _, id := range b.ParticipantIDs {
		if id == participantID {
			return true
		}
	}
	return false
}

// Add puts a participant on the bench if not already present
func (b *Bench) Add(participantID string) {
	if participantID == "" || b.Contains(participantID) {
		return
	}
	b.ParticipantIDs = append(b.ParticipantIDs, participantID)
}

// Remove takes a participant off the bench
func (b *Bench) Remove(participantID string) {
	if b == nil {
		return
	}
	kept := make([]string, 0, len(b.ParticipantIDs))
	for _, id := range b.ParticipantIDs {
		if id != participantID {
			kept = append(kept, id)
		}
	}
	b.ParticipantIDs = kept
}
