// Package replay holds the pure functions that rebuild derived match
// state from the append-only event log. Nothing in here touches storage;
// callers fetch the authoritative log and fold it on every change
// notification rather than patching cached state incrementally.
package replay

import (
	"github.com/clubdesk/matchday/internal/models"
)

// DeriveOnField replays substitution events over the starting lineup and
// returns the current slot-to-participant mapping. Events are folded in
// ascending Seq order; a substitution whose OutID is not currently on
// the field is skipped rather than treated as an error, since the log
// may contain rows from races or manual corrections.
func DeriveOnField(slots map[string]string, events []*models.MatchEvent) map[string]string {
	onField := make(map[string]string, len(slots))
	for slotID, participantID := range slots {
		onField[slotID] = participantID
	}

	for _, event := range events {
		if !event.IsSubstitution() {
			continue
		}

		slotID, ok := slotFor(onField, event.Metadata.OutID)
		if !ok {
			// Defensive no-op: the outgoing player is not on the field
			continue
		}
		onField[slotID] = event.Metadata.InID
	}

	return onField
}

// SubbedOn returns the set of participant ids that ever entered the
// field via a substitution event
func SubbedOn(events []*models.MatchEvent) map[string]bool {
	entered := make(map[string]bool)
	for _, event := range events {
		if event.IsSubstitution() && event.Metadata.InID != "" {
			entered[event.Metadata.InID] = true
		}
	}
	return entered
}

// SubbedOff returns the set of participant ids that ever left the field
// via a substitution event. A participant in this set may never re-enter.
func SubbedOff(events []*models.MatchEvent) map[string]bool {
	exited := make(map[string]bool)
	for _, event := range events {
		if event.IsSubstitution() && event.Metadata.OutID != "" {
			exited[event.Metadata.OutID] = true
		}
	}
	return exited
}

// IsOnField reports whether the participant currently occupies any slot
func IsOnField(onField map[string]string, participantID string) bool {
	_, ok := slotFor(onField, participantID)
	return ok
}

// slotFor finds which slot a participant currently occupies
func slotFor(onField map[string]string, participantID string) (string, bool) {
	if participantID == "" {
		return "", false
	}
	for slotID, id := range onField {
		if id == participantID {
			return slotID, true
		}
	}
	return "", false
}
