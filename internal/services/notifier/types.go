package notifier

import "time"

// UpdateKind classifies what changed about a match
type UpdateKind string

const (
	// UpdateKindEventAppended signals a new event in the match log
	UpdateKindEventAppended UpdateKind = "event_appended"

	// UpdateKindEventRemoved signals an event was deleted from the log
	UpdateKindEventRemoved UpdateKind = "event_removed"

	// UpdateKindClockChanged signals a clock start/pause/reset
	UpdateKindClockChanged UpdateKind = "clock_changed"

	// UpdateKindPhaseChanged signals a match phase transition
	UpdateKindPhaseChanged UpdateKind = "phase_changed"

	// UpdateKindRosterChanged signals a lineup or bench write
	UpdateKindRosterChanged UpdateKind = "roster_changed"

	// UpdateKindMatchFinalized signals the match was finalized
	UpdateKindMatchFinalized UpdateKind = "match_finalized"
)

// MatchUpdate is the notification payload. Advisory only: it names the
// match and what kind of change happened, nothing more.
type MatchUpdate struct {
	// MatchID is the match that changed
	MatchID string `json:"match_id"`

	// Kind is what changed
	Kind UpdateKind `json:"kind"`

	// At is when the change was published
	At time.Time `json:"at"`
}

// PublishMatchUpdateInput contains parameters for publishing an update
type PublishMatchUpdateInput struct {
	MatchID string
	Kind    UpdateKind
}

// SubscribeMatchUpdatesInput contains parameters for subscribing to a
// match's change feed
type SubscribeMatchUpdatesInput struct {
	MatchID string
}

// SubscribeMatchUpdatesOutput carries the live update stream. Close must
// be called when the subscriber is done.
type SubscribeMatchUpdatesOutput struct {
	// Updates delivers notifications until Close is called
	Updates <-chan *MatchUpdate

	// Close tears down the subscription
	Close func() error
}
