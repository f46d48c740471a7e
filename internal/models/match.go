package models

import (
	"time"
)

// MatchPhase represents the coarse stage of a match
type MatchPhase string

const (
	// PhaseNotStarted indicates the match has not kicked off
	PhaseNotStarted MatchPhase = "not_started"

	// PhaseFirstHalf indicates the first half is in progress
	PhaseFirstHalf MatchPhase = "first_half"

	// PhaseHalfTime indicates the half-time interval
	PhaseHalfTime MatchPhase = "half_time"

	// PhaseSecondHalf indicates the second half is in progress
	PhaseSecondHalf MatchPhase = "second_half"

	// PhaseExtraTime indicates extra time is in progress
	PhaseExtraTime MatchPhase = "extra_time"

	// PhaseEnded indicates the match is over. Terminal: no further
	// mutations are accepted once this phase is reached.
	PhaseEnded MatchPhase = "ended"
)

// Score is a running or final scoreline
type Score struct {
	// Us is the tracked team's tally
	Us int `json:"us"`

	// Opponent is the opposing team's tally
	Opponent int `json:"opponent"`
}

// MatchState is the single mutable row per match holding the resumable
// clock, the current phase and, after finalization, the permanent result.
type MatchState struct {
	// MatchID is the match this state belongs to
	MatchID string `json:"match_id"`

	// Phase is the current match phase
	Phase MatchPhase `json:"phase"`

	// RunningSince is when the clock was last started. Nil means paused.
	RunningSince *time.Time `json:"running_since,omitempty"`

	// AccumulatedOffsetSeconds is the seconds banked from prior
	// running intervals
	AccumulatedOffsetSeconds int `json:"accumulated_offset_seconds"`

	// Result is the final score, set once the match is finalized
	Result *Score `json:"result,omitempty"`

	// UpdatedAt is when the state was last written
	UpdatedAt time.Time `json:"updated_at"`
}

// Running reports whether the clock is currently running
func (m *MatchState) Running() bool {
	return m.RunningSince != nil
}

// ElapsedSeconds returns the total elapsed match time at the given instant
func (m *MatchState) ElapsedSeconds(now time.Time) int {
	elapsed := m.AccumulatedOffsetSeconds
	if m.RunningSince != nil {
		elapsed += int(now.Sub(*m.RunningSince).Seconds())
	}
	return elapsed
}

// CurrentMinute returns the 1-indexed match minute used to tag new events
func (m *MatchState) CurrentMinute(now time.Time) int {
	return m.ElapsedSeconds(now)/60 + 1
}
