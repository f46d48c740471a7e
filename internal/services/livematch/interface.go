package livematch

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/clubdesk/matchday/internal/services/livematch Service

import "context"

// Service is the command surface for tracking a match live. Validation
// failures are rejected synchronously with an Error sentinel before any
// store call; store failures leave the log and clock in their
// last-confirmed state and are surfaced for operator-initiated retry.
type Service interface {
	// SetLineup fixes the starting lineup for a match
	SetLineup(ctx context.Context, input *SetLineupInput) (*SetLineupOutput, error)

	// SetBench fixes the bench roster for a match
	SetBench(ctx context.Context, input *SetBenchInput) (*SetBenchOutput, error)

	// PostEvent appends an event to the match log, stamping the current
	// minute and phase
	PostEvent(ctx context.Context, input *PostEventInput) (*PostEventOutput, error)

	// DeleteEvent removes an event wholesale, the only correction
	// mechanism for the log
	DeleteEvent(ctx context.Context, input *DeleteEventInput) (*DeleteEventOutput, error)

	// Substitute posts a substitution event with an optimistic pending
	// entry that snapshots apply until the log confirms it
	Substitute(ctx context.Context, input *SubstituteInput) (*SubstituteOutput, error)

	// StartClock starts the match clock; no-op if already running
	StartClock(ctx context.Context, input *StartClockInput) (*StartClockOutput, error)

	// PauseClock pauses the match clock, banking the running interval;
	// no-op if already paused
	PauseClock(ctx context.Context, input *PauseClockInput) (*PauseClockOutput, error)

	// ResetClock zeroes the match clock regardless of prior state
	ResetClock(ctx context.Context, input *ResetClockInput) (*ResetClockOutput, error)

	// SetPhase moves the match to another phase. Ended is terminal.
	SetPhase(ctx context.Context, input *SetPhaseInput) (*SetPhaseOutput, error)

	// FinalizeMatch replays the full log into per-participant statistics,
	// persists them with the final score and ends the match
	FinalizeMatch(ctx context.Context, input *FinalizeMatchInput) (*FinalizeMatchOutput, error)

	// GetSnapshot recomputes the full derived picture of the match from
	// the authoritative log
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)
}
