package livematch

// Error is a custom error type for live match command rejections
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchEnded             Error = "match has ended"
	ErrLineupIncomplete       Error = "starting lineup needs at least 11 assigned players"
	ErrInvalidEventType       Error = "unknown event type"
	ErrInvalidPhase           Error = "unknown match phase"
	ErrNoteRequiresComment    Error = "note events require a comment"
	ErrSubstitutionIncomplete Error = "substitution requires both outgoing and incoming participants"
	ErrPlayerNotOnField       Error = "outgoing participant is not on the field"
	ErrPlayerNotOnBench       Error = "incoming participant is not on the bench"
	ErrPlayerAlreadySubbedOff Error = "participant has already been substituted off and cannot re-enter"
	ErrEventNotFound          Error = "event not found"
	ErrNilConfig              Error = "config cannot be nil"
	ErrNilEventRepo           Error = "event repository cannot be nil"
	ErrNilStateRepo           Error = "match state repository cannot be nil"
	ErrNilStatsRepo           Error = "stats repository cannot be nil"
	ErrNilNotifier            Error = "notifier cannot be nil"
	ErrNilClock               Error = "clock cannot be nil"
	ErrNilUUIDGenerator       Error = "UUID generator cannot be nil"
)
