package models

// PlayerMatchStats is one participant's aggregate line for a finished
// match, produced by replaying the full event log at finalization.
type PlayerMatchStats struct {
	// MatchID is the match the row belongs to
	MatchID string `json:"match_id"`

	// ParticipantID is the participant the row belongs to
	ParticipantID string `json:"participant_id"`

	// Started indicates the participant was in the starting lineup
	Started bool `json:"started"`

	// MinutesPlayed is the number of minutes spent on the field
	MinutesPlayed int `json:"minutes_played"`

	// Goals includes open-play goals and scored penalties
	Goals int `json:"goals"`

	// Assists is the number of assists credited
	Assists int `json:"assists"`

	// YellowCards is the number of cautions received
	YellowCards int `json:"yellow_cards"`

	// RedCards is the number of sending-offs received
	RedCards int `json:"red_cards"`

	// FoulsCommitted is the number of fouls attributed
	FoulsCommitted int `json:"fouls_committed"`

	// Saves is the number of saves attributed
	Saves int `json:"saves"`

	// SubOnMinute is the minute the participant entered via
	// substitution, nil if they started or never entered
	SubOnMinute *int `json:"sub_on_minute,omitempty"`

	// SubOffMinute is the minute the participant was substituted off,
	// nil if they never left the field
	SubOffMinute *int `json:"sub_off_minute,omitempty"`

	// WasInSquad indicates the participant started or was ever a
	// bench member
	WasInSquad bool `json:"was_in_squad"`
}
