package replay

import (
	"sort"

	"github.com/clubdesk/matchday/internal/models"
)

// BuildFinalStats replays the full event log against the starting lineup
// and bench roster and returns one aggregate row per participant who
// touched the match: starters, bench members, substitution subjects and
// anyone directly attributed by an event. Rows are ordered by
// participant id for deterministic persistence.
//
// endMinute is supplied by the caller as the match end minute; entry and
// exit minutes come from the first substitution event naming the
// participant, consistent with the no-re-entry rule.
func BuildFinalStats(slots map[string]string, bench []string, events []*models.MatchEvent, endMinute int) []*models.PlayerMatchStats {
	starters := make(map[string]bool, len(slots))
	for _, participantID := range slots {
		if participantID != "" {
			starters[participantID] = true
		}
	}

	entered := SubbedOn(events)

	// Bench members ever recorded: the current bench plus everyone who
	// entered from it during the match.
	everBench := make(map[string]bool, len(bench)+len(entered))
	for _, participantID := range bench {
		everBench[participantID] = true
	}
	for participantID := range entered {
		everBench[participantID] = true
	}

	universe := make(map[string]bool, len(starters)+len(everBench))
	for participantID := range starters {
		universe[participantID] = true
	}
	for participantID := range everBench {
		universe[participantID] = true
	}
	for _, event := range events {
		if event.IsSubstitution() {
			if event.Metadata.OutID != "" {
				universe[event.Metadata.OutID] = true
			}
			if event.Metadata.InID != "" {
				universe[event.Metadata.InID] = true
			}
			continue
		}
		if event.ParticipantID != "" {
			universe[event.ParticipantID] = true
		}
		if event.AssistID != "" {
			universe[event.AssistID] = true
		}
	}

	rows := make([]*models.PlayerMatchStats, 0, len(universe))
	for participantID := range universe {
		row := buildRow(participantID, starters, everBench, events, endMinute)
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ParticipantID < rows[j].ParticipantID
	})

	return rows
}

func buildRow(participantID string, starters, everBench map[string]bool, events []*models.MatchEvent, endMinute int) *models.PlayerMatchStats {
	row := &models.PlayerMatchStats{
		ParticipantID: participantID,
		Started:       starters[participantID],
		WasInSquad:    starters[participantID] || everBench[participantID],
	}

	var subOnMinute, subOffMinute *int
	for _, event := range events {
		if !event.IsSubstitution() {
			continue
		}
		if subOnMinute == nil && event.Metadata.InID == participantID {
			minute := event.Minute
			subOnMinute = &minute
		}
		if subOffMinute == nil && event.Metadata.OutID == participantID {
			minute := event.Minute
			subOffMinute = &minute
		}
	}
	row.SubOnMinute = subOnMinute
	row.SubOffMinute = subOffMinute

	entryMinute := -1
	if row.Started {
		entryMinute = 0
	} else if subOnMinute != nil {
		entryMinute = *subOnMinute
	}

	if entryMinute >= 0 {
		exitMinute := endMinute
		if subOffMinute != nil {
			exitMinute = *subOffMinute
		}
		if played := exitMinute - entryMinute; played > 0 {
			row.MinutesPlayed = played
		}
	}

	for _, event := range events {
		if event.AssistID == participantID {
			row.Assists++
		}
		if event.ParticipantID != participantID {
			continue
		}
		switch event.Type {
		case models.EventTypeGoal, models.EventTypePenaltyScored:
			row.Goals++
		case models.EventTypeAssist:
			row.Assists++
		case models.EventTypeYellowCard:
			row.YellowCards++
		case models.EventTypeRedCard:
			row.RedCards++
		case models.EventTypeFoul:
			row.FoulsCommitted++
		case models.EventTypeSave:
			row.Saves++
		}
	}

	return row
}

// EndMinute computes the match end minute used for minutes-played
// accounting: at least the regulation 90, stretched by any later event
// minute and by how far the clock actually ran. A floor, never a
// ceiling.
func EndMinute(events []*models.MatchEvent, clockMinute int) int {
	end := 90
	if clockMinute > end {
		end = clockMinute
	}
	for _, event := range events {
		if event.Minute > end {
			end = event.Minute
		}
	}
	return end
}
