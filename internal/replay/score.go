package replay

import (
	"github.com/clubdesk/matchday/internal/models"
)

// ProjectScore folds goal-type events into a scoreline. Goals and scored
// penalties credit the posting team; an own goal credits the other team.
// No other event type affects the score. The projection is always
// recomputed from the full log so that event deletions correct the
// score without any counter bookkeeping.
func ProjectScore(events []*models.MatchEvent) models.Score {
	var score models.Score

	for _, event := range events {
		switch event.Type {
		case models.EventTypeGoal, models.EventTypePenaltyScored:
			if event.Team == models.TeamOpponent {
				score.Opponent++
			} else {
				score.Us++
			}
		case models.EventTypeOwnGoal:
			if event.Team == models.TeamOpponent {
				score.Us++
			} else {
				score.Opponent++
			}
		}
	}

	return score
}
