package replay

import (
	"testing"

	"github.com/clubdesk/matchday/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProjectScore(t *testing.T) {
	events := []*models.MatchEvent{
		{Type: models.EventTypeGoal, Team: models.TeamUs},
		{Type: models.EventTypePenaltyScored, Team: models.TeamUs},
		{Type: models.EventTypeGoal, Team: models.TeamOpponent},
		{Type: models.EventTypePenaltyMissed, Team: models.TeamUs},
		{Type: models.EventTypeYellowCard, Team: models.TeamUs},
	}

	score := ProjectScore(events)

	assert.Equal(t, models.Score{Us: 2, Opponent: 1}, score)
}

func TestProjectScoreOwnGoalCreditsOtherTeam(t *testing.T) {
	events := []*models.MatchEvent{
		{Type: models.EventTypePenaltyScored, Team: models.TeamOpponent},
		{Type: models.EventTypeOwnGoal, Team: models.TeamOpponent},
	}

	score := ProjectScore(events)

	assert.Equal(t, models.Score{Us: 1, Opponent: 1}, score)
}

func TestProjectScoreRecomputesAfterDeletion(t *testing.T) {
	events := []*models.MatchEvent{
		{ID: "e1", Type: models.EventTypeGoal, Team: models.TeamUs},
		{ID: "e2", Type: models.EventTypeGoal, Team: models.TeamUs},
		{ID: "e3", Type: models.EventTypeGoal, Team: models.TeamOpponent},
	}

	before := ProjectScore(events)
	assert.Equal(t, models.Score{Us: 2, Opponent: 1}, before)

	// Deleting one goal removes exactly that goal's contribution
	remaining := []*models.MatchEvent{events[0], events[2]}
	after := ProjectScore(remaining)
	assert.Equal(t, models.Score{Us: 1, Opponent: 1}, after)

	// Projecting twice over an unchanged log is stable
	assert.Equal(t, after, ProjectScore(remaining))
}

func TestProjectScoreEmptyLog(t *testing.T) {
	assert.Equal(t, models.Score{}, ProjectScore(nil))
}
