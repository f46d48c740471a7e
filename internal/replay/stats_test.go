package replay

import (
	"testing"

	"github.com/clubdesk/matchday/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullLineup() map[string]string {
	return map[string]string{
		"gk": "p1", "lb": "p2", "lcb": "p3", "rcb": "p4", "rb": "p5",
		"lm": "p6", "lcm": "p7", "rcm": "p8", "rm": "p9",
		"ls": "pA", "rs": "pB",
	}
}

func rowFor(t *testing.T, rows []*models.PlayerMatchStats, participantID string) *models.PlayerMatchStats {
	t.Helper()
	for _, row := range rows {
		if row.ParticipantID == participantID {
			return row
		}
	}
	t.Fatalf("no stats row for %s", participantID)
	return nil
}

func TestBuildFinalStatsScenario(t *testing.T) {
	// pA scores at 23, is replaced by pC at 40, match finalized at 90.
	events := []*models.MatchEvent{
		{ID: "e1", Type: models.EventTypeGoal, Team: models.TeamUs, ParticipantID: "pA", Minute: 23, Seq: 1},
		sub(2, 40, "pA", "pC"),
	}
	bench := []string{"pA"} // pA joined the bench when substituted off

	rows := BuildFinalStats(fullLineup(), bench, events, 90)
	require.Len(t, rows, 12)

	a := rowFor(t, rows, "pA")
	assert.True(t, a.Started)
	assert.Equal(t, 40, a.MinutesPlayed)
	assert.Equal(t, 1, a.Goals)
	require.NotNil(t, a.SubOffMinute)
	assert.Equal(t, 40, *a.SubOffMinute)
	assert.Nil(t, a.SubOnMinute)
	assert.True(t, a.WasInSquad)

	c := rowFor(t, rows, "pC")
	assert.False(t, c.Started)
	assert.Equal(t, 50, c.MinutesPlayed)
	require.NotNil(t, c.SubOnMinute)
	assert.Equal(t, 40, *c.SubOnMinute)
	assert.Nil(t, c.SubOffMinute)
	assert.True(t, c.WasInSquad)
}

func TestBuildFinalStatsStarterPlaysFullMatch(t *testing.T) {
	rows := BuildFinalStats(fullLineup(), nil, nil, 94)

	gk := rowFor(t, rows, "p1")
	assert.True(t, gk.Started)
	assert.Equal(t, 94, gk.MinutesPlayed)
	assert.Nil(t, gk.SubOnMinute)
	assert.Nil(t, gk.SubOffMinute)
}

func TestBuildFinalStatsUnusedBenchPlayer(t *testing.T) {
	rows := BuildFinalStats(fullLineup(), []string{"pZ"}, nil, 90)

	z := rowFor(t, rows, "pZ")
	assert.False(t, z.Started)
	assert.Equal(t, 0, z.MinutesPlayed)
	assert.Nil(t, z.SubOnMinute)
	assert.True(t, z.WasInSquad)
}

func TestBuildFinalStatsTallies(t *testing.T) {
	events := []*models.MatchEvent{
		{Type: models.EventTypeGoal, Team: models.TeamUs, ParticipantID: "pA", AssistID: "p7", Minute: 12, Seq: 1},
		{Type: models.EventTypePenaltyScored, Team: models.TeamUs, ParticipantID: "pA", Minute: 30, Seq: 2},
		{Type: models.EventTypeYellowCard, ParticipantID: "p7", Minute: 41, Seq: 3},
		{Type: models.EventTypeFoul, ParticipantID: "p7", Minute: 41, Seq: 4},
		{Type: models.EventTypeSave, ParticipantID: "p1", Minute: 55, Seq: 5},
		{Type: models.EventTypeAssist, ParticipantID: "p9", Minute: 60, Seq: 6},
		{Type: models.EventTypeRedCard, ParticipantID: "p2", Minute: 77, Seq: 7},
	}

	rows := BuildFinalStats(fullLineup(), nil, events, 90)

	a := rowFor(t, rows, "pA")
	assert.Equal(t, 2, a.Goals)

	seven := rowFor(t, rows, "p7")
	assert.Equal(t, 1, seven.Assists)
	assert.Equal(t, 1, seven.YellowCards)
	assert.Equal(t, 1, seven.FoulsCommitted)

	assert.Equal(t, 1, rowFor(t, rows, "p1").Saves)
	assert.Equal(t, 1, rowFor(t, rows, "p9").Assists)
	assert.Equal(t, 1, rowFor(t, rows, "p2").RedCards)
}

func TestBuildFinalStatsIncludesEventOnlyParticipants(t *testing.T) {
	// A trial participant attributed by an event without being in the
	// lineup or on the bench still gets a row.
	events := []*models.MatchEvent{
		{Type: models.EventTypeFoul, Team: models.TeamOpponent, ParticipantID: "trialist", Minute: 20, Seq: 1},
	}

	rows := BuildFinalStats(fullLineup(), nil, events, 90)

	row := rowFor(t, rows, "trialist")
	assert.False(t, row.Started)
	assert.False(t, row.WasInSquad)
	assert.Equal(t, 0, row.MinutesPlayed)
	assert.Equal(t, 1, row.FoulsCommitted)
}

func TestEndMinute(t *testing.T) {
	assert.Equal(t, 90, EndMinute(nil, 12))

	events := []*models.MatchEvent{
		{Type: models.EventTypeGoal, Minute: 97, Seq: 1},
	}
	assert.Equal(t, 97, EndMinute(events, 90))
	assert.Equal(t, 104, EndMinute(events, 104))
}
