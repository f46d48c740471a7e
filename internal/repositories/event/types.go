package event

import "github.com/clubdesk/matchday/internal/models"

type AppendEventInput struct {
	Event *models.MatchEvent
}

type GetEventInput struct {
	EventID string
}

type RemoveEventInput struct {
	MatchID string
	EventID string
}

type ListEventsInput struct {
	MatchID string
}

type ListEventsOutput struct {
	Events []*models.MatchEvent
}
