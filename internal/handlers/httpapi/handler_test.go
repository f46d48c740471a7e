package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubdesk/matchday/internal/models"
	"github.com/clubdesk/matchday/internal/services/livematch"
	livematchMocks "github.com/clubdesk/matchday/internal/services/livematch/mocks"
	notifierMocks "github.com/clubdesk/matchday/internal/services/notifier/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockService  *livematchMocks.MockService
	mockNotifier *notifierMocks.MockService
	router       *gin.Engine

	testMatchID string
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = livematchMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = notifierMocks.NewMockService(s.mockCtrl)

	s.testMatchID = "test-match-id"

	handler, err := New(&Config{
		LiveMatchService: s.mockService,
		Notifier:         s.mockNotifier,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) TestHealth() {
	recorder := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestPostEvent() {
	s.mockService.EXPECT().PostEvent(gomock.Any(), &livematch.PostEventInput{
		MatchID:       s.testMatchID,
		Type:          models.EventTypeGoal,
		ParticipantID: "p1",
	}).Return(&livematch.PostEventOutput{
		Event: &models.MatchEvent{
			ID:            "event-1",
			MatchID:       s.testMatchID,
			Type:          models.EventTypeGoal,
			Team:          models.TeamUs,
			Minute:        23,
			ParticipantID: "p1",
			Seq:           1,
			CreatedAt:     time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		},
	}, nil)

	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/events", gin.H{
		"type":           "goal",
		"participant_id": "p1",
	})
	s.Equal(http.StatusCreated, recorder.Code)

	var event models.MatchEvent
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &event))
	s.Equal("event-1", event.ID)
	s.Equal(23, event.Minute)
}

func (s *HandlerTestSuite) TestPostEventRejectsMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/events",
		bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestPostEventMatchEndedIsConflict() {
	s.mockService.EXPECT().PostEvent(gomock.Any(), gomock.Any()).
		Return(nil, livematch.ErrMatchEnded)

	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/events", gin.H{
		"type": "goal",
	})
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *HandlerTestSuite) TestPostEventMissingCommentIsBadRequest() {
	s.mockService.EXPECT().PostEvent(gomock.Any(), gomock.Any()).
		Return(nil, livematch.ErrNoteRequiresComment)

	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/events", gin.H{
		"type": "note",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestDeleteEvent() {
	s.mockService.EXPECT().DeleteEvent(gomock.Any(), &livematch.DeleteEventInput{
		MatchID: s.testMatchID,
		EventID: "event-1",
	}).Return(&livematch.DeleteEventOutput{}, nil)

	recorder := s.do(http.MethodDelete, "/api/v1/matches/"+s.testMatchID+"/events/event-1", nil)
	s.Equal(http.StatusNoContent, recorder.Code)
}

func (s *HandlerTestSuite) TestDeleteEventNotFound() {
	s.mockService.EXPECT().DeleteEvent(gomock.Any(), gomock.Any()).
		Return(nil, livematch.ErrEventNotFound)

	recorder := s.do(http.MethodDelete, "/api/v1/matches/"+s.testMatchID+"/events/missing", nil)
	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestSubstitute() {
	s.mockService.EXPECT().Substitute(gomock.Any(), &livematch.SubstituteInput{
		MatchID: s.testMatchID,
		OutID:   "pA",
		InID:    "pC",
	}).Return(&livematch.SubstituteOutput{
		Event: &models.MatchEvent{
			ID:   "event-sub",
			Type: models.EventTypeSubstitution,
			Metadata: models.EventMetadata{
				OutID: "pA",
				InID:  "pC",
			},
		},
		CorrelationID: "corr-1",
	}, nil)

	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/substitutions", gin.H{
		"out_id": "pA",
		"in_id":  "pC",
	})
	s.Equal(http.StatusCreated, recorder.Code)

	var body struct {
		CorrelationID string `json:"correlation_id"`
	}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Equal("corr-1", body.CorrelationID)
}

func (s *HandlerTestSuite) TestSubstituteValidationFailureIsConflict() {
	s.mockService.EXPECT().Substitute(gomock.Any(), gomock.Any()).
		Return(nil, livematch.ErrPlayerNotOnField)

	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/substitutions", gin.H{
		"out_id": "ghost",
		"in_id":  "pC",
	})
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *HandlerTestSuite) TestSubstituteMissingFieldIsBadRequest() {
	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/substitutions", gin.H{
		"out_id": "pA",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestClockEndpoints() {
	state := &models.MatchState{
		MatchID: s.testMatchID,
		Phase:   models.PhaseFirstHalf,
	}

	s.mockService.EXPECT().StartClock(gomock.Any(), &livematch.StartClockInput{
		MatchID: s.testMatchID,
	}).Return(&livematch.StartClockOutput{State: state}, nil)
	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/clock/start", nil)
	s.Equal(http.StatusOK, recorder.Code)

	s.mockService.EXPECT().PauseClock(gomock.Any(), &livematch.PauseClockInput{
		MatchID: s.testMatchID,
	}).Return(&livematch.PauseClockOutput{State: state}, nil)
	recorder = s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/clock/pause", nil)
	s.Equal(http.StatusOK, recorder.Code)

	s.mockService.EXPECT().ResetClock(gomock.Any(), &livematch.ResetClockInput{
		MatchID: s.testMatchID,
	}).Return(&livematch.ResetClockOutput{State: state}, nil)
	recorder = s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/clock/reset", nil)
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestStartClockLineupGate() {
	s.mockService.EXPECT().StartClock(gomock.Any(), gomock.Any()).
		Return(nil, livematch.ErrLineupIncomplete)

	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/clock/start", nil)
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *HandlerTestSuite) TestSetPhase() {
	s.mockService.EXPECT().SetPhase(gomock.Any(), &livematch.SetPhaseInput{
		MatchID: s.testMatchID,
		Phase:   models.PhaseSecondHalf,
	}).Return(&livematch.SetPhaseOutput{
		State: &models.MatchState{
			MatchID: s.testMatchID,
			Phase:   models.PhaseSecondHalf,
		},
	}, nil)

	recorder := s.do(http.MethodPut, "/api/v1/matches/"+s.testMatchID+"/phase", gin.H{
		"phase": "second_half",
	})
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestSetPhaseUnknownIsBadRequest() {
	s.mockService.EXPECT().SetPhase(gomock.Any(), gomock.Any()).
		Return(nil, livematch.ErrInvalidPhase)

	recorder := s.do(http.MethodPut, "/api/v1/matches/"+s.testMatchID+"/phase", gin.H{
		"phase": "sudden_death",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestFinalize() {
	s.mockService.EXPECT().FinalizeMatch(gomock.Any(), &livematch.FinalizeMatchInput{
		MatchID: s.testMatchID,
	}).Return(&livematch.FinalizeMatchOutput{
		Score: models.Score{Us: 2, Opponent: 1},
		Rows: []*models.PlayerMatchStats{
			{MatchID: s.testMatchID, ParticipantID: "p1", Started: true, MinutesPlayed: 90},
		},
	}, nil)

	recorder := s.do(http.MethodPost, "/api/v1/matches/"+s.testMatchID+"/finalize", nil)
	s.Equal(http.StatusOK, recorder.Code)

	var body struct {
		Score models.Score              `json:"score"`
		Stats []*models.PlayerMatchStats `json:"stats"`
	}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Equal(models.Score{Us: 2, Opponent: 1}, body.Score)
	s.Require().Len(body.Stats, 1)
	s.Equal(90, body.Stats[0].MinutesPlayed)
}

func (s *HandlerTestSuite) TestGetSnapshot() {
	s.mockService.EXPECT().GetSnapshot(gomock.Any(), &livematch.GetSnapshotInput{
		MatchID: s.testMatchID,
	}).Return(&livematch.GetSnapshotOutput{
		MatchID: s.testMatchID,
		Phase:   models.PhaseFirstHalf,
		Score:   models.Score{Us: 1, Opponent: 0},
		Minute:  41,
	}, nil)

	recorder := s.do(http.MethodGet, "/api/v1/matches/"+s.testMatchID+"/snapshot", nil)
	s.Equal(http.StatusOK, recorder.Code)

	var snapshot livematch.GetSnapshotOutput
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &snapshot))
	s.Equal(41, snapshot.Minute)
	s.Equal(models.Score{Us: 1, Opponent: 0}, snapshot.Score)
}

func (s *HandlerTestSuite) TestSetLineup() {
	s.mockService.EXPECT().SetLineup(gomock.Any(), &livematch.SetLineupInput{
		MatchID:     s.testMatchID,
		FormationID: "4-4-2",
		Slots:       map[string]string{"gk": "p1"},
	}).Return(&livematch.SetLineupOutput{Valid: false}, nil)

	recorder := s.do(http.MethodPut, "/api/v1/matches/"+s.testMatchID+"/lineup", gin.H{
		"formation_id": "4-4-2",
		"slots":        gin.H{"gk": "p1"},
	})
	s.Equal(http.StatusOK, recorder.Code)

	var body struct {
		Valid bool `json:"valid"`
	}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.False(body.Valid)
}

func (s *HandlerTestSuite) TestSetBench() {
	s.mockService.EXPECT().SetBench(gomock.Any(), &livematch.SetBenchInput{
		MatchID:        s.testMatchID,
		ParticipantIDs: []string{"pC", "pD"},
	}).Return(&livematch.SetBenchOutput{}, nil)

	recorder := s.do(http.MethodPut, "/api/v1/matches/"+s.testMatchID+"/bench", gin.H{
		"participant_ids": []string{"pC", "pD"},
	})
	s.Equal(http.StatusNoContent, recorder.Code)
}
