package httpapi

import (
	"net/http"

	"github.com/clubdesk/matchday/internal/models"
	"github.com/clubdesk/matchday/internal/services/livematch"
	"github.com/gin-gonic/gin"
)

type setLineupRequest struct {
	FormationID string            `json:"formation_id"`
	Slots       map[string]string `json:"slots" binding:"required"`
}

func (h *Handler) setLineup(c *gin.Context) {
	var req setLineupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.SetLineup(c.Request.Context(), &livematch.SetLineupInput{
		MatchID:     c.Param("matchID"),
		FormationID: req.FormationID,
		Slots:       req.Slots,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": output.Valid})
}

type setBenchRequest struct {
	ParticipantIDs []string `json:"participant_ids" binding:"required"`
}

func (h *Handler) setBench(c *gin.Context) {
	var req setBenchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.service.SetBench(c.Request.Context(), &livematch.SetBenchInput{
		MatchID:        c.Param("matchID"),
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type postEventRequest struct {
	Type          models.EventType     `json:"type" binding:"required"`
	Team          models.TeamSide      `json:"team"`
	ParticipantID string               `json:"participant_id"`
	AssistID      string               `json:"assist_id"`
	Comment       string               `json:"comment"`
	Metadata      models.EventMetadata `json:"metadata"`
}

func (h *Handler) postEvent(c *gin.Context) {
	var req postEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.PostEvent(c.Request.Context(), &livematch.PostEventInput{
		MatchID:       c.Param("matchID"),
		Type:          req.Type,
		Team:          req.Team,
		ParticipantID: req.ParticipantID,
		AssistID:      req.AssistID,
		Comment:       req.Comment,
		Metadata:      req.Metadata,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Event)
}

func (h *Handler) deleteEvent(c *gin.Context) {
	_, err := h.service.DeleteEvent(c.Request.Context(), &livematch.DeleteEventInput{
		MatchID: c.Param("matchID"),
		EventID: c.Param("eventID"),
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type substituteRequest struct {
	OutID string `json:"out_id" binding:"required"`
	InID  string `json:"in_id" binding:"required"`
}

func (h *Handler) substitute(c *gin.Context) {
	var req substituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.Substitute(c.Request.Context(), &livematch.SubstituteInput{
		MatchID: c.Param("matchID"),
		OutID:   req.OutID,
		InID:    req.InID,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"event":          output.Event,
		"correlation_id": output.CorrelationID,
	})
}

func (h *Handler) startClock(c *gin.Context) {
	output, err := h.service.StartClock(c.Request.Context(), &livematch.StartClockInput{
		MatchID: c.Param("matchID"),
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.State)
}

func (h *Handler) pauseClock(c *gin.Context) {
	output, err := h.service.PauseClock(c.Request.Context(), &livematch.PauseClockInput{
		MatchID: c.Param("matchID"),
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.State)
}

func (h *Handler) resetClock(c *gin.Context) {
	output, err := h.service.ResetClock(c.Request.Context(), &livematch.ResetClockInput{
		MatchID: c.Param("matchID"),
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.State)
}

type setPhaseRequest struct {
	Phase models.MatchPhase `json:"phase" binding:"required"`
}

func (h *Handler) setPhase(c *gin.Context) {
	var req setPhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.SetPhase(c.Request.Context(), &livematch.SetPhaseInput{
		MatchID: c.Param("matchID"),
		Phase:   req.Phase,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.State)
}

func (h *Handler) finalize(c *gin.Context) {
	output, err := h.service.FinalizeMatch(c.Request.Context(), &livematch.FinalizeMatchInput{
		MatchID: c.Param("matchID"),
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score": output.Score,
		"stats": output.Rows,
	})
}

func (h *Handler) getSnapshot(c *gin.Context) {
	output, err := h.service.GetSnapshot(c.Request.Context(), &livematch.GetSnapshotInput{
		MatchID: c.Param("matchID"),
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
