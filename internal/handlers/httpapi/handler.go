package httpapi

import (
	"errors"
	"net/http"

	"github.com/clubdesk/matchday/internal/services/livematch"
	"github.com/clubdesk/matchday/internal/services/notifier"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config holds configuration for the HTTP handler
type Config struct {
	LiveMatchService livematch.Service
	Notifier         notifier.Service

	// Logger for request anomalies; optional
	Logger *zap.Logger
}

// Handler exposes the live match service over HTTP
type Handler struct {
	service  livematch.Service
	notifier notifier.Service
	logger   *zap.Logger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.LiveMatchService == nil {
		return nil, errors.New("live match service cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		service:  cfg.LiveMatchService,
		notifier: cfg.Notifier,
		logger:   logger,
	}, nil
}

// RegisterRoutes wires the match endpoints onto the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.health)

	matches := router.Group("/api/v1/matches/:matchID")
	{
		matches.PUT("/lineup", h.setLineup)
		matches.PUT("/bench", h.setBench)
		matches.POST("/events", h.postEvent)
		matches.DELETE("/events/:eventID", h.deleteEvent)
		matches.POST("/substitutions", h.substitute)
		matches.POST("/clock/start", h.startClock)
		matches.POST("/clock/pause", h.pauseClock)
		matches.POST("/clock/reset", h.resetClock)
		matches.PUT("/phase", h.setPhase)
		matches.POST("/finalize", h.finalize)
		matches.GET("/snapshot", h.getSnapshot)
		matches.GET("/ws", h.streamUpdates)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// abortWithServiceError translates service sentinels to HTTP statuses.
// Unknown errors are logged and reported as internal.
func (h *Handler) abortWithServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, livematch.ErrInvalidEventType),
		errors.Is(err, livematch.ErrInvalidPhase),
		errors.Is(err, livematch.ErrNoteRequiresComment),
		errors.Is(err, livematch.ErrSubstitutionIncomplete):
		status = http.StatusBadRequest
	case errors.Is(err, livematch.ErrMatchEnded),
		errors.Is(err, livematch.ErrLineupIncomplete),
		errors.Is(err, livematch.ErrPlayerNotOnField),
		errors.Is(err, livematch.ErrPlayerNotOnBench),
		errors.Is(err, livematch.ErrPlayerAlreadySubbedOff):
		status = http.StatusConflict
	case errors.Is(err, livematch.ErrEventNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
