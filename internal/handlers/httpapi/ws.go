package httpapi

import (
	"net/http"
	"time"

	"github.com/clubdesk/matchday/internal/services/notifier"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Send pings to peer with this period
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamUpdates upgrades the connection and relays match change
// notifications until the client disconnects. The stream carries change
// kinds only; clients re-fetch the snapshot to get authoritative state.
func (h *Handler) streamUpdates(c *gin.Context) {
	matchID := c.Param("matchID")

	subscription, err := h.notifier.SubscribeMatchUpdates(c.Request.Context(), &notifier.SubscribeMatchUpdatesInput{
		MatchID: matchID,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		_ = subscription.Close()
		h.logger.Warn("websocket upgrade failed",
			zap.String("match_id", matchID),
			zap.Error(err))
		return
	}

	go h.writePump(conn, subscription, matchID)
	go h.readPump(conn, matchID)
}

func (h *Handler) writePump(conn *websocket.Conn, subscription *notifier.SubscribeMatchUpdatesOutput, matchID string) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = subscription.Close()
		_ = conn.Close()
	}()

	for {
		select {
		case update, ok := <-subscription.Updates:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteJSON(update); err != nil {
				h.logger.Warn("websocket write failed",
					zap.String("match_id", matchID),
					zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains and discards client messages; the stream is one-way.
// Reading is still required to process close frames.
func (h *Handler) readPump(conn *websocket.Conn, matchID string) {
	defer func() {
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read ended",
					zap.String("match_id", matchID),
					zap.Error(err))
			}
			return
		}
	}
}
