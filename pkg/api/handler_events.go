package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ssePingInterval keeps idle SSE connections alive through proxies.
const ssePingInterval = 15 * time.Second

// sessionEventsHandler handles GET /api/sessions/:id/events as an SSE
// stream. A Last-Event-ID header replays ring-buffered events after that
// ID before live delivery, so reconnecting clients miss nothing the ring
// still holds.
func (s *Server) sessionEventsHandler(c *gin.Context) {
	sessionID := c.Param("id")

	if _, err := s.sessionService.GetSession(c.Request.Context(), sessionID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	var lastEventID int64
	if v := c.GetHeader("Last-Event-ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid Last-Event-ID"})
			return
		}
		lastEventID = id
	}

	sub := s.bus.Subscribe(sessionID, lastEventID)
	defer sub.Close()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	ping := time.NewTicker(ssePingInterval)
	defer ping.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			c.Writer.Flush()
		case evt, ok := <-sub.C:
			if !ok {
				return
			}
			data, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "id: %d\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data)
			c.Writer.Flush()
		}
	}
}
