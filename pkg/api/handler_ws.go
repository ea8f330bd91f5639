package api

import (
	"context"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

// wsPingInterval is the WebSocket heartbeat; dead peers are detected when
// the ping write fails.
const wsPingInterval = 15 * time.Second

// sessionWSHandler handles GET /ws/sessions/:id. Events stream as JSON
// frames; ?last_event_id=N replays ring-buffered events the client missed.
// The API key may arrive via the api_key query parameter since browsers
// cannot set headers on WebSocket upgrades.
func (s *Server) sessionWSHandler(c *gin.Context) {
	sessionID := c.Param("id")

	if _, err := s.sessionService.GetSession(c.Request.Context(), sessionID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	var lastEventID int64
	if v := c.Query("last_event_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			lastEventID = id
		}
	}

	println("DEBUG: accepting ws for", sessionID, "lastEventID", lastEventID)
	conn, err := websocket.Accept(c.Writer, c.Request, s.acceptOptions())
	if err != nil {
		println("DEBUG: accept failed:", err.Error())
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Drain client frames so pongs and close frames are processed; any
	// read error means the peer went away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	sub := s.bus.Subscribe(sessionID, lastEventID)
	defer sub.Close()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case <-ping.C:
			pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
			err := conn.Ping(pingCtx)
			pingCancel()
			if err != nil {
				return
			}
		case evt, ok := <-sub.C:
			println("DEBUG: got event from sub, ok =", ok)
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "session events ended")
				return
			}
			if err := wsjson.Write(ctx, conn, evt); err != nil {
				println("DEBUG: write failed:", err.Error())
				return
			}
			println("DEBUG: wrote event", evt.ID)
		}
	}
}

// dashboardWSHandler handles GET /ws/events: one multiplexed socket a
// dashboard drives with subscribe/unsubscribe/catchup messages, covering
// any number of session channels plus the global sessions channel.
func (s *Server) dashboardWSHandler(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, s.acceptOptions())
	if err != nil {
		return
	}
	// HandleConnection owns the connection from here, close included.
	s.ws.HandleConnection(c.Request.Context(), conn)
}

// acceptOptions applies the configured origin allow-list. An empty list
// skips origin verification.
func (s *Server) acceptOptions() *websocket.AcceptOptions {
	if len(s.wsOrigins) == 0 {
		return &websocket.AcceptOptions{InsecureSkipVerify: true}
	}
	return &websocket.AcceptOptions{OriginPatterns: s.wsOrigins}
}
