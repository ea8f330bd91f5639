package api

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
)

// createSessionHandler handles POST /api/sessions.
func (s *Server) createSessionHandler(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if key := currentKey(c); key != nil && req.CreatedBy == "" {
		req.CreatedBy = key.Name
	}

	resp, err := s.sessionService.CreateSession(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if key := currentKey(c); key != nil {
		s.keys.RecordSessionStart(key.ID)
	}
	c.JSON(http.StatusCreated, resp)
}

// listSessionsHandler handles GET /api/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	var filters models.SessionFilters

	if v := c.Query("status"); v != "" {
		for _, st := range strings.Split(v, ",") {
			if err := researchsession.StatusValidator(researchsession.Status(st)); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + st})
				return
			}
		}
		filters.Status = v
	}
	filters.CreatedBy = c.Query("created_by")
	if v := c.Query("search"); v != "" {
		if len(v) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "search query must be at least 3 characters"})
			return
		}
		filters.Search = v
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_after: must be RFC3339"})
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_before: must be RFC3339"})
			return
		}
		filters.CreatedBefore = &t
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.sessionService.ListSessions(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getSessionHandler handles GET /api/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")

	resp, err := s.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	// Attach the live progress mirror when this replica owns the run.
	if progress, ok := s.registry.Progress(sessionID); ok {
		c.JSON(http.StatusOK, gin.H{"session": resp, "progress": progress})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": resp})
}

// cancelSessionHandler handles DELETE /api/sessions/:id. Queued sessions
// cancel immediately; running ones move to cancelling and stop at the next
// heartbeat.
func (s *Server) cancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")

	if err := s.sessionService.CancelSession(c.Request.Context(), sessionID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"session_id": sessionID, "status": "cancellation requested"})
}

// getReportHandler handles GET /api/sessions/:id/report. Markdown is the
// native format; a PDF is served only when a sibling .pdf file already
// exists next to the report (conversion happens out of band).
func (s *Server) getReportHandler(c *gin.Context) {
	sessionID := c.Param("id")

	resp, err := s.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if resp.ReportPath == nil || *resp.ReportPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not available"})
		return
	}
	reportPath := *resp.ReportPath

	format := c.DefaultQuery("format", resp.OutputFormat)
	if format == "pdf" {
		pdfPath := strings.TrimSuffix(reportPath, ".md") + ".pdf"
		if _, statErr := os.Stat(pdfPath); statErr == nil {
			c.FileAttachment(pdfPath, sessionID+".pdf")
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "pdf not available for this report"})
		return
	}

	content, err := os.ReadFile(reportPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report file missing"})
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", content)
}
