package models

import (
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
)

// CreateSessionRequest contains fields for creating a new research session
type CreateSessionRequest struct {
	SessionID       string         `json:"session_id"`
	Query           string         `json:"query"`
	BudgetUSD       *float64       `json:"budget_usd,omitempty"`
	OutputFormat    string         `json:"output_format,omitempty"`
	CreatedBy       string         `json:"created_by,omitempty"`
	SessionMetadata map[string]any `json:"session_metadata,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	Status         string     `json:"status,omitempty"`
	CreatedBy      string     `json:"created_by,omitempty"`
	Search         string     `json:"search,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// SessionResponse wraps a ResearchSession with its queue position, which is
// computed at read time and only meaningful while the session is queued.
type SessionResponse struct {
	*ent.ResearchSession
	QueuedPosition *int `json:"queued_position,omitempty"`
}

// SessionListResponse contains a paginated session list
type SessionListResponse struct {
	Sessions   []*SessionResponse `json:"sessions"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}
