package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
)

func (s *Server) registerResources() {
	s.srv.AddResource(&mcpsdk.Resource{
		URI:         "reports://list",
		Name:        "reports",
		Description: "Generated research reports on disk",
		MIMEType:    "application/json",
	}, s.listReportsResource)

	s.srv.AddResourceTemplate(&mcpsdk.ResourceTemplate{
		URITemplate: "reports://{filename}",
		Name:        "report",
		Description: "One research report as Markdown",
		MIMEType:    "text/markdown",
	}, s.readReportResource)

	s.srv.AddResource(&mcpsdk.Resource{
		URI:         "sessions://list",
		Name:        "sessions",
		Description: "Recent research sessions",
		MIMEType:    "application/json",
	}, s.listSessionsResource)

	s.srv.AddResourceTemplate(&mcpsdk.ResourceTemplate{
		URITemplate: "sessions://{id}",
		Name:        "session",
		Description: "One research session record",
		MIMEType:    "application/json",
	}, s.readSessionResource)

	s.srv.AddResource(&mcpsdk.Resource{
		URI:         "memory://stats",
		Name:        "memory",
		Description: "Cross-session memory statistics",
		MIMEType:    "application/json",
	}, s.memoryStatsResource)
}

func jsonResource(uri string, v any) (*mcpsdk.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource %s: %w", uri, err)
	}
	return &mcpsdk.ReadResourceResult{
		Contents: []*mcpsdk.ResourceContents{
			{URI: uri, MIMEType: "application/json", Text: string(data)},
		},
	}, nil
}

// listReportsResource lists report files newest first.
func (s *Server) listReportsResource(_ context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
	entries, err := os.ReadDir(s.cfg.ReportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return jsonResource(req.Params.URI, []string{})
		}
		return nil, fmt.Errorf("failed to read report directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return jsonResource(req.Params.URI, names)
}

// readReportResource serves one report as Markdown. The filename comes
// from the URI host+path; path traversal is rejected.
func (s *Server) readReportResource(_ context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
	name := strings.TrimPrefix(req.Params.URI, "reports://")
	if name == "" || strings.Contains(name, "..") || strings.ContainsRune(name, os.PathSeparator) {
		return nil, mcpsdk.ResourceNotFoundError(req.Params.URI)
	}

	content, err := os.ReadFile(filepath.Join(s.cfg.ReportDir, name))
	if err != nil {
		return nil, mcpsdk.ResourceNotFoundError(req.Params.URI)
	}
	return &mcpsdk.ReadResourceResult{
		Contents: []*mcpsdk.ResourceContents{
			{URI: req.Params.URI, MIMEType: "text/markdown", Text: string(content)},
		},
	}, nil
}

func (s *Server) listSessionsResource(ctx context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
	if s.cfg.Sessions == nil {
		return nil, fmt.Errorf("session store is not configured")
	}
	list, err := s.cfg.Sessions.ListSessions(ctx, models.SessionFilters{Limit: 50})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return jsonResource(req.Params.URI, list)
}

func (s *Server) readSessionResource(ctx context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
	if s.cfg.Sessions == nil {
		return nil, fmt.Errorf("session store is not configured")
	}
	sessionID := strings.TrimPrefix(req.Params.URI, "sessions://")
	resp, err := s.cfg.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, mcpsdk.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, resp)
}

func (s *Server) memoryStatsResource(ctx context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
	if s.cfg.Memory == nil {
		return jsonResource(req.Params.URI, map[string]any{"configured": false})
	}
	count, err := s.cfg.Memory.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count memory entries: %w", err)
	}
	return jsonResource(req.Params.URI, map[string]any{
		"configured": true,
		"entries":    count,
	})
}
