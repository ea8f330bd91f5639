package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/memory"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/quality"
)

// reportExcerptLen bounds the inline excerpt returned by the research
// tool; clients fetch the full report through reports://.
const reportExcerptLen = 500

type researchInput struct {
	Query        string  `json:"query" jsonschema:"the research question to investigate"`
	BudgetUSD    float64 `json:"budget_usd,omitempty" jsonschema:"maximum spend for this run in USD"`
	OutputFormat string  `json:"output_format,omitempty" jsonschema:"report format: md or pdf"`
}

type researchOutput struct {
	SessionID     string `json:"session_id"`
	ReportPath    string `json:"report_path"`
	ReportExcerpt string `json:"report_excerpt"`
}

type recallInput struct {
	Query      string `json:"query" jsonschema:"topic to search past research findings for"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum findings to return"`
}

type recallOutput struct {
	Entries []memory.Entry `json:"entries"`
	Context string         `json:"context"`
}

type evaluateInput struct {
	Report string `json:"report" jsonschema:"the Markdown report to evaluate"`
	Query  string `json:"query" jsonschema:"the question the report was meant to answer"`
}

type statusInput struct {
	SessionID string `json:"session_id" jsonschema:"the session to inspect"`
}

type statusOutput struct {
	SessionID      string  `json:"session_id"`
	Status         string  `json:"status"`
	CurrentStep    string  `json:"current_step,omitempty"`
	QueuedPosition *int    `json:"queued_position,omitempty"`
	TotalCostUSD   float64 `json:"total_cost_usd"`
	LLMCalls       int     `json:"llm_calls"`
	ReportPath     string  `json:"report_path,omitempty"`
	Error          string  `json:"error,omitempty"`
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.srv, &mcpsdk.Tool{
		Name:        "research",
		Description: "Run a full research pipeline for a query and return the generated report",
	}, s.researchTool)

	mcpsdk.AddTool(s.srv, &mcpsdk.Tool{
		Name:        "recall",
		Description: "Search findings stored by previous research sessions",
	}, s.recallTool)

	mcpsdk.AddTool(s.srv, &mcpsdk.Tool{
		Name:        "evaluate",
		Description: "Run the report quality checks against a Markdown report",
	}, s.evaluateTool)

	mcpsdk.AddTool(s.srv, &mcpsdk.Tool{
		Name:        "status",
		Description: "Look up the state of a research session",
	}, s.statusTool)
}

// researchTool runs the pipeline in-process and blocks until the report is
// written.
func (s *Server) researchTool(ctx context.Context, _ *mcpsdk.CallToolRequest, in researchInput) (*mcpsdk.CallToolResult, researchOutput, error) {
	if strings.TrimSpace(in.Query) == "" {
		return nil, researchOutput{}, fmt.Errorf("query is required")
	}

	sessionID := "mcp-" + uuid.NewString()
	runner := s.cfg.NewRunner(in.BudgetUSD)

	result, err := runner.Run(ctx, sessionID, in.Query)
	if err != nil {
		return nil, researchOutput{}, fmt.Errorf("research run failed: %w", err)
	}

	excerpt := result.State.FinalReport
	if len(excerpt) > reportExcerptLen {
		excerpt = excerpt[:reportExcerptLen] + "…"
	}
	return nil, researchOutput{
		SessionID:     sessionID,
		ReportPath:    result.ReportPath,
		ReportExcerpt: excerpt,
	}, nil
}

func (s *Server) recallTool(ctx context.Context, _ *mcpsdk.CallToolRequest, in recallInput) (*mcpsdk.CallToolResult, recallOutput, error) {
	if s.cfg.Memory == nil {
		return nil, recallOutput{}, fmt.Errorf("memory is not configured")
	}
	if strings.TrimSpace(in.Query) == "" {
		return nil, recallOutput{}, fmt.Errorf("query is required")
	}

	entries, err := s.cfg.Memory.Recall(ctx, in.Query)
	if err != nil {
		return nil, recallOutput{}, fmt.Errorf("recall failed: %w", err)
	}
	if in.MaxResults > 0 && len(entries) > in.MaxResults {
		entries = entries[:in.MaxResults]
	}
	if entries == nil {
		entries = []memory.Entry{}
	}
	return nil, recallOutput{
		Entries: entries,
		Context: s.cfg.Memory.FormatContext(entries),
	}, nil
}

func (s *Server) evaluateTool(_ context.Context, _ *mcpsdk.CallToolRequest, in evaluateInput) (*mcpsdk.CallToolResult, quality.Result, error) {
	if strings.TrimSpace(in.Report) == "" {
		return nil, quality.Result{}, fmt.Errorf("report is required")
	}
	return nil, quality.CheckReport(in.Report, nil), nil
}

func (s *Server) statusTool(ctx context.Context, _ *mcpsdk.CallToolRequest, in statusInput) (*mcpsdk.CallToolResult, statusOutput, error) {
	if s.cfg.Sessions == nil {
		return nil, statusOutput{}, fmt.Errorf("session store is not configured")
	}
	if in.SessionID == "" {
		return nil, statusOutput{}, fmt.Errorf("session_id is required")
	}

	resp, err := s.cfg.Sessions.GetSession(ctx, in.SessionID)
	if err != nil {
		return nil, statusOutput{}, fmt.Errorf("session lookup failed: %w", err)
	}

	out := statusOutput{
		SessionID:      resp.ID,
		Status:         string(resp.Status),
		QueuedPosition: resp.QueuedPosition,
		TotalCostUSD:   resp.TotalCostUsd,
		LLMCalls:       resp.LlmCalls,
	}
	if resp.CurrentStep != nil {
		out.CurrentStep = *resp.CurrentStep
	}
	if resp.ReportPath != nil {
		out.ReportPath = *resp.ReportPath
	}
	if resp.ErrorMessage != nil {
		out.Error = *resp.ErrorMessage
	}
	return nil, out, nil
}
