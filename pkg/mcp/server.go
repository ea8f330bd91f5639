// Package mcp exposes the research engine to MCP clients (editors,
// assistants) over stdio. The official go-sdk owns the JSON-RPC envelope,
// protocol version negotiation and error codes; this package contributes
// the tools (research, recall, evaluate, status) and the reports://,
// sessions:// and memory:// resources.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/memory"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/version"
)

// Runner executes one research run. The agent executor satisfies it.
type Runner interface {
	Run(ctx context.Context, sessionID, query string) (agent.RunResult, error)
}

// RunnerFactory builds a Runner with a per-run budget. Each run needs its
// own budget tracker, so runners are not shared.
type RunnerFactory func(budgetUSD float64) Runner

// SessionReader is the slice of the session service the status tool and
// the sessions:// resource need. Nil when the server runs without a
// database.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*models.SessionResponse, error)
	ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error)
}

// Config carries the MCP server's collaborators. NewRunner is required;
// Memory and Sessions degrade the corresponding tools when nil.
type Config struct {
	NewRunner RunnerFactory
	Memory    *memory.Memory
	Sessions  SessionReader
	ReportDir string
}

// Server is the MCP-facing wrapper around the research engine.
type Server struct {
	cfg Config
	srv *mcpsdk.Server
}

// NewServer builds the SDK server and registers all tools and resources.
func NewServer(cfg Config) (*Server, error) {
	if cfg.NewRunner == nil {
		return nil, fmt.Errorf("mcp server requires a runner factory")
	}

	srv := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	s := &Server{cfg: cfg, srv: srv}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.srv.Run(ctx, &mcpsdk.StdioTransport{})
}

// SDK exposes the underlying SDK server so tests can connect in-memory
// transports.
func (s *Server) SDK() *mcpsdk.Server {
	return s.srv
}
