package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/memory"
)

// stubRunner returns a canned pipeline result.
type stubRunner struct {
	result agent.RunResult
	err    error

	gotSessionID string
	gotQuery     string
}

func (r *stubRunner) Run(_ context.Context, sessionID, query string) (agent.RunResult, error) {
	r.gotSessionID = sessionID
	r.gotQuery = query
	return r.result, r.err
}

// newTestSession connects an in-memory MCP client to the server.
func newTestSession(t *testing.T, cfg Config) *mcpsdk.ClientSession {
	t.Helper()

	if cfg.NewRunner == nil {
		cfg.NewRunner = func(float64) Runner { return &stubRunner{} }
	}

	server, err := NewServer(cfg)
	require.NoError(t, err)

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = server.SDK().Run(ctx, serverTransport) }()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "mcp-test", Version: "test"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

// decodeStructured unmarshals a tool result's structured content into out.
func decodeStructured(t *testing.T, res *mcpsdk.CallToolResult, out any) {
	t.Helper()
	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestServer_AdvertisesToolsAndResources(t *testing.T) {
	session := newTestSession(t, Config{ReportDir: t.TempDir()})
	ctx := context.Background()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"research", "recall", "evaluate", "status"}, names)

	resources, err := session.ListResources(ctx, nil)
	require.NoError(t, err)
	var uris []string
	for _, r := range resources.Resources {
		uris = append(uris, r.URI)
	}
	assert.Contains(t, uris, "reports://list")
	assert.Contains(t, uris, "sessions://list")
	assert.Contains(t, uris, "memory://stats")
}

func TestResearchTool(t *testing.T) {
	longReport := "# Report\n\n" + strings.Repeat("finding after finding. ", 40)
	runner := &stubRunner{}
	runner.result.ReportPath = "reports/out.md"
	runner.result.State.FinalReport = longReport

	session := newTestSession(t, Config{
		NewRunner: func(float64) Runner { return runner },
		ReportDir: t.TempDir(),
	})
	ctx := context.Background()

	res, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "research",
		Arguments: map[string]any{"query": "webassembly outside the browser"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out researchOutput
	decodeStructured(t, res, &out)
	assert.True(t, strings.HasPrefix(out.SessionID, "mcp-"))
	assert.Equal(t, "reports/out.md", out.ReportPath)
	assert.True(t, strings.HasSuffix(out.ReportExcerpt, "…"), "long reports are excerpted")
	assert.Less(t, len(out.ReportExcerpt), len(longReport))
	assert.Equal(t, "webassembly outside the browser", runner.gotQuery)

	t.Run("empty query is a tool error", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
			Name:      "research",
			Arguments: map[string]any{"query": "   "},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestEvaluateTool(t *testing.T) {
	session := newTestSession(t, Config{ReportDir: t.TempDir()})
	ctx := context.Background()

	report := `# Research Report

## Executive Summary
Wasm runs well outside browsers [1].

## Key Findings
Wasmtime leads the standalone runtimes [1][2].

## Sources
1. https://wasmtime.dev
2. https://wasmer.io
`
	res, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "evaluate",
		Arguments: map[string]any{"report": report, "query": "wasm outside browsers"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out map[string]any
	decodeStructured(t, res, &out)
	assert.Equal(t, true, out["has_executive_summary"])
	assert.Equal(t, true, out["has_sources"])
	assert.Greater(t, out["word_count"].(float64), float64(0))
	assert.GreaterOrEqual(t, out["citation_count"].(float64), float64(2))
}

func TestRecallTool(t *testing.T) {
	store, err := memory.NewSQLiteStore(filepath.Join(t.TempDir(), "memory.db"), "research_memory", memory.NewHashingEmbedder(0))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	mem := memory.New(store, config.MemoryConfig{
		RelevanceThreshold: 0.80,
		StalenessDays:      30,
		MaxResults:         5,
	})

	finding := "Wasmtime is the most mature standalone WebAssembly runtime"
	_, err = mem.Store(context.Background(), []string{finding}, "wasm runtimes", nil)
	require.NoError(t, err)

	session := newTestSession(t, Config{Memory: mem, ReportDir: t.TempDir()})

	res, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "recall",
		Arguments: map[string]any{"query": finding, "max_results": 3},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out recallOutput
	decodeStructured(t, res, &out)
	require.NotEmpty(t, out.Entries)
	assert.Equal(t, finding, out.Entries[0].Content)
	assert.Contains(t, out.Context, "Previous research findings:")
}

func TestStatusToolWithoutStore(t *testing.T) {
	session := newTestSession(t, Config{ReportDir: t.TempDir()})

	res, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "status",
		Arguments: map[string]any{"session_id": "sess-1"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestReportResources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha_20260301_120000.md"), []byte("# Alpha\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beta_20260302_120000.md"), []byte("# Beta\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	session := newTestSession(t, Config{ReportDir: dir})
	ctx := context.Background()

	t.Run("listing returns markdown files newest first", func(t *testing.T) {
		res, err := session.ReadResource(ctx, &mcpsdk.ReadResourceParams{URI: "reports://list"})
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)

		var names []string
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &names))
		assert.Equal(t, []string{"beta_20260302_120000.md", "alpha_20260301_120000.md"}, names)
	})

	t.Run("single report reads as markdown", func(t *testing.T) {
		res, err := session.ReadResource(ctx, &mcpsdk.ReadResourceParams{URI: "reports://alpha_20260301_120000.md"})
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)
		assert.Equal(t, "text/markdown", res.Contents[0].MIMEType)
		assert.Equal(t, "# Alpha\n", res.Contents[0].Text)
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		_, err := session.ReadResource(ctx, &mcpsdk.ReadResourceParams{URI: "reports://../secrets.md"})
		assert.Error(t, err)
	})

	t.Run("unknown report is not found", func(t *testing.T) {
		_, err := session.ReadResource(ctx, &mcpsdk.ReadResourceParams{URI: "reports://missing.md"})
		assert.Error(t, err)
	})
}
