// Package compaction bounds LLM conversation size with a rolling window of
// turns and progressive observation masking. Recent turns stay verbatim;
// once the estimated context crosses the token budget, older turns are
// replaced with short placeholders, most aggressively at high utilization.
package compaction

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
)

// Stage activation thresholds as a percentage of the token budget.
const (
	stage1Threshold = 75.0
	stage2Threshold = 80.0
	stage3Threshold = 85.0
)

// maskedTokenCount is the accounting size of a placeholder turn.
const maskedTokenCount = 10

// filePointerMinChars is the minimum content length eligible for stage 3
// replacement.
const filePointerMinChars = 200

const (
	defaultWindowSize    = 10
	defaultMaxTokens     = 100_000
	defaultCooldownTurns = 3
)

// Stage is a progressive masking level, activated by context utilization.
type Stage int

const (
	StageNone Stage = iota
	// StageMaskTools masks raw tool outputs outside the window.
	StageMaskTools
	// StageCompressSummaries also compresses assistant turns outside the
	// window.
	StageCompressSummaries
	// StageFilePointers additionally replaces any large unmasked turn with
	// a file pointer.
	StageFilePointers
)

func (s Stage) String() string {
	switch s {
	case StageMaskTools:
		return "stage_1"
	case StageCompressSummaries:
		return "stage_2"
	case StageFilePointers:
		return "stage_3"
	default:
		return "none"
	}
}

// Turn is one conversation entry in the pipeline's LLM history.
type Turn struct {
	Role       llm.Role `json:"role"`
	Content    string   `json:"content"`
	TokenCount int      `json:"token_count"`
	StepName   string   `json:"step_name"`
	Masked     bool     `json:"masked"`
}

// Result reports one compaction pass.
type Result struct {
	OriginalTokens  int   `json:"original_tokens"`
	CompactedTokens int   `json:"compacted_tokens"`
	TurnsMasked     int   `json:"turns_masked"`
	TurnsTotal      int   `json:"turns_total"`
	StageApplied    Stage `json:"stage_applied"`
}

// Report is a diagnostic snapshot of the context window.
type Report struct {
	TurnCount          int     `json:"turn_count"`
	TotalTokens        int     `json:"total_tokens"`
	MaxTokens          int     `json:"max_tokens"`
	UtilizationPercent float64 `json:"utilization_percent"`
	ActiveStage        string  `json:"active_stage"`
	MaskedCount        int     `json:"masked_count"`
	UnmaskedCount      int     `json:"unmasked_count"`
	WindowSize         int     `json:"window_size"`
}

// Manager holds one session's conversation turns and compacts them when the
// estimated token total exceeds the budget. After a pass that masked
// nothing, further compaction is suppressed until the cooldown's worth of
// new turns arrive, so a window full of unmaskable turns does not trigger a
// scan on every append.
type Manager struct {
	windowSize    int
	maxTokens     int
	cooldownTurns int

	mu              sync.Mutex
	turns           []Turn
	sinceCompaction int
	pending         bool
}

// NewManager builds a manager from configuration, substituting defaults for
// unset values.
func NewManager(cfg config.CompactionConfig) *Manager {
	m := &Manager{
		windowSize:    cfg.WindowSize,
		maxTokens:     cfg.MaxContextTokens,
		cooldownTurns: cfg.CooldownTurns,
	}
	if m.windowSize <= 0 {
		m.windowSize = defaultWindowSize
	}
	if m.maxTokens <= 0 {
		m.maxTokens = defaultMaxTokens
	}
	if m.cooldownTurns <= 0 {
		m.cooldownTurns = defaultCooldownTurns
	}
	return m
}

// AddTurn appends a turn and compacts when the token budget is exceeded.
// Returns the compaction result when a pass ran, nil otherwise.
func (m *Manager) AddTurn(turn Turn) *Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, turn)
	m.sinceCompaction++

	if m.pending {
		if m.sinceCompaction < m.cooldownTurns {
			return nil
		}
		m.pending = false
	}

	if m.totalTokensLocked() <= m.maxTokens {
		return nil
	}

	result := m.compactLocked()
	m.sinceCompaction = 0
	if result.TurnsMasked == 0 {
		m.pending = true
	}
	return &result
}

// Compact runs one masking pass immediately, regardless of utilization
// triggers.
func (m *Manager) Compact() Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compactLocked()
}

func (m *Manager) compactLocked() Result {
	originalTokens := m.totalTokensLocked()
	stage := m.activeStageLocked()
	cutoff := len(m.turns) - m.windowSize
	if cutoff < 0 {
		cutoff = 0
	}

	masked := 0
	// 1. Mask raw tool outputs outside the window.
	if stage >= StageMaskTools {
		for i := 0; i < cutoff; i++ {
			t := &m.turns[i]
			if t.Role == llm.RoleTool && !t.Masked {
				t.Content = fmt.Sprintf("[masked tool output from %s]", t.StepName)
				t.TokenCount = maskedTokenCount
				t.Masked = true
				masked++
			}
		}
	}
	// 2. Compress assistant summaries outside the window.
	if stage >= StageCompressSummaries {
		for i := 0; i < cutoff; i++ {
			t := &m.turns[i]
			if t.Role == llm.RoleAssistant && !t.Masked {
				t.Content = fmt.Sprintf("[compressed summary from %s]", t.StepName)
				t.TokenCount = maskedTokenCount
				t.Masked = true
				masked++
			}
		}
	}
	// 3. Replace remaining large content with file pointers.
	if stage >= StageFilePointers {
		for i := 0; i < cutoff; i++ {
			t := &m.turns[i]
			if !t.Masked && len(t.Content) >= filePointerMinChars {
				t.Content = fmt.Sprintf("[content saved to file; ref: %s]", t.StepName)
				t.TokenCount = maskedTokenCount
				t.Masked = true
				masked++
			}
		}
	}

	if masked > 0 {
		m.pending = false
		m.sinceCompaction = 0
	}

	result := Result{
		OriginalTokens:  originalTokens,
		CompactedTokens: m.totalTokensLocked(),
		TurnsMasked:     masked,
		TurnsTotal:      len(m.turns),
		StageApplied:    stage,
	}
	slog.Info("Context compacted",
		"original_tokens", result.OriginalTokens,
		"compacted_tokens", result.CompactedTokens,
		"turns_masked", result.TurnsMasked,
		"stage", stage.String())
	return result
}

// Messages returns the turns shaped for an LLM request, oldest first.
func (m *Manager) Messages() []llm.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := make([]llm.Message, len(m.turns))
	for i, t := range m.turns {
		msgs[i] = llm.Message{Role: t.Role, Content: t.Content}
	}
	return msgs
}

// Turns returns a copy of all tracked turns.
func (m *Manager) Turns() []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// TurnCount returns the number of tracked turns.
func (m *Manager) TurnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}

// TotalTokens returns the estimated token total across all turns.
func (m *Manager) TotalTokens() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalTokensLocked()
}

func (m *Manager) totalTokensLocked() int {
	total := 0
	for _, t := range m.turns {
		total += t.TokenCount
	}
	return total
}

// UtilizationPercent returns context usage relative to the token budget.
func (m *Manager) UtilizationPercent() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.utilizationLocked()
}

func (m *Manager) utilizationLocked() float64 {
	if m.maxTokens == 0 {
		return 0
	}
	return float64(m.totalTokensLocked()) / float64(m.maxTokens) * 100
}

// ActiveStage returns the masking stage the current utilization activates.
func (m *Manager) ActiveStage() Stage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeStageLocked()
}

func (m *Manager) activeStageLocked() Stage {
	pct := m.utilizationLocked()
	switch {
	case pct >= stage3Threshold:
		return StageFilePointers
	case pct >= stage2Threshold:
		return StageCompressSummaries
	case pct >= stage1Threshold:
		return StageMaskTools
	default:
		return StageNone
	}
}

// Report returns a diagnostic snapshot.
func (m *Manager) Report() Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	masked := 0
	for _, t := range m.turns {
		if t.Masked {
			masked++
		}
	}
	return Report{
		TurnCount:          len(m.turns),
		TotalTokens:        m.totalTokensLocked(),
		MaxTokens:          m.maxTokens,
		UtilizationPercent: math.Round(m.utilizationLocked()*10) / 10,
		ActiveStage:        m.activeStageLocked().String(),
		MaskedCount:        masked,
		UnmaskedCount:      len(m.turns) - masked,
		WindowSize:         m.windowSize,
	}
}

// Clear removes all turns and resets compaction state.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = nil
	m.pending = false
	m.sinceCompaction = 0
}
