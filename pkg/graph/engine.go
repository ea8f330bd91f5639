// Package graph implements the pipeline scheduler: a directed graph of named
// nodes advanced by conditional edges, with partial-state deltas merged into
// the session state through a reducer. The engine owns sequencing only;
// retries, budgets, checkpoints and events are injected as hooks so the run
// loop stays deterministic and testable.
package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Terminate is the pseudo-target an edge routes to when the run is finished.
const Terminate = "__terminate__"

var (
	// ErrNoRoute is returned when no outgoing edge of the last completed
	// node matches the current state.
	ErrNoRoute = errors.New("no matching edge")

	// ErrMaxSteps is returned when a run exceeds the step ceiling, which
	// indicates a routing cycle that never converges.
	ErrMaxSteps = errors.New("max steps exceeded")
)

// Node executes one pipeline stage against the current state and returns a
// partial-state delta. Nodes never mutate the state they receive; the engine
// merges deltas through the reducer.
type Node[S, D any] interface {
	Name() string
	Run(ctx context.Context, state S) (D, error)
}

// NodeFunc adapts a function to the Node interface.
type NodeFunc[S, D any] struct {
	ID string
	Fn func(ctx context.Context, state S) (D, error)
}

func (n NodeFunc[S, D]) Name() string { return n.ID }

func (n NodeFunc[S, D]) Run(ctx context.Context, state S) (D, error) {
	return n.Fn(ctx, state)
}

// Predicate evaluates state to decide whether an edge fires. Predicates must
// be pure: routing is re-evaluated on resume and has to reach the same
// decision the original process would have.
type Predicate[S any] func(state S) bool

// Edge is one conditional transition. A nil When is unconditional. Edges are
// evaluated in registration order and the first match wins.
type Edge[S any] struct {
	From string
	To   string
	When Predicate[S]
}

// Reducer merges a node's delta into the state. For append-only fields the
// merge is concatenation; scalars are last-writer-wins.
type Reducer[S, D any] func(state S, delta D) S

// Hooks are the engine's side-effect points. Any hook may be nil.
type Hooks[S any] struct {
	// Gate runs before each dispatch. A non-nil error stops the run
	// without executing the node (budget exhaustion).
	Gate func(state S, next string) error

	// OnStepStart fires before a node executes.
	OnStepStart func(step string, stepIndex int)

	// Sink persists the merged state after each completed node. A sink
	// failure is fatal: continuing past a failed checkpoint would break
	// the resume contract.
	Sink func(ctx context.Context, state S, stepIndex int, step string) error

	// OnStepEnd fires after the node's delta is merged and the sink has
	// accepted the state.
	OnStepEnd func(state S, step string, stepIndex int, elapsed time.Duration)
}

// Engine advances a typed state through the graph. One engine value serves
// one run; it holds no locks because a session executes exactly one node at
// a time.
type Engine[S, D any] struct {
	nodes   map[string]Node[S, D]
	edges   []Edge[S]
	start   string
	reduce  Reducer[S, D]
	hooks   Hooks[S]
	maxStep int
}

// Config assembles an engine. Reducer and Start are required; MaxSteps
// defaults to 100.
type Config[S, D any] struct {
	Start    string
	Reducer  Reducer[S, D]
	Hooks    Hooks[S]
	MaxSteps int
}

func New[S, D any](cfg Config[S, D]) (*Engine[S, D], error) {
	if cfg.Reducer == nil {
		return nil, errors.New("graph: reducer is required")
	}
	if cfg.Start == "" {
		return nil, errors.New("graph: start node is required")
	}
	maxStep := cfg.MaxSteps
	if maxStep <= 0 {
		maxStep = 100
	}
	return &Engine[S, D]{
		nodes:   make(map[string]Node[S, D]),
		start:   cfg.Start,
		reduce:  cfg.Reducer,
		hooks:   cfg.Hooks,
		maxStep: maxStep,
	}, nil
}

// Add registers a node under its name.
func (e *Engine[S, D]) Add(node Node[S, D]) error {
	name := node.Name()
	if name == "" {
		return errors.New("graph: node name cannot be empty")
	}
	if _, exists := e.nodes[name]; exists {
		return fmt.Errorf("graph: duplicate node %q", name)
	}
	e.nodes[name] = node
	return nil
}

// Connect appends a conditional edge. Pass a nil predicate for an
// unconditional transition and Terminate as the target to end the run.
func (e *Engine[S, D]) Connect(from, to string, when Predicate[S]) {
	e.edges = append(e.edges, Edge[S]{From: from, To: to, When: when})
}

// Run drives the graph to termination and returns the final state.
//
// fromStep names the last node whose output is already merged into state;
// empty means a fresh run starting at the configured start node. Resume
// replays zero nodes: routing picks up from the recorded step exactly as
// the interrupted process would have.
func (e *Engine[S, D]) Run(ctx context.Context, state S, fromStep string, fromIndex int) (S, error) {
	step := fromStep
	stepIndex := fromIndex

	for dispatched := 0; ; dispatched++ {
		if dispatched >= e.maxStep {
			return state, fmt.Errorf("graph: %w after %d dispatches", ErrMaxSteps, dispatched)
		}
		if err := ctx.Err(); err != nil {
			return state, err
		}

		next, err := e.route(step, state)
		if err != nil {
			return state, err
		}
		if next == Terminate {
			return state, nil
		}

		node, ok := e.nodes[next]
		if !ok {
			return state, fmt.Errorf("graph: edge targets unknown node %q", next)
		}

		if e.hooks.Gate != nil {
			if err := e.hooks.Gate(state, next); err != nil {
				return state, err
			}
		}

		if e.hooks.OnStepStart != nil {
			e.hooks.OnStepStart(next, stepIndex)
		}
		started := time.Now()
		delta, err := node.Run(ctx, state)
		if err != nil {
			return state, fmt.Errorf("graph: node %q: %w", next, err)
		}
		state = e.reduce(state, delta)

		if e.hooks.Sink != nil {
			if err := e.hooks.Sink(ctx, state, stepIndex, next); err != nil {
				return state, fmt.Errorf("graph: persisting state after node %q: %w", next, err)
			}
		}
		if e.hooks.OnStepEnd != nil {
			e.hooks.OnStepEnd(state, next, stepIndex, time.Since(started))
		}
		slog.Debug("Node completed", "node", next, "step_index", stepIndex)

		step = next
		stepIndex++
	}
}

// route picks the next node: the start node when no step has completed yet,
// otherwise the first matching outgoing edge of the completed step.
func (e *Engine[S, D]) route(step string, state S) (string, error) {
	if step == "" {
		return e.start, nil
	}
	for _, edge := range e.edges {
		if edge.From != step {
			continue
		}
		if edge.When == nil || edge.When(state) {
			return edge.To, nil
		}
	}
	return "", fmt.Errorf("graph: %w out of node %q", ErrNoRoute, step)
}
