package session

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entry := r.Register("sess-1", "worker-0", cancel)
	require.NotNil(t, entry)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, "worker-0", got.WorkerID)
	assert.False(t, got.StartedAt.IsZero())

	_, ok = r.Get("sess-unknown")
	assert.False(t, ok)
	assert.NoError(t, ctx.Err())
}

func TestRegistryCancel(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	r.Register("sess-1", "worker-0", cancel)

	assert.True(t, r.Cancel("sess-1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	assert.False(t, r.Cancel("sess-other"), "sessions on other replicas are not ours to cancel")
}

func TestRegistryCancelAll(t *testing.T) {
	r := NewRegistry()
	var ctxs []context.Context
	for _, id := range []string{"a", "b", "c"} {
		ctx, cancel := context.WithCancel(context.Background())
		ctxs = append(ctxs, ctx)
		r.Register(id, "worker-0", cancel)
	}

	r.CancelAll()
	for _, ctx := range ctxs {
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	}
	assert.Equal(t, 3, r.Len(), "cancel does not deregister; the worker does that when the run returns")
}

func TestRegistryDeregister(t *testing.T) {
	r := NewRegistry()
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Register("sess-1", "worker-0", cancel)

	r.Deregister("sess-1")
	assert.Zero(t, r.Len())
	r.Deregister("sess-1")
}

func TestRegistryProgressMirror(t *testing.T) {
	r := NewRegistry()
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	entry := r.Register("sess-1", "worker-0", cancel)

	_, ok := r.Progress("sess-unknown")
	assert.False(t, ok)

	p, ok := r.Progress("sess-1")
	require.True(t, ok)
	assert.Empty(t, p.Step)

	entry.SetProgress(Progress{Step: "search", StepIndex: 3, CurrentSubtopic: 1, TotalSubtopics: 4, CostUSD: 0.12, LLMCalls: 5})
	p, ok = r.Progress("sess-1")
	require.True(t, ok)
	assert.Equal(t, "search", p.Step)
	assert.Equal(t, 4, p.TotalSubtopics)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%5))
			_, cancel := context.WithCancel(context.Background())
			entry := r.Register(id, "worker", cancel)
			entry.SetProgress(Progress{StepIndex: i})
			r.Progress(id)
			r.Cancel(id)
			r.Deregister(id)
		}(i)
	}
	wg.Wait()
	assert.Zero(t, r.Len())
}

func TestRegistryActiveIDs(t *testing.T) {
	r := NewRegistry()
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Register("b", "w", cancel)
	r.Register("a", "w", cancel)

	ids := r.ActiveIDs()
	sort.Strings(ids)
	assert.Equal(t, []string{"a", "b"}, ids)
}
