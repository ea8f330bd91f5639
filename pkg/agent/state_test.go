package agent

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDeltaAppendsLists(t *testing.T) {
	state := NewState("q")
	state = MergeDelta(state, Delta{
		SearchResults: []SearchResult{{SubtopicID: 1, URL: "https://a"}},
		SeenURLs:      []string{"https://a"},
	})
	state = MergeDelta(state, Delta{
		SearchResults: []SearchResult{{SubtopicID: 2, URL: "https://b"}},
		SeenURLs:      []string{"https://b"},
		ErrorLog:      []ErrorEntry{{Step: NodeSearch, Message: "m"}},
	})

	require.Len(t, state.SearchResults, 2)
	assert.Equal(t, "https://a", state.SearchResults[0].URL)
	assert.Equal(t, "https://b", state.SearchResults[1].URL)
	assert.Equal(t, []string{"https://a", "https://b"}, state.SeenURLs)
	assert.Len(t, state.ErrorLog, 1)
}

func TestMergeDeltaScalarsNeedValues(t *testing.T) {
	state := NewState("q")
	state.CurrentSubtopicIndex = 2
	state.SearchRetryCount = 1
	state.FinalReport = "kept"

	merged := MergeDelta(state, Delta{Step: NodeSearch, StepIndex: 1})
	assert.Equal(t, 2, merged.CurrentSubtopicIndex)
	assert.Equal(t, 1, merged.SearchRetryCount)
	assert.Equal(t, "kept", merged.FinalReport)

	merged = MergeDelta(merged, Delta{
		CurrentSubtopicIndex: intPtr(0),
		SearchRetryCount:     intPtr(0),
		FinalReport:          "",
		SetFinalReport:       true,
	})
	assert.Zero(t, merged.CurrentSubtopicIndex)
	assert.Zero(t, merged.SearchRetryCount)
	assert.Empty(t, merged.FinalReport)
}

func TestMergeDeltaSubtopicsReplaceOnlyWhenSet(t *testing.T) {
	state := NewState("q")
	state.Subtopics = []Subtopic{{ID: 1, Question: "a"}}

	merged := MergeDelta(state, Delta{Step: NodeSearch, StepIndex: 1})
	assert.Len(t, merged.Subtopics, 1)

	merged = MergeDelta(merged, Delta{
		Subtopics:    []Subtopic{{ID: 1, Question: "x"}, {ID: 2, Question: "y"}},
		SetSubtopics: true,
	})
	assert.Len(t, merged.Subtopics, 2)
}

func TestMergeDeltaReportMetadata(t *testing.T) {
	state := NewState("q")
	state = MergeDelta(state, Delta{ReportMetadata: map[string]any{"a": 1, "b": "x"}})
	state = MergeDelta(state, Delta{ReportMetadata: map[string]any{"b": "y", "c": true}})

	assert.Equal(t, 1, state.ReportMetadata["a"])
	assert.Equal(t, "y", state.ReportMetadata["b"])
	assert.Equal(t, true, state.ReportMetadata["c"])
}

func TestLoadStateMigratesVersion1(t *testing.T) {
	raw := []byte(`{"_schema_version": "1", "query": "old run", "step": "search", "step_index": 1,
		"seen_urls": ["https://a"], "search_results": [{"subtopic_id": 1, "query": "q", "url": "https://a", "score": 0.5}]}`)

	state, err := LoadState(raw)
	require.NoError(t, err)
	assert.Equal(t, "2", state.Schema)
	assert.Equal(t, "old run", state.Query)
	assert.NotNil(t, state.ReportMetadata)
	assert.Len(t, state.SearchResults, 1)
}

func TestLoadStateRejectsGarbage(t *testing.T) {
	_, err := LoadState([]byte(`{"query": [1,2,3]}`))
	assert.Error(t, err)
}

func TestStateRoundTrip(t *testing.T) {
	state := NewState("roundtrip")
	state.Subtopics = []Subtopic{{ID: 1, Question: "a", Status: "pending"}}
	state.Summaries = []Summary{{SubtopicID: 1, Summary: "s", KeyFindings: []string{"f"}}}
	state.ErrorLog = []ErrorEntry{{Step: NodeScrape, Message: "m", Recoverable: true}}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	loaded, err := LoadState(data)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestMergeDeltaProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	urlGen := gen.RegexMatch(`https://example\.org/[a-z]{1,8}`)

	deltaGen := gopter.CombineGens(
		gen.SliceOf(urlGen),
		gen.IntRange(0, 10),
		gen.Bool(),
	).Map(func(vs []interface{}) Delta {
		urls := vs[0].([]string)
		idx := vs[1].(int)
		setIdx := vs[2].(bool)

		d := Delta{SeenURLs: urls}
		for _, u := range urls {
			d.SearchResults = append(d.SearchResults, SearchResult{SubtopicID: 1, URL: u, Score: 0.5})
		}
		if setIdx {
			d.CurrentSubtopicIndex = intPtr(idx)
		}
		return d
	})

	properties.Property("append-only fields never shrink and keep their prefix",
		prop.ForAll(func(deltas []Delta) bool {
			state := NewState("p")
			var prevSeen []string
			for _, d := range deltas {
				next := MergeDelta(state, d)
				if len(next.SeenURLs) < len(prevSeen) {
					return false
				}
				for i, u := range prevSeen {
					if next.SeenURLs[i] != u {
						return false
					}
				}
				if len(next.SearchResults) != len(next.SeenURLs) {
					return false
				}
				prevSeen = next.SeenURLs
				state = next
			}
			return true
		}, gen.SliceOf(deltaGen)))

	properties.Property("subtopic index only moves when the delta carries a value",
		prop.ForAll(func(deltas []Delta) bool {
			state := NewState("p")
			for _, d := range deltas {
				before := state.CurrentSubtopicIndex
				state = MergeDelta(state, d)
				if d.CurrentSubtopicIndex == nil && state.CurrentSubtopicIndex != before {
					return false
				}
				if d.CurrentSubtopicIndex != nil && state.CurrentSubtopicIndex != *d.CurrentSubtopicIndex {
					return false
				}
			}
			return true
		}, gen.SliceOf(deltaGen)))

	properties.TestingRun(t)
}
