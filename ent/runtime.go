// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	researchsessionFields := schema.ResearchSession{}.Fields()
	_ = researchsessionFields
	// researchsessionDescCreatedAt is the schema descriptor for created_at field.
	researchsessionDescCreatedAt := researchsessionFields[6].Descriptor()
	// researchsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchsession.DefaultCreatedAt = researchsessionDescCreatedAt.Default.(func() time.Time)
	// researchsessionDescTotalCostUsd is the schema descriptor for total_cost_usd field.
	researchsessionDescTotalCostUsd := researchsessionFields[13].Descriptor()
	// researchsession.DefaultTotalCostUsd holds the default value on creation for the total_cost_usd field.
	researchsession.DefaultTotalCostUsd = researchsessionDescTotalCostUsd.Default.(float64)
	// researchsessionDescLlmCalls is the schema descriptor for llm_calls field.
	researchsessionDescLlmCalls := researchsessionFields[14].Descriptor()
	// researchsession.DefaultLlmCalls holds the default value on creation for the llm_calls field.
	researchsession.DefaultLlmCalls = researchsessionDescLlmCalls.Default.(int)
}
