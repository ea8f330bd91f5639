package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchSession holds the schema definition for the ResearchSession entity.
// A row is both the durable admission queue entry and the session record:
// workers claim queued rows FIFO and stamp heartbeats while processing.
type ResearchSession struct {
	ent.Schema
}

// Mixin for custom ID field.
func (ResearchSession) Mixin() []ent.Mixin {
	return []ent.Mixin{}
}

// Fields of the ResearchSession.
func (ResearchSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Text("query").
			Comment("Research query (full-text searchable)"),
		field.String("run_id").
			Comment("Checkpoint run directory binding; survives crash/resume"),
		field.Float("budget_usd").
			Optional().
			Nillable().
			Comment("Per-run budget override; nil uses the configured default"),
		field.String("output_format").
			Optional().
			Comment("Requested report format"),
		field.Enum("status").
			Values("queued", "running", "cancelling", "completed", "failed", "cancelled", "timed_out").
			Default("queued"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the session was submitted/created"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker started processing (transitioned from queued to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("warning").
			Optional().
			Nillable().
			Comment("Non-fatal condition recorded on completion (e.g. no scrapeable sources)"),
		field.String("current_step").
			Optional().
			Nillable().
			Comment("Last completed pipeline node; resume evaluates edges from here"),
		field.Int("step_index").
			Optional().
			Nillable(),
		field.Float("total_cost_usd").
			Default(0),
		field.Int("llm_calls").
			Default(0),
		field.String("report_path").
			Optional().
			Nillable().
			Comment("Final report file on disk"),
		field.JSON("report_metadata", map[string]interface{}{}).
			Optional().
			Comment("Cost totals, recovery metrics, dead-letter queue, quality result"),
		field.JSON("session_metadata", map[string]interface{}{}).
			Optional(),
		field.String("created_by").
			Optional().
			Nillable().
			Comment("API key ID that submitted the session"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat; for orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the ResearchSession.
func (ResearchSession) Edges() []ent.Edge {
	return []ent.Edge{}
}

// Indexes of the ResearchSession.
func (ResearchSession) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("run_id"),

		// Composite indexes: FIFO claim order and orphan scans
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: GIN indexes for full-text search are created via migration hooks
// in pkg/database/migrations.go
func (ResearchSession) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
