// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ResearchSessionsColumns holds the columns for the "research_sessions" table.
	ResearchSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "run_id", Type: field.TypeString},
		{Name: "budget_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "output_format", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "cancelling", "completed", "failed", "cancelled", "timed_out"}, Default: "queued"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "warning", Type: field.TypeString, Nullable: true},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "step_index", Type: field.TypeInt, Nullable: true},
		{Name: "total_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "llm_calls", Type: field.TypeInt, Default: 0},
		{Name: "report_path", Type: field.TypeString, Nullable: true},
		{Name: "report_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ResearchSessionsTable holds the schema information for the "research_sessions" table.
	ResearchSessionsTable = &schema.Table{
		Name:       "research_sessions",
		Columns:    ResearchSessionsColumns,
		PrimaryKey: []*schema.Column{ResearchSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchsession_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[5]},
			},
			{
				Name:    "researchsession_run_id",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[2]},
			},
			{
				Name:    "researchsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[5], ResearchSessionsColumns[6]},
			},
			{
				Name:    "researchsession_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[5], ResearchSessionsColumns[20]},
			},
			{
				Name:    "researchsession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[21]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ResearchSessionsTable,
	}
)

func init() {
}
