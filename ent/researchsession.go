// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
)

// ResearchSession is the model entity for the ResearchSession schema.
type ResearchSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Research query (full-text searchable)
	Query string `json:"query,omitempty"`
	// Checkpoint run directory binding; survives crash/resume
	RunID string `json:"run_id,omitempty"`
	// Per-run budget override; nil uses the configured default
	BudgetUsd *float64 `json:"budget_usd,omitempty"`
	// Requested report format
	OutputFormat string `json:"output_format,omitempty"`
	// Status holds the value of the "status" field.
	Status researchsession.Status `json:"status,omitempty"`
	// When the session was submitted/created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker started processing (transitioned from queued to running)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Non-fatal condition recorded on completion (e.g. no scrapeable sources)
	Warning *string `json:"warning,omitempty"`
	// Last completed pipeline node; resume evaluates edges from here
	CurrentStep *string `json:"current_step,omitempty"`
	// StepIndex holds the value of the "step_index" field.
	StepIndex *int `json:"step_index,omitempty"`
	// TotalCostUsd holds the value of the "total_cost_usd" field.
	TotalCostUsd float64 `json:"total_cost_usd,omitempty"`
	// LlmCalls holds the value of the "llm_calls" field.
	LlmCalls int `json:"llm_calls,omitempty"`
	// Final report file on disk
	ReportPath *string `json:"report_path,omitempty"`
	// Cost totals, recovery metrics, dead-letter queue, quality result
	ReportMetadata map[string]interface{} `json:"report_metadata,omitempty"`
	// SessionMetadata holds the value of the "session_metadata" field.
	SessionMetadata map[string]interface{} `json:"session_metadata,omitempty"`
	// API key ID that submitted the session
	CreatedBy *string `json:"created_by,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Worker heartbeat; for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldReportMetadata, researchsession.FieldSessionMetadata:
			values[i] = new([]byte)
		case researchsession.FieldBudgetUsd, researchsession.FieldTotalCostUsd:
			values[i] = new(sql.NullFloat64)
		case researchsession.FieldStepIndex, researchsession.FieldLlmCalls:
			values[i] = new(sql.NullInt64)
		case researchsession.FieldID, researchsession.FieldQuery, researchsession.FieldRunID, researchsession.FieldOutputFormat, researchsession.FieldStatus, researchsession.FieldErrorMessage, researchsession.FieldWarning, researchsession.FieldCurrentStep, researchsession.FieldReportPath, researchsession.FieldCreatedBy, researchsession.FieldPodID:
			values[i] = new(sql.NullString)
		case researchsession.FieldCreatedAt, researchsession.FieldStartedAt, researchsession.FieldCompletedAt, researchsession.FieldLastInteractionAt, researchsession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchSession fields.
func (_m *ResearchSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchsession.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case researchsession.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case researchsession.FieldBudgetUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_usd", values[i])
			} else if value.Valid {
				_m.BudgetUsd = new(float64)
				*_m.BudgetUsd = value.Float64
			}
		case researchsession.FieldOutputFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_format", values[i])
			} else if value.Valid {
				_m.OutputFormat = value.String
			}
		case researchsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = researchsession.Status(value.String)
			}
		case researchsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case researchsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case researchsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case researchsession.FieldWarning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warning", values[i])
			} else if value.Valid {
				_m.Warning = new(string)
				*_m.Warning = value.String
			}
		case researchsession.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = new(string)
				*_m.CurrentStep = value.String
			}
		case researchsession.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = new(int)
				*_m.StepIndex = int(value.Int64)
			}
		case researchsession.FieldTotalCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost_usd", values[i])
			} else if value.Valid {
				_m.TotalCostUsd = value.Float64
			}
		case researchsession.FieldLlmCalls:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field llm_calls", values[i])
			} else if value.Valid {
				_m.LlmCalls = int(value.Int64)
			}
		case researchsession.FieldReportPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_path", values[i])
			} else if value.Valid {
				_m.ReportPath = new(string)
				*_m.ReportPath = value.String
			}
		case researchsession.FieldReportMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReportMetadata); err != nil {
					return fmt.Errorf("unmarshal field report_metadata: %w", err)
				}
			}
		case researchsession.FieldSessionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionMetadata); err != nil {
					return fmt.Errorf("unmarshal field session_metadata: %w", err)
				}
			}
		case researchsession.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(string)
				*_m.CreatedBy = value.String
			}
		case researchsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case researchsession.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case researchsession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchSession.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResearchSession.
// Note that you need to call ResearchSession.Unwrap() before calling this method if this ResearchSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchSession) Update() *ResearchSessionUpdateOne {
	return NewResearchSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchSession) Unwrap() *ResearchSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchSession) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	if v := _m.BudgetUsd; v != nil {
		builder.WriteString("budget_usd=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("output_format=")
	builder.WriteString(_m.OutputFormat)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Warning; v != nil {
		builder.WriteString("warning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentStep; v != nil {
		builder.WriteString("current_step=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StepIndex; v != nil {
		builder.WriteString("step_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCostUsd))
	builder.WriteString(", ")
	builder.WriteString("llm_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmCalls))
	builder.WriteString(", ")
	if v := _m.ReportPath; v != nil {
		builder.WriteString("report_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("report_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportMetadata))
	builder.WriteString(", ")
	builder.WriteString("session_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionMetadata))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResearchSessions is a parsable slice of ResearchSession.
type ResearchSessions []*ResearchSession
