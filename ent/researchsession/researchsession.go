// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the researchsession type in the database.
	Label = "research_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldBudgetUsd holds the string denoting the budget_usd field in the database.
	FieldBudgetUsd = "budget_usd"
	// FieldOutputFormat holds the string denoting the output_format field in the database.
	FieldOutputFormat = "output_format"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldWarning holds the string denoting the warning field in the database.
	FieldWarning = "warning"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldTotalCostUsd holds the string denoting the total_cost_usd field in the database.
	FieldTotalCostUsd = "total_cost_usd"
	// FieldLlmCalls holds the string denoting the llm_calls field in the database.
	FieldLlmCalls = "llm_calls"
	// FieldReportPath holds the string denoting the report_path field in the database.
	FieldReportPath = "report_path"
	// FieldReportMetadata holds the string denoting the report_metadata field in the database.
	FieldReportMetadata = "report_metadata"
	// FieldSessionMetadata holds the string denoting the session_metadata field in the database.
	FieldSessionMetadata = "session_metadata"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the researchsession in the database.
	Table = "research_sessions"
)

// Columns holds all SQL columns for researchsession fields.
var Columns = []string{
	FieldID,
	FieldQuery,
	FieldRunID,
	FieldBudgetUsd,
	FieldOutputFormat,
	FieldStatus,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldWarning,
	FieldCurrentStep,
	FieldStepIndex,
	FieldTotalCostUsd,
	FieldLlmCalls,
	FieldReportPath,
	FieldReportMetadata,
	FieldSessionMetadata,
	FieldCreatedBy,
	FieldPodID,
	FieldLastInteractionAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultTotalCostUsd holds the default value on creation for the "total_cost_usd" field.
	DefaultTotalCostUsd float64
	// DefaultLlmCalls holds the default value on creation for the "llm_calls" field.
	DefaultLlmCalls int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued     Status = "queued"
	StatusRunning    Status = "running"
	StatusCancelling Status = "cancelling"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusTimedOut   Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusCancelling, StatusCompleted, StatusFailed, StatusCancelled, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("researchsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResearchSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByBudgetUsd orders the results by the budget_usd field.
func ByBudgetUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetUsd, opts...).ToFunc()
}

// ByOutputFormat orders the results by the output_format field.
func ByOutputFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputFormat, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByWarning orders the results by the warning field.
func ByWarning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarning, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByTotalCostUsd orders the results by the total_cost_usd field.
func ByTotalCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCostUsd, opts...).ToFunc()
}

// ByLlmCalls orders the results by the llm_calls field.
func ByLlmCalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmCalls, opts...).ToFunc()
}

// ByReportPath orders the results by the report_path field.
func ByReportPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportPath, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}
