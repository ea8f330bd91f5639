// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dmhernandez2525/research-agent-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldID, id))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldQuery, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldRunID, v))
}

// BudgetUsd applies equality check predicate on the "budget_usd" field. It's identical to BudgetUsdEQ.
func BudgetUsd(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldBudgetUsd, v))
}

// OutputFormat applies equality check predicate on the "output_format" field. It's identical to OutputFormatEQ.
func OutputFormat(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldOutputFormat, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// Warning applies equality check predicate on the "warning" field. It's identical to WarningEQ.
func Warning(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldWarning, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCurrentStep, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStepIndex, v))
}

// TotalCostUsd applies equality check predicate on the "total_cost_usd" field. It's identical to TotalCostUsdEQ.
func TotalCostUsd(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldTotalCostUsd, v))
}

// LlmCalls applies equality check predicate on the "llm_calls" field. It's identical to LlmCallsEQ.
func LlmCalls(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldLlmCalls, v))
}

// ReportPath applies equality check predicate on the "report_path" field. It's identical to ReportPathEQ.
func ReportPath(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldReportPath, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedBy, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldDeletedAt, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldQuery, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldRunID, v))
}

// BudgetUsdEQ applies the EQ predicate on the "budget_usd" field.
func BudgetUsdEQ(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldBudgetUsd, v))
}

// BudgetUsdNEQ applies the NEQ predicate on the "budget_usd" field.
func BudgetUsdNEQ(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldBudgetUsd, v))
}

// BudgetUsdIn applies the In predicate on the "budget_usd" field.
func BudgetUsdIn(vs ...float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldBudgetUsd, vs...))
}

// BudgetUsdNotIn applies the NotIn predicate on the "budget_usd" field.
func BudgetUsdNotIn(vs ...float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldBudgetUsd, vs...))
}

// BudgetUsdGT applies the GT predicate on the "budget_usd" field.
func BudgetUsdGT(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldBudgetUsd, v))
}

// BudgetUsdGTE applies the GTE predicate on the "budget_usd" field.
func BudgetUsdGTE(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldBudgetUsd, v))
}

// BudgetUsdLT applies the LT predicate on the "budget_usd" field.
func BudgetUsdLT(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldBudgetUsd, v))
}

// BudgetUsdLTE applies the LTE predicate on the "budget_usd" field.
func BudgetUsdLTE(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldBudgetUsd, v))
}

// BudgetUsdIsNil applies the IsNil predicate on the "budget_usd" field.
func BudgetUsdIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldBudgetUsd))
}

// BudgetUsdNotNil applies the NotNil predicate on the "budget_usd" field.
func BudgetUsdNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldBudgetUsd))
}

// OutputFormatEQ applies the EQ predicate on the "output_format" field.
func OutputFormatEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldOutputFormat, v))
}

// OutputFormatNEQ applies the NEQ predicate on the "output_format" field.
func OutputFormatNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldOutputFormat, v))
}

// OutputFormatIn applies the In predicate on the "output_format" field.
func OutputFormatIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldOutputFormat, vs...))
}

// OutputFormatNotIn applies the NotIn predicate on the "output_format" field.
func OutputFormatNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldOutputFormat, vs...))
}

// OutputFormatGT applies the GT predicate on the "output_format" field.
func OutputFormatGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldOutputFormat, v))
}

// OutputFormatGTE applies the GTE predicate on the "output_format" field.
func OutputFormatGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldOutputFormat, v))
}

// OutputFormatLT applies the LT predicate on the "output_format" field.
func OutputFormatLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldOutputFormat, v))
}

// OutputFormatLTE applies the LTE predicate on the "output_format" field.
func OutputFormatLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldOutputFormat, v))
}

// OutputFormatContains applies the Contains predicate on the "output_format" field.
func OutputFormatContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldOutputFormat, v))
}

// OutputFormatHasPrefix applies the HasPrefix predicate on the "output_format" field.
func OutputFormatHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldOutputFormat, v))
}

// OutputFormatHasSuffix applies the HasSuffix predicate on the "output_format" field.
func OutputFormatHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldOutputFormat, v))
}

// OutputFormatIsNil applies the IsNil predicate on the "output_format" field.
func OutputFormatIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldOutputFormat))
}

// OutputFormatNotNil applies the NotNil predicate on the "output_format" field.
func OutputFormatNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldOutputFormat))
}

// OutputFormatEqualFold applies the EqualFold predicate on the "output_format" field.
func OutputFormatEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldOutputFormat, v))
}

// OutputFormatContainsFold applies the ContainsFold predicate on the "output_format" field.
func OutputFormatContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldOutputFormat, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// WarningEQ applies the EQ predicate on the "warning" field.
func WarningEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldWarning, v))
}

// WarningNEQ applies the NEQ predicate on the "warning" field.
func WarningNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldWarning, v))
}

// WarningIn applies the In predicate on the "warning" field.
func WarningIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldWarning, vs...))
}

// WarningNotIn applies the NotIn predicate on the "warning" field.
func WarningNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldWarning, vs...))
}

// WarningGT applies the GT predicate on the "warning" field.
func WarningGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldWarning, v))
}

// WarningGTE applies the GTE predicate on the "warning" field.
func WarningGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldWarning, v))
}

// WarningLT applies the LT predicate on the "warning" field.
func WarningLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldWarning, v))
}

// WarningLTE applies the LTE predicate on the "warning" field.
func WarningLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldWarning, v))
}

// WarningContains applies the Contains predicate on the "warning" field.
func WarningContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldWarning, v))
}

// WarningHasPrefix applies the HasPrefix predicate on the "warning" field.
func WarningHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldWarning, v))
}

// WarningHasSuffix applies the HasSuffix predicate on the "warning" field.
func WarningHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldWarning, v))
}

// WarningIsNil applies the IsNil predicate on the "warning" field.
func WarningIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldWarning))
}

// WarningNotNil applies the NotNil predicate on the "warning" field.
func WarningNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldWarning))
}

// WarningEqualFold applies the EqualFold predicate on the "warning" field.
func WarningEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldWarning, v))
}

// WarningContainsFold applies the ContainsFold predicate on the "warning" field.
func WarningContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldWarning, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldCurrentStep, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldStepIndex, v))
}

// StepIndexIsNil applies the IsNil predicate on the "step_index" field.
func StepIndexIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldStepIndex))
}

// StepIndexNotNil applies the NotNil predicate on the "step_index" field.
func StepIndexNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldStepIndex))
}

// TotalCostUsdEQ applies the EQ predicate on the "total_cost_usd" field.
func TotalCostUsdEQ(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdNEQ applies the NEQ predicate on the "total_cost_usd" field.
func TotalCostUsdNEQ(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdIn applies the In predicate on the "total_cost_usd" field.
func TotalCostUsdIn(vs ...float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdNotIn applies the NotIn predicate on the "total_cost_usd" field.
func TotalCostUsdNotIn(vs ...float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdGT applies the GT predicate on the "total_cost_usd" field.
func TotalCostUsdGT(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldTotalCostUsd, v))
}

// TotalCostUsdGTE applies the GTE predicate on the "total_cost_usd" field.
func TotalCostUsdGTE(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldTotalCostUsd, v))
}

// TotalCostUsdLT applies the LT predicate on the "total_cost_usd" field.
func TotalCostUsdLT(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldTotalCostUsd, v))
}

// TotalCostUsdLTE applies the LTE predicate on the "total_cost_usd" field.
func TotalCostUsdLTE(v float64) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldTotalCostUsd, v))
}

// LlmCallsEQ applies the EQ predicate on the "llm_calls" field.
func LlmCallsEQ(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldLlmCalls, v))
}

// LlmCallsNEQ applies the NEQ predicate on the "llm_calls" field.
func LlmCallsNEQ(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldLlmCalls, v))
}

// LlmCallsIn applies the In predicate on the "llm_calls" field.
func LlmCallsIn(vs ...int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldLlmCalls, vs...))
}

// LlmCallsNotIn applies the NotIn predicate on the "llm_calls" field.
func LlmCallsNotIn(vs ...int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldLlmCalls, vs...))
}

// LlmCallsGT applies the GT predicate on the "llm_calls" field.
func LlmCallsGT(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldLlmCalls, v))
}

// LlmCallsGTE applies the GTE predicate on the "llm_calls" field.
func LlmCallsGTE(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldLlmCalls, v))
}

// LlmCallsLT applies the LT predicate on the "llm_calls" field.
func LlmCallsLT(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldLlmCalls, v))
}

// LlmCallsLTE applies the LTE predicate on the "llm_calls" field.
func LlmCallsLTE(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldLlmCalls, v))
}

// ReportPathEQ applies the EQ predicate on the "report_path" field.
func ReportPathEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldReportPath, v))
}

// ReportPathNEQ applies the NEQ predicate on the "report_path" field.
func ReportPathNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldReportPath, v))
}

// ReportPathIn applies the In predicate on the "report_path" field.
func ReportPathIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldReportPath, vs...))
}

// ReportPathNotIn applies the NotIn predicate on the "report_path" field.
func ReportPathNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldReportPath, vs...))
}

// ReportPathGT applies the GT predicate on the "report_path" field.
func ReportPathGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldReportPath, v))
}

// ReportPathGTE applies the GTE predicate on the "report_path" field.
func ReportPathGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldReportPath, v))
}

// ReportPathLT applies the LT predicate on the "report_path" field.
func ReportPathLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldReportPath, v))
}

// ReportPathLTE applies the LTE predicate on the "report_path" field.
func ReportPathLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldReportPath, v))
}

// ReportPathContains applies the Contains predicate on the "report_path" field.
func ReportPathContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldReportPath, v))
}

// ReportPathHasPrefix applies the HasPrefix predicate on the "report_path" field.
func ReportPathHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldReportPath, v))
}

// ReportPathHasSuffix applies the HasSuffix predicate on the "report_path" field.
func ReportPathHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldReportPath, v))
}

// ReportPathIsNil applies the IsNil predicate on the "report_path" field.
func ReportPathIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldReportPath))
}

// ReportPathNotNil applies the NotNil predicate on the "report_path" field.
func ReportPathNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldReportPath))
}

// ReportPathEqualFold applies the EqualFold predicate on the "report_path" field.
func ReportPathEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldReportPath, v))
}

// ReportPathContainsFold applies the ContainsFold predicate on the "report_path" field.
func ReportPathContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldReportPath, v))
}

// ReportMetadataIsNil applies the IsNil predicate on the "report_metadata" field.
func ReportMetadataIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldReportMetadata))
}

// ReportMetadataNotNil applies the NotNil predicate on the "report_metadata" field.
func ReportMetadataNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldReportMetadata))
}

// SessionMetadataIsNil applies the IsNil predicate on the "session_metadata" field.
func SessionMetadataIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldSessionMetadata))
}

// SessionMetadataNotNil applies the NotNil predicate on the "session_metadata" field.
func SessionMetadataNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldSessionMetadata))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldCreatedBy, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldLastInteractionAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.NotPredicates(p))
}
