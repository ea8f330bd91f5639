// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dmhernandez2525/research-agent-sub001/ent/predicate"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
)

// ResearchSessionUpdate is the builder for updating ResearchSession entities.
type ResearchSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdate) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuery sets the "query" field.
func (_u *ResearchSessionUpdate) SetQuery(v string) *ResearchSessionUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableQuery(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ResearchSessionUpdate) SetRunID(v string) *ResearchSessionUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableRunID(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetBudgetUsd sets the "budget_usd" field.
func (_u *ResearchSessionUpdate) SetBudgetUsd(v float64) *ResearchSessionUpdate {
	_u.mutation.ResetBudgetUsd()
	_u.mutation.SetBudgetUsd(v)
	return _u
}

// SetNillableBudgetUsd sets the "budget_usd" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableBudgetUsd(v *float64) *ResearchSessionUpdate {
	if v != nil {
		_u.SetBudgetUsd(*v)
	}
	return _u
}

// AddBudgetUsd adds value to the "budget_usd" field.
func (_u *ResearchSessionUpdate) AddBudgetUsd(v float64) *ResearchSessionUpdate {
	_u.mutation.AddBudgetUsd(v)
	return _u
}

// ClearBudgetUsd clears the value of the "budget_usd" field.
func (_u *ResearchSessionUpdate) ClearBudgetUsd() *ResearchSessionUpdate {
	_u.mutation.ClearBudgetUsd()
	return _u
}

// SetOutputFormat sets the "output_format" field.
func (_u *ResearchSessionUpdate) SetOutputFormat(v string) *ResearchSessionUpdate {
	_u.mutation.SetOutputFormat(v)
	return _u
}

// SetNillableOutputFormat sets the "output_format" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableOutputFormat(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetOutputFormat(*v)
	}
	return _u
}

// ClearOutputFormat clears the value of the "output_format" field.
func (_u *ResearchSessionUpdate) ClearOutputFormat() *ResearchSessionUpdate {
	_u.mutation.ClearOutputFormat()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchSessionUpdate) SetStatus(v researchsession.Status) *ResearchSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStatus(v *researchsession.Status) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ResearchSessionUpdate) SetCreatedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableCreatedAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchSessionUpdate) SetStartedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStartedAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchSessionUpdate) ClearStartedAt() *ResearchSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchSessionUpdate) SetCompletedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableCompletedAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchSessionUpdate) ClearCompletedAt() *ResearchSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchSessionUpdate) SetErrorMessage(v string) *ResearchSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableErrorMessage(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchSessionUpdate) ClearErrorMessage() *ResearchSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWarning sets the "warning" field.
func (_u *ResearchSessionUpdate) SetWarning(v string) *ResearchSessionUpdate {
	_u.mutation.SetWarning(v)
	return _u
}

// SetNillableWarning sets the "warning" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableWarning(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetWarning(*v)
	}
	return _u
}

// ClearWarning clears the value of the "warning" field.
func (_u *ResearchSessionUpdate) ClearWarning() *ResearchSessionUpdate {
	_u.mutation.ClearWarning()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *ResearchSessionUpdate) SetCurrentStep(v string) *ResearchSessionUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableCurrentStep(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *ResearchSessionUpdate) ClearCurrentStep() *ResearchSessionUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *ResearchSessionUpdate) SetStepIndex(v int) *ResearchSessionUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStepIndex(v *int) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *ResearchSessionUpdate) AddStepIndex(v int) *ResearchSessionUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// ClearStepIndex clears the value of the "step_index" field.
func (_u *ResearchSessionUpdate) ClearStepIndex() *ResearchSessionUpdate {
	_u.mutation.ClearStepIndex()
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *ResearchSessionUpdate) SetTotalCostUsd(v float64) *ResearchSessionUpdate {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableTotalCostUsd(v *float64) *ResearchSessionUpdate {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *ResearchSessionUpdate) AddTotalCostUsd(v float64) *ResearchSessionUpdate {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetLlmCalls sets the "llm_calls" field.
func (_u *ResearchSessionUpdate) SetLlmCalls(v int) *ResearchSessionUpdate {
	_u.mutation.ResetLlmCalls()
	_u.mutation.SetLlmCalls(v)
	return _u
}

// SetNillableLlmCalls sets the "llm_calls" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableLlmCalls(v *int) *ResearchSessionUpdate {
	if v != nil {
		_u.SetLlmCalls(*v)
	}
	return _u
}

// AddLlmCalls adds value to the "llm_calls" field.
func (_u *ResearchSessionUpdate) AddLlmCalls(v int) *ResearchSessionUpdate {
	_u.mutation.AddLlmCalls(v)
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *ResearchSessionUpdate) SetReportPath(v string) *ResearchSessionUpdate {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableReportPath(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// ClearReportPath clears the value of the "report_path" field.
func (_u *ResearchSessionUpdate) ClearReportPath() *ResearchSessionUpdate {
	_u.mutation.ClearReportPath()
	return _u
}

// SetReportMetadata sets the "report_metadata" field.
func (_u *ResearchSessionUpdate) SetReportMetadata(v map[string]interface{}) *ResearchSessionUpdate {
	_u.mutation.SetReportMetadata(v)
	return _u
}

// ClearReportMetadata clears the value of the "report_metadata" field.
func (_u *ResearchSessionUpdate) ClearReportMetadata() *ResearchSessionUpdate {
	_u.mutation.ClearReportMetadata()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *ResearchSessionUpdate) SetSessionMetadata(v map[string]interface{}) *ResearchSessionUpdate {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *ResearchSessionUpdate) ClearSessionMetadata() *ResearchSessionUpdate {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ResearchSessionUpdate) SetCreatedBy(v string) *ResearchSessionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableCreatedBy(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ResearchSessionUpdate) ClearCreatedBy() *ResearchSessionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ResearchSessionUpdate) SetPodID(v string) *ResearchSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillablePodID(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ResearchSessionUpdate) ClearPodID() *ResearchSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ResearchSessionUpdate) SetLastInteractionAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableLastInteractionAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ResearchSessionUpdate) ClearLastInteractionAt() *ResearchSessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ResearchSessionUpdate) SetDeletedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableDeletedAt(v *time.Time) *ResearchSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ResearchSessionUpdate) ClearDeletedAt() *ResearchSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdate) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchsession.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(researchsession.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetUsd(); ok {
		_spec.SetField(researchsession.FieldBudgetUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetUsd(); ok {
		_spec.AddField(researchsession.FieldBudgetUsd, field.TypeFloat64, value)
	}
	if _u.mutation.BudgetUsdCleared() {
		_spec.ClearField(researchsession.FieldBudgetUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OutputFormat(); ok {
		_spec.SetField(researchsession.FieldOutputFormat, field.TypeString, value)
	}
	if _u.mutation.OutputFormatCleared() {
		_spec.ClearField(researchsession.FieldOutputFormat, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(researchsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Warning(); ok {
		_spec.SetField(researchsession.FieldWarning, field.TypeString, value)
	}
	if _u.mutation.WarningCleared() {
		_spec.ClearField(researchsession.FieldWarning, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(researchsession.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(researchsession.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(researchsession.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(researchsession.FieldStepIndex, field.TypeInt, value)
	}
	if _u.mutation.StepIndexCleared() {
		_spec.ClearField(researchsession.FieldStepIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(researchsession.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(researchsession.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LlmCalls(); ok {
		_spec.SetField(researchsession.FieldLlmCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLlmCalls(); ok {
		_spec.AddField(researchsession.FieldLlmCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(researchsession.FieldReportPath, field.TypeString, value)
	}
	if _u.mutation.ReportPathCleared() {
		_spec.ClearField(researchsession.FieldReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.ReportMetadata(); ok {
		_spec.SetField(researchsession.FieldReportMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ReportMetadataCleared() {
		_spec.ClearField(researchsession.FieldReportMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(researchsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(researchsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(researchsession.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(researchsession.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(researchsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(researchsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(researchsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(researchsession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(researchsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(researchsession.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchSessionUpdateOne is the builder for updating a single ResearchSession entity.
type ResearchSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// SetQuery sets the "query" field.
func (_u *ResearchSessionUpdateOne) SetQuery(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableQuery(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ResearchSessionUpdateOne) SetRunID(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableRunID(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetBudgetUsd sets the "budget_usd" field.
func (_u *ResearchSessionUpdateOne) SetBudgetUsd(v float64) *ResearchSessionUpdateOne {
	_u.mutation.ResetBudgetUsd()
	_u.mutation.SetBudgetUsd(v)
	return _u
}

// SetNillableBudgetUsd sets the "budget_usd" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableBudgetUsd(v *float64) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetBudgetUsd(*v)
	}
	return _u
}

// AddBudgetUsd adds value to the "budget_usd" field.
func (_u *ResearchSessionUpdateOne) AddBudgetUsd(v float64) *ResearchSessionUpdateOne {
	_u.mutation.AddBudgetUsd(v)
	return _u
}

// ClearBudgetUsd clears the value of the "budget_usd" field.
func (_u *ResearchSessionUpdateOne) ClearBudgetUsd() *ResearchSessionUpdateOne {
	_u.mutation.ClearBudgetUsd()
	return _u
}

// SetOutputFormat sets the "output_format" field.
func (_u *ResearchSessionUpdateOne) SetOutputFormat(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetOutputFormat(v)
	return _u
}

// SetNillableOutputFormat sets the "output_format" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableOutputFormat(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetOutputFormat(*v)
	}
	return _u
}

// ClearOutputFormat clears the value of the "output_format" field.
func (_u *ResearchSessionUpdateOne) ClearOutputFormat() *ResearchSessionUpdateOne {
	_u.mutation.ClearOutputFormat()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchSessionUpdateOne) SetStatus(v researchsession.Status) *ResearchSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStatus(v *researchsession.Status) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ResearchSessionUpdateOne) SetCreatedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchSessionUpdateOne) SetStartedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStartedAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchSessionUpdateOne) ClearStartedAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchSessionUpdateOne) SetCompletedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchSessionUpdateOne) ClearCompletedAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchSessionUpdateOne) SetErrorMessage(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableErrorMessage(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchSessionUpdateOne) ClearErrorMessage() *ResearchSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWarning sets the "warning" field.
func (_u *ResearchSessionUpdateOne) SetWarning(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetWarning(v)
	return _u
}

// SetNillableWarning sets the "warning" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableWarning(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetWarning(*v)
	}
	return _u
}

// ClearWarning clears the value of the "warning" field.
func (_u *ResearchSessionUpdateOne) ClearWarning() *ResearchSessionUpdateOne {
	_u.mutation.ClearWarning()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *ResearchSessionUpdateOne) SetCurrentStep(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableCurrentStep(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *ResearchSessionUpdateOne) ClearCurrentStep() *ResearchSessionUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *ResearchSessionUpdateOne) SetStepIndex(v int) *ResearchSessionUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStepIndex(v *int) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *ResearchSessionUpdateOne) AddStepIndex(v int) *ResearchSessionUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// ClearStepIndex clears the value of the "step_index" field.
func (_u *ResearchSessionUpdateOne) ClearStepIndex() *ResearchSessionUpdateOne {
	_u.mutation.ClearStepIndex()
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *ResearchSessionUpdateOne) SetTotalCostUsd(v float64) *ResearchSessionUpdateOne {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableTotalCostUsd(v *float64) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *ResearchSessionUpdateOne) AddTotalCostUsd(v float64) *ResearchSessionUpdateOne {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetLlmCalls sets the "llm_calls" field.
func (_u *ResearchSessionUpdateOne) SetLlmCalls(v int) *ResearchSessionUpdateOne {
	_u.mutation.ResetLlmCalls()
	_u.mutation.SetLlmCalls(v)
	return _u
}

// SetNillableLlmCalls sets the "llm_calls" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableLlmCalls(v *int) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetLlmCalls(*v)
	}
	return _u
}

// AddLlmCalls adds value to the "llm_calls" field.
func (_u *ResearchSessionUpdateOne) AddLlmCalls(v int) *ResearchSessionUpdateOne {
	_u.mutation.AddLlmCalls(v)
	return _u
}

// SetReportPath sets the "report_path" field.
func (_u *ResearchSessionUpdateOne) SetReportPath(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetReportPath(v)
	return _u
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableReportPath(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetReportPath(*v)
	}
	return _u
}

// ClearReportPath clears the value of the "report_path" field.
func (_u *ResearchSessionUpdateOne) ClearReportPath() *ResearchSessionUpdateOne {
	_u.mutation.ClearReportPath()
	return _u
}

// SetReportMetadata sets the "report_metadata" field.
func (_u *ResearchSessionUpdateOne) SetReportMetadata(v map[string]interface{}) *ResearchSessionUpdateOne {
	_u.mutation.SetReportMetadata(v)
	return _u
}

// ClearReportMetadata clears the value of the "report_metadata" field.
func (_u *ResearchSessionUpdateOne) ClearReportMetadata() *ResearchSessionUpdateOne {
	_u.mutation.ClearReportMetadata()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *ResearchSessionUpdateOne) SetSessionMetadata(v map[string]interface{}) *ResearchSessionUpdateOne {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *ResearchSessionUpdateOne) ClearSessionMetadata() *ResearchSessionUpdateOne {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ResearchSessionUpdateOne) SetCreatedBy(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableCreatedBy(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ResearchSessionUpdateOne) ClearCreatedBy() *ResearchSessionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ResearchSessionUpdateOne) SetPodID(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillablePodID(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ResearchSessionUpdateOne) ClearPodID() *ResearchSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ResearchSessionUpdateOne) SetLastInteractionAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ResearchSessionUpdateOne) ClearLastInteractionAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ResearchSessionUpdateOne) SetDeletedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ResearchSessionUpdateOne) ClearDeletedAt() *ResearchSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdateOne) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdateOne) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchSessionUpdateOne) Select(field string, fields ...string) *ResearchSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchSession entity.
func (_u *ResearchSessionUpdateOne) Save(ctx context.Context) (*ResearchSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) SaveX(ctx context.Context) *ResearchSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdateOne) sqlSave(ctx context.Context) (_node *ResearchSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchsession.FieldID)
		for _, f := range fields {
			if !researchsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchsession.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(researchsession.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetUsd(); ok {
		_spec.SetField(researchsession.FieldBudgetUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetUsd(); ok {
		_spec.AddField(researchsession.FieldBudgetUsd, field.TypeFloat64, value)
	}
	if _u.mutation.BudgetUsdCleared() {
		_spec.ClearField(researchsession.FieldBudgetUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OutputFormat(); ok {
		_spec.SetField(researchsession.FieldOutputFormat, field.TypeString, value)
	}
	if _u.mutation.OutputFormatCleared() {
		_spec.ClearField(researchsession.FieldOutputFormat, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(researchsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Warning(); ok {
		_spec.SetField(researchsession.FieldWarning, field.TypeString, value)
	}
	if _u.mutation.WarningCleared() {
		_spec.ClearField(researchsession.FieldWarning, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(researchsession.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(researchsession.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(researchsession.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(researchsession.FieldStepIndex, field.TypeInt, value)
	}
	if _u.mutation.StepIndexCleared() {
		_spec.ClearField(researchsession.FieldStepIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(researchsession.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(researchsession.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LlmCalls(); ok {
		_spec.SetField(researchsession.FieldLlmCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLlmCalls(); ok {
		_spec.AddField(researchsession.FieldLlmCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReportPath(); ok {
		_spec.SetField(researchsession.FieldReportPath, field.TypeString, value)
	}
	if _u.mutation.ReportPathCleared() {
		_spec.ClearField(researchsession.FieldReportPath, field.TypeString)
	}
	if value, ok := _u.mutation.ReportMetadata(); ok {
		_spec.SetField(researchsession.FieldReportMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ReportMetadataCleared() {
		_spec.ClearField(researchsession.FieldReportMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(researchsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(researchsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(researchsession.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(researchsession.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(researchsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(researchsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(researchsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(researchsession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(researchsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(researchsession.FieldDeletedAt, field.TypeTime)
	}
	_node = &ResearchSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
