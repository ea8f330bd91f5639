// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
)

// ResearchSessionCreate is the builder for creating a ResearchSession entity.
type ResearchSessionCreate struct {
	config
	mutation *ResearchSessionMutation
	hooks    []Hook
}

// SetQuery sets the "query" field.
func (_c *ResearchSessionCreate) SetQuery(v string) *ResearchSessionCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ResearchSessionCreate) SetRunID(v string) *ResearchSessionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetBudgetUsd sets the "budget_usd" field.
func (_c *ResearchSessionCreate) SetBudgetUsd(v float64) *ResearchSessionCreate {
	_c.mutation.SetBudgetUsd(v)
	return _c
}

// SetNillableBudgetUsd sets the "budget_usd" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableBudgetUsd(v *float64) *ResearchSessionCreate {
	if v != nil {
		_c.SetBudgetUsd(*v)
	}
	return _c
}

// SetOutputFormat sets the "output_format" field.
func (_c *ResearchSessionCreate) SetOutputFormat(v string) *ResearchSessionCreate {
	_c.mutation.SetOutputFormat(v)
	return _c
}

// SetNillableOutputFormat sets the "output_format" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableOutputFormat(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetOutputFormat(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResearchSessionCreate) SetStatus(v researchsession.Status) *ResearchSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableStatus(v *researchsession.Status) *ResearchSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchSessionCreate) SetCreatedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableCreatedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ResearchSessionCreate) SetStartedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableStartedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ResearchSessionCreate) SetCompletedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableCompletedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ResearchSessionCreate) SetErrorMessage(v string) *ResearchSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableErrorMessage(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetWarning sets the "warning" field.
func (_c *ResearchSessionCreate) SetWarning(v string) *ResearchSessionCreate {
	_c.mutation.SetWarning(v)
	return _c
}

// SetNillableWarning sets the "warning" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableWarning(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetWarning(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *ResearchSessionCreate) SetCurrentStep(v string) *ResearchSessionCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableCurrentStep(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *ResearchSessionCreate) SetStepIndex(v int) *ResearchSessionCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableStepIndex(v *int) *ResearchSessionCreate {
	if v != nil {
		_c.SetStepIndex(*v)
	}
	return _c
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_c *ResearchSessionCreate) SetTotalCostUsd(v float64) *ResearchSessionCreate {
	_c.mutation.SetTotalCostUsd(v)
	return _c
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableTotalCostUsd(v *float64) *ResearchSessionCreate {
	if v != nil {
		_c.SetTotalCostUsd(*v)
	}
	return _c
}

// SetLlmCalls sets the "llm_calls" field.
func (_c *ResearchSessionCreate) SetLlmCalls(v int) *ResearchSessionCreate {
	_c.mutation.SetLlmCalls(v)
	return _c
}

// SetNillableLlmCalls sets the "llm_calls" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableLlmCalls(v *int) *ResearchSessionCreate {
	if v != nil {
		_c.SetLlmCalls(*v)
	}
	return _c
}

// SetReportPath sets the "report_path" field.
func (_c *ResearchSessionCreate) SetReportPath(v string) *ResearchSessionCreate {
	_c.mutation.SetReportPath(v)
	return _c
}

// SetNillableReportPath sets the "report_path" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableReportPath(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetReportPath(*v)
	}
	return _c
}

// SetReportMetadata sets the "report_metadata" field.
func (_c *ResearchSessionCreate) SetReportMetadata(v map[string]interface{}) *ResearchSessionCreate {
	_c.mutation.SetReportMetadata(v)
	return _c
}

// SetSessionMetadata sets the "session_metadata" field.
func (_c *ResearchSessionCreate) SetSessionMetadata(v map[string]interface{}) *ResearchSessionCreate {
	_c.mutation.SetSessionMetadata(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ResearchSessionCreate) SetCreatedBy(v string) *ResearchSessionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableCreatedBy(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ResearchSessionCreate) SetPodID(v string) *ResearchSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillablePodID(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *ResearchSessionCreate) SetLastInteractionAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableLastInteractionAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ResearchSessionCreate) SetDeletedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableDeletedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchSessionCreate) SetID(v string) *ResearchSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_c *ResearchSessionCreate) Mutation() *ResearchSessionMutation {
	return _c.mutation
}

// Save creates the ResearchSession in the database.
func (_c *ResearchSessionCreate) Save(ctx context.Context) (*ResearchSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchSessionCreate) SaveX(ctx context.Context) *ResearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := researchsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		v := researchsession.DefaultTotalCostUsd
		_c.mutation.SetTotalCostUsd(v)
	}
	if _, ok := _c.mutation.LlmCalls(); !ok {
		v := researchsession.DefaultLlmCalls
		_c.mutation.SetLlmCalls(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchSessionCreate) check() error {
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "ResearchSession.query"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ResearchSession.run_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ResearchSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchSession.created_at"`)}
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		return &ValidationError{Name: "total_cost_usd", err: errors.New(`ent: missing required field "ResearchSession.total_cost_usd"`)}
	}
	if _, ok := _c.mutation.LlmCalls(); !ok {
		return &ValidationError{Name: "llm_calls", err: errors.New(`ent: missing required field "ResearchSession.llm_calls"`)}
	}
	return nil
}

func (_c *ResearchSessionCreate) sqlSave(ctx context.Context) (*ResearchSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ResearchSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchSessionCreate) createSpec() (*ResearchSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchsession.Table, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(researchsession.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(researchsession.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.BudgetUsd(); ok {
		_spec.SetField(researchsession.FieldBudgetUsd, field.TypeFloat64, value)
		_node.BudgetUsd = &value
	}
	if value, ok := _c.mutation.OutputFormat(); ok {
		_spec.SetField(researchsession.FieldOutputFormat, field.TypeString, value)
		_node.OutputFormat = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(researchsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(researchsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Warning(); ok {
		_spec.SetField(researchsession.FieldWarning, field.TypeString, value)
		_node.Warning = &value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(researchsession.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = &value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(researchsession.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = &value
	}
	if value, ok := _c.mutation.TotalCostUsd(); ok {
		_spec.SetField(researchsession.FieldTotalCostUsd, field.TypeFloat64, value)
		_node.TotalCostUsd = value
	}
	if value, ok := _c.mutation.LlmCalls(); ok {
		_spec.SetField(researchsession.FieldLlmCalls, field.TypeInt, value)
		_node.LlmCalls = value
	}
	if value, ok := _c.mutation.ReportPath(); ok {
		_spec.SetField(researchsession.FieldReportPath, field.TypeString, value)
		_node.ReportPath = &value
	}
	if value, ok := _c.mutation.ReportMetadata(); ok {
		_spec.SetField(researchsession.FieldReportMetadata, field.TypeJSON, value)
		_node.ReportMetadata = value
	}
	if value, ok := _c.mutation.SessionMetadata(); ok {
		_spec.SetField(researchsession.FieldSessionMetadata, field.TypeJSON, value)
		_node.SessionMetadata = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(researchsession.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(researchsession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(researchsession.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(researchsession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// ResearchSessionCreateBulk is the builder for creating many ResearchSession entities in bulk.
type ResearchSessionCreateBulk struct {
	config
	err      error
	builders []*ResearchSessionCreate
}

// Save creates the ResearchSession entities in the database.
func (_c *ResearchSessionCreateBulk) Save(ctx context.Context) ([]*ResearchSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResearchSessionCreateBulk) SaveX(ctx context.Context) []*ResearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
