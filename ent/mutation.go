// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dmhernandez2525/research-agent-sub001/ent/predicate"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeResearchSession = "ResearchSession"
)

// ResearchSessionMutation represents an operation that mutates the ResearchSession nodes in the graph.
type ResearchSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	query               *string
	run_id              *string
	budget_usd          *float64
	addbudget_usd       *float64
	output_format       *string
	status              *researchsession.Status
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	error_message       *string
	warning             *string
	current_step        *string
	step_index          *int
	addstep_index       *int
	total_cost_usd      *float64
	addtotal_cost_usd   *float64
	llm_calls           *int
	addllm_calls        *int
	report_path         *string
	report_metadata     *map[string]interface{}
	session_metadata    *map[string]interface{}
	created_by          *string
	pod_id              *string
	last_interaction_at *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ResearchSession, error)
	predicates          []predicate.ResearchSession
}

var _ ent.Mutation = (*ResearchSessionMutation)(nil)

// researchsessionOption allows management of the mutation configuration using functional options.
type researchsessionOption func(*ResearchSessionMutation)

// newResearchSessionMutation creates new mutation for the ResearchSession entity.
func newResearchSessionMutation(c config, op Op, opts ...researchsessionOption) *ResearchSessionMutation {
	m := &ResearchSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchSessionID sets the ID field of the mutation.
func withResearchSessionID(id string) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchSession
		)
		m.oldValue = func(ctx context.Context) (*ResearchSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchSession sets the old ResearchSession of the mutation.
func withResearchSession(node *ResearchSession) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		m.oldValue = func(context.Context) (*ResearchSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchSession entities.
func (m *ResearchSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuery sets the "query" field.
func (m *ResearchSessionMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *ResearchSessionMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *ResearchSessionMutation) ResetQuery() {
	m.query = nil
}

// SetRunID sets the "run_id" field.
func (m *ResearchSessionMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ResearchSessionMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ResearchSessionMutation) ResetRunID() {
	m.run_id = nil
}

// SetBudgetUsd sets the "budget_usd" field.
func (m *ResearchSessionMutation) SetBudgetUsd(f float64) {
	m.budget_usd = &f
	m.addbudget_usd = nil
}

// BudgetUsd returns the value of the "budget_usd" field in the mutation.
func (m *ResearchSessionMutation) BudgetUsd() (r float64, exists bool) {
	v := m.budget_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetUsd returns the old "budget_usd" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldBudgetUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetUsd: %w", err)
	}
	return oldValue.BudgetUsd, nil
}

// AddBudgetUsd adds f to the "budget_usd" field.
func (m *ResearchSessionMutation) AddBudgetUsd(f float64) {
	if m.addbudget_usd != nil {
		*m.addbudget_usd += f
	} else {
		m.addbudget_usd = &f
	}
}

// AddedBudgetUsd returns the value that was added to the "budget_usd" field in this mutation.
func (m *ResearchSessionMutation) AddedBudgetUsd() (r float64, exists bool) {
	v := m.addbudget_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearBudgetUsd clears the value of the "budget_usd" field.
func (m *ResearchSessionMutation) ClearBudgetUsd() {
	m.budget_usd = nil
	m.addbudget_usd = nil
	m.clearedFields[researchsession.FieldBudgetUsd] = struct{}{}
}

// BudgetUsdCleared returns if the "budget_usd" field was cleared in this mutation.
func (m *ResearchSessionMutation) BudgetUsdCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldBudgetUsd]
	return ok
}

// ResetBudgetUsd resets all changes to the "budget_usd" field.
func (m *ResearchSessionMutation) ResetBudgetUsd() {
	m.budget_usd = nil
	m.addbudget_usd = nil
	delete(m.clearedFields, researchsession.FieldBudgetUsd)
}

// SetOutputFormat sets the "output_format" field.
func (m *ResearchSessionMutation) SetOutputFormat(s string) {
	m.output_format = &s
}

// OutputFormat returns the value of the "output_format" field in the mutation.
func (m *ResearchSessionMutation) OutputFormat() (r string, exists bool) {
	v := m.output_format
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputFormat returns the old "output_format" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldOutputFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputFormat: %w", err)
	}
	return oldValue.OutputFormat, nil
}

// ClearOutputFormat clears the value of the "output_format" field.
func (m *ResearchSessionMutation) ClearOutputFormat() {
	m.output_format = nil
	m.clearedFields[researchsession.FieldOutputFormat] = struct{}{}
}

// OutputFormatCleared returns if the "output_format" field was cleared in this mutation.
func (m *ResearchSessionMutation) OutputFormatCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldOutputFormat]
	return ok
}

// ResetOutputFormat resets all changes to the "output_format" field.
func (m *ResearchSessionMutation) ResetOutputFormat() {
	m.output_format = nil
	delete(m.clearedFields, researchsession.FieldOutputFormat)
}

// SetStatus sets the "status" field.
func (m *ResearchSessionMutation) SetStatus(r researchsession.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResearchSessionMutation) Status() (r researchsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldStatus(ctx context.Context) (v researchsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResearchSessionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ResearchSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ResearchSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ResearchSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[researchsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ResearchSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, researchsession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ResearchSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ResearchSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ResearchSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[researchsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ResearchSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, researchsession.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ResearchSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ResearchSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ResearchSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[researchsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ResearchSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ResearchSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, researchsession.FieldErrorMessage)
}

// SetWarning sets the "warning" field.
func (m *ResearchSessionMutation) SetWarning(s string) {
	m.warning = &s
}

// Warning returns the value of the "warning" field in the mutation.
func (m *ResearchSessionMutation) Warning() (r string, exists bool) {
	v := m.warning
	if v == nil {
		return
	}
	return *v, true
}

// OldWarning returns the old "warning" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldWarning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarning: %w", err)
	}
	return oldValue.Warning, nil
}

// ClearWarning clears the value of the "warning" field.
func (m *ResearchSessionMutation) ClearWarning() {
	m.warning = nil
	m.clearedFields[researchsession.FieldWarning] = struct{}{}
}

// WarningCleared returns if the "warning" field was cleared in this mutation.
func (m *ResearchSessionMutation) WarningCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldWarning]
	return ok
}

// ResetWarning resets all changes to the "warning" field.
func (m *ResearchSessionMutation) ResetWarning() {
	m.warning = nil
	delete(m.clearedFields, researchsession.FieldWarning)
}

// SetCurrentStep sets the "current_step" field.
func (m *ResearchSessionMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *ResearchSessionMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCurrentStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *ResearchSessionMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[researchsession.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *ResearchSessionMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *ResearchSessionMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, researchsession.FieldCurrentStep)
}

// SetStepIndex sets the "step_index" field.
func (m *ResearchSessionMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *ResearchSessionMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldStepIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *ResearchSessionMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *ResearchSessionMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearStepIndex clears the value of the "step_index" field.
func (m *ResearchSessionMutation) ClearStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
	m.clearedFields[researchsession.FieldStepIndex] = struct{}{}
}

// StepIndexCleared returns if the "step_index" field was cleared in this mutation.
func (m *ResearchSessionMutation) StepIndexCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldStepIndex]
	return ok
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *ResearchSessionMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
	delete(m.clearedFields, researchsession.FieldStepIndex)
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (m *ResearchSessionMutation) SetTotalCostUsd(f float64) {
	m.total_cost_usd = &f
	m.addtotal_cost_usd = nil
}

// TotalCostUsd returns the value of the "total_cost_usd" field in the mutation.
func (m *ResearchSessionMutation) TotalCostUsd() (r float64, exists bool) {
	v := m.total_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCostUsd returns the old "total_cost_usd" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldTotalCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCostUsd: %w", err)
	}
	return oldValue.TotalCostUsd, nil
}

// AddTotalCostUsd adds f to the "total_cost_usd" field.
func (m *ResearchSessionMutation) AddTotalCostUsd(f float64) {
	if m.addtotal_cost_usd != nil {
		*m.addtotal_cost_usd += f
	} else {
		m.addtotal_cost_usd = &f
	}
}

// AddedTotalCostUsd returns the value that was added to the "total_cost_usd" field in this mutation.
func (m *ResearchSessionMutation) AddedTotalCostUsd() (r float64, exists bool) {
	v := m.addtotal_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCostUsd resets all changes to the "total_cost_usd" field.
func (m *ResearchSessionMutation) ResetTotalCostUsd() {
	m.total_cost_usd = nil
	m.addtotal_cost_usd = nil
}

// SetLlmCalls sets the "llm_calls" field.
func (m *ResearchSessionMutation) SetLlmCalls(i int) {
	m.llm_calls = &i
	m.addllm_calls = nil
}

// LlmCalls returns the value of the "llm_calls" field in the mutation.
func (m *ResearchSessionMutation) LlmCalls() (r int, exists bool) {
	v := m.llm_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmCalls returns the old "llm_calls" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldLlmCalls(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmCalls: %w", err)
	}
	return oldValue.LlmCalls, nil
}

// AddLlmCalls adds i to the "llm_calls" field.
func (m *ResearchSessionMutation) AddLlmCalls(i int) {
	if m.addllm_calls != nil {
		*m.addllm_calls += i
	} else {
		m.addllm_calls = &i
	}
}

// AddedLlmCalls returns the value that was added to the "llm_calls" field in this mutation.
func (m *ResearchSessionMutation) AddedLlmCalls() (r int, exists bool) {
	v := m.addllm_calls
	if v == nil {
		return
	}
	return *v, true
}

// ResetLlmCalls resets all changes to the "llm_calls" field.
func (m *ResearchSessionMutation) ResetLlmCalls() {
	m.llm_calls = nil
	m.addllm_calls = nil
}

// SetReportPath sets the "report_path" field.
func (m *ResearchSessionMutation) SetReportPath(s string) {
	m.report_path = &s
}

// ReportPath returns the value of the "report_path" field in the mutation.
func (m *ResearchSessionMutation) ReportPath() (r string, exists bool) {
	v := m.report_path
	if v == nil {
		return
	}
	return *v, true
}

// OldReportPath returns the old "report_path" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldReportPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportPath: %w", err)
	}
	return oldValue.ReportPath, nil
}

// ClearReportPath clears the value of the "report_path" field.
func (m *ResearchSessionMutation) ClearReportPath() {
	m.report_path = nil
	m.clearedFields[researchsession.FieldReportPath] = struct{}{}
}

// ReportPathCleared returns if the "report_path" field was cleared in this mutation.
func (m *ResearchSessionMutation) ReportPathCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldReportPath]
	return ok
}

// ResetReportPath resets all changes to the "report_path" field.
func (m *ResearchSessionMutation) ResetReportPath() {
	m.report_path = nil
	delete(m.clearedFields, researchsession.FieldReportPath)
}

// SetReportMetadata sets the "report_metadata" field.
func (m *ResearchSessionMutation) SetReportMetadata(value map[string]interface{}) {
	m.report_metadata = &value
}

// ReportMetadata returns the value of the "report_metadata" field in the mutation.
func (m *ResearchSessionMutation) ReportMetadata() (r map[string]interface{}, exists bool) {
	v := m.report_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldReportMetadata returns the old "report_metadata" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldReportMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportMetadata: %w", err)
	}
	return oldValue.ReportMetadata, nil
}

// ClearReportMetadata clears the value of the "report_metadata" field.
func (m *ResearchSessionMutation) ClearReportMetadata() {
	m.report_metadata = nil
	m.clearedFields[researchsession.FieldReportMetadata] = struct{}{}
}

// ReportMetadataCleared returns if the "report_metadata" field was cleared in this mutation.
func (m *ResearchSessionMutation) ReportMetadataCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldReportMetadata]
	return ok
}

// ResetReportMetadata resets all changes to the "report_metadata" field.
func (m *ResearchSessionMutation) ResetReportMetadata() {
	m.report_metadata = nil
	delete(m.clearedFields, researchsession.FieldReportMetadata)
}

// SetSessionMetadata sets the "session_metadata" field.
func (m *ResearchSessionMutation) SetSessionMetadata(value map[string]interface{}) {
	m.session_metadata = &value
}

// SessionMetadata returns the value of the "session_metadata" field in the mutation.
func (m *ResearchSessionMutation) SessionMetadata() (r map[string]interface{}, exists bool) {
	v := m.session_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMetadata returns the old "session_metadata" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldSessionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMetadata: %w", err)
	}
	return oldValue.SessionMetadata, nil
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (m *ResearchSessionMutation) ClearSessionMetadata() {
	m.session_metadata = nil
	m.clearedFields[researchsession.FieldSessionMetadata] = struct{}{}
}

// SessionMetadataCleared returns if the "session_metadata" field was cleared in this mutation.
func (m *ResearchSessionMutation) SessionMetadataCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldSessionMetadata]
	return ok
}

// ResetSessionMetadata resets all changes to the "session_metadata" field.
func (m *ResearchSessionMutation) ResetSessionMetadata() {
	m.session_metadata = nil
	delete(m.clearedFields, researchsession.FieldSessionMetadata)
}

// SetCreatedBy sets the "created_by" field.
func (m *ResearchSessionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ResearchSessionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ResearchSessionMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[researchsession.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ResearchSessionMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ResearchSessionMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, researchsession.FieldCreatedBy)
}

// SetPodID sets the "pod_id" field.
func (m *ResearchSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ResearchSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ResearchSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[researchsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ResearchSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ResearchSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, researchsession.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ResearchSessionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ResearchSessionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ResearchSessionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[researchsession.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ResearchSessionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, researchsession.FieldLastInteractionAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ResearchSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ResearchSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ResearchSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[researchsession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ResearchSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ResearchSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, researchsession.FieldDeletedAt)
}

// Where appends a list predicates to the ResearchSessionMutation builder.
func (m *ResearchSessionMutation) Where(ps ...predicate.ResearchSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchSession).
func (m *ResearchSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchSessionMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.query != nil {
		fields = append(fields, researchsession.FieldQuery)
	}
	if m.run_id != nil {
		fields = append(fields, researchsession.FieldRunID)
	}
	if m.budget_usd != nil {
		fields = append(fields, researchsession.FieldBudgetUsd)
	}
	if m.output_format != nil {
		fields = append(fields, researchsession.FieldOutputFormat)
	}
	if m.status != nil {
		fields = append(fields, researchsession.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, researchsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, researchsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, researchsession.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, researchsession.FieldErrorMessage)
	}
	if m.warning != nil {
		fields = append(fields, researchsession.FieldWarning)
	}
	if m.current_step != nil {
		fields = append(fields, researchsession.FieldCurrentStep)
	}
	if m.step_index != nil {
		fields = append(fields, researchsession.FieldStepIndex)
	}
	if m.total_cost_usd != nil {
		fields = append(fields, researchsession.FieldTotalCostUsd)
	}
	if m.llm_calls != nil {
		fields = append(fields, researchsession.FieldLlmCalls)
	}
	if m.report_path != nil {
		fields = append(fields, researchsession.FieldReportPath)
	}
	if m.report_metadata != nil {
		fields = append(fields, researchsession.FieldReportMetadata)
	}
	if m.session_metadata != nil {
		fields = append(fields, researchsession.FieldSessionMetadata)
	}
	if m.created_by != nil {
		fields = append(fields, researchsession.FieldCreatedBy)
	}
	if m.pod_id != nil {
		fields = append(fields, researchsession.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, researchsession.FieldLastInteractionAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, researchsession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchsession.FieldQuery:
		return m.Query()
	case researchsession.FieldRunID:
		return m.RunID()
	case researchsession.FieldBudgetUsd:
		return m.BudgetUsd()
	case researchsession.FieldOutputFormat:
		return m.OutputFormat()
	case researchsession.FieldStatus:
		return m.Status()
	case researchsession.FieldCreatedAt:
		return m.CreatedAt()
	case researchsession.FieldStartedAt:
		return m.StartedAt()
	case researchsession.FieldCompletedAt:
		return m.CompletedAt()
	case researchsession.FieldErrorMessage:
		return m.ErrorMessage()
	case researchsession.FieldWarning:
		return m.Warning()
	case researchsession.FieldCurrentStep:
		return m.CurrentStep()
	case researchsession.FieldStepIndex:
		return m.StepIndex()
	case researchsession.FieldTotalCostUsd:
		return m.TotalCostUsd()
	case researchsession.FieldLlmCalls:
		return m.LlmCalls()
	case researchsession.FieldReportPath:
		return m.ReportPath()
	case researchsession.FieldReportMetadata:
		return m.ReportMetadata()
	case researchsession.FieldSessionMetadata:
		return m.SessionMetadata()
	case researchsession.FieldCreatedBy:
		return m.CreatedBy()
	case researchsession.FieldPodID:
		return m.PodID()
	case researchsession.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case researchsession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchsession.FieldQuery:
		return m.OldQuery(ctx)
	case researchsession.FieldRunID:
		return m.OldRunID(ctx)
	case researchsession.FieldBudgetUsd:
		return m.OldBudgetUsd(ctx)
	case researchsession.FieldOutputFormat:
		return m.OldOutputFormat(ctx)
	case researchsession.FieldStatus:
		return m.OldStatus(ctx)
	case researchsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case researchsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case researchsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case researchsession.FieldWarning:
		return m.OldWarning(ctx)
	case researchsession.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case researchsession.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case researchsession.FieldTotalCostUsd:
		return m.OldTotalCostUsd(ctx)
	case researchsession.FieldLlmCalls:
		return m.OldLlmCalls(ctx)
	case researchsession.FieldReportPath:
		return m.OldReportPath(ctx)
	case researchsession.FieldReportMetadata:
		return m.OldReportMetadata(ctx)
	case researchsession.FieldSessionMetadata:
		return m.OldSessionMetadata(ctx)
	case researchsession.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case researchsession.FieldPodID:
		return m.OldPodID(ctx)
	case researchsession.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case researchsession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchsession.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case researchsession.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case researchsession.FieldBudgetUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetUsd(v)
		return nil
	case researchsession.FieldOutputFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputFormat(v)
		return nil
	case researchsession.FieldStatus:
		v, ok := value.(researchsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case researchsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case researchsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case researchsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case researchsession.FieldWarning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarning(v)
		return nil
	case researchsession.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case researchsession.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case researchsession.FieldTotalCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCostUsd(v)
		return nil
	case researchsession.FieldLlmCalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmCalls(v)
		return nil
	case researchsession.FieldReportPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportPath(v)
		return nil
	case researchsession.FieldReportMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportMetadata(v)
		return nil
	case researchsession.FieldSessionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMetadata(v)
		return nil
	case researchsession.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case researchsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case researchsession.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case researchsession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchSessionMutation) AddedFields() []string {
	var fields []string
	if m.addbudget_usd != nil {
		fields = append(fields, researchsession.FieldBudgetUsd)
	}
	if m.addstep_index != nil {
		fields = append(fields, researchsession.FieldStepIndex)
	}
	if m.addtotal_cost_usd != nil {
		fields = append(fields, researchsession.FieldTotalCostUsd)
	}
	if m.addllm_calls != nil {
		fields = append(fields, researchsession.FieldLlmCalls)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchsession.FieldBudgetUsd:
		return m.AddedBudgetUsd()
	case researchsession.FieldStepIndex:
		return m.AddedStepIndex()
	case researchsession.FieldTotalCostUsd:
		return m.AddedTotalCostUsd()
	case researchsession.FieldLlmCalls:
		return m.AddedLlmCalls()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchsession.FieldBudgetUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetUsd(v)
		return nil
	case researchsession.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	case researchsession.FieldTotalCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCostUsd(v)
		return nil
	case researchsession.FieldLlmCalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLlmCalls(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchsession.FieldBudgetUsd) {
		fields = append(fields, researchsession.FieldBudgetUsd)
	}
	if m.FieldCleared(researchsession.FieldOutputFormat) {
		fields = append(fields, researchsession.FieldOutputFormat)
	}
	if m.FieldCleared(researchsession.FieldStartedAt) {
		fields = append(fields, researchsession.FieldStartedAt)
	}
	if m.FieldCleared(researchsession.FieldCompletedAt) {
		fields = append(fields, researchsession.FieldCompletedAt)
	}
	if m.FieldCleared(researchsession.FieldErrorMessage) {
		fields = append(fields, researchsession.FieldErrorMessage)
	}
	if m.FieldCleared(researchsession.FieldWarning) {
		fields = append(fields, researchsession.FieldWarning)
	}
	if m.FieldCleared(researchsession.FieldCurrentStep) {
		fields = append(fields, researchsession.FieldCurrentStep)
	}
	if m.FieldCleared(researchsession.FieldStepIndex) {
		fields = append(fields, researchsession.FieldStepIndex)
	}
	if m.FieldCleared(researchsession.FieldReportPath) {
		fields = append(fields, researchsession.FieldReportPath)
	}
	if m.FieldCleared(researchsession.FieldReportMetadata) {
		fields = append(fields, researchsession.FieldReportMetadata)
	}
	if m.FieldCleared(researchsession.FieldSessionMetadata) {
		fields = append(fields, researchsession.FieldSessionMetadata)
	}
	if m.FieldCleared(researchsession.FieldCreatedBy) {
		fields = append(fields, researchsession.FieldCreatedBy)
	}
	if m.FieldCleared(researchsession.FieldPodID) {
		fields = append(fields, researchsession.FieldPodID)
	}
	if m.FieldCleared(researchsession.FieldLastInteractionAt) {
		fields = append(fields, researchsession.FieldLastInteractionAt)
	}
	if m.FieldCleared(researchsession.FieldDeletedAt) {
		fields = append(fields, researchsession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ClearField(name string) error {
	switch name {
	case researchsession.FieldBudgetUsd:
		m.ClearBudgetUsd()
		return nil
	case researchsession.FieldOutputFormat:
		m.ClearOutputFormat()
		return nil
	case researchsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case researchsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case researchsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case researchsession.FieldWarning:
		m.ClearWarning()
		return nil
	case researchsession.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case researchsession.FieldStepIndex:
		m.ClearStepIndex()
		return nil
	case researchsession.FieldReportPath:
		m.ClearReportPath()
		return nil
	case researchsession.FieldReportMetadata:
		m.ClearReportMetadata()
		return nil
	case researchsession.FieldSessionMetadata:
		m.ClearSessionMetadata()
		return nil
	case researchsession.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case researchsession.FieldPodID:
		m.ClearPodID()
		return nil
	case researchsession.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case researchsession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ResetField(name string) error {
	switch name {
	case researchsession.FieldQuery:
		m.ResetQuery()
		return nil
	case researchsession.FieldRunID:
		m.ResetRunID()
		return nil
	case researchsession.FieldBudgetUsd:
		m.ResetBudgetUsd()
		return nil
	case researchsession.FieldOutputFormat:
		m.ResetOutputFormat()
		return nil
	case researchsession.FieldStatus:
		m.ResetStatus()
		return nil
	case researchsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case researchsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case researchsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case researchsession.FieldWarning:
		m.ResetWarning()
		return nil
	case researchsession.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case researchsession.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case researchsession.FieldTotalCostUsd:
		m.ResetTotalCostUsd()
		return nil
	case researchsession.FieldLlmCalls:
		m.ResetLlmCalls()
		return nil
	case researchsession.FieldReportPath:
		m.ResetReportPath()
		return nil
	case researchsession.FieldReportMetadata:
		m.ResetReportMetadata()
		return nil
	case researchsession.FieldSessionMetadata:
		m.ResetSessionMetadata()
		return nil
	case researchsession.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case researchsession.FieldPodID:
		m.ResetPodID()
		return nil
	case researchsession.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case researchsession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResearchSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResearchSession edge %s", name)
}
