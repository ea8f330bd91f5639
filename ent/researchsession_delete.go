// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dmhernandez2525/research-agent-sub001/ent/predicate"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
)

// ResearchSessionDelete is the builder for deleting a ResearchSession entity.
type ResearchSessionDelete struct {
	config
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// Where appends a list predicates to the ResearchSessionDelete builder.
func (_d *ResearchSessionDelete) Where(ps ...predicate.ResearchSession) *ResearchSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ResearchSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResearchSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ResearchSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(researchsession.Table, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ResearchSessionDeleteOne is the builder for deleting a single ResearchSession entity.
type ResearchSessionDeleteOne struct {
	_d *ResearchSessionDelete
}

// Where appends a list predicates to the ResearchSessionDelete builder.
func (_d *ResearchSessionDeleteOne) Where(ps ...predicate.ResearchSession) *ResearchSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ResearchSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{researchsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResearchSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
