// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/socralabs/socra/ent/oraclerequestevent"
	"github.com/socralabs/socra/ent/predicate"
)

// OracleRequestEventDelete is the builder for deleting a OracleRequestEvent entity.
type OracleRequestEventDelete struct {
	config
	hooks    []Hook
	mutation *OracleRequestEventMutation
}

// Where appends a list predicates to the OracleRequestEventDelete builder.
func (_d *OracleRequestEventDelete) Where(ps ...predicate.OracleRequestEvent) *OracleRequestEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OracleRequestEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OracleRequestEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OracleRequestEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(oraclerequestevent.Table, sqlgraph.NewFieldSpec(oraclerequestevent.FieldID, field.TypeInt))
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

// OracleRequestEventDeleteOne is the builder for deleting a single OracleRequestEvent entity.
type OracleRequestEventDeleteOne struct {
	_d *OracleRequestEventDelete
}

// Where appends a list predicates to the OracleRequestEventDelete builder.
func (_d *OracleRequestEventDeleteOne) Where(ps ...predicate.OracleRequestEvent) *OracleRequestEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OracleRequestEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{oraclerequestevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OracleRequestEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
