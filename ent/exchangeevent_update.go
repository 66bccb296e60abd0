// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/socralabs/socra/ent/exchangeevent"
	"github.com/socralabs/socra/ent/predicate"
)

// ExchangeEventUpdate is the builder for updating ExchangeEvent entities.
type ExchangeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExchangeEventMutation
}

// Where appends a list predicates to the ExchangeEventUpdate builder.
func (_u *ExchangeEventUpdate) Where(ps ...predicate.ExchangeEvent) *ExchangeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExchangeEventUpdate) SetSessionID(v string) *ExchangeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableSessionID(v *string) *ExchangeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ExchangeEventUpdate) SetConceptID(v string) *ExchangeEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableConceptID(v *string) *ExchangeEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ExchangeEventUpdate) SetRole(v string) *ExchangeEventUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableRole(v *string) *ExchangeEventUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ExchangeEventUpdate) SetText(v string) *ExchangeEventUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableText(v *string) *ExchangeEventUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetExample sets the "example" field.
func (_u *ExchangeEventUpdate) SetExample(v string) *ExchangeEventUpdate {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableExample(v *string) *ExchangeEventUpdate {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ExchangeEventUpdate) SetGrade(v string) *ExchangeEventUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableGrade(v *string) *ExchangeEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetAppliesTransfer sets the "applies_transfer" field.
func (_u *ExchangeEventUpdate) SetAppliesTransfer(v bool) *ExchangeEventUpdate {
	_u.mutation.SetAppliesTransfer(v)
	return _u
}

// SetNillableAppliesTransfer sets the "applies_transfer" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableAppliesTransfer(v *bool) *ExchangeEventUpdate {
	if v != nil {
		_u.SetAppliesTransfer(*v)
	}
	return _u
}

// SetProbe sets the "probe" field.
func (_u *ExchangeEventUpdate) SetProbe(v string) *ExchangeEventUpdate {
	_u.mutation.SetProbe(v)
	return _u
}

// SetNillableProbe sets the "probe" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableProbe(v *string) *ExchangeEventUpdate {
	if v != nil {
		_u.SetProbe(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ExchangeEventUpdate) SetDepth(v int) *ExchangeEventUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableDepth(v *int) *ExchangeEventUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ExchangeEventUpdate) AddDepth(v int) *ExchangeEventUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetSimplified sets the "simplified" field.
func (_u *ExchangeEventUpdate) SetSimplified(v bool) *ExchangeEventUpdate {
	_u.mutation.SetSimplified(v)
	return _u
}

// SetNillableSimplified sets the "simplified" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableSimplified(v *bool) *ExchangeEventUpdate {
	if v != nil {
		_u.SetSimplified(*v)
	}
	return _u
}

// SetTransfer sets the "transfer" field.
func (_u *ExchangeEventUpdate) SetTransfer(v bool) *ExchangeEventUpdate {
	_u.mutation.SetTransfer(v)
	return _u
}

// SetNillableTransfer sets the "transfer" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableTransfer(v *bool) *ExchangeEventUpdate {
	if v != nil {
		_u.SetTransfer(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ExchangeEventUpdate) SetDecision(v string) *ExchangeEventUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ExchangeEventUpdate) SetNillableDecision(v *string) *ExchangeEventUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// Mutation returns the ExchangeEventMutation object of the builder.
func (_u *ExchangeEventUpdate) Mutation() *ExchangeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExchangeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExchangeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExchangeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExchangeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExchangeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := exchangeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := exchangeevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := exchangeevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := exchangeevent.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.text": %w`, err)}
		}
	}
	return nil
}

func (_u *ExchangeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exchangeevent.Table, exchangeevent.Columns, sqlgraph.NewFieldSpec(exchangeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(exchangeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(exchangeevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(exchangeevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(exchangeevent.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(exchangeevent.FieldExample, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(exchangeevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppliesTransfer(); ok {
		_spec.SetField(exchangeevent.FieldAppliesTransfer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Probe(); ok {
		_spec.SetField(exchangeevent.FieldProbe, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(exchangeevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(exchangeevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Simplified(); ok {
		_spec.SetField(exchangeevent.FieldSimplified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Transfer(); ok {
		_spec.SetField(exchangeevent.FieldTransfer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(exchangeevent.FieldDecision, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exchangeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExchangeEventUpdateOne is the builder for updating a single ExchangeEvent entity.
type ExchangeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExchangeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ExchangeEventUpdateOne) SetSessionID(v string) *ExchangeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableSessionID(v *string) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ExchangeEventUpdateOne) SetConceptID(v string) *ExchangeEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableConceptID(v *string) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ExchangeEventUpdateOne) SetRole(v string) *ExchangeEventUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableRole(v *string) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ExchangeEventUpdateOne) SetText(v string) *ExchangeEventUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableText(v *string) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetExample sets the "example" field.
func (_u *ExchangeEventUpdateOne) SetExample(v string) *ExchangeEventUpdateOne {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableExample(v *string) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ExchangeEventUpdateOne) SetGrade(v string) *ExchangeEventUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableGrade(v *string) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetAppliesTransfer sets the "applies_transfer" field.
func (_u *ExchangeEventUpdateOne) SetAppliesTransfer(v bool) *ExchangeEventUpdateOne {
	_u.mutation.SetAppliesTransfer(v)
	return _u
}

// SetNillableAppliesTransfer sets the "applies_transfer" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableAppliesTransfer(v *bool) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetAppliesTransfer(*v)
	}
	return _u
}

// SetProbe sets the "probe" field.
func (_u *ExchangeEventUpdateOne) SetProbe(v string) *ExchangeEventUpdateOne {
	_u.mutation.SetProbe(v)
	return _u
}

// SetNillableProbe sets the "probe" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableProbe(v *string) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetProbe(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ExchangeEventUpdateOne) SetDepth(v int) *ExchangeEventUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableDepth(v *int) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ExchangeEventUpdateOne) AddDepth(v int) *ExchangeEventUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetSimplified sets the "simplified" field.
func (_u *ExchangeEventUpdateOne) SetSimplified(v bool) *ExchangeEventUpdateOne {
	_u.mutation.SetSimplified(v)
	return _u
}

// SetNillableSimplified sets the "simplified" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableSimplified(v *bool) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetSimplified(*v)
	}
	return _u
}

// SetTransfer sets the "transfer" field.
func (_u *ExchangeEventUpdateOne) SetTransfer(v bool) *ExchangeEventUpdateOne {
	_u.mutation.SetTransfer(v)
	return _u
}

// SetNillableTransfer sets the "transfer" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableTransfer(v *bool) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetTransfer(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ExchangeEventUpdateOne) SetDecision(v string) *ExchangeEventUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ExchangeEventUpdateOne) SetNillableDecision(v *string) *ExchangeEventUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// Mutation returns the ExchangeEventMutation object of the builder.
func (_u *ExchangeEventUpdateOne) Mutation() *ExchangeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExchangeEventUpdate builder.
func (_u *ExchangeEventUpdateOne) Where(ps ...predicate.ExchangeEvent) *ExchangeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExchangeEventUpdateOne) Select(field string, fields ...string) *ExchangeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExchangeEvent entity.
func (_u *ExchangeEventUpdateOne) Save(ctx context.Context) (*ExchangeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExchangeEventUpdateOne) SaveX(ctx context.Context) *ExchangeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExchangeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExchangeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExchangeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := exchangeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := exchangeevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := exchangeevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := exchangeevent.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.text": %w`, err)}
		}
	}
	return nil
}

func (_u *ExchangeEventUpdateOne) sqlSave(ctx context.Context) (_node *ExchangeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exchangeevent.Table, exchangeevent.Columns, sqlgraph.NewFieldSpec(exchangeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExchangeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exchangeevent.FieldID)
		for _, f := range fields {
			if !exchangeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exchangeevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(exchangeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(exchangeevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(exchangeevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(exchangeevent.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(exchangeevent.FieldExample, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(exchangeevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppliesTransfer(); ok {
		_spec.SetField(exchangeevent.FieldAppliesTransfer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Probe(); ok {
		_spec.SetField(exchangeevent.FieldProbe, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(exchangeevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(exchangeevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Simplified(); ok {
		_spec.SetField(exchangeevent.FieldSimplified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Transfer(); ok {
		_spec.SetField(exchangeevent.FieldTransfer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(exchangeevent.FieldDecision, field.TypeString, value)
	}
	_node = &ExchangeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exchangeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
