// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/socralabs/socra/ent/conceptevent"
	"github.com/socralabs/socra/ent/predicate"
)

// ConceptEventUpdate is the builder for updating ConceptEvent entities.
type ConceptEventUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptEventMutation
}

// Where appends a list predicates to the ConceptEventUpdate builder.
func (_u *ConceptEventUpdate) Where(ps ...predicate.ConceptEvent) *ConceptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptEventUpdate) SetConceptID(v string) *ConceptEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptEventUpdate) SetNillableConceptID(v *string) *ConceptEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *ConceptEventUpdate) SetFromStatus(v string) *ConceptEventUpdate {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *ConceptEventUpdate) SetNillableFromStatus(v *string) *ConceptEventUpdate {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *ConceptEventUpdate) SetToStatus(v string) *ConceptEventUpdate {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *ConceptEventUpdate) SetNillableToStatus(v *string) *ConceptEventUpdate {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ConceptEventUpdate) SetTrigger(v string) *ConceptEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ConceptEventUpdate) SetNillableTrigger(v *string) *ConceptEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ConceptEventUpdate) SetDepth(v int) *ConceptEventUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ConceptEventUpdate) SetNillableDepth(v *int) *ConceptEventUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ConceptEventUpdate) AddDepth(v int) *ConceptEventUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ConceptEventUpdate) SetSessionID(v string) *ConceptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ConceptEventUpdate) SetNillableSessionID(v *string) *ConceptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ConceptEventUpdate) ClearSessionID() *ConceptEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ConceptEventMutation object of the builder.
func (_u *ConceptEventUpdate) Mutation() *ConceptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptEventUpdate) check() error {
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := conceptevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromStatus(); ok {
		if err := conceptevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.from_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToStatus(); ok {
		if err := conceptevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.to_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := conceptevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptevent.Table, conceptevent.Columns, sqlgraph.NewFieldSpec(conceptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(conceptevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(conceptevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(conceptevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(conceptevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(conceptevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(conceptevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(conceptevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(conceptevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptEventUpdateOne is the builder for updating a single ConceptEvent entity.
type ConceptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptEventMutation
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptEventUpdateOne) SetConceptID(v string) *ConceptEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptEventUpdateOne) SetNillableConceptID(v *string) *ConceptEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *ConceptEventUpdateOne) SetFromStatus(v string) *ConceptEventUpdateOne {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *ConceptEventUpdateOne) SetNillableFromStatus(v *string) *ConceptEventUpdateOne {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *ConceptEventUpdateOne) SetToStatus(v string) *ConceptEventUpdateOne {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *ConceptEventUpdateOne) SetNillableToStatus(v *string) *ConceptEventUpdateOne {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ConceptEventUpdateOne) SetTrigger(v string) *ConceptEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ConceptEventUpdateOne) SetNillableTrigger(v *string) *ConceptEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ConceptEventUpdateOne) SetDepth(v int) *ConceptEventUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ConceptEventUpdateOne) SetNillableDepth(v *int) *ConceptEventUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ConceptEventUpdateOne) AddDepth(v int) *ConceptEventUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ConceptEventUpdateOne) SetSessionID(v string) *ConceptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ConceptEventUpdateOne) SetNillableSessionID(v *string) *ConceptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ConceptEventUpdateOne) ClearSessionID() *ConceptEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ConceptEventMutation object of the builder.
func (_u *ConceptEventUpdateOne) Mutation() *ConceptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptEventUpdate builder.
func (_u *ConceptEventUpdateOne) Where(ps ...predicate.ConceptEvent) *ConceptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptEventUpdateOne) Select(field string, fields ...string) *ConceptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptEvent entity.
func (_u *ConceptEventUpdateOne) Save(ctx context.Context) (*ConceptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptEventUpdateOne) SaveX(ctx context.Context) *ConceptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptEventUpdateOne) check() error {
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := conceptevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromStatus(); ok {
		if err := conceptevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.from_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToStatus(); ok {
		if err := conceptevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.to_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := conceptevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptEventUpdateOne) sqlSave(ctx context.Context) (_node *ConceptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptevent.Table, conceptevent.Columns, sqlgraph.NewFieldSpec(conceptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptevent.FieldID)
		for _, f := range fields {
			if !conceptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptevent.FieldID {
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
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(conceptevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(conceptevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(conceptevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(conceptevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(conceptevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(conceptevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(conceptevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(conceptevent.FieldSessionID, field.TypeString)
	}
	_node = &ConceptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
