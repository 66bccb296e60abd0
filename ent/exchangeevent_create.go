// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/socralabs/socra/ent/exchangeevent"
)

// ExchangeEventCreate is the builder for creating a ExchangeEvent entity.
type ExchangeEventCreate struct {
	config
	mutation *ExchangeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExchangeEventCreate) SetSequence(v int64) *ExchangeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExchangeEventCreate) SetTimestamp(v time.Time) *ExchangeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableTimestamp(v *time.Time) *ExchangeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExchangeEventCreate) SetSessionID(v string) *ExchangeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ExchangeEventCreate) SetConceptID(v string) *ExchangeEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ExchangeEventCreate) SetRole(v string) *ExchangeEventCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ExchangeEventCreate) SetText(v string) *ExchangeEventCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetExample sets the "example" field.
func (_c *ExchangeEventCreate) SetExample(v string) *ExchangeEventCreate {
	_c.mutation.SetExample(v)
	return _c
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableExample(v *string) *ExchangeEventCreate {
	if v != nil {
		_c.SetExample(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ExchangeEventCreate) SetGrade(v string) *ExchangeEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableGrade(v *string) *ExchangeEventCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetAppliesTransfer sets the "applies_transfer" field.
func (_c *ExchangeEventCreate) SetAppliesTransfer(v bool) *ExchangeEventCreate {
	_c.mutation.SetAppliesTransfer(v)
	return _c
}

// SetNillableAppliesTransfer sets the "applies_transfer" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableAppliesTransfer(v *bool) *ExchangeEventCreate {
	if v != nil {
		_c.SetAppliesTransfer(*v)
	}
	return _c
}

// SetProbe sets the "probe" field.
func (_c *ExchangeEventCreate) SetProbe(v string) *ExchangeEventCreate {
	_c.mutation.SetProbe(v)
	return _c
}

// SetNillableProbe sets the "probe" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableProbe(v *string) *ExchangeEventCreate {
	if v != nil {
		_c.SetProbe(*v)
	}
	return _c
}

// SetDepth sets the "depth" field.
func (_c *ExchangeEventCreate) SetDepth(v int) *ExchangeEventCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableDepth(v *int) *ExchangeEventCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetSimplified sets the "simplified" field.
func (_c *ExchangeEventCreate) SetSimplified(v bool) *ExchangeEventCreate {
	_c.mutation.SetSimplified(v)
	return _c
}

// SetNillableSimplified sets the "simplified" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableSimplified(v *bool) *ExchangeEventCreate {
	if v != nil {
		_c.SetSimplified(*v)
	}
	return _c
}

// SetTransfer sets the "transfer" field.
func (_c *ExchangeEventCreate) SetTransfer(v bool) *ExchangeEventCreate {
	_c.mutation.SetTransfer(v)
	return _c
}

// SetNillableTransfer sets the "transfer" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableTransfer(v *bool) *ExchangeEventCreate {
	if v != nil {
		_c.SetTransfer(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ExchangeEventCreate) SetDecision(v string) *ExchangeEventCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_c *ExchangeEventCreate) SetNillableDecision(v *string) *ExchangeEventCreate {
	if v != nil {
		_c.SetDecision(*v)
	}
	return _c
}

// Mutation returns the ExchangeEventMutation object of the builder.
func (_c *ExchangeEventCreate) Mutation() *ExchangeEventMutation {
	return _c.mutation
}

// Save creates the ExchangeEvent in the database.
func (_c *ExchangeEventCreate) Save(ctx context.Context) (*ExchangeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExchangeEventCreate) SaveX(ctx context.Context) *ExchangeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExchangeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExchangeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExchangeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := exchangeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Example(); !ok {
		v := exchangeevent.DefaultExample
		_c.mutation.SetExample(v)
	}
	if _, ok := _c.mutation.Grade(); !ok {
		v := exchangeevent.DefaultGrade
		_c.mutation.SetGrade(v)
	}
	if _, ok := _c.mutation.AppliesTransfer(); !ok {
		v := exchangeevent.DefaultAppliesTransfer
		_c.mutation.SetAppliesTransfer(v)
	}
	if _, ok := _c.mutation.Probe(); !ok {
		v := exchangeevent.DefaultProbe
		_c.mutation.SetProbe(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := exchangeevent.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.Simplified(); !ok {
		v := exchangeevent.DefaultSimplified
		_c.mutation.SetSimplified(v)
	}
	if _, ok := _c.mutation.Transfer(); !ok {
		v := exchangeevent.DefaultTransfer
		_c.mutation.SetTransfer(v)
	}
	if _, ok := _c.mutation.Decision(); !ok {
		v := exchangeevent.DefaultDecision
		_c.mutation.SetDecision(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExchangeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExchangeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExchangeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExchangeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := exchangeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ExchangeEvent.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := exchangeevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ExchangeEvent.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := exchangeevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ExchangeEvent.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := exchangeevent.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ExchangeEvent.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Example(); !ok {
		return &ValidationError{Name: "example", err: errors.New(`ent: missing required field "ExchangeEvent.example"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "ExchangeEvent.grade"`)}
	}
	if _, ok := _c.mutation.AppliesTransfer(); !ok {
		return &ValidationError{Name: "applies_transfer", err: errors.New(`ent: missing required field "ExchangeEvent.applies_transfer"`)}
	}
	if _, ok := _c.mutation.Probe(); !ok {
		return &ValidationError{Name: "probe", err: errors.New(`ent: missing required field "ExchangeEvent.probe"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "ExchangeEvent.depth"`)}
	}
	if _, ok := _c.mutation.Simplified(); !ok {
		return &ValidationError{Name: "simplified", err: errors.New(`ent: missing required field "ExchangeEvent.simplified"`)}
	}
	if _, ok := _c.mutation.Transfer(); !ok {
		return &ValidationError{Name: "transfer", err: errors.New(`ent: missing required field "ExchangeEvent.transfer"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ExchangeEvent.decision"`)}
	}
	return nil
}

func (_c *ExchangeEventCreate) sqlSave(ctx context.Context) (*ExchangeEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExchangeEventCreate) createSpec() (*ExchangeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExchangeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exchangeevent.Table, sqlgraph.NewFieldSpec(exchangeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(exchangeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(exchangeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(exchangeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(exchangeevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(exchangeevent.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(exchangeevent.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Example(); ok {
		_spec.SetField(exchangeevent.FieldExample, field.TypeString, value)
		_node.Example = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(exchangeevent.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.AppliesTransfer(); ok {
		_spec.SetField(exchangeevent.FieldAppliesTransfer, field.TypeBool, value)
		_node.AppliesTransfer = value
	}
	if value, ok := _c.mutation.Probe(); ok {
		_spec.SetField(exchangeevent.FieldProbe, field.TypeString, value)
		_node.Probe = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(exchangeevent.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.Simplified(); ok {
		_spec.SetField(exchangeevent.FieldSimplified, field.TypeBool, value)
		_node.Simplified = value
	}
	if value, ok := _c.mutation.Transfer(); ok {
		_spec.SetField(exchangeevent.FieldTransfer, field.TypeBool, value)
		_node.Transfer = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(exchangeevent.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	return _node, _spec
}

// ExchangeEventCreateBulk is the builder for creating many ExchangeEvent entities in bulk.
type ExchangeEventCreateBulk struct {
	config
	err      error
	builders []*ExchangeEventCreate
}

// Save creates the ExchangeEvent entities in the database.
func (_c *ExchangeEventCreateBulk) Save(ctx context.Context) ([]*ExchangeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExchangeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExchangeEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ExchangeEventCreateBulk) SaveX(ctx context.Context) []*ExchangeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExchangeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExchangeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
