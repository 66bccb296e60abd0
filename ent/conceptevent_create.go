// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/socralabs/socra/ent/conceptevent"
)

// ConceptEventCreate is the builder for creating a ConceptEvent entity.
type ConceptEventCreate struct {
	config
	mutation *ConceptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ConceptEventCreate) SetSequence(v int64) *ConceptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ConceptEventCreate) SetTimestamp(v time.Time) *ConceptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ConceptEventCreate) SetNillableTimestamp(v *time.Time) *ConceptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ConceptEventCreate) SetConceptID(v string) *ConceptEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetFromStatus sets the "from_status" field.
func (_c *ConceptEventCreate) SetFromStatus(v string) *ConceptEventCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *ConceptEventCreate) SetToStatus(v string) *ConceptEventCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *ConceptEventCreate) SetTrigger(v string) *ConceptEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *ConceptEventCreate) SetDepth(v int) *ConceptEventCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *ConceptEventCreate) SetNillableDepth(v *int) *ConceptEventCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ConceptEventCreate) SetSessionID(v string) *ConceptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ConceptEventCreate) SetNillableSessionID(v *string) *ConceptEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the ConceptEventMutation object of the builder.
func (_c *ConceptEventCreate) Mutation() *ConceptEventMutation {
	return _c.mutation
}

// Save creates the ConceptEvent in the database.
func (_c *ConceptEventCreate) Save(ctx context.Context) (*ConceptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptEventCreate) SaveX(ctx context.Context) *ConceptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := conceptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := conceptevent.DefaultDepth
		_c.mutation.SetDepth(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ConceptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ConceptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ConceptEvent.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := conceptevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromStatus(); !ok {
		return &ValidationError{Name: "from_status", err: errors.New(`ent: missing required field "ConceptEvent.from_status"`)}
	}
	if v, ok := _c.mutation.FromStatus(); ok {
		if err := conceptevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.from_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "ConceptEvent.to_status"`)}
	}
	if v, ok := _c.mutation.ToStatus(); ok {
		if err := conceptevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.to_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "ConceptEvent.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := conceptevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ConceptEvent.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "ConceptEvent.depth"`)}
	}
	return nil
}

func (_c *ConceptEventCreate) sqlSave(ctx context.Context) (*ConceptEvent, error) {
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

func (_c *ConceptEventCreate) createSpec() (*ConceptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptevent.Table, sqlgraph.NewFieldSpec(conceptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(conceptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(conceptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(conceptevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(conceptevent.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(conceptevent.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(conceptevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(conceptevent.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(conceptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// ConceptEventCreateBulk is the builder for creating many ConceptEvent entities in bulk.
type ConceptEventCreateBulk struct {
	config
	err      error
	builders []*ConceptEventCreate
}

// Save creates the ConceptEvent entities in the database.
func (_c *ConceptEventCreateBulk) Save(ctx context.Context) ([]*ConceptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptEventMutation)
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
func (_c *ConceptEventCreateBulk) SaveX(ctx context.Context) []*ConceptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
