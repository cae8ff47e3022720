// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/venturelab/venturesim/ent/stageevent"
)

// StageEventCreate is the builder for creating a StageEvent entity.
type StageEventCreate struct {
	config
	mutation *StageEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StageEventCreate) SetSequence(v int64) *StageEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StageEventCreate) SetTimestamp(v time.Time) *StageEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableTimestamp(v *time.Time) *StageEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *StageEventCreate) SetAssessmentID(v string) *StageEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *StageEventCreate) SetStage(v int) *StageEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetCompoundingCost sets the "compounding_cost" field.
func (_c *StageEventCreate) SetCompoundingCost(v float64) *StageEventCreate {
	_c.mutation.SetCompoundingCost(v)
	return _c
}

// SetNillableCompoundingCost sets the "compounding_cost" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableCompoundingCost(v *float64) *StageEventCreate {
	if v != nil {
		_c.SetCompoundingCost(*v)
	}
	return _c
}

// Mutation returns the StageEventMutation object of the builder.
func (_c *StageEventCreate) Mutation() *StageEventMutation {
	return _c.mutation
}

// Save creates the StageEvent in the database.
func (_c *StageEventCreate) Save(ctx context.Context) (*StageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageEventCreate) SaveX(ctx context.Context) *StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := stageevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CompoundingCost(); !ok {
		v := stageevent.DefaultCompoundingCost
		_c.mutation.SetCompoundingCost(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StageEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StageEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "StageEvent.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := stageevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "StageEvent.stage"`)}
	}
	if _, ok := _c.mutation.CompoundingCost(); !ok {
		return &ValidationError{Name: "compounding_cost", err: errors.New(`ent: missing required field "StageEvent.compounding_cost"`)}
	}
	return nil
}

func (_c *StageEventCreate) sqlSave(ctx context.Context) (*StageEvent, error) {
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

func (_c *StageEventCreate) createSpec() (*StageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageevent.Table, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(stageevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(stageevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(stageevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(stageevent.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.CompoundingCost(); ok {
		_spec.SetField(stageevent.FieldCompoundingCost, field.TypeFloat64, value)
		_node.CompoundingCost = value
	}
	return _node, _spec
}

// StageEventCreateBulk is the builder for creating many StageEvent entities in bulk.
type StageEventCreateBulk struct {
	config
	err      error
	builders []*StageEventCreate
}

// Save creates the StageEvent entities in the database.
func (_c *StageEventCreateBulk) Save(ctx context.Context) ([]*StageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageEventMutation)
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
func (_c *StageEventCreateBulk) SaveX(ctx context.Context) []*StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
