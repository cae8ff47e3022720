// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/venturelab/venturesim/ent/mistakeevent"
)

// MistakeEventCreate is the builder for creating a MistakeEvent entity.
type MistakeEventCreate struct {
	config
	mutation *MistakeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MistakeEventCreate) SetSequence(v int64) *MistakeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MistakeEventCreate) SetTimestamp(v time.Time) *MistakeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MistakeEventCreate) SetNillableTimestamp(v *time.Time) *MistakeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *MistakeEventCreate) SetAssessmentID(v string) *MistakeEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *MistakeEventCreate) SetCode(v string) *MistakeEventCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *MistakeEventCreate) SetQuestionID(v string) *MistakeEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *MistakeEventCreate) SetStage(v int) *MistakeEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetImmediateCost sets the "immediate_cost" field.
func (_c *MistakeEventCreate) SetImmediateCost(v float64) *MistakeEventCreate {
	_c.mutation.SetImmediateCost(v)
	return _c
}

// SetNillableImmediateCost sets the "immediate_cost" field if the given value is not nil.
func (_c *MistakeEventCreate) SetNillableImmediateCost(v *float64) *MistakeEventCreate {
	if v != nil {
		_c.SetImmediateCost(*v)
	}
	return _c
}

// Mutation returns the MistakeEventMutation object of the builder.
func (_c *MistakeEventCreate) Mutation() *MistakeEventMutation {
	return _c.mutation
}

// Save creates the MistakeEvent in the database.
func (_c *MistakeEventCreate) Save(ctx context.Context) (*MistakeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MistakeEventCreate) SaveX(ctx context.Context) *MistakeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MistakeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := mistakeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ImmediateCost(); !ok {
		v := mistakeevent.DefaultImmediateCost
		_c.mutation.SetImmediateCost(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MistakeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MistakeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MistakeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "MistakeEvent.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := mistakeevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "MistakeEvent.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "MistakeEvent.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := mistakeevent.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "MistakeEvent.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "MistakeEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := mistakeevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MistakeEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "MistakeEvent.stage"`)}
	}
	if _, ok := _c.mutation.ImmediateCost(); !ok {
		return &ValidationError{Name: "immediate_cost", err: errors.New(`ent: missing required field "MistakeEvent.immediate_cost"`)}
	}
	return nil
}

func (_c *MistakeEventCreate) sqlSave(ctx context.Context) (*MistakeEvent, error) {
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

func (_c *MistakeEventCreate) createSpec() (*MistakeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MistakeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mistakeevent.Table, sqlgraph.NewFieldSpec(mistakeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(mistakeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(mistakeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(mistakeevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(mistakeevent.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(mistakeevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(mistakeevent.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.ImmediateCost(); ok {
		_spec.SetField(mistakeevent.FieldImmediateCost, field.TypeFloat64, value)
		_node.ImmediateCost = value
	}
	return _node, _spec
}

// MistakeEventCreateBulk is the builder for creating many MistakeEvent entities in bulk.
type MistakeEventCreateBulk struct {
	config
	err      error
	builders []*MistakeEventCreate
}

// Save creates the MistakeEvent entities in the database.
func (_c *MistakeEventCreateBulk) Save(ctx context.Context) ([]*MistakeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MistakeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MistakeEventMutation)
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
func (_c *MistakeEventCreateBulk) SaveX(ctx context.Context) []*MistakeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
