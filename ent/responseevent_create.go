// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/venturelab/venturesim/ent/responseevent"
)

// ResponseEventCreate is the builder for creating a ResponseEvent entity.
type ResponseEventCreate struct {
	config
	mutation *ResponseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResponseEventCreate) SetSequence(v int64) *ResponseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResponseEventCreate) SetTimestamp(v time.Time) *ResponseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTimestamp(v *time.Time) *ResponseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *ResponseEventCreate) SetAssessmentID(v string) *ResponseEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ResponseEventCreate) SetQuestionID(v string) *ResponseEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ResponseEventCreate) SetStage(v int) *ResponseEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetResponseData sets the "response_data" field.
func (_c *ResponseEventCreate) SetResponseData(v string) *ResponseEventCreate {
	_c.mutation.SetResponseData(v)
	return _c
}

// SetPointsAwarded sets the "points_awarded" field.
func (_c *ResponseEventCreate) SetPointsAwarded(v float64) *ResponseEventCreate {
	_c.mutation.SetPointsAwarded(v)
	return _c
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillablePointsAwarded(v *float64) *ResponseEventCreate {
	if v != nil {
		_c.SetPointsAwarded(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ResponseEventCreate) SetNeedsReview(v bool) *ResponseEventCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableNeedsReview(v *bool) *ResponseEventCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_c *ResponseEventCreate) Mutation() *ResponseEventMutation {
	return _c.mutation
}

// Save creates the ResponseEvent in the database.
func (_c *ResponseEventCreate) Save(ctx context.Context) (*ResponseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseEventCreate) SaveX(ctx context.Context) *ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := responseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		v := responseevent.DefaultPointsAwarded
		_c.mutation.SetPointsAwarded(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := responseevent.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResponseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResponseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "ResponseEvent.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := responseevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ResponseEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ResponseEvent.stage"`)}
	}
	if _, ok := _c.mutation.ResponseData(); !ok {
		return &ValidationError{Name: "response_data", err: errors.New(`ent: missing required field "ResponseEvent.response_data"`)}
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		return &ValidationError{Name: "points_awarded", err: errors.New(`ent: missing required field "ResponseEvent.points_awarded"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "ResponseEvent.needs_review"`)}
	}
	return nil
}

func (_c *ResponseEventCreate) sqlSave(ctx context.Context) (*ResponseEvent, error) {
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

func (_c *ResponseEventCreate) createSpec() (*ResponseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResponseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(responseevent.Table, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(responseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(responseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(responseevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(responseevent.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.ResponseData(); ok {
		_spec.SetField(responseevent.FieldResponseData, field.TypeString, value)
		_node.ResponseData = value
	}
	if value, ok := _c.mutation.PointsAwarded(); ok {
		_spec.SetField(responseevent.FieldPointsAwarded, field.TypeFloat64, value)
		_node.PointsAwarded = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(responseevent.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	return _node, _spec
}

// ResponseEventCreateBulk is the builder for creating many ResponseEvent entities in bulk.
type ResponseEventCreateBulk struct {
	config
	err      error
	builders []*ResponseEventCreate
}

// Save creates the ResponseEvent entities in the database.
func (_c *ResponseEventCreateBulk) Save(ctx context.Context) ([]*ResponseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResponseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseEventMutation)
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
func (_c *ResponseEventCreateBulk) SaveX(ctx context.Context) []*ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
