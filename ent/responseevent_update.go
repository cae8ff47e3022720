// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/venturelab/venturesim/ent/predicate"
	"github.com/venturelab/venturesim/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResponseEventUpdate) SetAssessmentID(v string) *ResponseEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAssessmentID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdate) SetQuestionID(v string) *ResponseEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableQuestionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ResponseEventUpdate) SetStage(v int) *ResponseEventUpdate {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableStage(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *ResponseEventUpdate) AddStage(v int) *ResponseEventUpdate {
	_u.mutation.AddStage(v)
	return _u
}

// SetResponseData sets the "response_data" field.
func (_u *ResponseEventUpdate) SetResponseData(v string) *ResponseEventUpdate {
	_u.mutation.SetResponseData(v)
	return _u
}

// SetNillableResponseData sets the "response_data" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableResponseData(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetResponseData(*v)
	}
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *ResponseEventUpdate) SetPointsAwarded(v float64) *ResponseEventUpdate {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillablePointsAwarded(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *ResponseEventUpdate) AddPointsAwarded(v float64) *ResponseEventUpdate {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ResponseEventUpdate) SetNeedsReview(v bool) *ResponseEventUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableNeedsReview(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := responseevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(responseevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(responseevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(responseevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseData(); ok {
		_spec.SetField(responseevent.FieldResponseData, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(responseevent.FieldPointsAwarded, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(responseevent.FieldPointsAwarded, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(responseevent.FieldNeedsReview, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResponseEventUpdateOne) SetAssessmentID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAssessmentID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdateOne) SetQuestionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableQuestionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ResponseEventUpdateOne) SetStage(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableStage(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *ResponseEventUpdateOne) AddStage(v int) *ResponseEventUpdateOne {
	_u.mutation.AddStage(v)
	return _u
}

// SetResponseData sets the "response_data" field.
func (_u *ResponseEventUpdateOne) SetResponseData(v string) *ResponseEventUpdateOne {
	_u.mutation.SetResponseData(v)
	return _u
}

// SetNillableResponseData sets the "response_data" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableResponseData(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetResponseData(*v)
	}
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *ResponseEventUpdateOne) SetPointsAwarded(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillablePointsAwarded(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *ResponseEventUpdateOne) AddPointsAwarded(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ResponseEventUpdateOne) SetNeedsReview(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableNeedsReview(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := responseevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(responseevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(responseevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(responseevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseData(); ok {
		_spec.SetField(responseevent.FieldResponseData, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(responseevent.FieldPointsAwarded, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(responseevent.FieldPointsAwarded, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(responseevent.FieldNeedsReview, field.TypeBool, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
