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
	"github.com/venturelab/venturesim/ent/stageevent"
)

// StageEventUpdate is the builder for updating StageEvent entities.
type StageEventUpdate struct {
	config
	hooks    []Hook
	mutation *StageEventMutation
}

// Where appends a list predicates to the StageEventUpdate builder.
func (_u *StageEventUpdate) Where(ps ...predicate.StageEvent) *StageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *StageEventUpdate) SetAssessmentID(v string) *StageEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableAssessmentID(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *StageEventUpdate) SetStage(v int) *StageEventUpdate {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableStage(v *int) *StageEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *StageEventUpdate) AddStage(v int) *StageEventUpdate {
	_u.mutation.AddStage(v)
	return _u
}

// SetCompoundingCost sets the "compounding_cost" field.
func (_u *StageEventUpdate) SetCompoundingCost(v float64) *StageEventUpdate {
	_u.mutation.ResetCompoundingCost()
	_u.mutation.SetCompoundingCost(v)
	return _u
}

// SetNillableCompoundingCost sets the "compounding_cost" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableCompoundingCost(v *float64) *StageEventUpdate {
	if v != nil {
		_u.SetCompoundingCost(*v)
	}
	return _u
}

// AddCompoundingCost adds value to the "compounding_cost" field.
func (_u *StageEventUpdate) AddCompoundingCost(v float64) *StageEventUpdate {
	_u.mutation.AddCompoundingCost(v)
	return _u
}

// Mutation returns the StageEventMutation object of the builder.
func (_u *StageEventUpdate) Mutation() *StageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := stageevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageevent.Table, stageevent.Columns, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(stageevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(stageevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(stageevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompoundingCost(); ok {
		_spec.SetField(stageevent.FieldCompoundingCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompoundingCost(); ok {
		_spec.AddField(stageevent.FieldCompoundingCost, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageEventUpdateOne is the builder for updating a single StageEvent entity.
type StageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *StageEventUpdateOne) SetAssessmentID(v string) *StageEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableAssessmentID(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *StageEventUpdateOne) SetStage(v int) *StageEventUpdateOne {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableStage(v *int) *StageEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *StageEventUpdateOne) AddStage(v int) *StageEventUpdateOne {
	_u.mutation.AddStage(v)
	return _u
}

// SetCompoundingCost sets the "compounding_cost" field.
func (_u *StageEventUpdateOne) SetCompoundingCost(v float64) *StageEventUpdateOne {
	_u.mutation.ResetCompoundingCost()
	_u.mutation.SetCompoundingCost(v)
	return _u
}

// SetNillableCompoundingCost sets the "compounding_cost" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableCompoundingCost(v *float64) *StageEventUpdateOne {
	if v != nil {
		_u.SetCompoundingCost(*v)
	}
	return _u
}

// AddCompoundingCost adds value to the "compounding_cost" field.
func (_u *StageEventUpdateOne) AddCompoundingCost(v float64) *StageEventUpdateOne {
	_u.mutation.AddCompoundingCost(v)
	return _u
}

// Mutation returns the StageEventMutation object of the builder.
func (_u *StageEventUpdateOne) Mutation() *StageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageEventUpdate builder.
func (_u *StageEventUpdateOne) Where(ps ...predicate.StageEvent) *StageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageEventUpdateOne) Select(field string, fields ...string) *StageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageEvent entity.
func (_u *StageEventUpdateOne) Save(ctx context.Context) (*StageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEventUpdateOne) SaveX(ctx context.Context) *StageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := stageevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StageEventUpdateOne) sqlSave(ctx context.Context) (_node *StageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageevent.Table, stageevent.Columns, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageevent.FieldID)
		for _, f := range fields {
			if !stageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageevent.FieldID {
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
		_spec.SetField(stageevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(stageevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(stageevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompoundingCost(); ok {
		_spec.SetField(stageevent.FieldCompoundingCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompoundingCost(); ok {
		_spec.AddField(stageevent.FieldCompoundingCost, field.TypeFloat64, value)
	}
	_node = &StageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
