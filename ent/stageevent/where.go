// Code generated by ent, DO NOT EDIT.

package stageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/venturelab/venturesim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldStage, v))
}

// CompoundingCost applies equality check predicate on the "compounding_cost" field. It's identical to CompoundingCostEQ.
func CompoundingCost(v float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldCompoundingCost, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldAssessmentID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldStage, v))
}

// CompoundingCostEQ applies the EQ predicate on the "compounding_cost" field.
func CompoundingCostEQ(v float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldCompoundingCost, v))
}

// CompoundingCostNEQ applies the NEQ predicate on the "compounding_cost" field.
func CompoundingCostNEQ(v float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldCompoundingCost, v))
}

// CompoundingCostIn applies the In predicate on the "compounding_cost" field.
func CompoundingCostIn(vs ...float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldCompoundingCost, vs...))
}

// CompoundingCostNotIn applies the NotIn predicate on the "compounding_cost" field.
func CompoundingCostNotIn(vs ...float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldCompoundingCost, vs...))
}

// CompoundingCostGT applies the GT predicate on the "compounding_cost" field.
func CompoundingCostGT(v float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldCompoundingCost, v))
}

// CompoundingCostGTE applies the GTE predicate on the "compounding_cost" field.
func CompoundingCostGTE(v float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldCompoundingCost, v))
}

// CompoundingCostLT applies the LT predicate on the "compounding_cost" field.
func CompoundingCostLT(v float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldCompoundingCost, v))
}

// CompoundingCostLTE applies the LTE predicate on the "compounding_cost" field.
func CompoundingCostLTE(v float64) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldCompoundingCost, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.NotPredicates(p))
}
