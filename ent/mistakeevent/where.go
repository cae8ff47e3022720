// Code generated by ent, DO NOT EDIT.

package mistakeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/venturelab/venturesim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldCode, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldStage, v))
}

// ImmediateCost applies equality check predicate on the "immediate_cost" field. It's identical to ImmediateCostEQ.
func ImmediateCost(v float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldImmediateCost, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldContainsFold(FieldAssessmentID, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldContainsFold(FieldCode, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLTE(FieldStage, v))
}

// ImmediateCostEQ applies the EQ predicate on the "immediate_cost" field.
func ImmediateCostEQ(v float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldEQ(FieldImmediateCost, v))
}

// ImmediateCostNEQ applies the NEQ predicate on the "immediate_cost" field.
func ImmediateCostNEQ(v float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNEQ(FieldImmediateCost, v))
}

// ImmediateCostIn applies the In predicate on the "immediate_cost" field.
func ImmediateCostIn(vs ...float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldIn(FieldImmediateCost, vs...))
}

// ImmediateCostNotIn applies the NotIn predicate on the "immediate_cost" field.
func ImmediateCostNotIn(vs ...float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldNotIn(FieldImmediateCost, vs...))
}

// ImmediateCostGT applies the GT predicate on the "immediate_cost" field.
func ImmediateCostGT(v float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGT(FieldImmediateCost, v))
}

// ImmediateCostGTE applies the GTE predicate on the "immediate_cost" field.
func ImmediateCostGTE(v float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldGTE(FieldImmediateCost, v))
}

// ImmediateCostLT applies the LT predicate on the "immediate_cost" field.
func ImmediateCostLT(v float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLT(FieldImmediateCost, v))
}

// ImmediateCostLTE applies the LTE predicate on the "immediate_cost" field.
func ImmediateCostLTE(v float64) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.FieldLTE(FieldImmediateCost, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MistakeEvent) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MistakeEvent) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MistakeEvent) predicate.MistakeEvent {
	return predicate.MistakeEvent(sql.NotPredicates(p))
}
