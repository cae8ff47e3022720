// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/venturelab/venturesim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldStage, v))
}

// ResponseData applies equality check predicate on the "response_data" field. It's identical to ResponseDataEQ.
func ResponseData(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldResponseData, v))
}

// PointsAwarded applies equality check predicate on the "points_awarded" field. It's identical to PointsAwardedEQ.
func PointsAwarded(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldPointsAwarded, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldNeedsReview, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldAssessmentID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldStage, v))
}

// ResponseDataEQ applies the EQ predicate on the "response_data" field.
func ResponseDataEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldResponseData, v))
}

// ResponseDataNEQ applies the NEQ predicate on the "response_data" field.
func ResponseDataNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldResponseData, v))
}

// ResponseDataIn applies the In predicate on the "response_data" field.
func ResponseDataIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldResponseData, vs...))
}

// ResponseDataNotIn applies the NotIn predicate on the "response_data" field.
func ResponseDataNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldResponseData, vs...))
}

// ResponseDataGT applies the GT predicate on the "response_data" field.
func ResponseDataGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldResponseData, v))
}

// ResponseDataGTE applies the GTE predicate on the "response_data" field.
func ResponseDataGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldResponseData, v))
}

// ResponseDataLT applies the LT predicate on the "response_data" field.
func ResponseDataLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldResponseData, v))
}

// ResponseDataLTE applies the LTE predicate on the "response_data" field.
func ResponseDataLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldResponseData, v))
}

// ResponseDataContains applies the Contains predicate on the "response_data" field.
func ResponseDataContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldResponseData, v))
}

// ResponseDataHasPrefix applies the HasPrefix predicate on the "response_data" field.
func ResponseDataHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldResponseData, v))
}

// ResponseDataHasSuffix applies the HasSuffix predicate on the "response_data" field.
func ResponseDataHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldResponseData, v))
}

// ResponseDataEqualFold applies the EqualFold predicate on the "response_data" field.
func ResponseDataEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldResponseData, v))
}

// ResponseDataContainsFold applies the ContainsFold predicate on the "response_data" field.
func ResponseDataContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldResponseData, v))
}

// PointsAwardedEQ applies the EQ predicate on the "points_awarded" field.
func PointsAwardedEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldPointsAwarded, v))
}

// PointsAwardedNEQ applies the NEQ predicate on the "points_awarded" field.
func PointsAwardedNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldPointsAwarded, v))
}

// PointsAwardedIn applies the In predicate on the "points_awarded" field.
func PointsAwardedIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldPointsAwarded, vs...))
}

// PointsAwardedNotIn applies the NotIn predicate on the "points_awarded" field.
func PointsAwardedNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldPointsAwarded, vs...))
}

// PointsAwardedGT applies the GT predicate on the "points_awarded" field.
func PointsAwardedGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldPointsAwarded, v))
}

// PointsAwardedGTE applies the GTE predicate on the "points_awarded" field.
func PointsAwardedGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldPointsAwarded, v))
}

// PointsAwardedLT applies the LT predicate on the "points_awarded" field.
func PointsAwardedLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldPointsAwarded, v))
}

// PointsAwardedLTE applies the LTE predicate on the "points_awarded" field.
func PointsAwardedLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldPointsAwarded, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldNeedsReview, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.NotPredicates(p))
}
