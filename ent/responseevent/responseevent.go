// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the responseevent type in the database.
	Label = "response_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldResponseData holds the string denoting the response_data field in the database.
	FieldResponseData = "response_data"
	// FieldPointsAwarded holds the string denoting the points_awarded field in the database.
	FieldPointsAwarded = "points_awarded"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// Table holds the table name of the responseevent in the database.
	Table = "response_events"
)

// Columns holds all SQL columns for responseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAssessmentID,
	FieldQuestionID,
	FieldStage,
	FieldResponseData,
	FieldPointsAwarded,
	FieldNeedsReview,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultPointsAwarded holds the default value on creation for the "points_awarded" field.
	DefaultPointsAwarded float64
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
)

// OrderOption defines the ordering options for the ResponseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByResponseData orders the results by the response_data field.
func ByResponseData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseData, opts...).ToFunc()
}

// ByPointsAwarded orders the results by the points_awarded field.
func ByPointsAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsAwarded, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}
