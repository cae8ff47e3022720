// Code generated by ent, DO NOT EDIT.

package mistakeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mistakeevent type in the database.
	Label = "mistake_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldImmediateCost holds the string denoting the immediate_cost field in the database.
	FieldImmediateCost = "immediate_cost"
	// Table holds the table name of the mistakeevent in the database.
	Table = "mistake_events"
)

// Columns holds all SQL columns for mistakeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAssessmentID,
	FieldCode,
	FieldQuestionID,
	FieldStage,
	FieldImmediateCost,
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
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultImmediateCost holds the default value on creation for the "immediate_cost" field.
	DefaultImmediateCost float64
)

// OrderOption defines the ordering options for the MistakeEvent queries.
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

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByImmediateCost orders the results by the immediate_cost field.
func ByImmediateCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImmediateCost, opts...).ToFunc()
}
