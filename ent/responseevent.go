// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/venturelab/venturesim/ent/responseevent"
)

// ResponseEvent is the model entity for the ResponseEvent schema.
type ResponseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Assessment this response belongs to
	AssessmentID string `json:"assessment_id,omitempty"`
	// Question that was answered
	QuestionID string `json:"question_id,omitempty"`
	// Stage number the question belongs to
	Stage int `json:"stage,omitempty"`
	// The submitted answer payload as JSON
	ResponseData string `json:"response_data,omitempty"`
	// Points this answer earned
	PointsAwarded float64 `json:"points_awarded,omitempty"`
	// Whether the score is a fallback pending human review
	NeedsReview  bool `json:"needs_review,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResponseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case responseevent.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case responseevent.FieldPointsAwarded:
			values[i] = new(sql.NullFloat64)
		case responseevent.FieldID, responseevent.FieldSequence, responseevent.FieldStage:
			values[i] = new(sql.NullInt64)
		case responseevent.FieldAssessmentID, responseevent.FieldQuestionID, responseevent.FieldResponseData:
			values[i] = new(sql.NullString)
		case responseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResponseEvent fields.
func (_m *ResponseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case responseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case responseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case responseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case responseevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case responseevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case responseevent.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = int(value.Int64)
			}
		case responseevent.FieldResponseData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_data", values[i])
			} else if value.Valid {
				_m.ResponseData = value.String
			}
		case responseevent.FieldPointsAwarded:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field points_awarded", values[i])
			} else if value.Valid {
				_m.PointsAwarded = value.Float64
			}
		case responseevent.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResponseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ResponseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResponseEvent.
// Note that you need to call ResponseEvent.Unwrap() before calling this method if this ResponseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResponseEvent) Update() *ResponseEventUpdateOne {
	return NewResponseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResponseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResponseEvent) Unwrap() *ResponseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResponseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResponseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ResponseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("response_data=")
	builder.WriteString(_m.ResponseData)
	builder.WriteString(", ")
	builder.WriteString("points_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsAwarded))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteByte(')')
	return builder.String()
}

// ResponseEvents is a parsable slice of ResponseEvent.
type ResponseEvents []*ResponseEvent
