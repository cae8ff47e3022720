// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/venturelab/venturesim/ent/mistakeevent"
)

// MistakeEvent is the model entity for the MistakeEvent schema.
type MistakeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Assessment this mistake occurred in
	AssessmentID string `json:"assessment_id,omitempty"`
	// Mistake code, e.g. no-market-research
	Code string `json:"code,omitempty"`
	// Question whose answer triggered the mistake
	QuestionID string `json:"question_id,omitempty"`
	// Stage number the mistake was made in
	Stage int `json:"stage,omitempty"`
	// Capital lost to the immediate penalty
	ImmediateCost float64 `json:"immediate_cost,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MistakeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mistakeevent.FieldImmediateCost:
			values[i] = new(sql.NullFloat64)
		case mistakeevent.FieldID, mistakeevent.FieldSequence, mistakeevent.FieldStage:
			values[i] = new(sql.NullInt64)
		case mistakeevent.FieldAssessmentID, mistakeevent.FieldCode, mistakeevent.FieldQuestionID:
			values[i] = new(sql.NullString)
		case mistakeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MistakeEvent fields.
func (_m *MistakeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mistakeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mistakeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case mistakeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case mistakeevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case mistakeevent.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case mistakeevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case mistakeevent.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = int(value.Int64)
			}
		case mistakeevent.FieldImmediateCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field immediate_cost", values[i])
			} else if value.Valid {
				_m.ImmediateCost = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MistakeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MistakeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MistakeEvent.
// Note that you need to call MistakeEvent.Unwrap() before calling this method if this MistakeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MistakeEvent) Update() *MistakeEventUpdateOne {
	return NewMistakeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MistakeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MistakeEvent) Unwrap() *MistakeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MistakeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MistakeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MistakeEvent(")
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
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("immediate_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImmediateCost))
	builder.WriteByte(')')
	return builder.String()
}

// MistakeEvents is a parsable slice of MistakeEvent.
type MistakeEvents []*MistakeEvent
