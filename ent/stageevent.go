// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/venturelab/venturesim/ent/stageevent"
)

// StageEvent is the model entity for the StageEvent schema.
type StageEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Assessment that advanced
	AssessmentID string `json:"assessment_id,omitempty"`
	// Stage number that was entered
	Stage int `json:"stage,omitempty"`
	// Capital lost to deferred mistake penalties on entry
	CompoundingCost float64 `json:"compounding_cost,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stageevent.FieldCompoundingCost:
			values[i] = new(sql.NullFloat64)
		case stageevent.FieldID, stageevent.FieldSequence, stageevent.FieldStage:
			values[i] = new(sql.NullInt64)
		case stageevent.FieldAssessmentID:
			values[i] = new(sql.NullString)
		case stageevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageEvent fields.
func (_m *StageEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stageevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stageevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case stageevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case stageevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case stageevent.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = int(value.Int64)
			}
		case stageevent.FieldCompoundingCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field compounding_cost", values[i])
			} else if value.Valid {
				_m.CompoundingCost = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StageEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StageEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StageEvent.
// Note that you need to call StageEvent.Unwrap() before calling this method if this StageEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageEvent) Update() *StageEventUpdateOne {
	return NewStageEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageEvent) Unwrap() *StageEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StageEvent(")
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
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("compounding_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompoundingCost))
	builder.WriteByte(')')
	return builder.String()
}

// StageEvents is a parsable slice of StageEvent.
type StageEvents []*StageEvent
