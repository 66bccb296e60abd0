// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/socralabs/socra/ent/exchangeevent"
)

// ExchangeEvent is the model entity for the ExchangeEvent schema.
type ExchangeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the shared event stream
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event landed
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the owning session
	SessionID string `json:"session_id,omitempty"`
	// Concept the exchange probes
	ConceptID string `json:"concept_id,omitempty"`
	// tutor or learner
	Role string `json:"role,omitempty"`
	// Question text or learner answer, verbatim
	Text string `json:"text,omitempty"`
	// Concrete example the question works through (tutor rows)
	Example string `json:"example,omitempty"`
	// correct, partial or incorrect (learner rows)
	Grade string `json:"grade,omitempty"`
	// Answer demonstrated the concept on a fresh example (learner rows)
	AppliesTransfer bool `json:"applies_transfer,omitempty"`
	// Follow-up nudge from the verdict (learner rows)
	Probe string `json:"probe,omitempty"`
	// Simplification depth the question was asked at
	Depth int `json:"depth,omitempty"`
	// First question after entering remediation (tutor rows)
	Simplified bool `json:"simplified,omitempty"`
	// Question was posed as a transfer probe (tutor rows)
	Transfer bool `json:"transfer,omitempty"`
	// Gate decision the answer produced (learner rows)
	Decision     string `json:"decision,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExchangeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exchangeevent.FieldAppliesTransfer, exchangeevent.FieldSimplified, exchangeevent.FieldTransfer:
			values[i] = new(sql.NullBool)
		case exchangeevent.FieldID, exchangeevent.FieldSequence, exchangeevent.FieldDepth:
			values[i] = new(sql.NullInt64)
		case exchangeevent.FieldSessionID, exchangeevent.FieldConceptID, exchangeevent.FieldRole, exchangeevent.FieldText, exchangeevent.FieldExample, exchangeevent.FieldGrade, exchangeevent.FieldProbe, exchangeevent.FieldDecision:
			values[i] = new(sql.NullString)
		case exchangeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExchangeEvent fields.
func (_m *ExchangeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exchangeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exchangeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case exchangeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case exchangeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case exchangeevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case exchangeevent.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case exchangeevent.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case exchangeevent.FieldExample:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example", values[i])
			} else if value.Valid {
				_m.Example = value.String
			}
		case exchangeevent.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case exchangeevent.FieldAppliesTransfer:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field applies_transfer", values[i])
			} else if value.Valid {
				_m.AppliesTransfer = value.Bool
			}
		case exchangeevent.FieldProbe:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field probe", values[i])
			} else if value.Valid {
				_m.Probe = value.String
			}
		case exchangeevent.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case exchangeevent.FieldSimplified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field simplified", values[i])
			} else if value.Valid {
				_m.Simplified = value.Bool
			}
		case exchangeevent.FieldTransfer:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field transfer", values[i])
			} else if value.Valid {
				_m.Transfer = value.Bool
			}
		case exchangeevent.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExchangeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExchangeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExchangeEvent.
// Note that you need to call ExchangeEvent.Unwrap() before calling this method if this ExchangeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExchangeEvent) Update() *ExchangeEventUpdateOne {
	return NewExchangeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExchangeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExchangeEvent) Unwrap() *ExchangeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExchangeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExchangeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExchangeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("example=")
	builder.WriteString(_m.Example)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("applies_transfer=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppliesTransfer))
	builder.WriteString(", ")
	builder.WriteString("probe=")
	builder.WriteString(_m.Probe)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("simplified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Simplified))
	builder.WriteString(", ")
	builder.WriteString("transfer=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transfer))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteByte(')')
	return builder.String()
}

// ExchangeEvents is a parsable slice of ExchangeEvent.
type ExchangeEvents []*ExchangeEvent
