// Code generated by ent, DO NOT EDIT.

package exchangeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the exchangeevent type in the database.
	Label = "exchange_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldExample holds the string denoting the example field in the database.
	FieldExample = "example"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldAppliesTransfer holds the string denoting the applies_transfer field in the database.
	FieldAppliesTransfer = "applies_transfer"
	// FieldProbe holds the string denoting the probe field in the database.
	FieldProbe = "probe"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldSimplified holds the string denoting the simplified field in the database.
	FieldSimplified = "simplified"
	// FieldTransfer holds the string denoting the transfer field in the database.
	FieldTransfer = "transfer"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// Table holds the table name of the exchangeevent in the database.
	Table = "exchange_events"
)

// Columns holds all SQL columns for exchangeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldConceptID,
	FieldRole,
	FieldText,
	FieldExample,
	FieldGrade,
	FieldAppliesTransfer,
	FieldProbe,
	FieldDepth,
	FieldSimplified,
	FieldTransfer,
	FieldDecision,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultExample holds the default value on creation for the "example" field.
	DefaultExample string
	// DefaultGrade holds the default value on creation for the "grade" field.
	DefaultGrade string
	// DefaultAppliesTransfer holds the default value on creation for the "applies_transfer" field.
	DefaultAppliesTransfer bool
	// DefaultProbe holds the default value on creation for the "probe" field.
	DefaultProbe string
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DefaultSimplified holds the default value on creation for the "simplified" field.
	DefaultSimplified bool
	// DefaultTransfer holds the default value on creation for the "transfer" field.
	DefaultTransfer bool
	// DefaultDecision holds the default value on creation for the "decision" field.
	DefaultDecision string
)

// OrderOption defines the ordering options for the ExchangeEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByExample orders the results by the example field.
func ByExample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExample, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByAppliesTransfer orders the results by the applies_transfer field.
func ByAppliesTransfer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliesTransfer, opts...).ToFunc()
}

// ByProbe orders the results by the probe field.
func ByProbe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbe, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// BySimplified orders the results by the simplified field.
func BySimplified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimplified, opts...).ToFunc()
}

// ByTransfer orders the results by the transfer field.
func ByTransfer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransfer, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}
