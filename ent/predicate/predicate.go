// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConceptEvent is the predicate function for conceptevent builders.
type ConceptEvent func(*sql.Selector)

// ExchangeEvent is the predicate function for exchangeevent builders.
type ExchangeEvent func(*sql.Selector)

// OracleRequestEvent is the predicate function for oraclerequestevent builders.
type OracleRequestEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
