// Code generated by ent, DO NOT EDIT.

package exchangeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/socralabs/socra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldSessionID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldConceptID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldRole, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldText, v))
}

// Example applies equality check predicate on the "example" field. It's identical to ExampleEQ.
func Example(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldExample, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldGrade, v))
}

// AppliesTransfer applies equality check predicate on the "applies_transfer" field. It's identical to AppliesTransferEQ.
func AppliesTransfer(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldAppliesTransfer, v))
}

// Probe applies equality check predicate on the "probe" field. It's identical to ProbeEQ.
func Probe(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldProbe, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldDepth, v))
}

// Simplified applies equality check predicate on the "simplified" field. It's identical to SimplifiedEQ.
func Simplified(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldSimplified, v))
}

// Transfer applies equality check predicate on the "transfer" field. It's identical to TransferEQ.
func Transfer(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldTransfer, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldDecision, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContainsFold(FieldRole, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContainsFold(FieldText, v))
}

// ExampleEQ applies the EQ predicate on the "example" field.
func ExampleEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldExample, v))
}

// ExampleNEQ applies the NEQ predicate on the "example" field.
func ExampleNEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldExample, v))
}

// ExampleIn applies the In predicate on the "example" field.
func ExampleIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldExample, vs...))
}

// ExampleNotIn applies the NotIn predicate on the "example" field.
func ExampleNotIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldExample, vs...))
}

// ExampleGT applies the GT predicate on the "example" field.
func ExampleGT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldExample, v))
}

// ExampleGTE applies the GTE predicate on the "example" field.
func ExampleGTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldExample, v))
}

// ExampleLT applies the LT predicate on the "example" field.
func ExampleLT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldExample, v))
}

// ExampleLTE applies the LTE predicate on the "example" field.
func ExampleLTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldExample, v))
}

// ExampleContains applies the Contains predicate on the "example" field.
func ExampleContains(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContains(FieldExample, v))
}

// ExampleHasPrefix applies the HasPrefix predicate on the "example" field.
func ExampleHasPrefix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasPrefix(FieldExample, v))
}

// ExampleHasSuffix applies the HasSuffix predicate on the "example" field.
func ExampleHasSuffix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasSuffix(FieldExample, v))
}

// ExampleEqualFold applies the EqualFold predicate on the "example" field.
func ExampleEqualFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEqualFold(FieldExample, v))
}

// ExampleContainsFold applies the ContainsFold predicate on the "example" field.
func ExampleContainsFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContainsFold(FieldExample, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContainsFold(FieldGrade, v))
}

// AppliesTransferEQ applies the EQ predicate on the "applies_transfer" field.
func AppliesTransferEQ(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldAppliesTransfer, v))
}

// AppliesTransferNEQ applies the NEQ predicate on the "applies_transfer" field.
func AppliesTransferNEQ(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldAppliesTransfer, v))
}

// ProbeEQ applies the EQ predicate on the "probe" field.
func ProbeEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldProbe, v))
}

// ProbeNEQ applies the NEQ predicate on the "probe" field.
func ProbeNEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldProbe, v))
}

// ProbeIn applies the In predicate on the "probe" field.
func ProbeIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldProbe, vs...))
}

// ProbeNotIn applies the NotIn predicate on the "probe" field.
func ProbeNotIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldProbe, vs...))
}

// ProbeGT applies the GT predicate on the "probe" field.
func ProbeGT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldProbe, v))
}

// ProbeGTE applies the GTE predicate on the "probe" field.
func ProbeGTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldProbe, v))
}

// ProbeLT applies the LT predicate on the "probe" field.
func ProbeLT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldProbe, v))
}

// ProbeLTE applies the LTE predicate on the "probe" field.
func ProbeLTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldProbe, v))
}

// ProbeContains applies the Contains predicate on the "probe" field.
func ProbeContains(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContains(FieldProbe, v))
}

// ProbeHasPrefix applies the HasPrefix predicate on the "probe" field.
func ProbeHasPrefix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasPrefix(FieldProbe, v))
}

// ProbeHasSuffix applies the HasSuffix predicate on the "probe" field.
func ProbeHasSuffix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasSuffix(FieldProbe, v))
}

// ProbeEqualFold applies the EqualFold predicate on the "probe" field.
func ProbeEqualFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEqualFold(FieldProbe, v))
}

// ProbeContainsFold applies the ContainsFold predicate on the "probe" field.
func ProbeContainsFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContainsFold(FieldProbe, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldDepth, v))
}

// SimplifiedEQ applies the EQ predicate on the "simplified" field.
func SimplifiedEQ(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldSimplified, v))
}

// SimplifiedNEQ applies the NEQ predicate on the "simplified" field.
func SimplifiedNEQ(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldSimplified, v))
}

// TransferEQ applies the EQ predicate on the "transfer" field.
func TransferEQ(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldTransfer, v))
}

// TransferNEQ applies the NEQ predicate on the "transfer" field.
func TransferNEQ(v bool) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldTransfer, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.FieldContainsFold(FieldDecision, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExchangeEvent) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExchangeEvent) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExchangeEvent) predicate.ExchangeEvent {
	return predicate.ExchangeEvent(sql.NotPredicates(p))
}
