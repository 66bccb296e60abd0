package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExchangeEvent records one transcript line: a tutor question or a
// learner answer. The rows for a session, ordered by sequence, are the
// session's full transcript.
type ExchangeEvent struct {
	ent.Schema
}

func (ExchangeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExchangeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning session"),
		field.String("concept_id").
			NotEmpty().
			Comment("Concept the exchange probes"),
		field.String("role").
			NotEmpty().
			Comment("tutor or learner"),
		field.String("text").
			NotEmpty().
			Comment("Question text or learner answer, verbatim"),
		field.String("example").
			Default("").
			Comment("Concrete example the question works through (tutor rows)"),
		field.String("grade").
			Default("").
			Comment("correct, partial or incorrect (learner rows)"),
		field.Bool("applies_transfer").
			Default(false).
			Comment("Answer demonstrated the concept on a fresh example (learner rows)"),
		field.String("probe").
			Default("").
			Comment("Follow-up nudge from the verdict (learner rows)"),
		field.Int("depth").
			Default(0).
			Comment("Simplification depth the question was asked at"),
		field.Bool("simplified").
			Default(false).
			Comment("First question after entering remediation (tutor rows)"),
		field.Bool("transfer").
			Default(false).
			Comment("Question was posed as a transfer probe (tutor rows)"),
		field.String("decision").
			Default("").
			Comment("Gate decision the answer produced (learner rows)"),
	}
}

func (ExchangeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept_id"),
		index.Fields("session_id", "role"),
	}
}
