package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptEvent records a concept status transition.
type ConceptEvent struct {
	ent.Schema
}

func (ConceptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ConceptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept_id").
			NotEmpty().
			Comment("Concept whose status changed"),
		field.String("from_status").
			NotEmpty().
			Comment("Status before the transition"),
		field.String("to_status").
			NotEmpty().
			Comment("Status after the transition"),
		field.String("trigger").
			NotEmpty().
			Comment("What caused the transition, e.g. transfer-shown"),
		field.Int("depth").
			Default(0).
			Comment("Simplification depth at transition time"),
		field.String("session_id").
			Optional().
			Comment("Session the transition happened in"),
	}
}

func (ConceptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
		index.Fields("session_id"),
	}
}
