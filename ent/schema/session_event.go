package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent marks a session boundary. A start row carries the
// topic; the matching end row carries the outcome totals.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID shared by every row of one session"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the session probes"),
		field.String("action").
			NotEmpty().
			Comment("Either start or end"),
		field.Int("total_exchanges").
			Default(0).
			Comment("Sealed exchanges (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Answers graded correct (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on end only)"),
		field.JSON("mastered", []string{}).
			Optional().
			Comment("Concept ids mastered (on end only)"),
		field.JSON("stalled", []string{}).
			Optional().
			Comment("Concept ids stalled (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
