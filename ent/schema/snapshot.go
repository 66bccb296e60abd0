package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot captures the learner's concept statuses at a point in time,
// so restore does not have to replay the whole event log.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event stream position the snapshot was cut at"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was written"),
		field.JSON("data", map[string]any{}).
			Comment("Concept statuses per topic as JSON"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
