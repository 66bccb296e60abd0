package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OracleRequestEvent records each oracle API call for observability.
type OracleRequestEvent struct {
	ent.Schema
}

func (OracleRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OracleRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("Provider the call went to"),
		field.String("model").
			NotEmpty().
			Comment("Model that served the call"),
		field.String("purpose").
			NotEmpty().
			Comment("What the call was for: ask, judge, compact"),
		field.Int("input_tokens").
			Default(0).
			Comment("Prompt tokens consumed"),
		field.Int("output_tokens").
			Default(0).
			Comment("Completion tokens produced"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock call latency in milliseconds"),
		field.Bool("success").
			Default(false).
			Comment("Whether the call returned without error"),
		field.Text("request_body").
			Default("").
			Comment("Serialized prompt sent to the provider"),
		field.Text("response_body").
			Default("").
			Comment("Raw content returned by the provider"),
		field.String("error_message").
			Default("").
			Comment("Error text when success is false"),
	}
}

func (OracleRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
	}
}
