package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptAnswer is the per-question row of an attempt.
type AttemptAnswer struct {
	ent.Schema
}

func (AttemptAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id"),
		field.Int("question_index").
			NonNegative().
			Comment("Position in the task's question set"),
		field.Int("user_answer").
			Optional().
			Nillable().
			Comment("Submitted answer; nil when skipped"),
		field.Bool("is_correct"),
	}
}

func (AttemptAnswer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attempt", Attempt.Type).
			Ref("answers").
			Field("attempt_id").
			Unique().
			Required(),
	}
}

func (AttemptAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id", "question_index").Unique(),
	}
}
