package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one graded pass through a task's question set.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id"),
		field.String("student_id"),
		field.Time("started_at").
			Comment("When the student chose a mode"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the submission was persisted"),
		field.Int("time_taken").
			NonNegative().
			Comment("Seconds; equals the limit for an expired test"),
		field.Int("score").
			NonNegative(),
		field.Enum("grade").
			Values("fail", "pass", "good", "master"),
		field.Enum("mode").
			Values("train", "test").
			Default("test"),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("attempts").
			Field("task_id").
			Unique().
			Required(),
		edge.From("student", Profile.Type).
			Ref("attempts").
			Field("student_id").
			Unique().
			Required(),
		edge.To("answers", AttemptAnswer.Type),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "started_at"),
		index.Fields("task_id"),
	}
}
