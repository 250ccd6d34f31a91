package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is a coach or a student. Students may belong to a coach.
type Profile struct {
	ent.Schema
}

func (Profile) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.Enum("role").
			Values("COACH", "STUDENT").
			Comment("COACH assigns tasks; STUDENT attempts them"),
		field.String("coach_id").
			Optional().
			Nillable().
			Comment("Owning coach for students"),
	}
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("students", Profile.Type).
			From("coach").
			Field("coach_id").
			Unique(),
		edge.To("created_tasks", Task.Type),
		edge.To("assigned_tasks", Task.Type),
		edge.To("attempts", Attempt.Type),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("coach_id"),
	}
}
