package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/abhisek/mathcoach/internal/problemgen"
)

// Task is a frozen multiplication quiz owned by its creator and optionally
// assigned to one student.
type Task struct {
	ent.Schema
}

func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			Comment("Trimmed task title"),
		field.String("task_type").
			Default("multiplication").
			Comment("Question family; only multiplication exists"),
		field.String("creator_id").
			Comment("Profile that created the task"),
		field.String("assigned_to_id").
			Optional().
			Nillable().
			Comment("Assigned student; nil for self-owned tasks"),
		field.Int("time_limit").
			Positive().
			Comment("Time limit in seconds"),
		field.Int("pass_score").
			NonNegative(),
		field.Int("good_score").
			NonNegative(),
		field.Int("master_score").
			NonNegative(),
		field.JSON("questions", problemgen.QuestionSet{}).
			Comment("Question set frozen at creation"),
		field.JSON("config", problemgen.TaskConfig{}).
			Comment("Fact selection, count and layout used to build the set"),
		field.Bool("is_active").
			Default(true).
			Comment("Soft deactivation flag"),
	}
}

func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("creator", Profile.Type).
			Ref("created_tasks").
			Field("creator_id").
			Unique().
			Required(),
		edge.From("assignee", Profile.Type).
			Ref("assigned_tasks").
			Field("assigned_to_id").
			Unique(),
		edge.To("attempts", Attempt.Type),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("creator_id"),
		index.Fields("assigned_to_id"),
		index.Fields("is_active"),
	}
}
