package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// RecordMixin gives domain records a UUID string primary key and a creation
// timestamp.
type RecordMixin struct {
	mixin.Schema
}

func (RecordMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable().
			NotEmpty().
			Comment("UUID assigned on insert"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock time the record was created"),
	}
}

// EventMixin provides the timestamp shared by append-only event tables.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the event"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
