package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Like struct{ ent.Schema }

func (Like) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").Unique(),
		field.Int("user_id"),
		field.Int("post_id"),
		field.Time("created_at").Default(time.Now),
	}
}

func (Like) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("likes").
			Field("user_id").
			Required().
			Unique(),

		edge.From("post", Post.Type).
			Ref("likes").
			Field("post_id").
			Required().
			Unique(),
	}
}

// Indexes of the Like. Уникальность пары (user, post) держит хранилище,
// check-then-create в резолвере не атомарен.
func (Like) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "post_id").Unique(),
	}
}
