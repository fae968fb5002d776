package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Follow struct{ ent.Schema }

func (Follow) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").Unique(),
		field.Int("follower_id"),
		field.Int("followee_id"),
		field.Time("created_at").Default(time.Now),
	}
}

func (Follow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("follower", User.Type).
			Ref("following").
			Field("follower_id").
			Required().
			Unique(),

		edge.From("followee", User.Type).
			Ref("followers").
			Field("followee_id").
			Required().
			Unique(),
	}
}

// Indexes of the Follow. Пара (follower, followee) уникальна на уровне БД.
func (Follow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("follower_id", "followee_id").Unique(),
	}
}
