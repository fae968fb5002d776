package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type Comment struct{ ent.Schema }

func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").Unique(),
		field.String("content").NotEmpty(),
		field.Int("author_id"),
		field.Int("post_id"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("author", User.Type).
			Ref("comments").
			Field("author_id").
			Required().
			Unique(),

		edge.From("post", Post.Type).
			Ref("comments").
			Field("post_id").
			Required().
			Unique(),
	}
}
