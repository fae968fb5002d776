package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").Unique(),
		field.String("username").Unique().NotEmpty(),
		field.String("email").Unique().NotEmpty(),
		field.String("password_hash").NotEmpty(),
		field.String("name").Optional().Nillable(),
		field.String("bio").Optional().Nillable(),
		field.String("avatar").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// Посты пользователя
		edge.To("posts", Post.Type),

		// Комментарии пользователя
		edge.To("comments", Comment.Type),

		// Лайки пользователя
		edge.To("likes", Like.Type),

		// «Я на кого подписан»:
		edge.To("following", Follow.Type),

		// «На меня подписаны»:
		edge.To("followers", Follow.Type),
	}
}
