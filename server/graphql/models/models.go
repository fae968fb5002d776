package models

import (
	"feedline/server/ent"
)

// Ручные модели, привязанные в gqlgen.yml. Остальные типы схемы
// (User, Post, Comment, Like) биндятся напрямую на ent-сущности.

type AuthPayload struct {
	Token string    `json:"token"`
	User  *ent.User `json:"user"`
}

type RegisterInput struct {
	Username string  `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=50"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Bio    *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

type UserCount struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
	Posts     int `json:"posts"`
}

type PostCount struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}
