package modules

import (
	"context"
	"log"

	"feedline/server/ent"
	"feedline/server/ent/user"
	"feedline/shared/jwt"
)

// Seed наполняет пустую базу демо-данными для разработки.
// Повторный запуск ничего не дублирует.
func Seed(client *ent.Client) error {
	ctx := context.Background()

	// Проверка: сидились ли демо-пользователи?
	aliceExists, err := client.User.Query().Where(user.UsernameEQ("alice")).Exist(ctx)
	if err != nil {
		return err
	}
	if aliceExists {
		log.Println("✅ Демо-пользователи уже существуют...")
		return nil
	}

	log.Println("🌱 Сидим демо-пользователей...")
	hash, err := jwt.HashPassword("password123")
	if err != nil {
		return err
	}

	alice, err := client.User.Create().
		SetUsername("alice").
		SetEmail("alice@example.com").
		SetPasswordHash(hash).
		SetName("Alice").
		SetBio("Пишу про Go и распределённые системы").
		Save(ctx)
	if err != nil {
		return err
	}
	bob, err := client.User.Create().
		SetUsername("bob").
		SetEmail("bob@example.com").
		SetPasswordHash(hash).
		SetName("Bob").
		Save(ctx)
	if err != nil {
		return err
	}
	log.Println("✅ Демо-пользователи созданы")

	log.Println("🌱 Сидим демо-посты...")
	post, err := client.Post.Create().
		SetContent("Первый пост в ленте!").
		SetAuthorID(alice.ID).
		Save(ctx)
	if err != nil {
		return err
	}
	if _, err := client.Post.Create().
		SetContent("Привет, мир").
		SetAuthorID(bob.ID).
		Save(ctx); err != nil {
		return err
	}

	if _, err := client.Follow.Create().
		SetFollowerID(bob.ID).
		SetFolloweeID(alice.ID).
		Save(ctx); err != nil {
		return err
	}
	if _, err := client.Like.Create().
		SetUserID(bob.ID).
		SetPostID(post.ID).
		Save(ctx); err != nil {
		return err
	}
	if _, err := client.Comment.Create().
		SetContent("Отличный старт!").
		SetAuthorID(bob.ID).
		SetPostID(post.ID).
		Save(ctx); err != nil {
		return err
	}
	log.Println("✅ Демо-посты созданы")

	return nil
}
