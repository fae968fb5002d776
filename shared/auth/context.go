package auth

import (
	"context"
	"errors"
)

// typedKey исключает коллизии ключей в контексте
type typedKey struct{ name string }

var userIDKey = typedKey{name: "userID"}

var ErrNoUserID = errors.New("user ID not found in context")

// WithUserID добавляет userID текущего пользователя в контекст.
// id == 0 означает анонимный запрос.
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext достает userID из контекста.
// Для анонимного запроса возвращает ошибку.
func UserIDFromContext(ctx context.Context) (int, error) {
	if val := ctx.Value(userIDKey); val != nil {
		if id, ok := val.(int); ok && id != 0 {
			return id, nil
		}
	}
	return 0, ErrNoUserID
}

// ViewerID возвращает userID или 0 для анонимного запроса.
func ViewerID(ctx context.Context) int {
	id, err := UserIDFromContext(ctx)
	if err != nil {
		return 0
	}
	return id
}
