package middleware

import (
	"log"
	"net/http"
	"strings"

	sharedauth "feedline/shared/auth"
	"feedline/shared/jwt"
)

// HTTPAuthMiddleware валидирует Bearer access JWT и кладет userID в контекст.
// Невалидный или истекший токен деградирует до анонимного запроса:
// запрос не отклоняется, чувствительные поля гейтит shield.
func HTTPAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := sharedauth.WithUserID(r.Context(), 0)

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			log.Printf("⚠️  HTTPAuthMiddleware: invalid access token: %v", err)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		ctx = sharedauth.WithUserID(ctx, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
