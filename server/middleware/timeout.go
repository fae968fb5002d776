package middleware

import (
	"context"
	"net/http"
	"time"
)

// TimeoutMiddleware ограничивает запрос по wall-clock бюджету.
// По дедлайну контекст отменяется, резолверы прерываются и презентер
// отдает различимую ошибку таймаута вместо зависшего запроса.
func TimeoutMiddleware(budget time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), budget)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
