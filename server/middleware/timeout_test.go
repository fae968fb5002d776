package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errorsx "feedline/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutMiddleware(t *testing.T) {
	t.Run("budget exceeded cancels the request context", func(t *testing.T) {
		var ctxErr error
		h := TimeoutMiddleware(10*time.Millisecond, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
			ctxErr = r.Context().Err()
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/query", nil))

		require.ErrorIs(t, ctxErr, context.DeadlineExceeded)

		// Дедлайн различим в таксономии: TIMEOUT, не internal
		gqlErr := errorsx.Presenter(context.Background(), ctxErr)
		assert.Equal(t, errorsx.CodeTimeout, gqlErr.Extensions["code"])
		assert.Equal(t, "request timed out", gqlErr.Message)
	})

	t.Run("within budget context stays alive", func(t *testing.T) {
		var ctxErr error
		h := TimeoutMiddleware(time.Second, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxErr = r.Context().Err()
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/query", nil))

		assert.NoError(t, ctxErr)
	})
}
