package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sharedauth "feedline/shared/auth"
	"feedline/shared/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewerCapturingHandler(captured *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = sharedauth.ViewerID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestHTTPAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("no header is anonymous", func(t *testing.T) {
		var viewerID int
		h := HTTPAuthMiddleware(viewerCapturingHandler(&viewerID))

		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, viewerID)
	})

	t.Run("valid token sets viewer", func(t *testing.T) {
		token, err := jwt.GenerateAccessToken(42)
		require.NoError(t, err)

		var viewerID int
		h := HTTPAuthMiddleware(viewerCapturingHandler(&viewerID))

		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 42, viewerID)
	})

	t.Run("invalid token degrades to anonymous", func(t *testing.T) {
		var viewerID int
		h := HTTPAuthMiddleware(viewerCapturingHandler(&viewerID))

		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		// Запрос не отклоняется: чувствительные поля гейтит shield
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, viewerID)
	})

	t.Run("non-bearer scheme ignored", func(t *testing.T) {
		var viewerID int
		h := HTTPAuthMiddleware(viewerCapturingHandler(&viewerID))

		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, viewerID)
	})
}
