package middleware

import (
	"log"
	"net/http"
	"time"

	sharedauth "feedline/shared/auth"
)

// AuditMiddleware логирует мутации, ошибки и загрузки файлов
func AuditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		userID := sharedauth.ViewerID(r.Context())
		if shouldLogAction(r, wrapped.statusCode) {
			log.Printf("AUDIT: User %d | %s %s | Status: %d | Duration: %v | IP: %s",
				userID,
				r.Method,
				r.URL.Path,
				wrapped.statusCode,
				time.Since(start),
				getClientIP(r),
			)
		}
	})
}

// responseWriter wrapper для захвата статуса ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func shouldLogAction(r *http.Request, statusCode int) bool {
	if statusCode >= 400 {
		return true
	}
	// POST к /query и /upload — потенциально мутирующие действия
	if r.Method == http.MethodPost && (r.URL.Path == "/query" || r.URL.Path == "/upload") {
		return true
	}
	return false
}
