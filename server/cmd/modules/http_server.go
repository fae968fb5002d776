package modules

import (
	"log"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/rs/cors"

	"feedline/server/ent"
	"feedline/server/middleware"
	"feedline/server/pkg/loader"
	s3handler "feedline/server/pkg/s3"
	shareds3 "feedline/shared/s3"
)

// SetupHTTPServer собирает HTTP-поверхность: /query, /health, /upload,
// playground в development. Цепочка middleware:
// CORS → rate limit → auth → audit → loaders → timeout → handler.
func SetupHTTPServer(cfg *Config, client *ent.Client, s3Client *shareds3.S3Client) *http.Server {
	gqlSrv := NewGraphQLServer(client)

	mux := http.NewServeMux()
	mux.Handle("/query", gqlSrv)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if s3Client != nil {
		mux.Handle("/upload", s3handler.UploadHandler(s3Client))
	}
	if cfg.Env != "production" {
		mux.Handle("/", playground.Handler("GraphQL", "/query"))
	}

	var h http.Handler = mux
	h = middleware.TimeoutMiddleware(cfg.RequestTimeout, h)
	h = loader.Middleware(client, h)
	h = middleware.AuditMiddleware(h)
	h = middleware.HTTPAuthMiddleware(h)
	h = middleware.RateLimitMiddleware(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(h)

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func StartHTTPServer(httpServer *http.Server) {
	log.Printf("🌐 HTTP-сервер запущен на %s", httpServer.Addr)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("ошибка при запуске HTTP-сервера: %v", err)
	}
}
