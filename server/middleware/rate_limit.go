package middleware

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter — лимитер одного клиента (по IP)
type RateLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware ограничивает количество запросов с одного IP.
// Авторизованные получают более мягкий лимит, чем анонимы.
func RateLimitMiddleware(next http.Handler) http.Handler {
	anonymousVisitors := make(map[string]*RateLimiter)
	authenticatedVisitors := make(map[string]*RateLimiter)
	var mu sync.Mutex

	// Очистка старых записей каждые 3 минуты
	go func() {
		for {
			time.Sleep(time.Minute * 3)
			mu.Lock()
			for ip, v := range anonymousVisitors {
				if time.Since(v.lastSeen) > 3*time.Minute {
					delete(anonymousVisitors, ip)
				}
			}
			for ip, v := range authenticatedVisitors {
				if time.Since(v.lastSeen) > 3*time.Minute {
					delete(authenticatedVisitors, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := getClientIP(r)
		isAuthenticated := strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")

		visitors := anonymousVisitors
		limit, burst := rate.Limit(5), 10
		if isAuthenticated {
			visitors = authenticatedVisitors
			limit, burst = rate.Limit(20), 50
		}

		mu.Lock()
		limiter, exists := visitors[ip]
		if exists {
			limiter.lastSeen = time.Now()
		} else {
			limiter = &RateLimiter{
				limiter:  rate.NewLimiter(limit, burst),
				lastSeen: time.Now(),
			}
			visitors[ip] = limiter
		}
		allowed := limiter.limiter.Allow()
		mu.Unlock()

		if !allowed {
			log.Printf("🚫 Rate limit exceeded for IP: %s", ip)
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getClientIP извлекает реальный IP клиента с учетом прокси
func getClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
