package loader

import (
	"context"
	"net/http"
	"time"

	"feedline/server/ent"
	"feedline/server/ent/post"
	"feedline/server/ent/user"
)

type ctxKey struct{}

var loadersKey ctxKey

const (
	batchWait = 1 * time.Millisecond
	maxBatch  = 100
)

// Loaders — набор per-request загрузчиков по виду сущности.
// Новый экземпляр на каждый запрос: данные не переживают запрос.
type Loaders struct {
	Users *Loader[int, *ent.User]
	Posts *Loader[int, *ent.Post]
}

func NewLoaders(client *ent.Client) *Loaders {
	return &Loaders{
		Users: New(func(ctx context.Context, ids []int) (map[int]*ent.User, error) {
			rows, err := client.User.Query().
				Where(user.IDIn(ids...)).
				All(ctx)
			if err != nil {
				return nil, err
			}
			m := make(map[int]*ent.User, len(rows))
			for _, u := range rows {
				m[u.ID] = u
			}
			return m, nil
		}, batchWait, maxBatch),

		Posts: New(func(ctx context.Context, ids []int) (map[int]*ent.Post, error) {
			rows, err := client.Post.Query().
				Where(post.IDIn(ids...)).
				All(ctx)
			if err != nil {
				return nil, err
			}
			m := make(map[int]*ent.Post, len(rows))
			for _, p := range rows {
				m[p.ID] = p
			}
			return m, nil
		}, batchWait, maxBatch),
	}
}

// Middleware кладет свежий набор загрузчиков в контекст каждого запроса
func Middleware(client *ent.Client, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), loadersKey, NewLoaders(client))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// For достает загрузчики запроса из контекста
func For(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
