package shield

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/99designs/gqlgen/graphql"

	"feedline/server/ent"
)

// Shield гейтит корневые поля Query/Mutation декларативной таблицей правил.
// Правило выполняется до резолвера; отказ коротко замыкает выполнение поля.
type Shield struct {
	client *ent.Client
	policy map[string]Rule
}

func New(client *ent.Client) *Shield {
	return &Shield{
		client: client,
		policy: map[string]Rule{
			"Query.me":              IsAuthenticated,
			"Query.feed":            IsAuthenticated,
			"Query.userSuggestions": IsAuthenticated,
			"Query.userPosts":       Allow,
			"Query.post":            Allow,
			"Query.user":            Allow,
			"Query.users":           Allow,

			"Mutation.register":      Allow,
			"Mutation.login":         Allow,
			"Mutation.createPost":    IsAuthenticated,
			"Mutation.likePost":      IsAuthenticated,
			"Mutation.unlikePost":    IsAuthenticated,
			"Mutation.createComment": IsAuthenticated,
			"Mutation.followUser":    IsAuthenticated,
			"Mutation.unfollowUser":  IsAuthenticated,
			"Mutation.updateProfile": IsAuthenticated,
			"Mutation.updatePost":    And(IsAuthenticated, PostOwner),
			"Mutation.deletePost":    And(IsAuthenticated, PostOwner),
			"Mutation.updateComment": And(IsAuthenticated, CommentOwner),
			"Mutation.deleteComment": And(IsAuthenticated, CommentOwner),
		},
	}
}

// RuleFor возвращает правило для поля вида "Mutation.deletePost".
// Поля вне таблицы разрешены: таблица покрывает все корневые поля схемы.
func (s *Shield) RuleFor(field string) Rule {
	if r, ok := s.policy[field]; ok {
		return r
	}
	return Allow
}

// Check выполняет правило поля с учетом per-request кэша
func (s *Shield) Check(ctx context.Context, object, field string, args map[string]interface{}) error {
	rule := s.RuleFor(object + "." + field)
	if cache := cacheFrom(ctx); cache != nil {
		key := cacheKey(rule, args)
		if err, ok := cache.get(key); ok {
			return err
		}
		err := rule.Allow(ctx, s, args)
		cache.put(key, err)
		return err
	}
	return rule.Allow(ctx, s, args)
}

// OperationMiddleware заводит кэш результатов правил на время одного запроса.
// Identity в рамках запроса не меняется, поэтому результат правила стабилен.
func (s *Shield) OperationMiddleware(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	return next(withCache(ctx))
}

// FieldMiddleware выполняет правило перед резолвером корневого поля
func (s *Shield) FieldMiddleware(ctx context.Context, next graphql.Resolver) (interface{}, error) {
	fc := graphql.GetFieldContext(ctx)
	if fc == nil || (fc.Object != "Query" && fc.Object != "Mutation") {
		return next(ctx)
	}
	if err := s.Check(ctx, fc.Object, fc.Field.Name, fc.Args); err != nil {
		return nil, err
	}
	return next(ctx)
}

// --- contextual cache ---

type cacheCtxKey struct{}

type ruleCache struct {
	mu      sync.Mutex
	results map[string]error
}

func withCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheCtxKey{}, &ruleCache{results: map[string]error{}})
}

func cacheFrom(ctx context.Context) *ruleCache {
	c, _ := ctx.Value(cacheCtxKey{}).(*ruleCache)
	return c
}

func (c *ruleCache) get(key string) (error, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	err, ok := c.results[key]
	return err, ok
}

func (c *ruleCache) put(key string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[key] = err
}

// cacheKey: имя правила плюс id-аргумент, чтобы ownership-правила
// разных ресурсов не делили результат
func cacheKey(rule Rule, args map[string]interface{}) string {
	if id, ok := args["id"]; ok {
		return fmt.Sprintf("%s:%v", rule.Name(), id)
	}
	return rule.Name()
}

// argInt приводит id-аргумент к int независимо от того,
// пришел он как int, int64 или строка
func argInt(args map[string]interface{}, name string) (int, bool) {
	switch v := args[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		id, err := strconv.Atoi(v)
		return id, err == nil
	default:
		return 0, false
	}
}
