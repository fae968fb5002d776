package shield

import (
	"context"

	"feedline/server/ent/comment"
	"feedline/server/ent/post"
	sharedauth "feedline/shared/auth"
	errorsx "feedline/shared/errors"
)

type Rule interface {
	Name() string
	Allow(ctx context.Context, s *Shield, args map[string]interface{}) error
}

type ruleFunc struct {
	name string
	fn   func(ctx context.Context, s *Shield, args map[string]interface{}) error
}

func (r ruleFunc) Name() string { return r.name }

func (r ruleFunc) Allow(ctx context.Context, s *Shield, args map[string]interface{}) error {
	return r.fn(ctx, s, args)
}

// Allow пропускает всегда
var Allow Rule = ruleFunc{name: "allow", fn: func(context.Context, *Shield, map[string]interface{}) error {
	return nil
}}

// IsAuthenticated требует валидный userID в контексте
var IsAuthenticated Rule = ruleFunc{name: "isAuthenticated", fn: func(ctx context.Context, _ *Shield, _ map[string]interface{}) error {
	if _, err := sharedauth.UserIDFromContext(ctx); err != nil {
		return errorsx.ErrNotAuthenticated
	}
	return nil
}}

// PostOwner требует, чтобы пост из аргумента id принадлежал вызывающему.
// Отсутствующий пост и чужой пост дают один и тот же отказ:
// существование ресурса через ошибку не раскрывается.
var PostOwner Rule = ruleFunc{name: "isPostOwner", fn: func(ctx context.Context, s *Shield, args map[string]interface{}) error {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return errorsx.ErrNotAuthenticated
	}
	id, ok := argInt(args, "id")
	if !ok {
		return errorsx.ErrNotAuthorized
	}
	authorID, err := s.client.Post.Query().
		Where(post.IDEQ(id)).
		Select(post.FieldAuthorID).
		Int(ctx)
	if err != nil || authorID != userID {
		return errorsx.ErrNotAuthorized
	}
	return nil
}}

// CommentOwner — то же для комментария
var CommentOwner Rule = ruleFunc{name: "isCommentOwner", fn: func(ctx context.Context, s *Shield, args map[string]interface{}) error {
	userID, err := sharedauth.UserIDFromContext(ctx)
	if err != nil {
		return errorsx.ErrNotAuthenticated
	}
	id, ok := argInt(args, "id")
	if !ok {
		return errorsx.ErrNotAuthorized
	}
	authorID, err := s.client.Comment.Query().
		Where(comment.IDEQ(id)).
		Select(comment.FieldAuthorID).
		Int(ctx)
	if err != nil || authorID != userID {
		return errorsx.ErrNotAuthorized
	}
	return nil
}}

type andRule struct {
	rules []Rule
	name  string
}

// And пропускает, только если пропускают все правила по порядку
func And(rules ...Rule) Rule {
	name := "and"
	for _, r := range rules {
		name += ":" + r.Name()
	}
	return andRule{rules: rules, name: name}
}

func (r andRule) Name() string { return r.name }

func (r andRule) Allow(ctx context.Context, s *Shield, args map[string]interface{}) error {
	for _, rule := range r.rules {
		if err := rule.Allow(ctx, s, args); err != nil {
			return err
		}
	}
	return nil
}
