package graphql

import (
	"context"
	"fmt"

	"feedline/server/ent"
	"feedline/server/pkg/loader"
	authuc "feedline/server/usecase/auth"
	commentuc "feedline/server/usecase/comment"
	postuc "feedline/server/usecase/post"
	useruc "feedline/server/usecase/user"

	errorsx "feedline/shared/errors"
)

type Resolver struct {
	Client    *ent.Client
	AuthUC    authuc.AuthUsecase
	UserUC    useruc.UserUsecase
	PostUC    postuc.PostUsecase
	CommentUC commentuc.CommentUsecase
}

func NewResolver(client *ent.Client) *Resolver {
	return &Resolver{
		Client:    client,
		AuthUC:    authuc.NewAuthUsecase(client),
		UserUC:    useruc.NewUserUsecase(client),
		PostUC:    postuc.NewPostUsecase(client),
		CommentUC: commentuc.NewCommentUsecase(client),
	}
}

// userByID грузит пользователя через per-request loader;
// вне HTTP-запроса (юнит-тесты) — напрямую из клиента
func (r *Resolver) userByID(ctx context.Context, id int) (*ent.User, error) {
	if l := loader.For(ctx); l != nil {
		u, err := l.Users.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, fmt.Errorf("%w: user %d", errorsx.ErrNotFound, id)
		}
		return u, nil
	}
	return r.Client.User.Get(ctx, id)
}

func (r *Resolver) postByID(ctx context.Context, id int) (*ent.Post, error) {
	if l := loader.For(ctx); l != nil {
		p, err := l.Posts.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: post %d", errorsx.ErrNotFound, id)
		}
		return p, nil
	}
	return r.Client.Post.Get(ctx, id)
}

// primePosts кладет уже загруженные листингом посты в loader запроса:
// последующие Comment.post / Like.post не ходят в базу повторно
func (r *Resolver) primePosts(ctx context.Context, posts []*ent.Post) {
	l := loader.For(ctx)
	if l == nil {
		return
	}
	for _, p := range posts {
		l.Posts.Prime(p.ID, p)
	}
}

// usersByIDs сохраняет порядок ids, отсутствующие записи пропускает
func (r *Resolver) usersByIDs(ctx context.Context, ids []int) ([]*ent.User, error) {
	if l := loader.For(ctx); l != nil {
		rows, err := l.Users.LoadMany(ctx, ids)
		if err != nil {
			return nil, err
		}
		users := make([]*ent.User, 0, len(rows))
		for _, u := range rows {
			if u != nil {
				users = append(users, u)
			}
		}
		return users, nil
	}
	users := make([]*ent.User, 0, len(ids))
	for _, id := range ids {
		u, err := r.Client.User.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
