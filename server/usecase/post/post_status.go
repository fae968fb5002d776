package post

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"feedline/server/ent"
	"feedline/server/ent/comment"
	"feedline/server/ent/like"
	"feedline/server/graphql/models"

	errorsx "feedline/shared/errors"
)

// LikePost — идемпотентный toggle в состояние present.
// Существующий лайк возвращается как есть, ошибки дубликата не бывает.
func (uc *postUsecase) LikePost(ctx context.Context, userID, postID int) (*ent.Like, error) {
	if _, err := uc.client.Post.Get(ctx, postID); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: post", errorsx.ErrNotFound)
		}
		return nil, fmt.Errorf("load post: %w", err)
	}

	existing, err := uc.client.Like.Query().
		Where(
			like.UserIDEQ(userID),
			like.PostIDEQ(postID),
		).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("check like: %w", err)
	}

	created, err := uc.client.Like.Create().
		SetUserID(userID).
		SetPostID(postID).
		Save(ctx)
	if err != nil {
		// Два конкурентных likePost: уникальный индекс (user, post) — источник
		// истины, конфликт превращаем в «вернуть существующий»
		if ent.IsConstraintError(err) {
			return uc.client.Like.Query().
				Where(
					like.UserIDEQ(userID),
					like.PostIDEQ(postID),
				).
				Only(ctx)
		}
		return nil, fmt.Errorf("create like: %w", err)
	}
	return created, nil
}

// UnlikePost — идемпотентный toggle в состояние absent.
// Отсутствие лайка — тоже успех.
func (uc *postUsecase) UnlikePost(ctx context.Context, userID, postID int) error {
	_, err := uc.client.Like.Delete().
		Where(
			like.UserIDEQ(userID),
			like.PostIDEQ(postID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

// Liked — лайкнул ли пост текущий зритель. Для анонима всегда false.
func (uc *postUsecase) Liked(ctx context.Context, viewerID, postID int) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	return uc.client.Like.Query().
		Where(
			like.UserIDEQ(viewerID),
			like.PostIDEQ(postID),
		).
		Exist(ctx)
}

// CountsFor считает лайки и комментарии поста независимыми запросами
func (uc *postUsecase) CountsFor(ctx context.Context, postID int) (*models.PostCount, error) {
	var counts models.PostCount
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.client.Like.Query().
			Where(like.PostIDEQ(postID)).
			Count(gctx)
		if err != nil {
			return fmt.Errorf("count likes: %w", err)
		}
		counts.Likes = n
		return nil
	})

	g.Go(func() error {
		n, err := uc.client.Comment.Query().
			Where(comment.PostIDEQ(postID)).
			Count(gctx)
		if err != nil {
			return fmt.Errorf("count comments: %w", err)
		}
		counts.Comments = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}
