package user

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"feedline/server/ent/follow"
	"feedline/server/ent/post"
	"feedline/server/graphql/models"
)

// CountsFor считает followers/following/posts независимыми запросами.
// Счетчики не денормализованы: всегда отражают текущее состояние.
func (uc *userUsecase) CountsFor(ctx context.Context, userID int) (*models.UserCount, error) {
	var counts models.UserCount
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.client.Follow.Query().
			Where(follow.FolloweeIDEQ(userID)).
			Count(gctx)
		if err != nil {
			return fmt.Errorf("count followers: %w", err)
		}
		counts.Followers = n
		return nil
	})

	g.Go(func() error {
		n, err := uc.client.Follow.Query().
			Where(follow.FollowerIDEQ(userID)).
			Count(gctx)
		if err != nil {
			return fmt.Errorf("count following: %w", err)
		}
		counts.Following = n
		return nil
	})

	g.Go(func() error {
		n, err := uc.client.Post.Query().
			Where(post.AuthorIDEQ(userID)).
			Count(gctx)
		if err != nil {
			return fmt.Errorf("count posts: %w", err)
		}
		counts.Posts = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}
