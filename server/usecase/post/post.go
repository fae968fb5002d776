package post

import (
	"context"
	"fmt"

	"feedline/server/ent"
	"feedline/server/ent/comment"
	"feedline/server/ent/follow"
	"feedline/server/ent/like"
	"feedline/server/ent/post"
	"feedline/server/graphql/models"

	errorsx "feedline/shared/errors"
)

type PostUsecase interface {
	GetPostByID(ctx context.Context, id int) (*ent.Post, error)
	// Feed: посты тех, на кого подписан userID, плюс его собственные,
	// новые первыми, skip/first как offset/limit
	Feed(ctx context.Context, userID int, first, skip *int) ([]*ent.Post, error)
	UserPosts(ctx context.Context, authorID int, first, skip *int) ([]*ent.Post, error)
	// AllUserPosts: все посты автора без пагинации, новые первыми.
	// Поле User.posts отдает полный список; пагинация только в userPosts.
	AllUserPosts(ctx context.Context, authorID int) ([]*ent.Post, error)

	Create(ctx context.Context, authorID int, content string) (*ent.Post, error)
	Update(ctx context.Context, userID, id int, content string) (*ent.Post, error)
	Delete(ctx context.Context, userID, id int) error

	LikePost(ctx context.Context, userID, postID int) (*ent.Like, error)
	UnlikePost(ctx context.Context, userID, postID int) error
	Liked(ctx context.Context, viewerID, postID int) (bool, error)
	CountsFor(ctx context.Context, postID int) (*models.PostCount, error)

	LikesFor(ctx context.Context, postID int) ([]*ent.Like, error)
	CommentsFor(ctx context.Context, postID int) ([]*ent.Comment, error)
}

type postUsecase struct {
	client *ent.Client
}

func NewPostUsecase(client *ent.Client) PostUsecase {
	return &postUsecase{client: client}
}

func (uc *postUsecase) GetPostByID(ctx context.Context, id int) (*ent.Post, error) {
	return uc.client.Post.Get(ctx, id)
}

func (uc *postUsecase) Feed(ctx context.Context, userID int, first, skip *int) ([]*ent.Post, error) {
	followingIDs, err := uc.client.Follow.Query().
		Where(follow.FollowerIDEQ(userID)).
		Select(follow.FieldFolloweeID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("load following ids: %w", err)
	}
	authorIDs := append(followingIDs, userID)

	return uc.client.Post.Query().
		Where(post.AuthorIDIn(authorIDs...)).
		Order(ent.Desc(post.FieldCreatedAt)).
		Offset(intOr(skip, 0)).
		Limit(intOr(first, 10)).
		All(ctx)
}

func (uc *postUsecase) UserPosts(ctx context.Context, authorID int, first, skip *int) ([]*ent.Post, error) {
	return uc.client.Post.Query().
		Where(post.AuthorIDEQ(authorID)).
		Order(ent.Desc(post.FieldCreatedAt)).
		Offset(intOr(skip, 0)).
		Limit(intOr(first, 10)).
		All(ctx)
}

func (uc *postUsecase) AllUserPosts(ctx context.Context, authorID int) ([]*ent.Post, error) {
	return uc.client.Post.Query().
		Where(post.AuthorIDEQ(authorID)).
		Order(ent.Desc(post.FieldCreatedAt)).
		All(ctx)
}

func (uc *postUsecase) Create(ctx context.Context, authorID int, content string) (*ent.Post, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", errorsx.ErrBadInput)
	}
	return uc.client.Post.Create().
		SetContent(content).
		SetAuthorID(authorID).
		Save(ctx)
}

func (uc *postUsecase) Update(ctx context.Context, userID, id int, content string) (*ent.Post, error) {
	p, err := uc.client.Post.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: post", errorsx.ErrNotFound)
		}
		return nil, fmt.Errorf("load post: %w", err)
	}
	// Shield уже проверил владение; повторная проверка намеренная
	if p.AuthorID != userID {
		return nil, errorsx.ErrNotAuthorized
	}
	return uc.client.Post.UpdateOneID(id).
		SetContent(content).
		Save(ctx)
}

// Delete удаляет пост каскадно: лайки, комментарии, затем сам пост,
// в одной транзакции — осиротевших строк не остается
func (uc *postUsecase) Delete(ctx context.Context, userID, id int) error {
	p, err := uc.client.Post.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: post", errorsx.ErrNotFound)
		}
		return fmt.Errorf("load post: %w", err)
	}
	if p.AuthorID != userID {
		return errorsx.ErrNotAuthorized
	}

	tx, err := uc.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if _, err := tx.Like.Delete().Where(like.PostIDEQ(id)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete likes: %w", err))
	}
	if _, err := tx.Comment.Delete().Where(comment.PostIDEQ(id)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete comments: %w", err))
	}
	if err := tx.Post.DeleteOneID(id).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete post: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

func (uc *postUsecase) LikesFor(ctx context.Context, postID int) ([]*ent.Like, error) {
	return uc.client.Like.Query().
		Where(like.PostIDEQ(postID)).
		All(ctx)
}

func (uc *postUsecase) CommentsFor(ctx context.Context, postID int) ([]*ent.Comment, error) {
	return uc.client.Comment.Query().
		Where(comment.PostIDEQ(postID)).
		Order(ent.Desc(comment.FieldCreatedAt)).
		All(ctx)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback failed: %v", err, rerr)
	}
	return err
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
