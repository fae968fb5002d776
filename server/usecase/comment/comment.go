package comment

import (
	"context"
	"fmt"

	"feedline/server/ent"

	errorsx "feedline/shared/errors"
)

type CommentUsecase interface {
	CommentByID(ctx context.Context, id int) (*ent.Comment, error)
	Create(ctx context.Context, authorID, postID int, content string) (*ent.Comment, error)
	Update(ctx context.Context, userID, id int, content string) (*ent.Comment, error)
	Delete(ctx context.Context, userID, id int) error
}

type commentUsecase struct {
	client *ent.Client
}

func NewCommentUsecase(client *ent.Client) CommentUsecase {
	return &commentUsecase{client: client}
}

func (uc *commentUsecase) CommentByID(ctx context.Context, id int) (*ent.Comment, error) {
	return uc.client.Comment.Get(ctx, id)
}

func (uc *commentUsecase) Create(ctx context.Context, authorID, postID int, content string) (*ent.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", errorsx.ErrBadInput)
	}
	if _, err := uc.client.Post.Get(ctx, postID); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: post", errorsx.ErrNotFound)
		}
		return nil, fmt.Errorf("load post: %w", err)
	}
	return uc.client.Comment.Create().
		SetContent(content).
		SetAuthorID(authorID).
		SetPostID(postID).
		Save(ctx)
}

func (uc *commentUsecase) Update(ctx context.Context, userID, id int, content string) (*ent.Comment, error) {
	c, err := uc.client.Comment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: comment", errorsx.ErrNotFound)
		}
		return nil, fmt.Errorf("load comment: %w", err)
	}
	// Shield уже проверил владение; повторная проверка намеренная
	if c.AuthorID != userID {
		return nil, errorsx.ErrNotAuthorized
	}
	return uc.client.Comment.UpdateOneID(id).
		SetContent(content).
		Save(ctx)
}

func (uc *commentUsecase) Delete(ctx context.Context, userID, id int) error {
	c, err := uc.client.Comment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: comment", errorsx.ErrNotFound)
		}
		return fmt.Errorf("load comment: %w", err)
	}
	if c.AuthorID != userID {
		return errorsx.ErrNotAuthorized
	}
	return uc.client.Comment.DeleteOneID(id).Exec(ctx)
}
