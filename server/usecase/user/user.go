package user

import (
	"context"
	"fmt"

	"feedline/server/ent"
	"feedline/server/ent/follow"
	"feedline/server/ent/user"
	"feedline/server/graphql/models"
	authuc "feedline/server/usecase/auth"

	errorsx "feedline/shared/errors"
)

type UserUsecase interface {
	GetUserByID(ctx context.Context, id int) (*ent.User, error)
	// UserByUsername: сперва точное совпадение, потом case-insensitive.
	// Отсутствие пользователя — это (nil, nil), не ошибка.
	UserByUsername(ctx context.Context, username string) (*ent.User, error)
	SearchUsers(ctx context.Context, query *string, first, skip *int) ([]*ent.User, error)
	Suggestions(ctx context.Context, userID int, first *int) ([]*ent.User, error)

	Follow(ctx context.Context, followerID, followeeID int) error
	Unfollow(ctx context.Context, followerID, followeeID int) error
	UpdateProfile(ctx context.Context, userID int, input models.UpdateProfileInput) (*ent.User, error)

	FollowerIDs(ctx context.Context, userID int) ([]int, error)
	FollowingIDs(ctx context.Context, userID int) ([]int, error)
	IsFollowing(ctx context.Context, followerID, followeeID int) (bool, error)
	CountsFor(ctx context.Context, userID int) (*models.UserCount, error)
}

type userUsecase struct {
	client *ent.Client
}

func NewUserUsecase(client *ent.Client) UserUsecase {
	return &userUsecase{client: client}
}

func (uc *userUsecase) GetUserByID(ctx context.Context, id int) (*ent.User, error) {
	return uc.client.User.Get(ctx, id)
}

func (uc *userUsecase) UserByUsername(ctx context.Context, username string) (*ent.User, error) {
	u, err := uc.client.User.Query().
		Where(user.UsernameEQ(username)).
		Only(ctx)
	if err == nil {
		return u, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	u, err = uc.client.User.Query().
		Where(user.UsernameEqualFold(username)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by username (fold): %w", err)
	}
	return u, nil
}

func (uc *userUsecase) SearchUsers(ctx context.Context, query *string, first, skip *int) ([]*ent.User, error) {
	q := uc.client.User.Query()
	if query != nil && *query != "" {
		q = q.Where(user.Or(
			user.UsernameContainsFold(*query),
			user.NameContainsFold(*query),
		))
	}
	return q.
		Offset(intOr(skip, 0)).
		Limit(intOr(first, 10)).
		All(ctx)
}

// Suggestions: все, кроме вызывающего и тех, на кого он уже подписан,
// новые аккаунты первыми
func (uc *userUsecase) Suggestions(ctx context.Context, userID int, first *int) ([]*ent.User, error) {
	followingIDs, err := uc.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	exclude := append(followingIDs, userID)
	return uc.client.User.Query().
		Where(user.IDNotIn(exclude...)).
		Order(ent.Desc(user.FieldCreatedAt)).
		Limit(intOr(first, 5)).
		All(ctx)
}

func (uc *userUsecase) Follow(ctx context.Context, followerID, followeeID int) error {
	// Самоподписка отклоняется всегда, независимо от состояния
	if followerID == followeeID {
		return fmt.Errorf("%w: you cannot follow yourself", errorsx.ErrBadInput)
	}

	if _, err := uc.client.User.Get(ctx, followeeID); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: user", errorsx.ErrNotFound)
		}
		return fmt.Errorf("load followee: %w", err)
	}

	exists, err := uc.client.Follow.Query().
		Where(
			follow.FollowerIDEQ(followerID),
			follow.FolloweeIDEQ(followeeID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check follow: %w", err)
	}
	if exists {
		return nil // уже подписан — идемпотентный успех
	}

	_, err = uc.client.Follow.Create().
		SetFollowerID(followerID).
		SetFolloweeID(followeeID).
		Save(ctx)
	if err != nil {
		// Параллельный followUser успел раньше: уникальный индекс пары
		// (follower, followee) превращает гонку в идемпотентный успех
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("create follow: %w", err)
	}
	return nil
}

func (uc *userUsecase) Unfollow(ctx context.Context, followerID, followeeID int) error {
	_, err := uc.client.Follow.Delete().
		Where(
			follow.FollowerIDEQ(followerID),
			follow.FolloweeIDEQ(followeeID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	// Отсутствие ребра — тоже успех
	return nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, userID int, input models.UpdateProfileInput) (*ent.User, error) {
	if err := authuc.ValidateUpdateProfileInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", errorsx.ErrBadInput, err)
	}
	update := uc.client.User.UpdateOneID(userID)
	if input.Name != nil {
		update = update.SetName(*input.Name)
	}
	if input.Bio != nil {
		update = update.SetBio(*input.Bio)
	}
	if input.Avatar != nil {
		update = update.SetAvatar(*input.Avatar)
	}
	u, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user", errorsx.ErrNotFound)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

func (uc *userUsecase) FollowerIDs(ctx context.Context, userID int) ([]int, error) {
	return uc.client.Follow.Query().
		Where(follow.FolloweeIDEQ(userID)).
		Select(follow.FieldFollowerID).
		Ints(ctx)
}

func (uc *userUsecase) FollowingIDs(ctx context.Context, userID int) ([]int, error) {
	return uc.client.Follow.Query().
		Where(follow.FollowerIDEQ(userID)).
		Select(follow.FieldFolloweeID).
		Ints(ctx)
}

func (uc *userUsecase) IsFollowing(ctx context.Context, followerID, followeeID int) (bool, error) {
	return uc.client.Follow.Query().
		Where(
			follow.FollowerIDEQ(followerID),
			follow.FolloweeIDEQ(followeeID),
		).
		Exist(ctx)
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
