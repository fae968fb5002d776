package auth

import (
	"context"
	"fmt"

	"feedline/server/ent"
	"feedline/server/ent/user"
	"feedline/server/graphql/models"
	"feedline/shared/jwt"

	errorsx "feedline/shared/errors"
)

type AuthUsecase interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.AuthPayload, error)
	Login(ctx context.Context, input models.LoginInput) (*models.AuthPayload, error)
}

type authUsecase struct {
	client *ent.Client
}

func NewAuthUsecase(client *ent.Client) AuthUsecase {
	return &authUsecase{client: client}
}

func (uc *authUsecase) Register(ctx context.Context, input models.RegisterInput) (*models.AuthPayload, error) {
	if err := ValidateRegisterInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", errorsx.ErrBadInput, err)
	}

	// Предварительная проверка уникальности, чтобы отдать вменяемое
	// сообщение о том, что именно занято
	existing, err := uc.client.User.Query().
		Where(user.Or(
			user.EmailEQ(input.Email),
			user.UsernameEQ(input.Username),
		)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		taken := "username"
		if existing.Email == input.Email {
			taken = "email"
		}
		return nil, fmt.Errorf("%w: user with that %s already exists", errorsx.ErrBadInput, taken)
	}

	hash, err := jwt.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	create := uc.client.User.Create().
		SetUsername(input.Username).
		SetEmail(input.Email).
		SetPasswordHash(hash)
	if input.Name != nil {
		create = create.SetName(*input.Name)
	}
	u, err := create.Save(ctx)
	if err != nil {
		// Гонка двух регистраций: уникальный индекс БД — источник истины
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: user with that email or username already exists", errorsx.ErrBadInput)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := jwt.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AuthPayload{Token: token, User: u}, nil
}

func (uc *authUsecase) Login(ctx context.Context, input models.LoginInput) (*models.AuthPayload, error) {
	if err := ValidateLoginInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", errorsx.ErrBadInput, err)
	}

	u, err := uc.client.User.Query().
		Where(user.EmailEQ(input.Email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Одно сообщение для неизвестного email и неверного пароля
			return nil, fmt.Errorf("%w: invalid email or password", errorsx.ErrBadInput)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := jwt.ComparePassword(u.PasswordHash, input.Password); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", errorsx.ErrBadInput)
	}

	token, err := jwt.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AuthPayload{Token: token, User: u}, nil
}
