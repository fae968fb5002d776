package auth

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"feedline/server/graphql/models"
)

var validate = validator.New()

// Примитивная проверка на XSS/SQL в свободном тексте
var dangerousInput = regexp.MustCompile(`[<>'"%;()&+]`)

func ValidateRegisterInput(input models.RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	if input.Name != nil && dangerousInput.MatchString(*input.Name) {
		return errors.New("name contains potentially dangerous characters")
	}
	return nil
}

func ValidateLoginInput(input models.LoginInput) error {
	return validate.Struct(input)
}

func ValidateUpdateProfileInput(input models.UpdateProfileInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	if input.Name != nil && dangerousInput.MatchString(*input.Name) {
		return errors.New("name contains potentially dangerous characters")
	}
	return nil
}
