package jwt

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// HashPassword хеширует пароль bcrypt-ом. Соль встроена в хеш.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword сверяет пароль с сохраненным хешем
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
