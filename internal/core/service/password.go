package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/oficina/workshop/internal/core/domain"
)

const minPasswordLen = 6

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", domain.Invalid("senha must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
