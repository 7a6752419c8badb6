package models

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrAdminDisabled = errors.New("admin access is not configured")

// GenerateHash returns the bcrypt hash stored in ADMIN_PASSWORD_HASH
func GenerateHash(password string) (string, error) {
	hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(password), 8)
	if hashErr != nil {
		return "", fmt.Errorf("error hashing password %v", hashErr)
	}

	return string(hashedPassword), nil
}

// CheckAdminPassword compares password against the configured hash
func CheckAdminPassword(hash, password string) error {
	if hash == "" {
		return ErrAdminDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("invalid admin credentials")
	}
	return nil
}
