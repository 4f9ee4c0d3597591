// Package password hashes staff passwords. Plaintext is never stored.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password cannot be empty")
	ErrMismatch = errors.New("password does not match")
)

// Hash returns the bcrypt hash stored in users.password.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify returns ErrMismatch when plain does not produce hash.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))

	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}
