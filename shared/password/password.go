package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost pins the bcrypt work factor for account passwords. Raising it
// only affects newly stored hashes; existing ones keep their cost.
const DefaultCost = bcrypt.DefaultCost

// ErrInvalidPassword covers both an empty input and a hash mismatch, so the
// caller cannot tell the two apart.
var ErrInvalidPassword = errors.New("invalid password")

// Hash derives a bcrypt hash from the plaintext password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

// Verify compares the plaintext password against a stored hash using the
// bcrypt compare routine. A mismatch yields ErrInvalidPassword; any other
// error means the hash itself is malformed.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
