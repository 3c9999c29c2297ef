package users

import (
	"errors"
	"time"
)

// User is a back-office account. Passwords are stored only as bcrypt hashes.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
}

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("User already exists")
	ErrMissingCredentials = errors.New("Email and password are required")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)
