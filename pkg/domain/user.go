package domain

import (
	"errors"
	"time"

	"github.com/c2ccalc/c2ccalc/pkg/utils"
	"github.com/google/uuid"
)

// User is a registered account holder. Password holds the bcrypt hash,
// never the plain text.
type User struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string

	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrInvalidUsername = errors.New("username must be 3-50 characters")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("password must be 6-72 characters")
)

// NewUser validates the inputs and hashes the password.
func NewUser(username, email, password string) (*User, error) {
	if len(username) < 3 || len(username) > 50 {
		return nil, ErrInvalidUsername
	}
	if !utils.IsEmail(email) {
		return nil, ErrInvalidEmail
	}
	// 72 bytes is the bcrypt input limit.
	if len(password) < 6 || len(password) > 72 {
		return nil, ErrInvalidPassword
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: hashed,
	}, nil
}
