package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored account with its password hash.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterParams contains parameters to provision a user and its profile.
type RegisterParams struct {
	Email     string
	Password  string
	Name      string
	Phone     string
	CodePhone string
	Company   string
	Position  string
}
