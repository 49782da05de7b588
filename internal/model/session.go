package model

import (
	"context"
	"time"
)

// SessionProvider authenticates users and reports the user behind the current request.
type SessionProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (Session, error)
	// GetUser returns nil without error when the request carries no session.
	GetUser(ctx context.Context) (*User, error)
}

// Session is an issued access token.
type Session struct {
	AccessToken string
	UserID      string
	ExpiresAt   time.Time
}
