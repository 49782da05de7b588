package model

import "time"

// TokenManager issues and validates session access tokens.
type TokenManager interface {
	GenerateAccessToken(userID string) (token string, expiresAt time.Time, err error)
	ParseAccessToken(token string) (userID string, err error)
}
