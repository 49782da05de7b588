package context

import (
	"context"
)

type tokenKey struct{}

// Manager keeps the raw session token of an HTTP request in its context.
type Manager struct{}

// NewManager creates a new context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetTokenToContext returns a copy of ctx carrying token. An empty token is ignored.
func (m *Manager) SetTokenToContext(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// GetTokenFromContext returns the session token stored in ctx, if any.
func (m *Manager) GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
