package model

import "context"

// ContextManager stores and retrieves the raw session token carried by a request.
type ContextManager interface {
	SetTokenToContext(ctx context.Context, token string) context.Context
	GetTokenFromContext(ctx context.Context) (string, bool)
}
