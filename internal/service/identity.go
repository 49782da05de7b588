package service

import (
	"context"
	"strings"

	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

// Identity decides which user acts in a request.
type Identity struct {
	sessions model.SessionProvider
	logger   *logger.Logger
}

func NewIdentity(sessions model.SessionProvider, logger *logger.Logger) *Identity {
	return &Identity{
		sessions: sessions,
		logger:   logger,
	}
}

// ResolveUserID returns explicitID when it is set, without consulting the session.
// Otherwise it returns the session user, *model.SessionError when the provider fails
// and model.ErrNoSession when nobody is signed in.
func (i *Identity) ResolveUserID(ctx context.Context, explicitID string) (string, error) {
	if id := strings.TrimSpace(explicitID); id != "" {
		return id, nil
	}

	user, err := i.sessions.GetUser(ctx)
	if err != nil {
		i.logger.Error("Identity: session lookup failed", "error", err.Error())
		return "", &model.SessionError{Err: err}
	}

	if user == nil {
		i.logger.Debug("Identity: no active session")
		return "", model.ErrNoSession
	}

	return user.ID, nil
}
