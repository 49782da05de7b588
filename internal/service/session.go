package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

var _ model.SessionProvider = (*Session)(nil)

// Session is the identity provider: it signs users in with a password and resolves
// the user behind the session token carried in the request context.
type Session struct {
	users   model.UserStore
	tokens  model.TokenManager
	context model.ContextManager
	logger  *logger.Logger
}

func NewSession(users model.UserStore, tokens model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{
		users:   users,
		tokens:  tokens,
		context: contextManager,
		logger:  logger,
	}
}

// SignInWithPassword checks the password and issues a session token. Unknown emails and
// wrong passwords both yield model.ErrInvalidCredentials.
func (s *Session) SignInWithPassword(ctx context.Context, email, password string) (model.Session, error) {
	email = strings.ToLower(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Session: unknown email", "email", email)
			return model.Session{}, model.ErrInvalidCredentials
		}
		return model.Session{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.logger.Info("Session: password mismatch", "user_id", user.ID)
		return model.Session{}, model.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue session: %w", err)
	}

	s.logger.Info("Session: user signed in", "user_id", user.ID)

	return model.Session{
		AccessToken: token,
		UserID:      user.ID,
		ExpiresAt:   expiresAt,
	}, nil
}

// GetUser returns nil without error when the request has no token, the token is
// invalid or expired, or the token's user no longer exists. Only user store failures
// are errors.
func (s *Session) GetUser(ctx context.Context) (*model.User, error) {
	token, ok := s.context.GetTokenFromContext(ctx)
	if !ok {
		return nil, nil
	}

	userID, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Session: rejected session token", "error", err.Error())
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
