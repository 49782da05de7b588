package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/mycard-server/internal/field"
	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

const minPasswordLength = 8

// Auth handles account sign-in and provisioning.
type Auth struct {
	sessions model.SessionProvider
	users    model.UserStore
	profiles model.ProfileStore
	logger   *logger.Logger
}

func NewAuth(sessions model.SessionProvider, users model.UserStore, profiles model.ProfileStore, logger *logger.Logger) *Auth {
	return &Auth{
		sessions: sessions,
		users:    users,
		profiles: profiles,
		logger:   logger,
	}
}

// LoginWithPassword trims the credentials and signs the user in.
func (a *Auth) LoginWithPassword(ctx context.Context, email, password string) (model.Session, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return model.Session{}, model.NewValidationError("email", "email and password are required")
	}

	a.logger.Debug("Auth service: signing in", "email", email)

	session, err := a.sessions.SignInWithPassword(ctx, email, password)
	if err != nil {
		if !errors.Is(err, model.ErrInvalidCredentials) {
			a.logger.Error("Auth service: sign in failed",
				"email", email,
				"error", err.Error())
		}
		return model.Session{}, err
	}

	return session, nil
}

// Register creates a user and the profile that shares its ID.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" {
		return model.User{}, model.NewValidationError("email", "email is required")
	}
	if len(params.Password) < minPasswordLength {
		return model.User{}, model.NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// TODO: run the user and profile inserts in one transaction.
	user, err := a.users.Create(ctx, model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, err
	}

	_, err = a.profiles.Create(ctx, model.Profile{
		ID:        user.ID,
		Name:      field.FromForm(params.Name),
		Email:     &email,
		Phone:     field.FromForm(params.Phone),
		CodePhone: field.FromForm(params.CodePhone),
		Company:   field.FromForm(params.Company),
		Position:  field.FromForm(params.Position),
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create profile",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, err
	}

	a.logger.Info("Auth service: user registered", "user_id", user.ID)

	return user, nil
}
