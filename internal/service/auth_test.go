package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/mycard-server/internal/mocks"
	"github.com/dtroode/mycard-server/internal/model"
	"github.com/dtroode/mycard-server/internal/testutil"
)

func TestAuth_LoginWithPassword(t *testing.T) {
	t.Run("trims credentials", func(t *testing.T) {
		sessions := mocks.NewSessionProvider(t)
		a := NewAuth(sessions, mocks.NewUserStore(t), mocks.NewProfileStore(t), testutil.MakeNoopLogger())
		sessions.On("SignInWithPassword", mock.Anything, "ada@example.com", "pw123456").
			Return(model.Session{AccessToken: "tok", UserID: "u1", ExpiresAt: time.Now()}, nil).Once()

		sess, err := a.LoginWithPassword(context.Background(), " ada@example.com ", " pw123456 ")
		require.NoError(t, err)
		assert.Equal(t, "tok", sess.AccessToken)
	})

	t.Run("missing fields", func(t *testing.T) {
		sessions := mocks.NewSessionProvider(t)
		a := NewAuth(sessions, mocks.NewUserStore(t), mocks.NewProfileStore(t), testutil.MakeNoopLogger())

		_, err := a.LoginWithPassword(context.Background(), "ada@example.com", "   ")
		assert.EqualError(t, err, "email and password are required")
		sessions.AssertNotCalled(t, "SignInWithPassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		sessions := mocks.NewSessionProvider(t)
		a := NewAuth(sessions, mocks.NewUserStore(t), mocks.NewProfileStore(t), testutil.MakeNoopLogger())
		sessions.On("SignInWithPassword", mock.Anything, "ada@example.com", "bad").
			Return(model.Session{}, model.ErrInvalidCredentials).Once()

		_, err := a.LoginWithPassword(context.Background(), "ada@example.com", "bad")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestAuth_Register(t *testing.T) {
	t.Run("creates user and profile with shared id", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		profiles := mocks.NewProfileStore(t)
		a := NewAuth(mocks.NewSessionProvider(t), users, profiles, testutil.MakeNoopLogger())

		var createdID string
		users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			createdID = u.ID
			return u.Email == "ada@example.com" &&
				bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("long-enough")) == nil
		})).Return(func(_ context.Context, u model.User) model.User { return u }, nil).Once()
		profiles.On("Create", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
			return p.ID == createdID && p.Name != nil && *p.Name == "Ada" && p.Phone == nil
		})).Return(model.Profile{}, nil).Once()

		user, err := a.Register(context.Background(), model.RegisterParams{
			Email:    " Ada@Example.com ",
			Password: "long-enough",
			Name:     "Ada",
			Phone:    "  ",
		})
		require.NoError(t, err)
		assert.Equal(t, createdID, user.ID)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("short password", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		a := NewAuth(mocks.NewSessionProvider(t), users, mocks.NewProfileStore(t), testutil.MakeNoopLogger())

		_, err := a.Register(context.Background(), model.RegisterParams{Email: "a@b.c", Password: "short"})
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "password", vErr.Field)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		profiles := mocks.NewProfileStore(t)
		a := NewAuth(mocks.NewSessionProvider(t), users, profiles, testutil.MakeNoopLogger())
		users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken).Once()

		_, err := a.Register(context.Background(), model.RegisterParams{Email: "a@b.c", Password: "long-enough"})
		assert.ErrorIs(t, err, model.ErrEmailTaken)
		profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
