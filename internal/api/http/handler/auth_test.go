package handler

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/mycard-server/internal/mocks"
	"github.com/dtroode/mycard-server/internal/model"
	"github.com/dtroode/mycard-server/internal/testutil"
)

func newAuthApp(t *testing.T) (*fiber.App, *mocks.AuthService) {
	t.Helper()
	svc := mocks.NewAuthService(t)
	h := NewAuth(svc, "session", true, testutil.MakeNoopLogger())

	app := fiber.New()
	app.Post("/auth/login", h.Login)
	app.Post("/auth/logout", h.Logout)
	return app, svc
}

func TestAuth_Login_Form(t *testing.T) {
	app, svc := newAuthApp(t)
	svc.On("LoginWithPassword", mock.Anything, "ada@example.com", "pw").
		Return(model.Session{AccessToken: "tok", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	resp, err := app.Test(formRequest(fiber.MethodPost, "/auth/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"pw"},
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := resp.Header.Get(fiber.HeaderSetCookie)
	assert.Contains(t, cookie, "session=tok")
	assert.Contains(t, strings.ToLower(cookie), "httponly")
	assert.Contains(t, strings.ToLower(cookie), "samesite=lax")
	assert.Contains(t, strings.ToLower(cookie), "secure")
	assert.Equal(t, true, decodeBody(t, resp)["success"])
}

func TestAuth_Login_JSON(t *testing.T) {
	app, svc := newAuthApp(t)
	svc.On("LoginWithPassword", mock.Anything, "ada@example.com", "pw").
		Return(model.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	req := httptest.NewRequest(fiber.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"pw"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuth_Login_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing fields", model.NewValidationError("email", "email and password are required"), fiber.StatusBadRequest},
		{"bad credentials", model.ErrInvalidCredentials, fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, svc := newAuthApp(t)
			svc.On("LoginWithPassword", mock.Anything, mock.Anything, mock.Anything).Return(model.Session{}, tt.err).Once()

			resp, err := app.Test(formRequest(fiber.MethodPost, "/auth/login", url.Values{"email": {"a"}}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.Empty(t, resp.Header.Get(fiber.HeaderSetCookie))

			body := decodeBody(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.err.Error(), body["error"])
		})
	}
}

func TestAuth_Login_UnsupportedBody(t *testing.T) {
	app, svc := newAuthApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/auth/login", strings.NewReader("garbage"))
	req.Header.Set(fiber.HeaderContentType, "application/octet-stream")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "LoginWithPassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_Logout(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/auth/logout", nil)
	req.Header.Set(fiber.HeaderCookie, "session=tok")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := strings.ToLower(resp.Header.Get(fiber.HeaderSetCookie))
	assert.Contains(t, cookie, "session=;")
	assert.Contains(t, cookie, "path=/")
	assert.Contains(t, cookie, "expires=thu, 01 jan 1970")
	assert.Contains(t, cookie, "httponly")
}
