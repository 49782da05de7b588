package router

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/mycard-server/internal/api/http/context"
	"github.com/dtroode/mycard-server/internal/config"
	"github.com/dtroode/mycard-server/internal/mocks"
	"github.com/dtroode/mycard-server/internal/model"
	"github.com/dtroode/mycard-server/internal/testutil"
)

type services struct {
	cards    *mocks.CardService
	profiles *mocks.ProfileService
	auth     *mocks.AuthService
}

func newApp(t *testing.T) (*fiber.App, services, *httpctx.Manager) {
	t.Helper()
	svcs := services{
		cards:    mocks.NewCardService(t),
		profiles: mocks.NewProfileService(t),
		auth:     mocks.NewAuthService(t),
	}
	cm := httpctx.NewManager()
	cfg := config.HTTP{SessionCookie: "session", RedirectPath: "/user"}

	app := New(svcs.cards, svcs.profiles, svcs.auth, cm, cfg, testutil.MakeNoopLogger()).Register()
	return app, svcs, cm
}

func TestRouter_Routes(t *testing.T) {
	app, svcs, _ := newApp(t)

	svcs.cards.On("GetCardByID", mock.Anything, "c1").Return(model.GetCardResult{Card: &model.Card{ID: "c1"}}).Once()
	svcs.profiles.On("GetCurrentProfile", mock.Anything).Return(nil, nil).Once()
	svcs.profiles.On("GetUserInfo", mock.Anything, "p1").Return(&model.Profile{ID: "p1"}, nil).Once()

	tests := []struct {
		method string
		target string
		want   int
	}{
		{fiber.MethodGet, "/cards?id=c1", fiber.StatusOK},
		{fiber.MethodGet, "/profiles/me", fiber.StatusOK},
		{fiber.MethodGet, "/profiles/p1", fiber.StatusOK},
		{fiber.MethodPost, "/auth/logout", fiber.StatusOK},
		{fiber.MethodGet, "/unknown", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.StatusCode, tt.method+" "+tt.target)
	}
}

func TestRouter_SessionCookieReachesServices(t *testing.T) {
	app, svcs, cm := newApp(t)

	var gotToken string
	svcs.profiles.On("GetCurrentProfile", mock.Anything).Run(func(args mock.Arguments) {
		gotToken, _ = cm.GetTokenFromContext(args.Get(0).(context.Context))
	}).Return(nil, nil).Once()

	req := httptest.NewRequest(fiber.MethodGet, "/profiles/me", nil)
	req.Header.Set("Cookie", "session=tok-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "tok-123", gotToken)
}

func TestRouter_SaveRedirect(t *testing.T) {
	app, svcs, _ := newApp(t)
	svcs.profiles.On("SaveCardFromProfile", mock.Anything, model.SaveFromProfileRequest{ProfileID: "p1"}).
		Return(model.Card{ID: "c1"}, nil).Once()

	req := httptest.NewRequest(fiber.MethodPost, "/profiles/save/redirect",
		strings.NewReader(url.Values{"profile_id": {"p1"}}.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/user?id=p1&saved=1", resp.Header.Get(fiber.HeaderLocation))
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	app, svcs, _ := newApp(t)
	svcs.cards.On("GetCardByID", mock.Anything, "boom").Run(func(mock.Arguments) { panic("boom") }).Once()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/cards?id=boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
