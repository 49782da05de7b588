package handler

import (
	"bytes"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/mycard-server/internal/mocks"
	"github.com/dtroode/mycard-server/internal/model"
	"github.com/dtroode/mycard-server/internal/testutil"
)

func newCardApp(t *testing.T) (*fiber.App, *mocks.CardService) {
	t.Helper()
	svc := mocks.NewCardService(t)
	h := NewCard(svc, testutil.MakeNoopLogger())

	app := fiber.New()
	app.Get("/cards", h.Get)
	app.Post("/cards", h.Create)
	return app, svc
}

func TestCard_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		app, svc := newCardApp(t)
		svc.On("GetCardByID", mock.Anything, "c1").
			Return(model.GetCardResult{Card: &model.Card{ID: "c1", FullName: "Ada"}}).Once()

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/cards?id=c1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		card, ok := body["card"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada", card["full_name"])
		assert.Nil(t, card["email"])
		_, hasError := body["error"]
		assert.False(t, hasError)
	})

	t.Run("missing id is still 200", func(t *testing.T) {
		app, svc := newCardApp(t)
		svc.On("GetCardByID", mock.Anything, "").Return(model.GetCardResult{Error: "missing id"}).Once()

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/cards", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Nil(t, body["card"])
		assert.Equal(t, "missing id", body["error"])
	})
}

func TestCard_Create_FromForm(t *testing.T) {
	app, svc := newCardApp(t)

	archived := true
	expected := model.CreateCardInput{
		FullName:  "  Ada ",
		Email:     strPtr("ada@example.com"),
		Company:   strPtr("Engines"),
		UserID:    "u1",
		IsArchive: &archived,
	}
	svc.On("CreateCardWithImage", mock.Anything, expected, (*model.Upload)(nil)).
		Return(model.Card{ID: "c1", FullName: "Ada", UserID: "u1"}, nil).Once()

	resp, err := app.Test(formRequest(fiber.MethodPost, "/cards", url.Values{
		"full_name":  {"  Ada "},
		"email":      {" ada@example.com "},
		"phone":      {"   "},
		"company":    {"Engines"},
		"user_id":    {" u1 "},
		"is_archive": {"on"},
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "c1", data["id"])
}

func TestCard_Create_IsArchiveNotTruthy(t *testing.T) {
	app, svc := newCardApp(t)
	svc.On("CreateCardWithImage", mock.Anything, mock.MatchedBy(func(in model.CreateCardInput) bool {
		return in.IsArchive != nil && !*in.IsArchive
	}), mock.Anything).Return(model.Card{ID: "c1"}, nil).Once()

	resp, err := app.Test(formRequest(fiber.MethodPost, "/cards", url.Values{
		"full_name":  {"Ada"},
		"is_archive": {"nope"},
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCard_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", model.NewValidationError("full_name", "full name required"), fiber.StatusBadRequest, "full name required"},
		{"no session", model.ErrNoSession, fiber.StatusUnauthorized, "no active session"},
		{"persistence", &model.PersistenceError{Op: "card", Message: "rejected"}, fiber.StatusUnprocessableEntity, "failed to create card: rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, svc := newCardApp(t)
			svc.On("CreateCardWithImage", mock.Anything, mock.Anything, mock.Anything).Return(model.Card{}, tt.err).Once()

			resp, err := app.Test(formRequest(fiber.MethodPost, "/cards", url.Values{"full_name": {"x"}}))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestCard_Create_WithImage(t *testing.T) {
	app, svc := newCardApp(t)

	svc.On("CreateCardWithImage", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			u := args.Get(2).(*model.Upload)
			require.NotNil(t, u)
			assert.Equal(t, "me.png", u.Filename)
			assert.Equal(t, "image/png", u.ContentType)
			assert.Equal(t, int64(4), u.Size)
			content, err := io.ReadAll(u.Content)
			require.NoError(t, err)
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content)
		}).
		Return(model.Card{ID: "c1"}, nil).Once()

	req := multipartRequest(t, "/cards", url.Values{"full_name": {"Ada"}}, &filePart{
		field:       "image",
		filename:    "me.png",
		contentType: "image/png",
		content:     []byte{0x89, 'P', 'N', 'G'},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCard_Create_MultipartWithoutImage(t *testing.T) {
	app, svc := newCardApp(t)
	svc.On("CreateCardWithImage", mock.Anything, mock.Anything, (*model.Upload)(nil)).
		Return(model.Card{ID: "c1"}, nil).Once()

	resp, err := app.Test(multipartRequest(t, "/cards", url.Values{"full_name": {"Ada"}}, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCard_Create_TruncatedMultipart(t *testing.T) {
	app, svc := newCardApp(t)

	full := multipartRequest(t, "/cards", url.Values{"full_name": {"Ada"}}, &filePart{
		field:       "image",
		filename:    "me.png",
		contentType: "image/png",
		content:     []byte{0x89, 'P', 'N', 'G'},
	})
	body, err := io.ReadAll(full.Body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/cards", bytes.NewReader(body[:len(body)/2]))
	req.Header.Set(fiber.HeaderContentType, full.Header.Get(fiber.HeaderContentType))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, decodeBody(t, resp)["success"])
	svc.AssertNotCalled(t, "CreateCardWithImage", mock.Anything, mock.Anything, mock.Anything)
}
