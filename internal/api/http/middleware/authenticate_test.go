package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/mycard-server/internal/api/http/context"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cookie    string
		header    string
		wantToken string
		wantFound bool
	}{
		{name: "no credentials", wantFound: false},
		{name: "cookie", cookie: "cookie-token", wantToken: "cookie-token", wantFound: true},
		{name: "bearer header", header: "Bearer header-token", wantToken: "header-token", wantFound: true},
		{name: "cookie wins over header", cookie: "cookie-token", header: "Bearer header-token", wantToken: "cookie-token", wantFound: true},
		{name: "non-bearer header ignored", header: "Basic abc", wantFound: false},
		{name: "empty bearer ignored", header: "Bearer   ", wantFound: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := httpctx.NewManager()
			app := fiber.New()
			app.Use(NewAuthenticate(cm, "session").Handle)

			var gotToken string
			var gotFound bool
			app.Get("/", func(c *fiber.Ctx) error {
				gotToken, gotFound = cm.GetTokenFromContext(c.UserContext())
				return c.SendStatus(fiber.StatusNoContent)
			})

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", "session="+tt.cookie)
			}
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
			assert.Equal(t, tt.wantFound, gotFound)
			assert.Equal(t, tt.wantToken, gotToken)
		})
	}
}
