package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/mycard-server/internal/model"
)

const bearerPrefix = "Bearer "

// Authenticate copies the session token of a request into its user context. It never
// rejects a request: each operation decides whether it needs a signed-in user.
type Authenticate struct {
	contextManager model.ContextManager
	cookieName     string
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(contextManager model.ContextManager, cookieName string) *Authenticate {
	return &Authenticate{contextManager: contextManager, cookieName: cookieName}
}

// Handle reads the token from the session cookie, falling back to the Authorization header.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	if token == "" {
		if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
			token = strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		}
	}

	if token != "" {
		c.SetUserContext(m.contextManager.SetTokenToContext(c.UserContext(), token))
	}

	return c.Next()
}
