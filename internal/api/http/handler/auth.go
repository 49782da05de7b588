package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

// AuthService signs users in.
type AuthService interface {
	LoginWithPassword(ctx context.Context, email, password string) (model.Session, error)
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Auth serves the /auth endpoints and owns the session cookie.
type Auth struct {
	service      AuthService
	cookieName   string
	secureCookie bool
	logger       *logger.Logger
}

// NewAuth creates a new auth handler.
func NewAuth(service AuthService, cookieName string, secureCookie bool, logger *logger.Logger) *Auth {
	return &Auth{
		service:      service,
		cookieName:   cookieName,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Login checks the credentials and sets the session cookie.
func (h *Auth) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Auth handler: invalid login body", "error", err.Error())
		return handleError(c, model.NewValidationError("body", "invalid request body"))
	}

	session, err := h.service.LoginWithPassword(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    session.AccessToken,
		Path:     "/",
		Expires:  session.ExpiresAt,
		Secure:   h.secureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(response{Success: true})
}

// Logout clears the session cookie.
func (h *Auth) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   h.secureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(response{Success: true})
}
