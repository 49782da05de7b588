package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/mycard-server/internal/model"
)

// response is the envelope returned by mutating endpoints.
type response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func statusFor(err error) int {
	var validationErr *model.ValidationError
	var sessionErr *model.SessionError
	var persistenceErr *model.PersistenceError

	switch {
	case errors.As(err, &validationErr), errors.Is(err, model.ErrMissingProfileID):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrNoSession),
		errors.Is(err, model.ErrSignInRequired),
		errors.Is(err, model.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, model.ErrProfileNotFound), errors.Is(err, model.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.As(err, &sessionErr):
		return fiber.StatusBadGateway
	case errors.As(err, &persistenceErr), errors.Is(err, model.ErrProfileHasNoName):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func handleError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(response{Success: false, Error: err.Error()})
}
