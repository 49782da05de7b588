package handler

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

// ProfileService reads profiles and saves them as cards.
type ProfileService interface {
	GetUserInfo(ctx context.Context, id string) (*model.Profile, error)
	GetCurrentProfile(ctx context.Context) (*model.Profile, error)
	SaveCardFromProfile(ctx context.Context, req model.SaveFromProfileRequest) (model.Card, error)
}

type profileResult struct {
	Profile *model.Profile `json:"profile"`
	Error   string         `json:"error,omitempty"`
}

// Profile serves the /profiles endpoints.
type Profile struct {
	service      ProfileService
	redirectPath string
	logger       *logger.Logger
}

// NewProfile creates a new profile handler. redirectPath is where the redirect variant of
// the save endpoint sends the browser back to.
func NewProfile(service ProfileService, redirectPath string, logger *logger.Logger) *Profile {
	return &Profile{service: service, redirectPath: redirectPath, logger: logger}
}

// Me returns the signed-in user's profile, or a null profile for anonymous requests.
func (h *Profile) Me(c *fiber.Ctx) error {
	profile, err := h.service.GetCurrentProfile(c.UserContext())
	if err != nil {
		return c.Status(statusFor(err)).JSON(profileResult{Error: err.Error()})
	}
	return c.JSON(profileResult{Profile: profile})
}

// Get returns any user's profile by id.
func (h *Profile) Get(c *fiber.Ctx) error {
	profile, err := h.service.GetUserInfo(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(profileResult{Error: err.Error()})
	}
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(profileResult{Error: model.ErrNotFound.Error()})
	}
	return c.JSON(profileResult{Profile: profile})
}

// Save turns the submitted profile into a card owned per the configured policy.
func (h *Profile) Save(c *fiber.Ctx) error {
	card, err := h.service.SaveCardFromProfile(c.UserContext(), saveRequestFromForm(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(response{Success: true, Data: card})
}

// SaveAndRedirect is the form-post variant of Save: it answers with 303 See Other back to
// the profile page, reporting the outcome in the query string.
func (h *Profile) SaveAndRedirect(c *fiber.Ctx) error {
	req := saveRequestFromForm(c)

	target := h.redirectPath + "?id=" + url.QueryEscape(req.EffectiveID())
	if _, err := h.service.SaveCardFromProfile(c.UserContext(), req); err != nil {
		target += "&error=" + url.QueryEscape(err.Error())
	} else {
		target += "&saved=1"
	}

	return c.Redirect(target, fiber.StatusSeeOther)
}

func saveRequestFromForm(c *fiber.Ctx) model.SaveFromProfileRequest {
	return model.SaveFromProfileRequest{
		ProfileID:   c.FormValue("profile_id"),
		RequestedID: c.FormValue("requested_id"),
	}
}
