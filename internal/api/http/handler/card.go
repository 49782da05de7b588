package handler

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/mycard-server/internal/field"
	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

const imageFormField = "image"

// CardService creates and looks up cards.
type CardService interface {
	CreateCardWithImage(ctx context.Context, input model.CreateCardInput, upload *model.Upload) (model.Card, error)
	GetCardByID(ctx context.Context, id string) model.GetCardResult
}

// Card serves the /cards endpoints.
type Card struct {
	service CardService
	logger  *logger.Logger
}

// NewCard creates a new card handler.
func NewCard(service CardService, logger *logger.Logger) *Card {
	return &Card{service: service, logger: logger}
}

// Get returns the card named by the id query parameter. Lookup problems are reported in
// the body, the status is always 200.
func (h *Card) Get(c *fiber.Ctx) error {
	result := h.service.GetCardByID(c.UserContext(), c.Query("id"))
	return c.JSON(result)
}

// Create builds a card from a submitted form, optionally with an image file.
func (h *Card) Create(c *fiber.Ctx) error {
	input := cardInputFromForm(c)

	upload, closer, err := imageFromForm(c)
	if err != nil {
		h.logger.Error("Card handler: failed to read image", "error", err.Error())
		return handleError(c, model.NewValidationError(imageFormField, "failed to read image"))
	}
	if closer != nil {
		defer closer.Close()
	}

	card, err := h.service.CreateCardWithImage(c.UserContext(), input, upload)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response{Success: true, Data: card})
}

func cardInputFromForm(c *fiber.Ctx) model.CreateCardInput {
	input := model.CreateCardInput{
		FullName:  c.FormValue("full_name"),
		Email:     field.FromForm(c.FormValue("email")),
		Phone:     field.FromForm(c.FormValue("phone")),
		Company:   field.FromForm(c.FormValue("company")),
		Position:  field.FromForm(c.FormValue("position")),
		UserID:    strings.TrimSpace(c.FormValue("user_id")),
		ImageURL:  field.FromForm(c.FormValue("image_url")),
		CodePhone: field.FromForm(c.FormValue("code_phone")),
	}

	if raw := c.FormValue("is_archive"); raw != "" {
		archived := field.ToBoolean(raw)
		input.IsArchive = &archived
	}

	return input
}

// imageFromForm returns the uploaded image, or nil when the request carries none.
// Only multipart bodies can carry one; a multipart body that cannot be parsed is an error.
func imageFromForm(c *fiber.Ctx) (*model.Upload, io.Closer, error) {
	contentType := strings.ToLower(string(c.Request().Header.ContentType()))
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return nil, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	files := form.File[imageFormField]
	if len(files) == 0 || files[0].Size == 0 {
		return nil, nil, nil
	}

	header := files[0]
	file, err := header.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", header.Filename, err)
	}

	return &model.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}, file, nil
}
