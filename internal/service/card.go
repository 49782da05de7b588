package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/mycard-server/internal/field"
	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

const imageKeyPrefix = "cards/"

// Card creates and looks up contact cards.
type Card struct {
	store    model.CardStore
	identity *Identity
	images   model.Storage
	logger   *logger.Logger
}

// NewCard creates the card service. images may be nil, in which case image uploads
// are rejected.
func NewCard(store model.CardStore, identity *Identity, images model.Storage, logger *logger.Logger) *Card {
	return &Card{
		store:    store,
		identity: identity,
		images:   images,
		logger:   logger,
	}
}

// CreateCard validates and normalizes input, resolves the owner and inserts exactly one
// card. Store rejections surface as *model.PersistenceError.
func (s *Card) CreateCard(ctx context.Context, input model.CreateCardInput) (model.Card, error) {
	fullName := field.FromForm(input.FullName)
	if fullName == nil {
		return model.Card{}, model.NewValidationError("full_name", "full name required")
	}

	userID, err := s.identity.ResolveUserID(ctx, input.UserID)
	if err != nil {
		return model.Card{}, err
	}

	s.logger.Debug("Card service: creating card", "user_id", userID)

	payload := model.NewCard{
		FullName:  *fullName,
		Email:     field.NormalizeString(input.Email),
		Phone:     field.NormalizeString(input.Phone),
		Company:   field.NormalizeString(input.Company),
		Position:  field.NormalizeString(input.Position),
		UserID:    userID,
		ImageURL:  field.NormalizeString(input.ImageURL),
		CodePhone: field.NormalizeString(input.CodePhone),
		IsArchive: input.IsArchive != nil && *input.IsArchive,
	}

	card, err := s.store.Insert(ctx, payload)
	if err != nil {
		s.logger.Error("Card service: failed to create card",
			"user_id", userID,
			"error", err.Error())
		return model.Card{}, err
	}

	s.logger.Info("Card service: card created",
		"card_id", card.ID,
		"user_id", userID)

	return card, nil
}

// CreateCardWithImage stores upload first and uses its public URL as the card image.
// The object is removed again when the card cannot be created. A nil upload behaves
// like CreateCard.
func (s *Card) CreateCardWithImage(ctx context.Context, input model.CreateCardInput, upload *model.Upload) (model.Card, error) {
	if upload == nil {
		return s.CreateCard(ctx, input)
	}

	if s.images == nil {
		return model.Card{}, model.NewValidationError("image", "image uploads are disabled")
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return model.Card{}, model.NewValidationError("image", "image must be an image file")
	}
	if field.FromForm(input.FullName) == nil {
		return model.Card{}, model.NewValidationError("full_name", "full name required")
	}

	userID, err := s.identity.ResolveUserID(ctx, input.UserID)
	if err != nil {
		return model.Card{}, err
	}
	input.UserID = userID

	key := imageKeyPrefix + uuid.NewString() + strings.ToLower(path.Ext(upload.Filename))
	if err := s.images.Upload(ctx, key, upload.Content, upload.Size, upload.ContentType); err != nil {
		s.logger.Error("Card service: failed to upload image",
			"key", key,
			"error", err.Error())
		return model.Card{}, fmt.Errorf("failed to upload card image: %w", err)
	}

	imageURL := s.images.URL(key)
	input.ImageURL = &imageURL

	card, err := s.CreateCard(ctx, input)
	if err != nil {
		if delErr := s.images.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.logger.Error("Card service: failed to remove orphaned image",
				"key", key,
				"error", delErr.Error())
		}
		return model.Card{}, err
	}

	return card, nil
}

// GetCardByID never fails; problems are reported in the result's Error field.
func (s *Card) GetCardByID(ctx context.Context, id string) model.GetCardResult {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return model.GetCardResult{Error: "missing id"}
	}

	card, err := s.store.GetByID(ctx, trimmed)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.GetCardResult{Error: "not found"}
		}
		s.logger.Error("Card service: failed to get card",
			"card_id", trimmed,
			"error", err.Error())
		return model.GetCardResult{Error: err.Error()}
	}

	return model.GetCardResult{Card: &card}
}
