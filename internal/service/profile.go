package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dtroode/mycard-server/internal/field"
	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

// CardCreator creates cards on behalf of the profile flow.
type CardCreator interface {
	CreateCard(ctx context.Context, input model.CreateCardInput) (model.Card, error)
}

// Profile reads profiles and turns them into cards.
type Profile struct {
	profiles    model.ProfileStore
	sessions    model.SessionProvider
	cards       CardCreator
	ownerPolicy model.OwnerPolicy
	logger      *logger.Logger
}

func NewProfile(
	profiles model.ProfileStore,
	sessions model.SessionProvider,
	cards CardCreator,
	ownerPolicy model.OwnerPolicy,
	logger *logger.Logger,
) *Profile {
	if !ownerPolicy.Valid() {
		ownerPolicy = model.OwnerPolicySession
	}

	return &Profile{
		profiles:    profiles,
		sessions:    sessions,
		cards:       cards,
		ownerPolicy: ownerPolicy,
		logger:      logger,
	}
}

// GetUserInfo reads any user's profile regardless of who is signed in. It returns nil
// without error when no profile matches.
func (s *Profile) GetUserInfo(ctx context.Context, id string) (*model.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("Profile service: failed to get profile",
			"profile_id", id,
			"error", err.Error())
		return nil, err
	}

	return &profile, nil
}

// GetCurrentProfile returns the signed-in user's own profile, or nil when nobody is
// signed in or the user has no profile.
func (s *Profile) GetCurrentProfile(ctx context.Context) (*model.Profile, error) {
	user, err := s.sessions.GetUser(ctx)
	if err != nil {
		s.logger.Error("Profile service: session lookup failed", "error", err.Error())
		return nil, &model.SessionError{Err: err}
	}

	if user == nil {
		return nil, nil
	}

	profile, err := s.profiles.GetByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("Profile service: failed to get own profile",
			"user_id", user.ID,
			"error", err.Error())
		return nil, err
	}

	return &profile, nil
}

// SaveCardFromProfile copies a profile into a new card. The owner is the signed-in
// user or, with OwnerPolicyProfile, the profile's own user; a session is required
// either way.
func (s *Profile) SaveCardFromProfile(ctx context.Context, req model.SaveFromProfileRequest) (model.Card, error) {
	profileID := req.EffectiveID()
	if profileID == "" {
		return model.Card{}, model.ErrMissingProfileID
	}

	s.logger.Debug("Profile service: saving card from profile", "profile_id", profileID)

	profile, err := s.GetUserInfo(ctx, profileID)
	if err != nil {
		return model.Card{}, err
	}
	if profile == nil {
		return model.Card{}, model.ErrProfileNotFound
	}

	fullName := field.NormalizeString(profile.Name)
	if fullName == nil {
		return model.Card{}, model.ErrProfileHasNoName
	}

	user, err := s.sessions.GetUser(ctx)
	if err != nil {
		s.logger.Error("Profile service: session lookup failed",
			"profile_id", profileID,
			"error", err.Error())
		return model.Card{}, &model.SessionError{Err: err}
	}
	if user == nil {
		return model.Card{}, model.ErrSignInRequired
	}

	ownerID := user.ID
	if s.ownerPolicy == model.OwnerPolicyProfile {
		ownerID = profile.ID
	}

	card, err := s.cards.CreateCard(ctx, model.CreateCardInput{
		FullName:  *fullName,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Company:   profile.Company,
		Position:  profile.Position,
		UserID:    ownerID,
		ImageURL:  profile.AvatarURL,
		CodePhone: profile.CodePhone,
	})
	if err != nil {
		return model.Card{}, err
	}

	s.logger.Info("Profile service: card saved from profile",
		"profile_id", profileID,
		"card_id", card.ID,
		"owner_id", ownerID)

	return card, nil
}
