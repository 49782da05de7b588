package model

import (
	"context"
	"strings"
	"time"
)

// ProfileStore defines persistence operations for profiles.
type ProfileStore interface {
	GetByID(ctx context.Context, id string) (Profile, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
}

// Profile is the public identity a card can be derived from. Its ID equals the
// identity-provider user ID.
type Profile struct {
	ID        string     `json:"id"`
	Name      *string    `json:"name"`
	AvatarURL *string    `json:"avatar_url"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	CodePhone *string    `json:"code_phone"`
	Company   *string    `json:"company"`
	Position  *string    `json:"position"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// OwnerPolicy selects who owns a card saved from a profile.
type OwnerPolicy string

const (
	// OwnerPolicySession makes the viewing session user the owner.
	OwnerPolicySession OwnerPolicy = "session"
	// OwnerPolicyProfile makes the profile's own user the owner.
	OwnerPolicyProfile OwnerPolicy = "profile"
)

// Valid reports whether p is a known policy.
func (p OwnerPolicy) Valid() bool {
	return p == OwnerPolicySession || p == OwnerPolicyProfile
}

// SaveFromProfileRequest identifies the profile to turn into a card. RequestedID is
// used only when ProfileID is blank.
type SaveFromProfileRequest struct {
	ProfileID   string
	RequestedID string
}

// EffectiveID returns the trimmed target profile ID.
func (r SaveFromProfileRequest) EffectiveID() string {
	if id := strings.TrimSpace(r.ProfileID); id != "" {
		return id
	}
	return strings.TrimSpace(r.RequestedID)
}
