package model

import (
	"context"
	"io"
	"time"
)

// CardStore defines persistence operations for cards.
type CardStore interface {
	Insert(ctx context.Context, card NewCard) (Card, error)
	GetByID(ctx context.Context, id string) (Card, error)
}

// Card represents a stored contact card.
type Card struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Position  *string   `json:"position"`
	UserID    string    `json:"user_id"`
	ImageURL  *string   `json:"image_url"`
	CodePhone *string   `json:"code_phone"`
	IsArchive bool      `json:"is_archive"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCard is the normalized payload handed to the store on insert.
type NewCard struct {
	FullName  string
	Email     *string
	Phone     *string
	Company   *string
	Position  *string
	UserID    string
	ImageURL  *string
	CodePhone *string
	IsArchive bool
}

// CreateCardInput carries caller-supplied card fields. Nil means the field was not
// provided; UserID empty means the owner is taken from the session.
type CreateCardInput struct {
	FullName  string
	Email     *string
	Phone     *string
	Company   *string
	Position  *string
	UserID    string
	ImageURL  *string
	CodePhone *string
	IsArchive *bool
}

// GetCardResult is the outcome of a card lookup. Error is set whenever Card is nil.
type GetCardResult struct {
	Card  *Card  `json:"card"`
	Error string `json:"error,omitempty"`
}

// Upload is an image file attached to a card submission.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
