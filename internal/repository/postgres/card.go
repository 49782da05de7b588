package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/dtroode/mycard-server/internal/model"
)

var _ model.CardStore = (*CardRepository)(nil)

const cardColumns = `id, full_name, email, phone, company, position, user_id, image_url, code_phone, is_archive, created_at, updated_at`

type CardRepository struct {
	db DBTX
}

func NewCardRepository(db DBTX) *CardRepository {
	return &CardRepository{
		db: db,
	}
}

// Insert always creates a new row; duplicates of an existing card are not detected.
func (r *CardRepository) Insert(ctx context.Context, card model.NewCard) (model.Card, error) {
	query := `INSERT INTO cards (id, full_name, email, phone, company, position, user_id, image_url, code_phone, is_archive)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + cardColumns

	saved, err := scanCard(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), card.FullName, card.Email, card.Phone, card.Company, card.Position,
		card.UserID, card.ImageURL, card.CodePhone, card.IsArchive,
	))
	if err != nil {
		return model.Card{}, &model.PersistenceError{Op: "card", Message: storeMessage(err), Err: err}
	}

	return saved, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, &model.StoreError{Op: "card", Message: storeMessage(err), Err: err}
	}

	return card, nil
}

func scanCard(row *sql.Row) (model.Card, error) {
	var card model.Card
	err := row.Scan(
		&card.ID, &card.FullName, &card.Email, &card.Phone, &card.Company, &card.Position,
		&card.UserID, &card.ImageURL, &card.CodePhone, &card.IsArchive, &card.CreatedAt, &card.UpdatedAt,
	)
	return card, err
}
