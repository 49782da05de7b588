package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dtroode/mycard-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

const profileColumns = `id, name, avatar_url, email, phone, code_phone, company, position, created_at, updated_at`

// ProfileRepository reads profiles without per-user scoping. Callers decide whose
// profile may be read.
type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, &model.StoreError{Op: "profile", Message: storeMessage(err), Err: err}
	}

	return profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	query := `INSERT INTO profiles (id, name, avatar_url, email, phone, code_phone, company, position)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + profileColumns

	saved, err := scanProfile(r.db.QueryRowContext(ctx, query,
		profile.ID, profile.Name, profile.AvatarURL, profile.Email, profile.Phone,
		profile.CodePhone, profile.Company, profile.Position,
	))
	if err != nil {
		return model.Profile{}, &model.PersistenceError{Op: "profile", Message: storeMessage(err), Err: err}
	}

	return saved, nil
}

func scanProfile(row *sql.Row) (model.Profile, error) {
	var p model.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.AvatarURL, &p.Email, &p.Phone, &p.CodePhone,
		&p.Company, &p.Position, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
