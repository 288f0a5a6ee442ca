package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/devfolio/apiserver/types"
)

// ProfileRepository handles persistence for the singleton profile row.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the profile row. ErrNotFound means no profile has been
// created yet; callers are expected to create the default one.
func (r *ProfileRepository) Get(ctx context.Context) (types.Profile, error) {
	const query = `
		SELECT id, name, title, avatar, bio, resume_url, created_at, updated_at
		FROM profile
		ORDER BY id
		LIMIT 1`
	var profile types.Profile
	err := r.db.QueryRowContext(ctx, query).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Title,
		&profile.Avatar,
		&profile.Bio,
		&profile.ResumeURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Profile{}, ErrNotFound
		}
		return types.Profile{}, err
	}
	return profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile types.Profile) (types.Profile, error) {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	const query = `
		INSERT INTO profile (name, title, avatar, bio, resume_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		profile.Name,
		profile.Title,
		profile.Avatar,
		profile.Bio,
		profile.ResumeURL,
		profile.CreatedAt,
		profile.UpdatedAt,
	).Scan(&profile.ID); err != nil {
		return types.Profile{}, err
	}
	return profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile types.Profile) (types.Profile, error) {
	profile.UpdatedAt = time.Now()

	const query = `
		UPDATE profile
		SET name = $1,
			title = $2,
			avatar = $3,
			bio = $4,
			resume_url = $5,
			updated_at = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(
		ctx,
		query,
		profile.Name,
		profile.Title,
		profile.Avatar,
		profile.Bio,
		profile.ResumeURL,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		return types.Profile{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Profile{}, err
	}
	if affected == 0 {
		return types.Profile{}, ErrNotFound
	}
	return profile, nil
}
