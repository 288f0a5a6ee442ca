package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/devfolio/apiserver/types"
)

// EducationRepository handles persistence for education entries.
type EducationRepository struct {
	db *sql.DB
}

func NewEducationRepository(db *sql.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

func (r *EducationRepository) List(ctx context.Context) ([]types.Education, error) {
	const query = `
		SELECT id, degree, year, institution, details, created_at, updated_at
		FROM education
		ORDER BY year DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]types.Education, 0)
	for rows.Next() {
		var entry types.Education
		if err := rows.Scan(
			&entry.ID,
			&entry.Degree,
			&entry.Year,
			&entry.Institution,
			&entry.Details,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *EducationRepository) Get(ctx context.Context, id int) (types.Education, error) {
	const query = `
		SELECT id, degree, year, institution, details, created_at, updated_at
		FROM education
		WHERE id = $1`
	var entry types.Education
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.Degree,
		&entry.Year,
		&entry.Institution,
		&entry.Details,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Education{}, ErrNotFound
		}
		return types.Education{}, err
	}
	return entry, nil
}

func (r *EducationRepository) Create(ctx context.Context, entry types.Education) (types.Education, error) {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	const query = `
		INSERT INTO education (degree, year, institution, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		entry.Degree,
		entry.Year,
		entry.Institution,
		entry.Details,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Scan(&entry.ID); err != nil {
		return types.Education{}, err
	}
	return entry, nil
}

func (r *EducationRepository) Update(ctx context.Context, entry types.Education) (types.Education, error) {
	entry.UpdatedAt = time.Now()

	const query = `
		UPDATE education
		SET degree = $1,
			year = $2,
			institution = $3,
			details = $4,
			updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(
		ctx,
		query,
		entry.Degree,
		entry.Year,
		entry.Institution,
		entry.Details,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		return types.Education{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Education{}, err
	}
	if affected == 0 {
		return types.Education{}, ErrNotFound
	}
	return entry, nil
}

func (r *EducationRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM education WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EducationRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM education`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// ExperienceRepository handles persistence for experience entries.
type ExperienceRepository struct {
	db *sql.DB
}

func NewExperienceRepository(db *sql.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) List(ctx context.Context) ([]types.Experience, error) {
	const query = `
		SELECT id, title, years, tech, details, created_at, updated_at
		FROM experience
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]types.Experience, 0)
	for rows.Next() {
		var entry types.Experience
		if err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Years,
			&entry.Tech,
			&entry.Details,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *ExperienceRepository) Get(ctx context.Context, id int) (types.Experience, error) {
	const query = `
		SELECT id, title, years, tech, details, created_at, updated_at
		FROM experience
		WHERE id = $1`
	var entry types.Experience
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.Title,
		&entry.Years,
		&entry.Tech,
		&entry.Details,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Experience{}, ErrNotFound
		}
		return types.Experience{}, err
	}
	return entry, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, entry types.Experience) (types.Experience, error) {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	const query = `
		INSERT INTO experience (title, years, tech, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		entry.Title,
		entry.Years,
		entry.Tech,
		entry.Details,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Scan(&entry.ID); err != nil {
		return types.Experience{}, err
	}
	return entry, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, entry types.Experience) (types.Experience, error) {
	entry.UpdatedAt = time.Now()

	const query = `
		UPDATE experience
		SET title = $1,
			years = $2,
			tech = $3,
			details = $4,
			updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(
		ctx,
		query,
		entry.Title,
		entry.Years,
		entry.Tech,
		entry.Details,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		return types.Experience{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Experience{}, err
	}
	if affected == 0 {
		return types.Experience{}, ErrNotFound
	}
	return entry, nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM experience WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ExperienceRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM experience`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
