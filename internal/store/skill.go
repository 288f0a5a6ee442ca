package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/devfolio/apiserver/types"
)

// SkillRepository handles persistence for skills.
type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) List(ctx context.Context) ([]types.Skill, error) {
	const query = `
		SELECT id, name, logo, category, created_at, updated_at
		FROM skills
		ORDER BY category, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]types.Skill, 0)
	for rows.Next() {
		var skill types.Skill
		if err := rows.Scan(
			&skill.ID,
			&skill.Name,
			&skill.Logo,
			&skill.Category,
			&skill.CreatedAt,
			&skill.UpdatedAt,
		); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return skills, nil
}

func (r *SkillRepository) Get(ctx context.Context, id int) (types.Skill, error) {
	const query = `
		SELECT id, name, logo, category, created_at, updated_at
		FROM skills
		WHERE id = $1`
	var skill types.Skill
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&skill.ID,
		&skill.Name,
		&skill.Logo,
		&skill.Category,
		&skill.CreatedAt,
		&skill.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Skill{}, ErrNotFound
		}
		return types.Skill{}, err
	}
	return skill, nil
}

func (r *SkillRepository) Create(ctx context.Context, skill types.Skill) (types.Skill, error) {
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	const query = `
		INSERT INTO skills (name, logo, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		skill.Name,
		skill.Logo,
		skill.Category,
		skill.CreatedAt,
		skill.UpdatedAt,
	).Scan(&skill.ID); err != nil {
		return types.Skill{}, err
	}
	return skill, nil
}

func (r *SkillRepository) Update(ctx context.Context, skill types.Skill) (types.Skill, error) {
	skill.UpdatedAt = time.Now()

	const query = `
		UPDATE skills
		SET name = $1,
			logo = $2,
			category = $3,
			updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(
		ctx,
		query,
		skill.Name,
		skill.Logo,
		skill.Category,
		skill.UpdatedAt,
		skill.ID,
	)
	if err != nil {
		return types.Skill{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Skill{}, err
	}
	if affected == 0 {
		return types.Skill{}, ErrNotFound
	}
	return skill, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM skills WHERE id = $1`
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

func (r *SkillRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM skills`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
