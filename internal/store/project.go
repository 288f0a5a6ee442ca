package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/devfolio/apiserver/types"
)

// ProjectRepository handles persistence for projects.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]types.Project, error) {
	const query = `
		SELECT id, title, description, image, tech, github_link, live_demo_link, created_at, updated_at
		FROM projects
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]types.Project, 0)
	for rows.Next() {
		var project types.Project
		var techJSON []byte
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.Image,
			&techJSON,
			&project.GithubLink,
			&project.LiveDemoLink,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, err
		}

		_ = json.Unmarshal(techJSON, &project.Tech)
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int) (types.Project, error) {
	const query = `
		SELECT id, title, description, image, tech, github_link, live_demo_link, created_at, updated_at
		FROM projects
		WHERE id = $1`
	var project types.Project
	var techJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Image,
		&techJSON,
		&project.GithubLink,
		&project.LiveDemoLink,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Project{}, ErrNotFound
		}
		return types.Project{}, err
	}

	_ = json.Unmarshal(techJSON, &project.Tech)
	return project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project types.Project) (types.Project, error) {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	techJSON, err := json.Marshal(project.Tech)
	if err != nil {
		return types.Project{}, err
	}

	const query = `
		INSERT INTO projects (title, description, image, tech, github_link, live_demo_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		project.Title,
		project.Description,
		project.Image,
		techJSON,
		project.GithubLink,
		project.LiveDemoLink,
		project.CreatedAt,
		project.UpdatedAt,
	).Scan(&project.ID); err != nil {
		return types.Project{}, err
	}

	return project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project types.Project) (types.Project, error) {
	project.UpdatedAt = time.Now()

	techJSON, err := json.Marshal(project.Tech)
	if err != nil {
		return types.Project{}, err
	}

	const query = `
		UPDATE projects
		SET title = $1,
			description = $2,
			image = $3,
			tech = $4,
			github_link = $5,
			live_demo_link = $6,
			updated_at = $7
		WHERE id = $8`
	result, err := r.db.ExecContext(
		ctx,
		query,
		project.Title,
		project.Description,
		project.Image,
		techJSON,
		project.GithubLink,
		project.LiveDemoLink,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return types.Project{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Project{}, err
	}
	if affected == 0 {
		return types.Project{}, ErrNotFound
	}

	return project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM projects WHERE id = $1`
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

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM projects`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
