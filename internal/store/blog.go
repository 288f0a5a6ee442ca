package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/devfolio/apiserver/types"
)

// BlogRepository handles persistence for blog posts.
type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List(ctx context.Context) ([]types.Blog, error) {
	const query = `
		SELECT id, image, title, author, date, description, created_at, updated_at
		FROM blogs
		ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := make([]types.Blog, 0)
	for rows.Next() {
		var blog types.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.Image,
			&blog.Title,
			&blog.Author,
			&blog.Date,
			&blog.Description,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *BlogRepository) Get(ctx context.Context, id int) (types.Blog, error) {
	const query = `
		SELECT id, image, title, author, date, description, created_at, updated_at
		FROM blogs
		WHERE id = $1`
	var blog types.Blog
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Image,
		&blog.Title,
		&blog.Author,
		&blog.Date,
		&blog.Description,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Blog{}, ErrNotFound
		}
		return types.Blog{}, err
	}
	return blog, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog types.Blog) (types.Blog, error) {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.Date.IsZero() {
		blog.Date = now
	}

	const query = `
		INSERT INTO blogs (image, title, author, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		blog.Image,
		blog.Title,
		blog.Author,
		blog.Date,
		blog.Description,
		blog.CreatedAt,
		blog.UpdatedAt,
	).Scan(&blog.ID); err != nil {
		return types.Blog{}, err
	}
	return blog, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog types.Blog) (types.Blog, error) {
	blog.UpdatedAt = time.Now()

	const query = `
		UPDATE blogs
		SET image = $1,
			title = $2,
			author = $3,
			date = $4,
			description = $5,
			updated_at = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(
		ctx,
		query,
		blog.Image,
		blog.Title,
		blog.Author,
		blog.Date,
		blog.Description,
		blog.UpdatedAt,
		blog.ID,
	)
	if err != nil {
		return types.Blog{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Blog{}, err
	}
	if affected == 0 {
		return types.Blog{}, ErrNotFound
	}
	return blog, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM blogs WHERE id = $1`
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

func (r *BlogRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM blogs`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
