package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/devfolio/apiserver/types"
)

// ContactRepository handles persistence for contact-form messages.
type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List(ctx context.Context) ([]types.ContactMessage, error) {
	const query = `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]types.ContactMessage, 0)
	for rows.Next() {
		var message types.ContactMessage
		if err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Message,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *ContactRepository) Create(ctx context.Context, message types.ContactMessage) (types.ContactMessage, error) {
	message.CreatedAt = time.Now()

	const query = `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		message.Name,
		message.Email,
		message.Message,
		message.CreatedAt,
	).Scan(&message.ID); err != nil {
		return types.ContactMessage{}, err
	}
	return message, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM contact_messages WHERE id = $1`
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

func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM contact_messages`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
