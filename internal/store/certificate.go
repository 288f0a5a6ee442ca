package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/devfolio/apiserver/types"
)

// CertificateRepository handles persistence for certificates.
type CertificateRepository struct {
	db *sql.DB
}

func NewCertificateRepository(db *sql.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) List(ctx context.Context) ([]types.Certificate, error) {
	const query = `
		SELECT id, title, issuer, date, img, created_at, updated_at
		FROM certificates
		ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certificates := make([]types.Certificate, 0)
	for rows.Next() {
		var certificate types.Certificate
		if err := rows.Scan(
			&certificate.ID,
			&certificate.Title,
			&certificate.Issuer,
			&certificate.Date,
			&certificate.Img,
			&certificate.CreatedAt,
			&certificate.UpdatedAt,
		); err != nil {
			return nil, err
		}
		certificates = append(certificates, certificate)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certificates, nil
}

func (r *CertificateRepository) Get(ctx context.Context, id int) (types.Certificate, error) {
	const query = `
		SELECT id, title, issuer, date, img, created_at, updated_at
		FROM certificates
		WHERE id = $1`
	var certificate types.Certificate
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&certificate.ID,
		&certificate.Title,
		&certificate.Issuer,
		&certificate.Date,
		&certificate.Img,
		&certificate.CreatedAt,
		&certificate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Certificate{}, ErrNotFound
		}
		return types.Certificate{}, err
	}
	return certificate, nil
}

func (r *CertificateRepository) Create(ctx context.Context, certificate types.Certificate) (types.Certificate, error) {
	now := time.Now()
	certificate.CreatedAt = now
	certificate.UpdatedAt = now
	if certificate.Date.IsZero() {
		certificate.Date = now
	}

	const query = `
		INSERT INTO certificates (title, issuer, date, img, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		certificate.Title,
		certificate.Issuer,
		certificate.Date,
		certificate.Img,
		certificate.CreatedAt,
		certificate.UpdatedAt,
	).Scan(&certificate.ID); err != nil {
		return types.Certificate{}, err
	}
	return certificate, nil
}

func (r *CertificateRepository) Update(ctx context.Context, certificate types.Certificate) (types.Certificate, error) {
	certificate.UpdatedAt = time.Now()

	const query = `
		UPDATE certificates
		SET title = $1,
			issuer = $2,
			date = $3,
			img = $4,
			updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(
		ctx,
		query,
		certificate.Title,
		certificate.Issuer,
		certificate.Date,
		certificate.Img,
		certificate.UpdatedAt,
		certificate.ID,
	)
	if err != nil {
		return types.Certificate{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Certificate{}, err
	}
	if affected == 0 {
		return types.Certificate{}, ErrNotFound
	}
	return certificate, nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM certificates WHERE id = $1`
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
