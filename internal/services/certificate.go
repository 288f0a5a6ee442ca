package services

import (
	"context"

	"github.com/devfolio/apiserver/types"
)

// CertificateRepository defines persistence operations for certificates.
type CertificateRepository interface {
	List(ctx context.Context) ([]types.Certificate, error)
	Get(ctx context.Context, id int) (types.Certificate, error)
	Create(ctx context.Context, certificate types.Certificate) (types.Certificate, error)
	Update(ctx context.Context, certificate types.Certificate) (types.Certificate, error)
	Delete(ctx context.Context, id int) error
}

// CertificateService encapsulates certificate use-cases.
type CertificateService struct {
	repo CertificateRepository
}

func NewCertificateService(repo CertificateRepository) *CertificateService {
	return &CertificateService{repo: repo}
}

func (s *CertificateService) List(ctx context.Context) ([]types.Certificate, error) {
	return s.repo.List(ctx)
}

func (s *CertificateService) Get(ctx context.Context, id int) (types.Certificate, error) {
	return s.repo.Get(ctx, id)
}

func (s *CertificateService) Create(ctx context.Context, certificate types.Certificate) (types.Certificate, error) {
	return s.repo.Create(ctx, certificate)
}

func (s *CertificateService) Update(ctx context.Context, certificate types.Certificate) (types.Certificate, error) {
	return s.repo.Update(ctx, certificate)
}

func (s *CertificateService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
