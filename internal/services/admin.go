package services

import (
	"context"

	"github.com/devfolio/apiserver/types"
)

// AdminRepository defines persistence operations for administrator accounts.
type AdminRepository interface {
	GetByID(ctx context.Context, id int) (types.Admin, error)
	GetByEmail(ctx context.Context, email string) (types.Admin, error)
	Create(ctx context.Context, admin types.Admin) (types.Admin, error)
}

// AdminService encapsulates administrator use-cases.
type AdminService struct {
	repo AdminRepository
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) GetByID(ctx context.Context, id int) (types.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AdminService) GetByEmail(ctx context.Context, email string) (types.Admin, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *AdminService) Create(ctx context.Context, admin types.Admin) (types.Admin, error) {
	return s.repo.Create(ctx, admin)
}
