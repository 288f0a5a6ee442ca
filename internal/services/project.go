package services

import (
	"context"

	"github.com/devfolio/apiserver/types"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]types.Project, error)
	Get(ctx context.Context, id int) (types.Project, error)
	Create(ctx context.Context, project types.Project) (types.Project, error)
	Update(ctx context.Context, project types.Project) (types.Project, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// ProjectService encapsulates project use-cases.
type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]types.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int) (types.Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, project types.Project) (types.Project, error) {
	return s.repo.Create(ctx, project)
}

func (s *ProjectService) Update(ctx context.Context, project types.Project) (types.Project, error) {
	return s.repo.Update(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
