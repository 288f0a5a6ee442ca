package services

import (
	"context"

	"github.com/devfolio/apiserver/types"
)

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	List(ctx context.Context) ([]types.Blog, error)
	Get(ctx context.Context, id int) (types.Blog, error)
	Create(ctx context.Context, blog types.Blog) (types.Blog, error)
	Update(ctx context.Context, blog types.Blog) (types.Blog, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// BlogService encapsulates blog use-cases.
type BlogService struct {
	repo BlogRepository
}

func NewBlogService(repo BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) List(ctx context.Context) ([]types.Blog, error) {
	return s.repo.List(ctx)
}

func (s *BlogService) Get(ctx context.Context, id int) (types.Blog, error) {
	return s.repo.Get(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, blog types.Blog) (types.Blog, error) {
	return s.repo.Create(ctx, blog)
}

func (s *BlogService) Update(ctx context.Context, blog types.Blog) (types.Blog, error) {
	return s.repo.Update(ctx, blog)
}

func (s *BlogService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *BlogService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
