package services

import (
	"context"

	"github.com/devfolio/apiserver/types"
)

// SkillRepository defines persistence operations for skills.
type SkillRepository interface {
	List(ctx context.Context) ([]types.Skill, error)
	Get(ctx context.Context, id int) (types.Skill, error)
	Create(ctx context.Context, skill types.Skill) (types.Skill, error)
	Update(ctx context.Context, skill types.Skill) (types.Skill, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// SkillService encapsulates skill use-cases.
type SkillService struct {
	repo SkillRepository
}

func NewSkillService(repo SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) List(ctx context.Context) ([]types.Skill, error) {
	return s.repo.List(ctx)
}

func (s *SkillService) Get(ctx context.Context, id int) (types.Skill, error) {
	return s.repo.Get(ctx, id)
}

func (s *SkillService) Create(ctx context.Context, skill types.Skill) (types.Skill, error) {
	return s.repo.Create(ctx, skill)
}

func (s *SkillService) Update(ctx context.Context, skill types.Skill) (types.Skill, error) {
	return s.repo.Update(ctx, skill)
}

func (s *SkillService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *SkillService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
