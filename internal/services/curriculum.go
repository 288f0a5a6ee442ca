package services

import (
	"context"

	"github.com/devfolio/apiserver/types"
)

// EducationRepository defines persistence operations for education entries.
type EducationRepository interface {
	List(ctx context.Context) ([]types.Education, error)
	Get(ctx context.Context, id int) (types.Education, error)
	Create(ctx context.Context, entry types.Education) (types.Education, error)
	Update(ctx context.Context, entry types.Education) (types.Education, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// ExperienceRepository defines persistence operations for experience entries.
type ExperienceRepository interface {
	List(ctx context.Context) ([]types.Experience, error)
	Get(ctx context.Context, id int) (types.Experience, error)
	Create(ctx context.Context, entry types.Experience) (types.Experience, error)
	Update(ctx context.Context, entry types.Experience) (types.Experience, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// Curriculum is the combined education and experience payload served on
// the public curriculum page.
type Curriculum struct {
	Education  []types.Education  `json:"education"`
	Experience []types.Experience `json:"experience"`
}

// CurriculumService encapsulates education and experience use-cases.
type CurriculumService struct {
	education  EducationRepository
	experience ExperienceRepository
}

func NewCurriculumService(education EducationRepository, experience ExperienceRepository) *CurriculumService {
	return &CurriculumService{education: education, experience: experience}
}

// Get returns all education and experience entries together.
func (s *CurriculumService) Get(ctx context.Context) (Curriculum, error) {
	education, err := s.education.List(ctx)
	if err != nil {
		return Curriculum{}, err
	}
	experience, err := s.experience.List(ctx)
	if err != nil {
		return Curriculum{}, err
	}
	return Curriculum{Education: education, Experience: experience}, nil
}

func (s *CurriculumService) GetEducation(ctx context.Context, id int) (types.Education, error) {
	return s.education.Get(ctx, id)
}

func (s *CurriculumService) AddEducation(ctx context.Context, entry types.Education) (types.Education, error) {
	return s.education.Create(ctx, entry)
}

func (s *CurriculumService) UpdateEducation(ctx context.Context, entry types.Education) (types.Education, error) {
	return s.education.Update(ctx, entry)
}

func (s *CurriculumService) DeleteEducation(ctx context.Context, id int) error {
	return s.education.Delete(ctx, id)
}

func (s *CurriculumService) GetExperience(ctx context.Context, id int) (types.Experience, error) {
	return s.experience.Get(ctx, id)
}

func (s *CurriculumService) AddExperience(ctx context.Context, entry types.Experience) (types.Experience, error) {
	return s.experience.Create(ctx, entry)
}

func (s *CurriculumService) UpdateExperience(ctx context.Context, entry types.Experience) (types.Experience, error) {
	return s.experience.Update(ctx, entry)
}

func (s *CurriculumService) DeleteExperience(ctx context.Context, id int) error {
	return s.experience.Delete(ctx, id)
}

func (s *CurriculumService) CountEducation(ctx context.Context) (int, error) {
	return s.education.Count(ctx)
}

func (s *CurriculumService) CountExperience(ctx context.Context) (int, error) {
	return s.experience.Count(ctx)
}
