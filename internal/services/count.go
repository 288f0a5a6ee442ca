package services

import "context"

// Counter reports the number of records of one entity type.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Counts is the dashboard summary of record totals per entity type.
type Counts struct {
	Projects   int `json:"projects"`
	Skills     int `json:"skills"`
	Blogs      int `json:"blogs"`
	Contacts   int `json:"contacts"`
	Education  int `json:"education"`
	Experience int `json:"experience"`
}

// CountService aggregates record counts for the admin dashboard.
type CountService struct {
	projects   Counter
	skills     Counter
	blogs      Counter
	contacts   Counter
	education  Counter
	experience Counter
}

func NewCountService(projects, skills, blogs, contacts, education, experience Counter) *CountService {
	return &CountService{
		projects:   projects,
		skills:     skills,
		blogs:      blogs,
		contacts:   contacts,
		education:  education,
		experience: experience,
	}
}

// Get returns the record totals for every counted entity type.
func (s *CountService) Get(ctx context.Context) (Counts, error) {
	var counts Counts

	for _, c := range []struct {
		counter Counter
		dest    *int
	}{
		{s.projects, &counts.Projects},
		{s.skills, &counts.Skills},
		{s.blogs, &counts.Blogs},
		{s.contacts, &counts.Contacts},
		{s.education, &counts.Education},
		{s.experience, &counts.Experience},
	} {
		total, err := c.counter.Count(ctx)
		if err != nil {
			return Counts{}, err
		}
		*c.dest = total
	}

	return counts, nil
}
