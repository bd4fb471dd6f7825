// store/memory/projects.go
package memory

import (
	"context"

	"projectflow/models"
	"projectflow/store"
)

func matchProject(p models.Project, f store.ProjectFilter) bool {
	if len(f.Status) > 0 && !containsProjectStatus(f.Status, p.Status) {
		return false
	}
	if len(f.Priority) > 0 && !containsPriority(f.Priority, p.Priority) {
		return false
	}
	if f.TeamID != "" && p.TeamID != f.TeamID {
		return false
	}
	if f.ManagerID != "" && p.ManagerID != f.ManagerID {
		return false
	}
	return matchSearch(f.Search, p.Name, p.Description)
}

func (s *Store) ListProjects(ctx context.Context, f store.ProjectFilter, page *store.Page) ([]models.Project, int, error) {
	if err := s.wait(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if matchProject(p, f) {
			filtered = append(filtered, p)
		}
	}
	total := len(filtered)
	if page != nil {
		start, end := page.Bounds(total)
		filtered = filtered[start:end]
	}
	return filtered, total, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, store.NotFound("project", id)
}

func (s *Store) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.ID = s.newID()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.projects = append(s.projects, p)
	return &p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, patch store.ProjectPatch) (*models.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		merged := s.projects[i]
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		merged.UpdatedAt = s.tick(s.projects[i].UpdatedAt)
		s.projects[i] = merged
		return &merged, nil
	}
	return nil, store.NotFound("project", id)
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return store.NotFound("project", id)
}

func containsProjectStatus(set []models.ProjectStatus, v models.ProjectStatus) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsPriority(set []models.Priority, v models.Priority) bool {
	for _, p := range set {
		if p == v {
			return true
		}
	}
	return false
}
