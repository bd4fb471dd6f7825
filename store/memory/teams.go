// store/memory/teams.go
package memory

import (
	"context"

	"projectflow/models"
	"projectflow/store"
)

func matchTeam(t models.Team, f store.TeamFilter) bool {
	if f.ManagerID != "" && t.ManagerID != f.ManagerID {
		return false
	}
	return matchSearch(f.Search, t.Name, t.Description)
}

func (s *Store) ListTeams(ctx context.Context, f store.TeamFilter, page *store.Page) ([]models.Team, int, error) {
	if err := s.wait(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if matchTeam(t, f) {
			filtered = append(filtered, copyTeam(t))
		}
	}
	total := len(filtered)
	if page != nil {
		start, end := page.Bounds(total)
		filtered = filtered[start:end]
	}
	return filtered, total, nil
}

func (s *Store) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.teams {
		if s.teams[i].ID == id {
			t := copyTeam(s.teams[i])
			return &t, nil
		}
	}
	return nil, store.NotFound("team", id)
}

func (s *Store) CreateTeam(ctx context.Context, t models.Team) (*models.Team, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t.ID = s.newID()
	t.CreatedAt = now
	t.UpdatedAt = now
	for i := range t.Members {
		t.Members[i].TeamID = t.ID
	}
	s.teams = append(s.teams, t)
	result := copyTeam(t)
	return &result, nil
}

func (s *Store) UpdateTeam(ctx context.Context, id string, patch store.TeamPatch) (*models.Team, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.teams {
		if s.teams[i].ID != id {
			continue
		}
		merged := copyTeam(s.teams[i])
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		for j := range merged.Members {
			merged.Members[j].TeamID = merged.ID
		}
		merged.UpdatedAt = s.tick(s.teams[i].UpdatedAt)
		s.teams[i] = merged
		result := copyTeam(merged)
		return &result, nil
	}
	return nil, store.NotFound("team", id)
}

func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			return nil
		}
	}
	return store.NotFound("team", id)
}

// copyTeam deep-copies the member list so callers cannot mutate stored
// state through the returned value.
func copyTeam(t models.Team) models.Team {
	t.Members = append([]models.TeamMember(nil), t.Members...)
	t.Projects = append([]string(nil), t.Projects...)
	return t
}
