// store/memory/tasks.go
package memory

import (
	"context"

	"projectflow/models"
	"projectflow/store"
)

func matchTask(t models.Task, f store.TaskFilter) bool {
	if len(f.Status) > 0 && !containsTaskStatus(f.Status, t.Status) {
		return false
	}
	if len(f.Priority) > 0 && !containsPriority(f.Priority, t.Priority) {
		return false
	}
	if f.ProjectID != "" && t.ProjectID != f.ProjectID {
		return false
	}
	if f.AssigneeID != "" && (t.AssigneeID == nil || *t.AssigneeID != f.AssigneeID) {
		return false
	}
	return matchSearch(f.Search, t.Title, t.Description)
}

func (s *Store) ListTasks(ctx context.Context, f store.TaskFilter, page *store.Page) ([]models.Task, int, error) {
	if err := s.wait(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if matchTask(t, f) {
			filtered = append(filtered, t)
		}
	}
	total := len(filtered)
	if page != nil {
		start, end := page.Bounds(total)
		filtered = filtered[start:end]
	}
	return filtered, total, nil
}

func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t, nil
		}
	}
	return nil, store.NotFound("task", id)
}

// CreateTask accepts any project_id, resolvable or not. Referential
// integrity is the caller's concern; the client renders dangling references
// with a fallback label.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (*models.Task, error) {
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
	s.tasks = append(s.tasks, t)
	return &t, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, patch store.TaskPatch) (*models.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		merged := s.tasks[i]
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		merged.UpdatedAt = s.tick(s.tasks[i].UpdatedAt)
		s.tasks[i] = merged
		return &merged, nil
	}
	return nil, store.NotFound("task", id)
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.NotFound("task", id)
}

func containsTaskStatus(set []models.TaskStatus, v models.TaskStatus) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
