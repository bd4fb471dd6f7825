// store/memory/time_entries.go
package memory

import (
	"context"

	"projectflow/models"
	"projectflow/store"
)

func matchTimeEntry(e models.TimeEntry, f store.TimeEntryFilter) bool {
	if f.TaskID != "" && e.TaskID != f.TaskID {
		return false
	}
	if f.UserID != "" && e.UserID != f.UserID {
		return false
	}
	return true
}

func (s *Store) ListTimeEntries(ctx context.Context, f store.TimeEntryFilter, page *store.Page) ([]models.TimeEntry, int, error) {
	if err := s.wait(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.TimeEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if matchTimeEntry(e, f) {
			filtered = append(filtered, e)
		}
	}
	total := len(filtered)
	if page != nil {
		start, end := page.Bounds(total)
		filtered = filtered[start:end]
	}
	return filtered, total, nil
}

func (s *Store) GetTimeEntry(ctx context.Context, id string) (*models.TimeEntry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			e := s.entries[i]
			return &e, nil
		}
	}
	return nil, store.NotFound("time entry", id)
}

func (s *Store) CreateTimeEntry(ctx context.Context, e models.TimeEntry) (*models.TimeEntry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.newID()
	e.CreatedAt = s.now()
	s.entries = append(s.entries, e)
	return &e, nil
}

func (s *Store) UpdateTimeEntry(ctx context.Context, id string, patch store.TimeEntryPatch) (*models.TimeEntry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		merged := s.entries[i]
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		s.entries[i] = merged
		return &merged, nil
	}
	return nil, store.NotFound("time entry", id)
}

func (s *Store) DeleteTimeEntry(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return store.NotFound("time entry", id)
}
