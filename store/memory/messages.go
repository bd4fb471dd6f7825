// store/memory/messages.go
package memory

import (
	"context"

	"projectflow/models"
	"projectflow/store"
)

func matchMessage(m models.Message, f store.MessageFilter) bool {
	if f.ProjectID != "" && m.ProjectID != f.ProjectID {
		return false
	}
	if f.UserID != "" && m.UserID != f.UserID {
		return false
	}
	return true
}

func (s *Store) ListMessages(ctx context.Context, f store.MessageFilter, page *store.Page) ([]models.Message, int, error) {
	if err := s.wait(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if matchMessage(m, f) {
			filtered = append(filtered, m)
		}
	}
	total := len(filtered)
	if page != nil {
		start, end := page.Bounds(total)
		filtered = filtered[start:end]
	}
	return filtered, total, nil
}

func (s *Store) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, store.NotFound("message", id)
}

func (s *Store) CreateMessage(ctx context.Context, m models.Message) (*models.Message, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.newID()
	m.CreatedAt = s.now()
	s.messages = append(s.messages, m)
	return &m, nil
}

func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return store.NotFound("message", id)
}
