// store/memory/users.go
package memory

import (
	"context"

	"projectflow/models"
	"projectflow/store"
)

func matchUser(u models.User, f store.UserFilter) bool {
	if len(f.Role) > 0 {
		ok := false
		for _, r := range f.Role {
			if u.Role == r {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return matchSearch(f.Search, u.Name, u.Email)
}

func (s *Store) ListUsers(ctx context.Context, f store.UserFilter, page *store.Page) ([]models.User, int, error) {
	if err := s.wait(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if matchUser(u, f) {
			filtered = append(filtered, u)
		}
	}
	total := len(filtered)
	if page != nil {
		start, end := page.Bounds(total)
		filtered = filtered[start:end]
	}
	return filtered, total, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.NotFound("user", id)
}

func (s *Store) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.newID()
	u.CreatedAt = s.now()
	s.users = append(s.users, u)
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch store.UserPatch) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		merged := s.users[i]
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		s.users[i] = merged
		return &merged, nil
	}
	return nil, store.NotFound("user", id)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return store.NotFound("user", id)
}
