// store/postgres/users.go
package postgres

import (
	"context"

	"gorm.io/gorm"

	"projectflow/models"
	"projectflow/store"
)

func userQuery(db *gorm.DB, f store.UserFilter) *gorm.DB {
	q := db.Model(&models.User{})
	if len(f.Role) > 0 {
		q = q.Where("role IN ?", f.Role)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}
	return q
}

func (s *Store) ListUsers(ctx context.Context, f store.UserFilter, page *store.Page) ([]models.User, int, error) {
	q := userQuery(s.db.WithContext(ctx), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, store.Backend("count users", err)
	}

	q = q.Order("created_at DESC")
	if page != nil {
		start, _ := page.Bounds(int(total))
		q = q.Offset(start).Limit(page.Limit)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, 0, store.Backend("list users", err)
	}
	return users, int(total), nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, wrap("get user", "user", id, err)
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	u.ID = newID()
	u.CreatedAt = now()
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, store.Backend("create user", err)
	}
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch store.UserPatch) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			return wrap("get user", "user", id, err)
		}
		patch.Apply(&u)
		if err := u.Validate(); err != nil {
			return err
		}
		if err := tx.Save(&u).Error; err != nil {
			return store.Backend("update user", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return store.Backend("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.NotFound("user", id)
	}
	return nil
}
