// store/postgres/messages.go
package postgres

import (
	"context"

	"gorm.io/gorm"

	"projectflow/models"
	"projectflow/store"
)

func messageQuery(db *gorm.DB, f store.MessageFilter) *gorm.DB {
	q := db.Model(&models.Message{})
	if f.ProjectID != "" {
		q = q.Where("project_id = ?", f.ProjectID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	return q
}

func (s *Store) ListMessages(ctx context.Context, f store.MessageFilter, page *store.Page) ([]models.Message, int, error) {
	q := messageQuery(s.db.WithContext(ctx), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, store.Backend("count messages", err)
	}

	// Conversation order, oldest first.
	q = q.Order("created_at ASC")
	if page != nil {
		start, _ := page.Bounds(int(total))
		q = q.Offset(start).Limit(page.Limit)
	}

	var messages []models.Message
	if err := q.Find(&messages).Error; err != nil {
		return nil, 0, store.Backend("list messages", err)
	}
	return messages, int(total), nil
}

func (s *Store) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	var m models.Message
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, wrap("get message", "message", id, err)
	}
	return &m, nil
}

func (s *Store) CreateMessage(ctx context.Context, m models.Message) (*models.Message, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.ID = newID()
	m.CreatedAt = now()
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, store.Backend("create message", err)
	}
	return &m, nil
}

func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id)
	if res.Error != nil {
		return store.Backend("delete message", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.NotFound("message", id)
	}
	return nil
}
