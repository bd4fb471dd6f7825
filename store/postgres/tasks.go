// store/postgres/tasks.go
package postgres

import (
	"context"

	"gorm.io/gorm"

	"projectflow/models"
	"projectflow/store"
)

func taskQuery(db *gorm.DB, f store.TaskFilter) *gorm.DB {
	q := db.Model(&models.Task{})
	if len(f.Status) > 0 {
		q = q.Where("status IN ?", f.Status)
	}
	if len(f.Priority) > 0 {
		q = q.Where("priority IN ?", f.Priority)
	}
	if f.ProjectID != "" {
		q = q.Where("project_id = ?", f.ProjectID)
	}
	if f.AssigneeID != "" {
		q = q.Where("assignee_id = ?", f.AssigneeID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	return q
}

func (s *Store) ListTasks(ctx context.Context, f store.TaskFilter, page *store.Page) ([]models.Task, int, error) {
	q := taskQuery(s.db.WithContext(ctx), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, store.Backend("count tasks", err)
	}

	q = q.Order("created_at DESC")
	if page != nil {
		start, _ := page.Bounds(int(total))
		q = q.Offset(start).Limit(page.Limit)
	}

	var tasks []models.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, 0, store.Backend("list tasks", err)
	}
	return tasks, int(total), nil
}

func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	var t models.Task
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, wrap("get task", "task", id, err)
	}
	return &t, nil
}

// CreateTask does not verify project_id against the projects table; the
// schema carries no foreign key for it on purpose, matching the mock store.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (*models.Task, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	ts := now()
	t.ID = newID()
	t.CreatedAt = ts
	t.UpdatedAt = ts
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, store.Backend("create task", err)
	}
	return &t, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, patch store.TaskPatch) (*models.Task, error) {
	var t models.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return wrap("get task", "task", id, err)
		}
		patch.Apply(&t)
		if err := t.Validate(); err != nil {
			return err
		}
		t.UpdatedAt = now()
		if err := tx.Save(&t).Error; err != nil {
			return store.Backend("update task", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return store.Backend("delete task", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.NotFound("task", id)
	}
	return nil
}
