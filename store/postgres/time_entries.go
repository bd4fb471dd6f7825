// store/postgres/time_entries.go
package postgres

import (
	"context"

	"gorm.io/gorm"

	"projectflow/models"
	"projectflow/store"
)

func timeEntryQuery(db *gorm.DB, f store.TimeEntryFilter) *gorm.DB {
	q := db.Model(&models.TimeEntry{})
	if f.TaskID != "" {
		q = q.Where("task_id = ?", f.TaskID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	return q
}

func (s *Store) ListTimeEntries(ctx context.Context, f store.TimeEntryFilter, page *store.Page) ([]models.TimeEntry, int, error) {
	q := timeEntryQuery(s.db.WithContext(ctx), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, store.Backend("count time entries", err)
	}

	// The time page shows the most recent work first.
	q = q.Order("date DESC, created_at DESC")
	if page != nil {
		start, _ := page.Bounds(int(total))
		q = q.Offset(start).Limit(page.Limit)
	}

	var entries []models.TimeEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, 0, store.Backend("list time entries", err)
	}
	return entries, int(total), nil
}

func (s *Store) GetTimeEntry(ctx context.Context, id string) (*models.TimeEntry, error) {
	var e models.TimeEntry
	if err := s.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, wrap("get time entry", "time entry", id, err)
	}
	return &e, nil
}

func (s *Store) CreateTimeEntry(ctx context.Context, e models.TimeEntry) (*models.TimeEntry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.ID = newID()
	e.CreatedAt = now()
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, store.Backend("create time entry", err)
	}
	return &e, nil
}

func (s *Store) UpdateTimeEntry(ctx context.Context, id string, patch store.TimeEntryPatch) (*models.TimeEntry, error) {
	var e models.TimeEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, "id = ?", id).Error; err != nil {
			return wrap("get time entry", "time entry", id, err)
		}
		patch.Apply(&e)
		if err := e.Validate(); err != nil {
			return err
		}
		if err := tx.Save(&e).Error; err != nil {
			return store.Backend("update time entry", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) DeleteTimeEntry(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.TimeEntry{}, "id = ?", id)
	if res.Error != nil {
		return store.Backend("delete time entry", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.NotFound("time entry", id)
	}
	return nil
}
