// store/postgres/projects.go
package postgres

import (
	"context"

	"gorm.io/gorm"

	"projectflow/models"
	"projectflow/store"
)

func projectQuery(db *gorm.DB, f store.ProjectFilter) *gorm.DB {
	q := db.Model(&models.Project{})
	if len(f.Status) > 0 {
		q = q.Where("status IN ?", f.Status)
	}
	if len(f.Priority) > 0 {
		q = q.Where("priority IN ?", f.Priority)
	}
	if f.TeamID != "" {
		q = q.Where("team_id = ?", f.TeamID)
	}
	if f.ManagerID != "" {
		q = q.Where("manager_id = ?", f.ManagerID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	return q
}

func (s *Store) ListProjects(ctx context.Context, f store.ProjectFilter, page *store.Page) ([]models.Project, int, error) {
	q := projectQuery(s.db.WithContext(ctx), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, store.Backend("count projects", err)
	}

	// Stored order for this backend is newest first.
	q = q.Order("created_at DESC")
	if page != nil {
		start, _ := page.Bounds(int(total))
		q = q.Offset(start).Limit(page.Limit)
	}

	var projects []models.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, 0, store.Backend("list projects", err)
	}
	return projects, int(total), nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, wrap("get project", "project", id, err)
	}
	return &p, nil
}

func (s *Store) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ts := now()
	p.ID = newID()
	p.CreatedAt = ts
	p.UpdatedAt = ts
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, store.Backend("create project", err)
	}
	return &p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, patch store.ProjectPatch) (*models.Project, error) {
	var p models.Project
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return wrap("get project", "project", id, err)
		}
		patch.Apply(&p)
		if err := p.Validate(); err != nil {
			return err
		}
		p.UpdatedAt = now()
		if err := tx.Save(&p).Error; err != nil {
			return store.Backend("update project", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return store.Backend("delete project", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.NotFound("project", id)
	}
	return nil
}
