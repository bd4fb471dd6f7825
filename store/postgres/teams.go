// store/postgres/teams.go
package postgres

import (
	"context"

	"gorm.io/gorm"

	"projectflow/models"
	"projectflow/store"
)

// memberOrder keeps the member list in the order it was supplied; rows are
// inserted sequentially so the surrogate key preserves it.
func memberOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func teamQuery(db *gorm.DB, f store.TeamFilter) *gorm.DB {
	q := db.Model(&models.Team{})
	if f.ManagerID != "" {
		q = q.Where("manager_id = ?", f.ManagerID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	return q
}

func (s *Store) ListTeams(ctx context.Context, f store.TeamFilter, page *store.Page) ([]models.Team, int, error) {
	q := teamQuery(s.db.WithContext(ctx), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, store.Backend("count teams", err)
	}

	q = q.Order("created_at DESC").Preload("Members", memberOrder)
	if page != nil {
		start, _ := page.Bounds(int(total))
		q = q.Offset(start).Limit(page.Limit)
	}

	var teams []models.Team
	if err := q.Find(&teams).Error; err != nil {
		return nil, 0, store.Backend("list teams", err)
	}
	return teams, int(total), nil
}

func (s *Store) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	var t models.Team
	err := s.db.WithContext(ctx).Preload("Members", memberOrder).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, wrap("get team", "team", id, err)
	}
	return &t, nil
}

func (s *Store) CreateTeam(ctx context.Context, t models.Team) (*models.Team, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	ts := now()
	t.ID = newID()
	t.CreatedAt = ts
	t.UpdatedAt = ts
	for i := range t.Members {
		t.Members[i].ID = 0
		t.Members[i].TeamID = t.ID
	}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, store.Backend("create team", err)
	}
	return &t, nil
}

// UpdateTeam replaces the member rows when the patch carries a member list;
// otherwise the existing rows stay untouched.
func (s *Store) UpdateTeam(ctx context.Context, id string, patch store.TeamPatch) (*models.Team, error) {
	var t models.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Members", memberOrder).First(&t, "id = ?", id).Error; err != nil {
			return wrap("get team", "team", id, err)
		}
		patch.Apply(&t)
		if err := t.Validate(); err != nil {
			return err
		}
		t.UpdatedAt = now()

		if patch.Members != nil {
			if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
				return store.Backend("replace team members", err)
			}
			for i := range t.Members {
				t.Members[i].ID = 0
				t.Members[i].TeamID = id
			}
		}
		if err := tx.Session(&gorm.Session{FullSaveAssociations: patch.Members != nil}).Save(&t).Error; err != nil {
			return store.Backend("update team", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Team{}, "id = ?", id)
		if res.Error != nil {
			return store.Backend("delete team", res.Error)
		}
		if res.RowsAffected == 0 {
			return store.NotFound("team", id)
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return store.Backend("delete team members", err)
		}
		return nil
	})
}
