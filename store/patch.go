// store/patch.go - Merge-patch overlays
//
// A patch only overwrites fields it explicitly carries: a nil field means
// "leave unchanged". encoding/json cannot tell an absent key from an
// explicit null, so clearing an optional field is expressed by sending its
// zero value, not null. Apply never touches ID or CreatedAt; the store
// refreshes UpdatedAt after a successful apply.
package store

import (
	"time"

	"projectflow/models"
)

type ProjectPatch struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status"`
	Priority    *models.Priority      `json:"priority"`
	StartDate   *time.Time            `json:"start_date"`
	EndDate     *time.Time            `json:"end_date"`
	Progress    *int                  `json:"progress"`
	Budget      *float64              `json:"budget"`
	TeamID      *string               `json:"team_id"`
	ManagerID   *string               `json:"manager_id"`
	Tags        *[]string             `json:"tags"`
}

func (patch ProjectPatch) Apply(p *models.Project) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		end := *patch.EndDate
		p.EndDate = &end
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.Budget != nil {
		budget := *patch.Budget
		p.Budget = &budget
	}
	if patch.TeamID != nil {
		p.TeamID = *patch.TeamID
	}
	if patch.ManagerID != nil {
		p.ManagerID = *patch.ManagerID
	}
	if patch.Tags != nil {
		p.Tags = append([]string(nil), *patch.Tags...)
	}
}

type TaskPatch struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Status         *models.TaskStatus `json:"status"`
	Priority       *models.Priority   `json:"priority"`
	ProjectID      *string            `json:"project_id"`
	AssigneeID     *string            `json:"assignee_id"`
	DueDate        *time.Time         `json:"due_date"`
	EstimatedHours *float64           `json:"estimated_hours"`
	ActualHours    *float64           `json:"actual_hours"`
	Tags           *[]string          `json:"tags"`
}

func (patch TaskPatch) Apply(t *models.Task) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.AssigneeID != nil {
		assignee := *patch.AssigneeID
		t.AssigneeID = &assignee
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		t.DueDate = &due
	}
	if patch.EstimatedHours != nil {
		est := *patch.EstimatedHours
		t.EstimatedHours = &est
	}
	if patch.ActualHours != nil {
		t.ActualHours = *patch.ActualHours
	}
	if patch.Tags != nil {
		t.Tags = append([]string(nil), *patch.Tags...)
	}
}

type TeamPatch struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	ManagerID   *string              `json:"manager_id"`
	Members     *[]models.TeamMember `json:"members"`
	Projects    *[]string            `json:"projects"`
}

func (patch TeamPatch) Apply(t *models.Team) {
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ManagerID != nil {
		t.ManagerID = *patch.ManagerID
	}
	if patch.Members != nil {
		t.Members = append([]models.TeamMember(nil), *patch.Members...)
	}
	if patch.Projects != nil {
		t.Projects = append([]string(nil), *patch.Projects...)
	}
}

type UserPatch struct {
	Email *string          `json:"email"`
	Name  *string          `json:"name"`
	Role  *models.UserRole `json:"role"`
}

func (patch UserPatch) Apply(u *models.User) {
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
}

type TimeEntryPatch struct {
	Hours       *float64   `json:"hours"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

func (patch TimeEntryPatch) Apply(e *models.TimeEntry) {
	if patch.Hours != nil {
		e.Hours = *patch.Hours
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
}
