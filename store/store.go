// store/store.go - Data store adapter contract
//
// Every entity collection is reachable through the same five operations:
// list with optional filters and pagination, get by id, create, merge-patch
// update, and delete. Two implementations exist behind this contract: an
// in-memory mock store with simulated latency (store/memory) and a remote
// Postgres-backed store (store/postgres). Callers depend on the interfaces
// only, so either backend can be swapped in without touching handlers or
// services.
package store

import (
	"context"

	"projectflow/models"
)

// Page requests a slice of an already-filtered collection. Pages are
// 1-based; the slice is taken in the backend's stored order.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Bounds returns the [start, end) index range for a collection of n records.
func (p Page) Bounds(n int) (int, int) {
	start := (p.Page - 1) * p.Limit
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := start + p.Limit
	if end > n {
		end = n
	}
	return start, end
}

// ProjectFilter narrows a project listing. Zero values mean "no constraint".
// Search is a case-insensitive substring match over name and description.
type ProjectFilter struct {
	Status    []models.ProjectStatus
	Priority  []models.Priority
	TeamID    string
	ManagerID string
	Search    string
}

// TaskFilter narrows a task listing. Search matches title and description.
type TaskFilter struct {
	Status     []models.TaskStatus
	Priority   []models.Priority
	ProjectID  string
	AssigneeID string
	Search     string
}

// TeamFilter narrows a team listing.
type TeamFilter struct {
	ManagerID string
	Search    string
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Role   []models.UserRole
	Search string
}

// TimeEntryFilter narrows a time entry listing.
type TimeEntryFilter struct {
	TaskID string
	UserID string
}

// MessageFilter narrows a message listing.
type MessageFilter struct {
	ProjectID string
	UserID    string
}

type ProjectStore interface {
	ListProjects(ctx context.Context, filter ProjectFilter, page *Page) ([]models.Project, int, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type TaskStore interface {
	ListTasks(ctx context.Context, filter TaskFilter, page *Page) ([]models.Task, int, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	CreateTask(ctx context.Context, t models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type TeamStore interface {
	ListTeams(ctx context.Context, filter TeamFilter, page *Page) ([]models.Team, int, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	CreateTeam(ctx context.Context, t models.Team) (*models.Team, error)
	UpdateTeam(ctx context.Context, id string, patch TeamPatch) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

type UserStore interface {
	ListUsers(ctx context.Context, filter UserFilter, page *Page) ([]models.User, int, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, u models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id string, patch UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type TimeEntryStore interface {
	ListTimeEntries(ctx context.Context, filter TimeEntryFilter, page *Page) ([]models.TimeEntry, int, error)
	GetTimeEntry(ctx context.Context, id string) (*models.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, e models.TimeEntry) (*models.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, id string, patch TimeEntryPatch) (*models.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id string) error
}

type MessageStore interface {
	ListMessages(ctx context.Context, filter MessageFilter, page *Page) ([]models.Message, int, error)
	GetMessage(ctx context.Context, id string) (*models.Message, error)
	CreateMessage(ctx context.Context, m models.Message) (*models.Message, error)
	DeleteMessage(ctx context.Context, id string) error
}

// Store is the full capability set of a backend.
type Store interface {
	ProjectStore
	TaskStore
	TeamStore
	UserStore
	TimeEntryStore
	MessageStore
}
