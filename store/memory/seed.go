// store/memory/seed.go - Demo fixtures
package memory

import (
	"time"

	"projectflow/models"
)

// DemoUserID is the stub "current user" for unauthenticated requests.
const DemoUserID = "u-alice"

func ptr[T any](v T) *T { return &v }

// seed loads a small consistent data set: three users, two teams, three
// projects with tasks, time entries, and a message thread. IDs are fixed so
// the fixtures can reference each other and tests can address them.
func (s *Store) seed() {
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}
	ts := func(value string) time.Time {
		t, _ := time.Parse(time.RFC3339, value)
		return t
	}

	s.users = []models.User{
		{ID: DemoUserID, Email: "alice@projectflow.dev", Name: "Alice Martin", Role: models.RoleAdmin, CreatedAt: ts("2024-10-01T00:00:00Z")},
		{ID: "u-bob", Email: "bob@projectflow.dev", Name: "Bob Durand", Role: models.RoleManager, CreatedAt: ts("2024-10-15T00:00:00Z")},
		{ID: "u-carol", Email: "carol@projectflow.dev", Name: "Carol Leroy", Role: models.RoleMember, CreatedAt: ts("2024-11-01T00:00:00Z")},
	}

	s.teams = []models.Team{
		{
			ID: "team-frontend", Name: "Frontend Team",
			Description: "Web client and UX work",
			ManagerID:   DemoUserID,
			Members: []models.TeamMember{
				{TeamID: "team-frontend", UserID: DemoUserID, Role: models.TeamRoleManager, JoinedAt: ts("2024-12-01T00:00:00Z")},
				{TeamID: "team-frontend", UserID: "u-bob", Role: models.TeamRoleMember, JoinedAt: ts("2024-12-15T00:00:00Z")},
			},
			Projects:  []string{"proj-web"},
			CreatedAt: ts("2024-12-01T00:00:00Z"), UpdatedAt: ts("2025-01-15T00:00:00Z"),
		},
		{
			ID: "team-mobile", Name: "Mobile Team",
			Description: "Native iOS and Android apps",
			ManagerID:   "u-bob",
			Members: []models.TeamMember{
				{TeamID: "team-mobile", UserID: "u-bob", Role: models.TeamRoleManager, JoinedAt: ts("2024-11-01T00:00:00Z")},
				{TeamID: "team-mobile", UserID: "u-carol", Role: models.TeamRoleMember, JoinedAt: ts("2024-11-15T00:00:00Z")},
			},
			Projects:  []string{"proj-mobile"},
			CreatedAt: ts("2024-11-01T00:00:00Z"), UpdatedAt: ts("2025-01-10T00:00:00Z"),
		},
	}

	s.projects = []models.Project{
		{
			ID: "proj-web", Name: "Website Redesign",
			Description: "Full refresh of the marketing site with the new visual identity",
			Status:      models.ProjectActive, Priority: models.PriorityHigh,
			StartDate: date("2025-01-15"), EndDate: ptr(date("2025-03-15")),
			Progress: 65, Budget: ptr(25000.0),
			TeamID: "team-frontend", ManagerID: DemoUserID,
			Tags:      []string{"web", "design", "frontend"},
			CreatedAt: ts("2025-01-10T10:00:00Z"), UpdatedAt: ts("2025-01-20T15:30:00Z"),
		},
		{
			ID: "proj-mobile", Name: "Mobile App",
			Description: "Native companion app for iOS and Android",
			Status:      models.ProjectPlanning, Priority: models.PriorityMedium,
			StartDate: date("2025-02-01"), EndDate: ptr(date("2025-06-01")),
			Progress: 15, Budget: ptr(45000.0),
			TeamID: "team-mobile", ManagerID: "u-bob",
			Tags:      []string{"mobile", "ios", "android"},
			CreatedAt: ts("2025-01-05T09:00:00Z"), UpdatedAt: ts("2025-01-18T11:20:00Z"),
		},
		{
			ID: "proj-cloud", Name: "Cloud Migration",
			Description: "Move the on-prem infrastructure to AWS",
			Status:      models.ProjectActive, Priority: models.PriorityUrgent,
			StartDate: date("2025-01-20"), EndDate: ptr(date("2025-04-20")),
			Progress: 30, Budget: ptr(35000.0),
			TeamID: "team-frontend", ManagerID: DemoUserID,
			Tags:      []string{"cloud", "aws", "infrastructure"},
			CreatedAt: ts("2025-01-15T14:00:00Z"), UpdatedAt: ts("2025-01-22T16:45:00Z"),
		},
	}

	s.tasks = []models.Task{
		{
			ID: "task-mockups", Title: "Homepage mockups",
			Description: "Desktop and mobile mockups for the landing page",
			Status:      models.TaskInProgress, Priority: models.PriorityHigh,
			ProjectID: "proj-web", AssigneeID: ptr("u-bob"), CreatorID: DemoUserID,
			DueDate:        ptr(date("2025-01-30")),
			EstimatedHours: ptr(16.0), ActualHours: 8,
			Tags:      []string{"design", "ux"},
			CreatedAt: ts("2025-01-15T10:00:00Z"), UpdatedAt: ts("2025-01-20T14:30:00Z"),
		},
		{
			ID: "task-api", Title: "REST API scaffolding",
			Description: "Backend API with request validation",
			Status:      models.TaskTodo, Priority: models.PriorityMedium,
			ProjectID: "proj-mobile", AssigneeID: ptr("u-carol"), CreatorID: "u-bob",
			DueDate:        ptr(date("2025-02-15")),
			EstimatedHours: ptr(32.0), ActualHours: 0,
			Tags:      []string{"backend", "api"},
			CreatedAt: ts("2025-01-18T09:00:00Z"), UpdatedAt: ts("2025-01-18T09:00:00Z"),
		},
		{
			ID: "task-ec2", Title: "Provision AWS instances",
			Description: "EC2 setup and security group configuration",
			Status:      models.TaskDone, Priority: models.PriorityUrgent,
			ProjectID: "proj-cloud", AssigneeID: ptr(DemoUserID), CreatorID: DemoUserID,
			DueDate:        ptr(date("2025-01-25")),
			EstimatedHours: ptr(12.0), ActualHours: 14,
			Tags:      []string{"aws", "devops"},
			CreatedAt: ts("2025-01-20T08:00:00Z"), UpdatedAt: ts("2025-01-25T17:00:00Z"),
		},
	}

	s.entries = []models.TimeEntry{
		{ID: "time-1", TaskID: "task-mockups", UserID: "u-bob", Hours: 4, Description: "First mockup pass", Date: date("2025-01-19"), CreatedAt: ts("2025-01-19T18:00:00Z")},
		{ID: "time-2", TaskID: "task-mockups", UserID: "u-bob", Hours: 4, Description: "Mobile variants", Date: date("2025-01-20"), CreatedAt: ts("2025-01-20T18:00:00Z")},
		{ID: "time-3", TaskID: "task-ec2", UserID: DemoUserID, Hours: 14, Description: "Provisioning and hardening", Date: date("2025-01-24"), CreatedAt: ts("2025-01-24T19:00:00Z")},
	}

	s.messages = []models.Message{
		{ID: "msg-1", ProjectID: "proj-web", UserID: DemoUserID, Content: "Kickoff notes are in the shared folder.", CreatedAt: ts("2025-01-16T09:00:00Z")},
		{ID: "msg-2", ProjectID: "proj-web", UserID: "u-bob", Content: "First mockups ready for review.", CreatedAt: ts("2025-01-20T14:45:00Z")},
	}
}
