// cmd/seed/main.go - Seed the Postgres backend with demo data
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"projectflow/database"
	"projectflow/models"
	"projectflow/store/postgres"
)

func ptr[T any](v T) *T { return &v }

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("bad date %q: %v", value, err)
	}
	return t
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	s := postgres.New(db)
	ctx := context.Background()

	alice, err := s.CreateUser(ctx, models.User{Email: "alice@projectflow.dev", Name: "Alice Martin", Role: models.RoleAdmin})
	if err != nil {
		log.Fatalf("Seeding users: %v", err)
	}
	bob, err := s.CreateUser(ctx, models.User{Email: "bob@projectflow.dev", Name: "Bob Durand", Role: models.RoleManager})
	if err != nil {
		log.Fatalf("Seeding users: %v", err)
	}
	carol, err := s.CreateUser(ctx, models.User{Email: "carol@projectflow.dev", Name: "Carol Leroy", Role: models.RoleMember})
	if err != nil {
		log.Fatalf("Seeding users: %v", err)
	}

	frontend, err := s.CreateTeam(ctx, models.Team{
		Name:        "Frontend Team",
		Description: "Web client and UX work",
		ManagerID:   alice.ID,
		Members: []models.TeamMember{
			{UserID: alice.ID, Role: models.TeamRoleManager, JoinedAt: date("2024-12-01")},
			{UserID: bob.ID, Role: models.TeamRoleMember, JoinedAt: date("2024-12-15")},
		},
	})
	if err != nil {
		log.Fatalf("Seeding teams: %v", err)
	}
	mobile, err := s.CreateTeam(ctx, models.Team{
		Name:        "Mobile Team",
		Description: "Native iOS and Android apps",
		ManagerID:   bob.ID,
		Members: []models.TeamMember{
			{UserID: bob.ID, Role: models.TeamRoleManager, JoinedAt: date("2024-11-01")},
			{UserID: carol.ID, Role: models.TeamRoleMember, JoinedAt: date("2024-11-15")},
		},
	})
	if err != nil {
		log.Fatalf("Seeding teams: %v", err)
	}

	web, err := s.CreateProject(ctx, models.Project{
		Name:        "Website Redesign",
		Description: "Full refresh of the marketing site with the new visual identity",
		Status:      models.ProjectActive, Priority: models.PriorityHigh,
		StartDate: date("2025-01-15"), EndDate: ptr(date("2025-03-15")),
		Progress: 65, Budget: ptr(25000.0),
		TeamID: frontend.ID, ManagerID: alice.ID,
		Tags: []string{"web", "design", "frontend"},
	})
	if err != nil {
		log.Fatalf("Seeding projects: %v", err)
	}
	app, err := s.CreateProject(ctx, models.Project{
		Name:        "Mobile App",
		Description: "Native companion app for iOS and Android",
		Status:      models.ProjectPlanning, Priority: models.PriorityMedium,
		StartDate: date("2025-02-01"), EndDate: ptr(date("2025-06-01")),
		Progress: 15, Budget: ptr(45000.0),
		TeamID: mobile.ID, ManagerID: bob.ID,
		Tags: []string{"mobile", "ios", "android"},
	})
	if err != nil {
		log.Fatalf("Seeding projects: %v", err)
	}

	mockups, err := s.CreateTask(ctx, models.Task{
		Title:       "Homepage mockups",
		Description: "Desktop and mobile mockups for the landing page",
		Status:      models.TaskInProgress, Priority: models.PriorityHigh,
		ProjectID: web.ID, AssigneeID: ptr(bob.ID), CreatorID: alice.ID,
		DueDate:        ptr(date("2025-01-30")),
		EstimatedHours: ptr(16.0), ActualHours: 8,
		Tags: []string{"design", "ux"},
	})
	if err != nil {
		log.Fatalf("Seeding tasks: %v", err)
	}
	_, err = s.CreateTask(ctx, models.Task{
		Title:       "REST API scaffolding",
		Description: "Backend API with request validation",
		Status:      models.TaskTodo, Priority: models.PriorityMedium,
		ProjectID: app.ID, AssigneeID: ptr(carol.ID), CreatorID: bob.ID,
		DueDate:        ptr(date("2025-02-15")),
		EstimatedHours: ptr(32.0),
		Tags:           []string{"backend", "api"},
	})
	if err != nil {
		log.Fatalf("Seeding tasks: %v", err)
	}

	_, err = s.CreateTimeEntry(ctx, models.TimeEntry{
		TaskID: mockups.ID, UserID: bob.ID, Hours: 8,
		Description: "Mockup passes", Date: date("2025-01-20"),
	})
	if err != nil {
		log.Fatalf("Seeding time entries: %v", err)
	}

	_, err = s.CreateMessage(ctx, models.Message{
		ProjectID: web.ID, UserID: alice.ID,
		Content: "Kickoff notes are in the shared folder.",
	})
	if err != nil {
		log.Fatalf("Seeding messages: %v", err)
	}

	log.Println("Seed data loaded")
}
