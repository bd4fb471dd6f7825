// database/migrate.go - Database Migration Runner
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"projectflow/models"
)

// RunMigrations creates or updates the tables backing the five logical
// resources plus users, then adds the supporting indexes. Note there is no
// foreign key from tasks.project_id to projects: deletes do not cascade and
// orphaned references are tolerated.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Project{},
		&models.Task{},
		&models.TimeEntry{},
		&models.Message{},
	); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	createIndexes(db)
	log.Println("Migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) {
	// Listing order
	db.Exec("CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_created ON tasks(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_messages_project_created ON messages(project_id, created_at)")

	// Filters
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_project_status ON tasks(project_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_time_entries_task ON time_entries(task_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_time_entries_user_date ON time_entries(user_id, date DESC)")
}
