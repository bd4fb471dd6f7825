package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectflow/models"
	"projectflow/store"
)

func validTask(title, projectID string) models.Task {
	return models.Task{
		Title:     title,
		Status:    models.TaskTodo,
		Priority:  models.PriorityMedium,
		ProjectID: projectID,
		CreatorID: "u-test",
	}
}

func TestCreateTask_DanglingProjectAccepted(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	// No project with this id exists anywhere; the store does not check.
	created, err := s.CreateTask(ctx, validTask("Orphan", "no-such-project"))
	require.NoError(t, err)

	fetched, err := s.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "no-such-project", fetched.ProjectID)
}

func TestCreateTask_RequiresProjectID(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateTask(context.Background(), validTask("No project", ""))
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "project_id", ve.Field)
}

func TestUpdateTask_StatusMove(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.CreateTask(ctx, validTask("Board card", "proj-1"))
	require.NoError(t, err)

	status := models.TaskDone
	hours := 6.5
	updated, err := s.UpdateTask(ctx, created.ID, store.TaskPatch{
		Status:      &status,
		ActualHours: &hours,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskDone, updated.Status)
	assert.Equal(t, 6.5, updated.ActualHours)
	assert.Equal(t, "Board card", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateTask_AssignAndClearNotSupported(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.CreateTask(ctx, validTask("Assignable", "proj-1"))
	require.NoError(t, err)
	require.Nil(t, created.AssigneeID)

	assignee := "u-bob"
	updated, err := s.UpdateTask(ctx, created.ID, store.TaskPatch{AssigneeID: &assignee})
	require.NoError(t, err)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, "u-bob", *updated.AssigneeID)

	// An empty patch leaves the assignment alone.
	unchanged, err := s.UpdateTask(ctx, created.ID, store.TaskPatch{})
	require.NoError(t, err)
	require.NotNil(t, unchanged.AssigneeID)
	assert.Equal(t, "u-bob", *unchanged.AssigneeID)
}

func TestListTasks_Filters(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	assignee := "u-carol"
	tasks := []models.Task{
		validTask("Design review", "proj-a"),
		validTask("API design", "proj-b"),
		validTask("Deploy", "proj-a"),
	}
	tasks[1].AssigneeID = &assignee
	tasks[2].Status = models.TaskDone
	for _, task := range tasks {
		_, err := s.CreateTask(ctx, task)
		require.NoError(t, err)
	}

	byProject, total, err := s.ListTasks(ctx, store.TaskFilter{ProjectID: "proj-a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, byProject, 2)

	byAssignee, total, err := s.ListTasks(ctx, store.TaskFilter{AssigneeID: assignee}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "API design", byAssignee[0].Title)

	bySearch, total, err := s.ListTasks(ctx, store.TaskFilter{Search: "DESIGN"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Design review", bySearch[0].Title)
	assert.Equal(t, "API design", bySearch[1].Title)

	byStatus, _, err := s.ListTasks(ctx, store.TaskFilter{Status: []models.TaskStatus{models.TaskDone}}, nil)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Deploy", byStatus[0].Title)
}

func TestDeleteProject_DoesNotCascadeToTasks(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	project, err := s.CreateProject(ctx, validProject("Doomed"))
	require.NoError(t, err)
	task, err := s.CreateTask(ctx, validTask("Survivor", project.ID))
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(ctx, project.ID))

	// The task stays, with its project_id now dangling.
	fetched, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, fetched.ProjectID)
}

func TestSeededStore_FixturesResolve(t *testing.T) {
	s := New(Config{Seed: true})
	ctx := context.Background()

	projects, total, err := s.ListProjects(ctx, store.ProjectFilter{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	for _, p := range projects {
		_, err := s.GetTeam(ctx, p.TeamID)
		require.NoError(t, err, "project %s references team %s", p.ID, p.TeamID)
		_, err = s.GetUser(ctx, p.ManagerID)
		require.NoError(t, err)
	}

	tasks, _, err := s.ListTasks(ctx, store.TaskFilter{}, nil)
	require.NoError(t, err)
	for _, task := range tasks {
		_, err := s.GetProject(ctx, task.ProjectID)
		require.NoError(t, err)
	}
}
