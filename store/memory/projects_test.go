package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectflow/models"
	"projectflow/store"
)

func newTestStore() *Store {
	return New(Config{})
}

func validProject(name string) models.Project {
	return models.Project{
		Name:      name,
		Status:    models.ProjectPlanning,
		Priority:  models.PriorityMedium,
		StartDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Tags:      []string{"demo"},
	}
}

func TestCreateProject_ThenGet(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.CreateProject(ctx, validProject("Launch"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := s.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateProject_Validation(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	missing := validProject("")
	_, err := s.CreateProject(ctx, missing)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	badEnum := validProject("Launch")
	badEnum.Status = "paused"
	_, err = s.CreateProject(ctx, badEnum)
	require.ErrorAs(t, err, &ve)

	// Nothing was written on either failure.
	_, total, err := s.ListProjects(ctx, store.ProjectFilter{}, nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUpdateProject_MergePatch(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.CreateProject(ctx, validProject("Site Web"))
	require.NoError(t, err)
	assert.Equal(t, 0, created.Progress)
	assert.Equal(t, models.ProjectPlanning, created.Status)

	status := models.ProjectActive
	progress := 40
	updated, err := s.UpdateProject(ctx, created.ID, store.ProjectPatch{
		Status:   &status,
		Progress: &progress,
	})
	require.NoError(t, err)

	fetched, err := s.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectActive, fetched.Status)
	assert.Equal(t, 40, fetched.Progress)
	assert.Equal(t, "Site Web", fetched.Name, "unpatched field must keep its value")
	assert.Equal(t, created.CreatedAt, fetched.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updated_at must strictly increase")
}

func TestUpdateProject_NotFound(t *testing.T) {
	s := newTestStore()

	name := "x"
	_, err := s.UpdateProject(context.Background(), "nope", store.ProjectPatch{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteProject_NotIdempotent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.CreateProject(ctx, validProject("Short-lived"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(ctx, created.ID))

	_, err = s.GetProject(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Second delete reports absence again rather than succeeding silently.
	assert.ErrorIs(t, s.DeleteProject(ctx, created.ID), store.ErrNotFound)
}

func TestListProjects_StatusFilterKeepsOrder(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for _, spec := range []struct {
		name   string
		status models.ProjectStatus
	}{
		{"A", models.ProjectActive},
		{"B", models.ProjectPlanning},
		{"C", models.ProjectActive},
		{"D", models.ProjectOnHold},
	} {
		p := validProject(spec.name)
		p.Status = spec.status
		_, err := s.CreateProject(ctx, p)
		require.NoError(t, err)
	}

	projects, total, err := s.ListProjects(ctx, store.ProjectFilter{
		Status: []models.ProjectStatus{models.ProjectActive},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, projects, 2)
	assert.Equal(t, "A", projects[0].Name)
	assert.Equal(t, "C", projects[1].Name)
}

func TestListProjects_SearchAndPagination(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	names := []string{"Website Redesign", "Mobile App", "Website Analytics", "CRM"}
	for _, n := range names {
		_, err := s.CreateProject(ctx, validProject(n))
		require.NoError(t, err)
	}

	// Case-insensitive substring over name and description.
	projects, total, err := s.ListProjects(ctx, store.ProjectFilter{Search: "website"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, projects, 2)

	// Total counts the filtered collection before the page slice.
	page, total, err := s.ListProjects(ctx, store.ProjectFilter{Search: "website"}, &store.Page{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Website Analytics", page[0].Name)

	// A page past the end is empty, not an error.
	empty, total, err := s.ListProjects(ctx, store.ProjectFilter{}, &store.Page{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, empty)
}

func TestStore_LatencyHonorsContext(t *testing.T) {
	s := New(Config{Latency: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetProject(ctx, "any")
	assert.ErrorIs(t, err, context.Canceled)
}
