package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectflow/middleware"
	"projectflow/services"
	"projectflow/store/memory"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	backend := memory.New(memory.Config{Seed: true})
	h := New(backend, services.NewAnalyticsService(backend))

	app := fiber.New()
	app.Use(middleware.CurrentUser(memory.DemoUserID))

	api := app.Group("/api")
	api.Get("/projects", h.ListProjects)
	api.Post("/projects", h.CreateProject)
	api.Get("/projects/:id", h.GetProject)
	api.Put("/projects/:id", h.UpdateProject)
	api.Delete("/projects/:id", h.DeleteProject)
	api.Get("/projects/:id/messages", h.ListProjectMessages)
	api.Post("/projects/:id/messages", h.PostProjectMessage)
	api.Get("/tasks", h.ListTasks)
	api.Post("/tasks", h.CreateTask)
	api.Put("/tasks/:id", h.UpdateTask)
	api.Get("/users/me", h.GetCurrentUser)
	api.Get("/analytics", h.GetProjectStats)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload string) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != "" {
		body = bytes.NewBufferString(payload)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestProjectLifecycle(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/projects", `{
		"name": "Site Web",
		"status": "planning",
		"priority": "high",
		"start_date": "2025-03-01T00:00:00Z"
	}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, true, body["success"])
	project := body["project"].(map[string]any)
	id := project["id"].(string)
	require.NotEmpty(t, id)
	// ManagerID defaults to the stub current user.
	assert.Equal(t, memory.DemoUserID, project["manager_id"])

	code, body = doJSON(t, app, http.MethodPut, "/api/projects/"+id, `{
		"status": "active",
		"progress": 40
	}`)
	require.Equal(t, http.StatusOK, code)
	project = body["project"].(map[string]any)
	assert.Equal(t, "active", project["status"])
	assert.Equal(t, float64(40), project["progress"])
	assert.Equal(t, "Site Web", project["name"], "fields absent from the patch stay put")

	code, _ = doJSON(t, app, http.MethodDelete, "/api/projects/"+id, "")
	require.Equal(t, http.StatusOK, code)

	code, body = doJSON(t, app, http.MethodGet, "/api/projects/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestCreateProject_Invalid(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/projects", `{
		"status": "paused",
		"priority": "high",
		"start_date": "2025-03-01T00:00:00Z"
	}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "name")
}

func TestUpdateTask_NotFound(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPut, "/api/tasks/no-such-task", `{"status": "done"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestListTasks_FilterByProject(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/api/tasks?project_id=proj-web", "")
	require.Equal(t, http.StatusOK, code)
	tasks := body["tasks"].([]any)
	require.NotEmpty(t, tasks)
	for _, raw := range tasks {
		task := raw.(map[string]any)
		assert.Equal(t, "proj-web", task["project_id"])
	}
}

func TestProjectMessages(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/projects/proj-web/messages", `{"content": "Kickoff at ten."}`)
	require.Equal(t, http.StatusCreated, code)
	message := body["message"].(map[string]any)
	assert.Equal(t, memory.DemoUserID, message["user_id"])

	code, body = doJSON(t, app, http.MethodGet, "/api/projects/proj-web/messages", "")
	require.Equal(t, http.StatusOK, code)
	messages := body["messages"].([]any)
	require.NotEmpty(t, messages)
	last := messages[len(messages)-1].(map[string]any)
	assert.Equal(t, "Kickoff at ten.", last["content"])
}

func TestGetCurrentUser_Header(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("X-User-ID", "u-bob")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	user := body["user"].(map[string]any)
	assert.Equal(t, "u-bob", user["id"])
}

func TestGetProjectStats(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/api/analytics", "")
	require.Equal(t, http.StatusOK, code)
	stats := body["stats"].(map[string]any)
	assert.Contains(t, stats, "tasks_by_status")
	assert.Contains(t, stats, "efficiency")
}
