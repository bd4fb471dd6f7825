// handlers/tasks.go - Task HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"projectflow/models"
	"projectflow/store"
)

// ListTasks returns tasks matching the query filters.
// GET /api/tasks
func (h *Handler) ListTasks(c *fiber.Ctx) error {
	filter := store.TaskFilter{
		Status:     taskStatuses(c.Query("status")),
		Priority:   priorities(c.Query("priority")),
		ProjectID:  c.Query("project_id"),
		AssigneeID: c.Query("assignee_id"),
		Search:     c.Query("search"),
	}

	tasks, total, err := h.store.ListTasks(c.UserContext(), filter, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"tasks":   tasks,
		"total":   total,
	})
}

// GetTask retrieves a task by ID.
// GET /api/tasks/:id
func (h *Handler) GetTask(c *fiber.Ctx) error {
	task, err := h.store.GetTask(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

// CreateTask creates a new task on the board.
// POST /api/tasks
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var req models.Task
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.CreatorID == "" {
		req.CreatorID = currentUser(c)
	}

	task, err := h.store.CreateTask(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

// UpdateTask merge-patches a task (kanban moves send just the status).
// PUT /api/tasks/:id
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	var patch store.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.store.UpdateTask(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

// DeleteTask deletes a task.
// DELETE /api/tasks/:id
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	if err := h.store.DeleteTask(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Task deleted",
	})
}
