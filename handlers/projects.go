// handlers/projects.go - Project HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"projectflow/models"
	"projectflow/store"
)

// ListProjects returns projects matching the query filters.
// GET /api/projects
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	filter := store.ProjectFilter{
		Status:    projectStatuses(c.Query("status")),
		Priority:  priorities(c.Query("priority")),
		TeamID:    c.Query("team_id"),
		ManagerID: c.Query("manager_id"),
		Search:    c.Query("search"),
	}

	projects, total, err := h.store.ListProjects(c.UserContext(), filter, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"projects": projects,
		"total":    total,
	})
}

// GetProject retrieves a project by ID.
// GET /api/projects/:id
func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.store.GetProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"project": project,
	})
}

// CreateProject creates a new project.
// POST /api/projects
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var req models.Project
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ManagerID == "" {
		req.ManagerID = currentUser(c)
	}

	project, err := h.store.CreateProject(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"project": project,
	})
}

// UpdateProject merge-patches a project: only fields present in the body
// change.
// PUT /api/projects/:id
func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	var patch store.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	project, err := h.store.UpdateProject(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"project": project,
	})
}

// DeleteProject deletes a project. Tasks referencing it are left in place;
// their project_id goes dangling by design.
// DELETE /api/projects/:id
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	if err := h.store.DeleteProject(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project deleted",
	})
}

// ListProjectMessages returns a project's message thread, oldest first.
// GET /api/projects/:id/messages
func (h *Handler) ListProjectMessages(c *fiber.Ctx) error {
	filter := store.MessageFilter{ProjectID: c.Params("id")}
	messages, total, err := h.store.ListMessages(c.UserContext(), filter, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
		"total":    total,
	})
}

// PostProjectMessage appends a message to a project's thread.
// POST /api/projects/:id/messages
func (h *Handler) PostProjectMessage(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	message, err := h.store.CreateMessage(c.UserContext(), models.Message{
		ProjectID: c.Params("id"),
		UserID:    currentUser(c),
		Content:   req.Content,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}
