// handlers/time_entries.go - Time Tracking HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"projectflow/models"
	"projectflow/store"
)

// ListTimeEntries returns logged time, optionally per task or user.
// GET /api/time-entries
func (h *Handler) ListTimeEntries(c *fiber.Ctx) error {
	filter := store.TimeEntryFilter{
		TaskID: c.Query("task_id"),
		UserID: c.Query("user_id"),
	}

	entries, total, err := h.store.ListTimeEntries(c.UserContext(), filter, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
		"total":   total,
	})
}

// CreateTimeEntry logs hours against a task.
// POST /api/time-entries
func (h *Handler) CreateTimeEntry(c *fiber.Ctx) error {
	var req models.TimeEntry
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID == "" {
		req.UserID = currentUser(c)
	}

	entry, err := h.store.CreateTimeEntry(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"entry":   entry,
	})
}

// DeleteTimeEntry removes a logged entry.
// DELETE /api/time-entries/:id
func (h *Handler) DeleteTimeEntry(c *fiber.Ctx) error {
	if err := h.store.DeleteTimeEntry(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Time entry deleted",
	})
}
