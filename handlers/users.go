// handlers/users.go - User HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"projectflow/store"
)

// ListUsers returns users for assignee/member pickers.
// GET /api/users
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	filter := store.UserFilter{
		Role:   userRoles(c.Query("role")),
		Search: c.Query("search"),
	}

	users, total, err := h.store.ListUsers(c.UserContext(), filter, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
		"total":   total,
	})
}

// GetUser retrieves a user by ID.
// GET /api/users/:id
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.store.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// GetCurrentUser resolves the stub current user.
// GET /api/users/me
func (h *Handler) GetCurrentUser(c *fiber.Ctx) error {
	user, err := h.store.GetUser(c.UserContext(), currentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
