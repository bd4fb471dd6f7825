// handlers/teams.go - Team HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"projectflow/models"
	"projectflow/store"
)

// ListTeams returns teams matching the query filters.
// GET /api/teams
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	filter := store.TeamFilter{
		ManagerID: c.Query("manager_id"),
		Search:    c.Query("search"),
	}

	teams, total, err := h.store.ListTeams(c.UserContext(), filter, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"teams":   teams,
		"total":   total,
	})
}

// GetTeam retrieves a team with its member list.
// GET /api/teams/:id
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.store.GetTeam(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// CreateTeam creates a new team.
// POST /api/teams
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var req models.Team
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ManagerID == "" {
		req.ManagerID = currentUser(c)
	}

	team, err := h.store.CreateTeam(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// UpdateTeam merge-patches a team; a supplied member list replaces the
// existing one wholesale.
// PUT /api/teams/:id
func (h *Handler) UpdateTeam(c *fiber.Ctx) error {
	var patch store.TeamPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	team, err := h.store.UpdateTeam(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// DeleteTeam deletes a team. Projects keep their team_id; the client shows
// a fallback label for references that no longer resolve.
// DELETE /api/teams/:id
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.store.DeleteTeam(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Team deleted",
	})
}
