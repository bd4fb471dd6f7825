// handlers/analytics.go - Analytics HTTP Handlers
package handlers

import "github.com/gofiber/fiber/v2"

// GetProjectStats returns the dashboard summary.
// GET /api/analytics
func (h *Handler) GetProjectStats(c *fiber.Ctx) error {
	stats, err := h.analytics.ProjectStats(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// GetTimeSummary returns aggregated logged hours.
// GET /api/analytics/time
func (h *Handler) GetTimeSummary(c *fiber.Ctx) error {
	summary, err := h.analytics.TimeSummary(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
	})
}
