// handlers/handlers.go - HTTP handler wiring and shared helpers
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"projectflow/models"
	"projectflow/services"
	"projectflow/store"
)

// Handler serves the REST API against whichever backend was injected.
// Handlers never reach into storage internals; the store contract is the
// only interface they use.
type Handler struct {
	store     store.Store
	analytics *services.AnalyticsService
}

func New(s store.Store, analytics *services.AnalyticsService) *Handler {
	return &Handler{store: s, analytics: analytics}
}

// fail maps the store error taxonomy onto HTTP statuses. The error text is
// passed through so a failed write tells the client what to fix before
// retrying with its retained form values.
func fail(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		code = fiber.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		code = fiber.StatusNotFound
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// parsePage reads page/limit query parameters. Nil means "no pagination":
// the full filtered collection is returned.
func parsePage(c *fiber.Ctx) *store.Page {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	if pageStr == "" && limitStr == "" {
		return nil
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 20
	}
	return &store.Page{Page: page, Limit: limit}
}

// splitParam splits a comma-separated multi-value query parameter.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

func projectStatuses(raw string) []models.ProjectStatus {
	var out []models.ProjectStatus
	for _, v := range splitParam(raw) {
		out = append(out, models.ProjectStatus(v))
	}
	return out
}

func taskStatuses(raw string) []models.TaskStatus {
	var out []models.TaskStatus
	for _, v := range splitParam(raw) {
		out = append(out, models.TaskStatus(v))
	}
	return out
}

func priorities(raw string) []models.Priority {
	var out []models.Priority
	for _, v := range splitParam(raw) {
		out = append(out, models.Priority(v))
	}
	return out
}

func userRoles(raw string) []models.UserRole {
	var out []models.UserRole
	for _, v := range splitParam(raw) {
		out = append(out, models.UserRole(v))
	}
	return out
}

// currentUser returns the stub user id resolved by the middleware.
func currentUser(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}
