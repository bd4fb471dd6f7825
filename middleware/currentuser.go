// middleware/currentuser.go - Stub current-user resolution
package middleware

import "github.com/gofiber/fiber/v2"

// CurrentUser resolves the acting user for the request. There is no
// authentication: the client may name a user via X-User-ID, otherwise the
// configured default applies. Handlers read the id from c.Locals("userID").
func CurrentUser(defaultUserID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			userID = defaultUserID
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}
