package handlers

import (
	applog "adminpanel/internal/log"
	"adminpanel/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates every /admin route: no bound session means a redirect
// to the login form, never a hard failure.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		a, err := auth.CurrentAdmin(sid)
		if err != nil {
			applog.Security(c, "access.denied", map[string]any{"sid": sid})
			return c.Redirect("/login")
		}
		c.Locals("admin", a)
		c.Locals("admin_id", a.ID)
		return c.Next()
	}
}
