package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice gates a route group to the given role slice.
func OnlyRolesSlice(errMessage string, roles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing role in token")
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, errMessage)
	}
}
