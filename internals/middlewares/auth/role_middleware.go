package auth

import (
	"github.com/gofiber/fiber/v2"

	"ansarullah_backend/internals/constants"
)

// IsAdmin allows only the admin role through.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(c.Path()))
		}
		return c.Next()
	}
}

// RequireRoles allows any of the given roles (admin always passes).
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == constants.RoleAdmin {
			return c.Next()
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Forbidden - insufficient role")
	}
}

// RequireSectionAccess gates departmental report routes on the :section (or
// ?section=) value. Role gating happens here, server side; the role string a
// client stores locally is never trusted.
func RequireSectionAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == constants.RoleAdmin {
			return c.Next()
		}
		section := c.Params("section")
		if section == "" {
			section = c.Query("section")
		}
		if section == "" {
			// list endpoints without a section filter are narrowed by the
			// controller to the caller's own section
			return c.Next()
		}
		if constants.SectionForRole(role) != section {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorSection(section))
		}
		return c.Next()
	}
}
