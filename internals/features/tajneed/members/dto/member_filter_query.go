package dto

import (
	"github.com/gofiber/fiber/v2"

	"ansarullah_backend/internals/features/tajneed/members/service"
)

// MemberFilterFromQuery reads the register filters shared by the member list
// and the export endpoints. The text filter is `q`; `search` is accepted as
// an alias.
func MemberFilterFromQuery(c *fiber.Ctx) service.MemberFilter {
	return service.MemberFilter{
		Region:   c.Query("region"),
		Majlis:   c.Query("majlis"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Search:   c.Query("q", c.Query("search")),
	}
}
