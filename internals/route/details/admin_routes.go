package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hierarchyRoute "ansarullah_backend/internals/features/tajneed/hierarchy/route"
	subUserRoute "ansarullah_backend/internals/features/users/subuser/route"
)

// RegisterAdminRoutes mounts the admin-only surface: the region/majlis
// hierarchy and account management.
func RegisterAdminRoutes(admin fiber.Router, db *gorm.DB) {
	hierarchyRoute.HierarchyRoutes(admin, db)
	subUserRoute.SubUserRoutes(admin, db)
}
