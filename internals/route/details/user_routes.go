package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ansarullah_backend/internals/constants"
	departmentRoute "ansarullah_backend/internals/features/departments/reports/route"
	eventRoute "ansarullah_backend/internals/features/events/route"
	exportRoute "ansarullah_backend/internals/features/exports/route"
	dashboardRoute "ansarullah_backend/internals/features/home/dashboard/route"
	contributionRoute "ansarullah_backend/internals/features/maal/contributions/route"
	memberRoute "ansarullah_backend/internals/features/tajneed/members/route"
	tarbiyyatRoute "ansarullah_backend/internals/features/tarbiyyat/reports/route"
	authmw "ansarullah_backend/internals/middlewares/auth"
)

// RegisterUserRoutes mounts the authenticated surface. Each feature mounts
// its own path group; the wrappers here only add the role gate for the
// department that owns the feature (admin passes every gate).
func RegisterUserRoutes(private fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardRoutes(private, db)

	memberRoute.MemberRoutes(private.Group("", authmw.RequireRoles(constants.RoleTajneed)), db)
	contributionRoute.ContributionRoutes(private.Group("", authmw.RequireRoles(constants.RoleMaal)), db)
	tarbiyyatRoute.TarbiyyatRoutes(private.Group("", authmw.RequireRoles(constants.RoleTarbiyyat)), db)

	// Section access is enforced inside the department route group.
	departmentRoute.DepartmentRoutes(private, db)

	eventRoute.EventRoutes(private.Group("", authmw.RequireRoles(constants.RoleTajneed, constants.RoleUmumi)), db)
	exportRoute.ExportRoutes(private.Group("", authmw.RequireRoles(constants.RoleTajneed)), db)
}
