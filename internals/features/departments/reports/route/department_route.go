package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/departments/reports/controller"
	authmw "ansarullah_backend/internals/middlewares/auth"
)

// DepartmentRoutes mounts the departmental report endpoints. Section access
// is enforced server side per sub-user role.
func DepartmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentReportController(db)

	// The gate must sit on the routes themselves: group-level Use handlers
	// run before the route match, so :section is not readable there.
	reports := r.Group("/department-reports")
	reports.Get("/", authmw.RequireSectionAccess(), ctrl.ListReports)
	reports.Get("/:section", authmw.RequireSectionAccess(), ctrl.GetReport)
	reports.Put("/:section", authmw.RequireSectionAccess(), ctrl.UpsertReport)
	reports.Delete("/:section", authmw.RequireSectionAccess(), ctrl.DeleteReport)
}
