package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportController "ansarullah_backend/internals/features/exports/controller"
)

// ExportRoutes mounts the register downloads.
func ExportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := exportController.NewExportController(db)

	exports := api.Group("/exports")
	exports.Get("/members/excel", ctrl.ExportMembersExcel)
	exports.Get("/members/pdf", ctrl.ExportMembersPDF)
}
