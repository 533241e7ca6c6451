package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/tarbiyyat/reports/controller"
)

func TarbiyyatRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTarbiyyatReportController(db)

	reports := r.Group("/tarbiyyat-reports")
	reports.Get("/", ctrl.GetReports)
	reports.Post("/", ctrl.UpsertReport)
	reports.Delete("/:id", ctrl.DeleteReport)
}
