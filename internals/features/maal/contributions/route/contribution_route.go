package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/maal/contributions/controller"
)

func ContributionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContributionController(db)

	contributions := r.Group("/contributions")
	contributions.Get("/", ctrl.GetContributions)
	contributions.Post("/", ctrl.CreateContribution)
	contributions.Put("/:id", ctrl.UpdateContribution)
	contributions.Delete("/:id", ctrl.DeleteContribution)
}
