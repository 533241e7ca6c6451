package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/tajneed/hierarchy/controller"
)

// HierarchyRoutes mounts region/majlis CRUD on the given router.
func HierarchyRoutes(r fiber.Router, db *gorm.DB) {
	regionCtrl := controller.NewRegionController(db)
	majlisCtrl := controller.NewMajlisController(db)

	regions := r.Group("/regions")
	regions.Get("/", regionCtrl.GetRegions)
	regions.Post("/", regionCtrl.CreateRegion)
	regions.Put("/:id", regionCtrl.UpdateRegion)
	regions.Delete("/:id", regionCtrl.DeleteRegion)

	majalis := r.Group("/majalis")
	majalis.Get("/", majlisCtrl.GetMajalis)
	majalis.Post("/", majlisCtrl.CreateMajlis)
	majalis.Put("/:id", majlisCtrl.UpdateMajlis)
	majalis.Delete("/:id", majlisCtrl.DeleteMajlis)
}
