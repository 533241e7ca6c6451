package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subUserController "ansarullah_backend/internals/features/users/subuser/controller"
)

// SubUserRoutes mounts the account CRUD. Mounted on the admin group only.
func SubUserRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := subUserController.NewSubUserController(db)

	users := admin.Group("/sub-users")
	users.Get("/", ctrl.GetSubUsers)
	users.Post("/", ctrl.CreateSubUser)
	users.Put("/:id", ctrl.UpdateSubUser)
	users.Delete("/:id", ctrl.DeleteSubUser)
}
