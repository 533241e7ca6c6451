package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "ansarullah_backend/internals/features/users/auth/controller"
)

// AuthRoutes mounts login on the public group and logout/me on the
// authenticated group.
func AuthRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	public.Post("/login", ctrl.Login)

	private.Post("/logout", ctrl.Logout)
	private.Get("/me", ctrl.Me)
}
