package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middlewares "ansarullah_backend/internals/middlewares"
	authmw "ansarullah_backend/internals/middlewares/auth"
	"ansarullah_backend/internals/route/details"

	authRoute "ansarullah_backend/internals/features/users/auth/route"
)

// SetupRoutes wires the three route surfaces:
//
//	/api    public (login only, tighter rate limit)
//	/api/u  authenticated, role-gated per feature
//	/api/a  admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	public := api.Group("/auth", middlewares.LoginRateLimiter())

	private := api.Group("/u", authmw.AuthMiddleware(db))
	privateAuth := private.Group("/auth")
	authRoute.AuthRoutes(public, privateAuth, db)

	admin := api.Group("/a", authmw.AuthMiddleware(db), authmw.IsAdmin())

	details.RegisterUserRoutes(private, db)
	details.RegisterAdminRoutes(admin, db)
}
