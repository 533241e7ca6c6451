package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/tajneed/members/controller"
)

// MemberRoutes mounts member registration/list/update/delete.
func MemberRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	members := r.Group("/members")
	members.Get("/", ctrl.GetMembers)
	members.Get("/next-number", ctrl.NextMemberNo)
	members.Post("/", ctrl.RegisterMember)
	members.Get("/:id", ctrl.GetMember)
	members.Put("/:id", ctrl.UpdateMember)
	members.Delete("/:id", ctrl.DeleteMember)
}
