package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/events/controller"
)

func EventRoutes(r fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	attendanceCtrl := controller.NewAttendanceController(db)

	events := r.Group("/events")
	events.Get("/", eventCtrl.GetEvents)
	events.Post("/", eventCtrl.CreateEvent)
	events.Put("/:id", eventCtrl.UpdateEvent)
	events.Delete("/:id", eventCtrl.DeleteEvent)

	events.Get("/:id/attendance", attendanceCtrl.GetAttendance)
	events.Post("/:id/attendance", attendanceCtrl.MarkAttendance)
	events.Delete("/:id/attendance/:memberId", attendanceCtrl.RemoveAttendance)
}
