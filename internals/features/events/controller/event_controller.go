package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/events/model"
	helper "ansarullah_backend/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GET /events?active=true
func (ec *EventController) GetEvents(c *fiber.Ctx) error {
	q := ec.DB.Model(&model.EventModel{}).Order("event_start_date desc")
	switch c.Query("active") {
	case "true":
		q = q.Where("event_is_active = true")
	case "false":
		q = q.Where("event_is_active = false")
	}

	var events []model.EventModel
	if err := q.Find(&events).Error; err != nil {
		log.Println("[ERROR] Failed to fetch events:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}
	return helper.Success(c, "Events fetched successfully", fiber.Map{
		"total":  len(events),
		"events": events,
	})
}

// POST /events
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	var event model.EventModel
	if err := c.BodyParser(&event); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if event.EventDayCount == 0 {
		event.EventDayCount = 1
	}
	if err := validate.Struct(&event); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ec.DB.Create(&event).Error; err != nil {
		log.Println("[ERROR] Failed to create event:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created successfully", event)
}

// PUT /events/:id
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var event model.EventModel
	if err := ec.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var input model.EventModel
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.EventID = event.EventID
	input.CreatedAt = event.CreatedAt
	if input.EventDayCount == 0 {
		input.EventDayCount = event.EventDayCount
	}
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ec.DB.Save(&input).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Event updated successfully", input)
}

// DELETE /events/:id: attendance rows go with it
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	res := ec.DB.Delete(&model.EventModel{}, "event_id = ?", eventID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	if err := ec.DB.Delete(&model.AttendanceModel{}, "attendance_event_id = ?", eventID).Error; err != nil {
		log.Printf("[ERROR] attendance cleanup for event %s failed: %v", eventID, err)
	}
	return helper.Success(c, "Event deleted successfully", nil)
}
