package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ansarullah_backend/internals/features/events/model"
	memberModel "ansarullah_backend/internals/features/tajneed/members/model"
	helper "ansarullah_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

type attendanceRow struct {
	model.AttendanceModel
	MemberNo       string `json:"member_no"`
	MemberFullName string `json:"member_full_name"`
}

// GET /events/:id/attendance: joined with the member register
func (ac *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var rows []attendanceRow
	if err := ac.DB.Model(&model.AttendanceModel{}).
		Select("event_attendance.*, members.member_no, members.member_full_name").
		Joins("JOIN members ON members.member_id = event_attendance.attendance_member_id").
		Where("attendance_event_id = ?", eventID).
		Order("members.member_no asc").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to fetch attendance:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	return helper.Success(c, "Attendance fetched successfully", fiber.Map{
		"total":      len(rows),
		"attendance": rows,
	})
}

// POST /events/:id/attendance: mark one member; re-marking updates status
func (ac *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var row model.AttendanceModel
	if err := c.BodyParser(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	row.AttendanceEventID = eventID
	if row.AttendanceStatus == "" {
		row.AttendanceStatus = model.AttendancePresent
	}
	if err := validate.Struct(&row); err != nil {
		return helper.ValidationError(c, err)
	}

	var eventCount int64
	if err := ac.DB.Model(&model.EventModel{}).Where("event_id = ?", eventID).Count(&eventCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if eventCount == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	var memberCount int64
	if err := ac.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ?", row.AttendanceMemberID).Count(&memberCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if memberCount == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Member does not exist")
	}

	if err := ac.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_event_id"},
			{Name: "attendance_member_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "updated_at"}),
	}).Create(&row).Error; err != nil {
		log.Println("[ERROR] Failed to mark attendance:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance marked successfully", row)
}

// DELETE /events/:id/attendance/:memberId
func (ac *AttendanceController) RemoveAttendance(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid member ID")
	}

	res := ac.DB.Delete(&model.AttendanceModel{},
		"attendance_event_id = ? AND attendance_member_id = ?", eventID, memberID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
	}
	return helper.Success(c, "Attendance removed successfully", nil)
}
