package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance associates a member with an event; one row per pair.
type AttendanceModel struct {
	AttendanceID       uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceEventID  uuid.UUID `gorm:"column:attendance_event_id;type:uuid;not null;uniqueIndex:uq_attendance_event_member" json:"attendance_event_id" validate:"required"`
	AttendanceMemberID uuid.UUID `gorm:"column:attendance_member_id;type:uuid;not null;uniqueIndex:uq_attendance_event_member" json:"attendance_member_id" validate:"required"`
	AttendanceStatus   string    `gorm:"column:attendance_status;type:varchar(10);not null;default:'present'" json:"attendance_status" validate:"required,oneof=present absent"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "event_attendance"
}
