package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID        uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventName      string    `gorm:"column:event_name;type:varchar(100);not null" json:"event_name" validate:"required,min=2,max=100"`
	EventLocation  string    `gorm:"column:event_location;type:varchar(100)" json:"event_location" validate:"max=100"`
	EventStartDate time.Time `gorm:"column:event_start_date;type:date;not null" json:"event_start_date" validate:"required"`
	EventDayCount  int       `gorm:"column:event_day_count;not null;default:1" json:"event_day_count" validate:"min=1,max=60"`
	EventIsActive  bool      `gorm:"column:event_is_active;not null;default:true" json:"event_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
