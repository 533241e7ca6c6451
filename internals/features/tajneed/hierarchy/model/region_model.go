package model

import (
	"time"

	"github.com/google/uuid"
)

type RegionModel struct {
	RegionID   uuid.UUID `gorm:"column:region_id;type:uuid;default:gen_random_uuid();primaryKey" json:"region_id"`
	RegionName string    `gorm:"column:region_name;type:varchar(100);not null;unique" json:"region_name" validate:"required,min=2,max=100"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RegionModel) TableName() string {
	return "regions"
}
