package model

import (
	"time"

	"github.com/google/uuid"
)

// A majlis is the local unit; always nested under exactly one region.
type MajlisModel struct {
	MajlisID       uuid.UUID `gorm:"column:majlis_id;type:uuid;default:gen_random_uuid();primaryKey" json:"majlis_id"`
	MajlisName     string    `gorm:"column:majlis_name;type:varchar(100);not null" json:"majlis_name" validate:"required,min=2,max=100"`
	MajlisRegionID uuid.UUID `gorm:"column:majlis_region_id;type:uuid;not null;constraint:OnDelete:RESTRICT" json:"majlis_region_id" validate:"required"`

	Region *RegionModel `gorm:"foreignKey:MajlisRegionID;references:RegionID" json:"region,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MajlisModel) TableName() string {
	return "majalis"
}
