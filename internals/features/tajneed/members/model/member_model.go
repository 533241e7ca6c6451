package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberID uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`

	// Human-readable registration number, e.g. MA001. Allocation relies on
	// this UNIQUE constraint: the serial allocator retries on conflict.
	MemberNo string `gorm:"column:member_no;type:varchar(20);not null;unique" json:"member_no"`

	MemberFullName      string  `gorm:"column:member_full_name;type:varchar(100);not null" json:"member_full_name" validate:"required,min=2,max=100"`
	MemberAlternateName *string `gorm:"column:member_alternate_name;type:varchar(100)" json:"member_alternate_name,omitempty"`

	MemberBirthDate *time.Time `gorm:"column:member_birth_date;type:date" json:"member_birth_date,omitempty"`
	MemberPhone     string     `gorm:"column:member_phone;type:varchar(20)" json:"member_phone"`

	// Region/majlis are kept both as FKs and as denormalized names; legacy
	// records carry only the name.
	MemberRegionID   *uuid.UUID `gorm:"column:member_region_id;type:uuid" json:"member_region_id,omitempty"`
	MemberRegionName string     `gorm:"column:member_region_name;type:varchar(100)" json:"member_region_name"`
	MemberMajlisID   *uuid.UUID `gorm:"column:member_majlis_id;type:uuid" json:"member_majlis_id,omitempty"`
	MemberMajlisName string     `gorm:"column:member_majlis_name;type:varchar(100)" json:"member_majlis_name"`

	MemberBaiatType string     `gorm:"column:member_baiat_type;type:varchar(30)" json:"member_baiat_type"`
	MemberBaiatDate *time.Time `gorm:"column:member_baiat_date;type:date" json:"member_baiat_date,omitempty"`

	MemberCanReadQuran bool `gorm:"column:member_can_read_quran;not null;default:false" json:"member_can_read_quran"`
	MemberIsMusi       bool `gorm:"column:member_is_musi;not null;default:false" json:"member_is_musi"`

	MemberIsActive bool `gorm:"column:member_is_active;not null;default:true" json:"member_is_active"`

	// Stored category is only a fallback for members with no birth date;
	// consumers derive the category from the birth date at read time.
	MemberCategory string `gorm:"column:member_category;type:varchar(20)" json:"member_category"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (MemberModel) TableName() string {
	return "members"
}
