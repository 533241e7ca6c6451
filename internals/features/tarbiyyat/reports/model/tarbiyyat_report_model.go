package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Monthly spiritual report for one member. One logical row per
// (member, month, year); writes upsert on that key.
type TarbiyyatReportModel struct {
	TarbiyyatReportID       uuid.UUID `gorm:"column:tarbiyyat_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tarbiyyat_report_id"`
	TarbiyyatReportMemberID uuid.UUID `gorm:"column:tarbiyyat_report_member_id;type:uuid;not null;uniqueIndex:uq_tarbiyyat_member_period" json:"tarbiyyat_report_member_id" validate:"required"`

	TarbiyyatReportMonth int `gorm:"column:tarbiyyat_report_month;not null;uniqueIndex:uq_tarbiyyat_member_period" json:"tarbiyyat_report_month" validate:"required,min=1,max=12"`
	TarbiyyatReportYear  int `gorm:"column:tarbiyyat_report_year;not null;uniqueIndex:uq_tarbiyyat_member_period" json:"tarbiyyat_report_year" validate:"required,min=2000,max=2100"`

	DailyPrayers      *int `gorm:"column:daily_prayers" json:"daily_prayers,omitempty" validate:"omitempty,min=0,max=5"`
	QuranDays         *int `gorm:"column:quran_days" json:"quran_days,omitempty" validate:"omitempty,min=0,max=31"`
	FridayPrayers     *int `gorm:"column:friday_prayers" json:"friday_prayers,omitempty" validate:"omitempty,min=0,max=5"`
	TahajjudDays      *int `gorm:"column:tahajjud_days" json:"tahajjud_days,omitempty" validate:"omitempty,min=0,max=31"`
	DarsDays          *int `gorm:"column:dars_days" json:"dars_days,omitempty" validate:"omitempty,min=0,max=31"`
	BookReadingDays   *int `gorm:"column:book_reading_days" json:"book_reading_days,omitempty" validate:"omitempty,min=0,max=31"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TarbiyyatReportModel) TableName() string {
	return "tarbiyyat_reports"
}
