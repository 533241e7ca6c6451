package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Generic JSONB mirror of a departmental report, keyed by the same natural
// key as the normalized table. Always written with the full submitted field
// set, so it stays authoritative when normalized columns are missing.
// Booleans are stored as "Yes"/"No" strings in the blob.
type DepartmentReportDetail struct {
	DepartmentReportDetailID uuid.UUID `gorm:"column:department_report_detail_id;type:uuid;default:gen_random_uuid();primaryKey" json:"department_report_detail_id"`

	DetailRegionID *uuid.UUID `gorm:"column:detail_region_id;type:uuid;uniqueIndex:uq_department_report_details_natural" json:"detail_region_id,omitempty"`
	DetailMajlisID *uuid.UUID `gorm:"column:detail_majlis_id;type:uuid;uniqueIndex:uq_department_report_details_natural" json:"detail_majlis_id,omitempty"`
	DetailMonth    int        `gorm:"column:detail_month;not null;uniqueIndex:uq_department_report_details_natural" json:"detail_month"`
	DetailYear     int        `gorm:"column:detail_year;not null;uniqueIndex:uq_department_report_details_natural" json:"detail_year"`
	DetailSection  string     `gorm:"column:detail_section;type:varchar(30);not null;uniqueIndex:uq_department_report_details_natural" json:"detail_section"`

	DetailData datatypes.JSON `gorm:"column:detail_data;type:jsonb;not null" json:"detail_data"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DepartmentReportDetail) TableName() string {
	return "department_report_details"
}
