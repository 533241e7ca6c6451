package model

import (
	"time"

	"github.com/google/uuid"
)

// Normalized departmental report row. The typed columns are the union of
// every section's field set and are all nullable: deployments migrate them
// in gradually, and the write path falls back to the base columns when one
// is still missing. The details side table remains authoritative.
//
// The natural key index must be created with UNIQUE NULLS NOT DISTINCT so
// the region/majlis-less tabligh_digital rows still collide per period.
type DepartmentReport struct {
	DepartmentReportID uuid.UUID `gorm:"column:department_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"department_report_id"`

	// Natural key: region + majlis + month + year + section. tabligh_digital
	// reports are national and carry NULL region/majlis.
	DepartmentReportRegionID *uuid.UUID `gorm:"column:department_report_region_id;type:uuid;uniqueIndex:uq_department_reports_natural" json:"department_report_region_id,omitempty"`
	DepartmentReportMajlisID *uuid.UUID `gorm:"column:department_report_majlis_id;type:uuid;uniqueIndex:uq_department_reports_natural" json:"department_report_majlis_id,omitempty"`
	DepartmentReportMonth    int        `gorm:"column:department_report_month;not null;uniqueIndex:uq_department_reports_natural" json:"department_report_month"`
	DepartmentReportYear     int        `gorm:"column:department_report_year;not null;uniqueIndex:uq_department_reports_natural" json:"department_report_year"`
	DepartmentReportSection  string     `gorm:"column:department_report_section;type:varchar(30);not null;uniqueIndex:uq_department_reports_natural" json:"department_report_section"`

	MeetingsHeld          *int    `gorm:"column:meetings_held" json:"meetings_held,omitempty"`
	TotalAttendance       *int    `gorm:"column:total_attendance" json:"total_attendance,omitempty"`
	HomeVisits            *int    `gorm:"column:home_visits" json:"home_visits,omitempty"`
	LiteratureDistributed *int    `gorm:"column:literature_distributed" json:"literature_distributed,omitempty"`
	NewConverts           *int    `gorm:"column:new_converts" json:"new_converts,omitempty"`
	ClassesHeld           *int    `gorm:"column:classes_held" json:"classes_held,omitempty"`
	BooksCompleted        *int    `gorm:"column:books_completed" json:"books_completed,omitempty"`
	ProjectsDone          *int    `gorm:"column:projects_done" json:"projects_done,omitempty"`
	BloodDonations        *int    `gorm:"column:blood_donations" json:"blood_donations,omitempty"`
	HeldGeneralMeeting    *bool   `gorm:"column:held_general_meeting" json:"held_general_meeting,omitempty"`
	ReportSentToCenter    *bool   `gorm:"column:report_sent_to_center" json:"report_sent_to_center,omitempty"`
	Remarks               *string `gorm:"column:remarks;type:text" json:"remarks,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DepartmentReport) TableName() string {
	return "department_reports"
}
