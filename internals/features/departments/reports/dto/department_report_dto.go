package dto

import (
	"github.com/google/uuid"

	"ansarullah_backend/internals/features/departments/reports/service"
)

type UpsertReportRequest struct {
	RegionID *uuid.UUID             `json:"region_id,omitempty"`
	MajlisID *uuid.UUID             `json:"majlis_id,omitempty"`
	Month    int                    `json:"month" validate:"required,min=1,max=12"`
	Year     int                    `json:"year" validate:"required,min=2000,max=2100"`
	Details  map[string]interface{} `json:"details" validate:"required"`
}

func (r UpsertReportRequest) Key(section string) service.ReportKey {
	return service.ReportKey{
		RegionID: r.RegionID,
		MajlisID: r.MajlisID,
		Month:    r.Month,
		Year:     r.Year,
		Section:  section,
	}
}

// ReportResponse is one logical report: its natural key plus the field map
// in the blob convention.
type ReportResponse struct {
	RegionID *uuid.UUID             `json:"region_id,omitempty"`
	MajlisID *uuid.UUID             `json:"majlis_id,omitempty"`
	Month    int                    `json:"month"`
	Year     int                    `json:"year"`
	Section  string                 `json:"section"`
	Details  map[string]interface{} `json:"details"`
}

func NewReportResponse(key service.ReportKey, details map[string]interface{}) ReportResponse {
	return ReportResponse{
		RegionID: key.RegionID,
		MajlisID: key.MajlisID,
		Month:    key.Month,
		Year:     key.Year,
		Section:  key.Section,
		Details:  details,
	}
}
