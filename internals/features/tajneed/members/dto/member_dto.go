package dto

import (
	"time"

	"github.com/google/uuid"

	"ansarullah_backend/internals/features/tajneed/members/model"
	"ansarullah_backend/internals/features/tajneed/members/service"
)

type CreateMemberRequest struct {
	FullName      string     `json:"member_full_name" validate:"required,min=2,max=100"`
	AlternateName *string    `json:"member_alternate_name,omitempty"`
	BirthDate     *time.Time `json:"member_birth_date,omitempty"`
	Phone         string     `json:"member_phone" validate:"max=20"`
	RegionID      *uuid.UUID `json:"member_region_id,omitempty"`
	RegionName    string     `json:"member_region_name"`
	MajlisID      *uuid.UUID `json:"member_majlis_id,omitempty"`
	MajlisName    string     `json:"member_majlis_name"`
	BaiatType     string     `json:"member_baiat_type" validate:"max=30"`
	BaiatDate     *time.Time `json:"member_baiat_date,omitempty"`
	CanReadQuran  bool       `json:"member_can_read_quran"`
	IsMusi        bool       `json:"member_is_musi"`
	Category      string     `json:"member_category"` // fallback when no birth date
}

func (r CreateMemberRequest) ToModel() model.MemberModel {
	return model.MemberModel{
		MemberFullName:      r.FullName,
		MemberAlternateName: r.AlternateName,
		MemberBirthDate:     r.BirthDate,
		MemberPhone:         r.Phone,
		MemberRegionID:      r.RegionID,
		MemberRegionName:    r.RegionName,
		MemberMajlisID:      r.MajlisID,
		MemberMajlisName:    r.MajlisName,
		MemberBaiatType:     r.BaiatType,
		MemberBaiatDate:     r.BaiatDate,
		MemberCanReadQuran:  r.CanReadQuran,
		MemberIsMusi:        r.IsMusi,
		MemberIsActive:      true,
		MemberCategory:      r.Category,
	}
}

type UpdateMemberRequest struct {
	FullName      *string    `json:"member_full_name,omitempty" validate:"omitempty,min=2,max=100"`
	AlternateName *string    `json:"member_alternate_name,omitempty"`
	BirthDate     *time.Time `json:"member_birth_date,omitempty"`
	Phone         *string    `json:"member_phone,omitempty" validate:"omitempty,max=20"`
	RegionID      *uuid.UUID `json:"member_region_id,omitempty"`
	RegionName    *string    `json:"member_region_name,omitempty"`
	MajlisID      *uuid.UUID `json:"member_majlis_id,omitempty"`
	MajlisName    *string    `json:"member_majlis_name,omitempty"`
	BaiatType     *string    `json:"member_baiat_type,omitempty" validate:"omitempty,max=30"`
	BaiatDate     *time.Time `json:"member_baiat_date,omitempty"`
	CanReadQuran  *bool      `json:"member_can_read_quran,omitempty"`
	IsMusi        *bool      `json:"member_is_musi,omitempty"`
	IsActive      *bool      `json:"member_is_active,omitempty"`
	Category      *string    `json:"member_category,omitempty"`
}

// Apply copies the set fields onto the model.
func (r UpdateMemberRequest) Apply(m *model.MemberModel) {
	if r.FullName != nil {
		m.MemberFullName = *r.FullName
	}
	if r.AlternateName != nil {
		m.MemberAlternateName = r.AlternateName
	}
	if r.BirthDate != nil {
		m.MemberBirthDate = r.BirthDate
	}
	if r.Phone != nil {
		m.MemberPhone = *r.Phone
	}
	if r.RegionID != nil {
		m.MemberRegionID = r.RegionID
	}
	if r.RegionName != nil {
		m.MemberRegionName = *r.RegionName
	}
	if r.MajlisID != nil {
		m.MemberMajlisID = r.MajlisID
	}
	if r.MajlisName != nil {
		m.MemberMajlisName = *r.MajlisName
	}
	if r.BaiatType != nil {
		m.MemberBaiatType = *r.BaiatType
	}
	if r.BaiatDate != nil {
		m.MemberBaiatDate = r.BaiatDate
	}
	if r.CanReadQuran != nil {
		m.MemberCanReadQuran = *r.CanReadQuran
	}
	if r.IsMusi != nil {
		m.MemberIsMusi = *r.IsMusi
	}
	if r.IsActive != nil {
		m.MemberIsActive = *r.IsActive
	}
	if r.Category != nil {
		m.MemberCategory = *r.Category
	}
}

// MemberResponse carries the member row plus attributes derived at read
// time. Age and category are never served from stored state when a birth
// date is on record.
type MemberResponse struct {
	model.MemberModel
	MemberAge      *int   `json:"member_age,omitempty"`
	MemberCategory string `json:"member_category"`
}

func NewMemberResponse(m model.MemberModel, asOf time.Time) MemberResponse {
	resp := MemberResponse{
		MemberModel:    m,
		MemberCategory: service.DeriveCategory(m.MemberBirthDate, m.MemberCategory, asOf),
	}
	if m.MemberBirthDate != nil {
		age := service.Age(*m.MemberBirthDate, asOf)
		resp.MemberAge = &age
	}
	return resp
}

func NewMemberResponses(members []model.MemberModel, asOf time.Time) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, NewMemberResponse(m, asOf))
	}
	return out
}
