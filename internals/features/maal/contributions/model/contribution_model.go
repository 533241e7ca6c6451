package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Every amount is independently optional; absent amounts count as zero in
// the total, which is derived at read time.
type ContributionModel struct {
	ContributionID       uuid.UUID `gorm:"column:contribution_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contribution_id"`
	ContributionMemberID uuid.UUID `gorm:"column:contribution_member_id;type:uuid;not null;index" json:"contribution_member_id" validate:"required"`

	ContributionMonth int `gorm:"column:contribution_month;not null;check:contribution_month BETWEEN 1 AND 12" json:"contribution_month" validate:"required,min=1,max=12"`
	ContributionYear  int `gorm:"column:contribution_year;not null" json:"contribution_year" validate:"required,min=2000,max=2100"`

	ChandaMajlis  *float64 `gorm:"column:chanda_majlis;type:numeric(12,2)" json:"chanda_majlis,omitempty" validate:"omitempty,min=0"`
	ChandaIjtema  *float64 `gorm:"column:chanda_ijtema;type:numeric(12,2)" json:"chanda_ijtema,omitempty" validate:"omitempty,min=0"`
	TehrikEJadid  *float64 `gorm:"column:tehrik_e_jadid;type:numeric(12,2)" json:"tehrik_e_jadid,omitempty" validate:"omitempty,min=0"`
	WaqfEJadid    *float64 `gorm:"column:waqf_e_jadid;type:numeric(12,2)" json:"waqf_e_jadid,omitempty" validate:"omitempty,min=0"`
	Sadqa         *float64 `gorm:"column:sadqa;type:numeric(12,2)" json:"sadqa,omitempty" validate:"omitempty,min=0"`
	Zakat         *float64 `gorm:"column:zakat;type:numeric(12,2)" json:"zakat,omitempty" validate:"omitempty,min=0"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ContributionModel) TableName() string {
	return "contributions"
}

// Total sums the present amount fields; absent fields are zero.
func (m ContributionModel) Total() float64 {
	total := 0.0
	for _, v := range []*float64{m.ChandaMajlis, m.ChandaIjtema, m.TehrikEJadid, m.WaqfEJadid, m.Sadqa, m.Zakat} {
		if v != nil {
			total += *v
		}
	}
	return total
}
