package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubUser is a department-scoped account. The role names mirror the report
// section keys; what a role may reach is enforced server side.
type SubUserModel struct {
	SubUserID       uuid.UUID `gorm:"column:sub_user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sub_user_id"`
	SubUserName     string    `gorm:"column:sub_user_name;type:varchar(100);not null" json:"sub_user_name" validate:"required,min=2,max=100"`
	SubUserRole     string    `gorm:"column:sub_user_role;type:varchar(30);not null" json:"sub_user_role" validate:"required"`
	SubUserUsername string    `gorm:"column:sub_user_username;type:varchar(50);not null;unique" json:"sub_user_username" validate:"required,min=3,max=50"`
	SubUserPassword string    `gorm:"column:sub_user_password;type:text;not null" json:"-"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SubUserModel) TableName() string {
	return "sub_users"
}
