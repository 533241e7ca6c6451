package dto

import (
	"golang.org/x/crypto/bcrypt"

	subUserModel "ansarullah_backend/internals/features/users/subuser/model"
)

type CreateSubUserRequest struct {
	SubUserName     string `json:"sub_user_name" validate:"required,min=2,max=100"`
	SubUserRole     string `json:"sub_user_role" validate:"required"`
	SubUserUsername string `json:"sub_user_username" validate:"required,min=3,max=50"`
	SubUserPassword string `json:"sub_user_password" validate:"required,min=6"`
}

func (r CreateSubUserRequest) ToModel() (*subUserModel.SubUserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(r.SubUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &subUserModel.SubUserModel{
		SubUserName:     r.SubUserName,
		SubUserRole:     r.SubUserRole,
		SubUserUsername: r.SubUserUsername,
		SubUserPassword: string(hash),
	}, nil
}

type UpdateSubUserRequest struct {
	SubUserName     *string `json:"sub_user_name" validate:"omitempty,min=2,max=100"`
	SubUserRole     *string `json:"sub_user_role"`
	SubUserUsername *string `json:"sub_user_username" validate:"omitempty,min=3,max=50"`
	SubUserPassword *string `json:"sub_user_password" validate:"omitempty,min=6"`
}

func (r UpdateSubUserRequest) Apply(m *subUserModel.SubUserModel) error {
	if r.SubUserName != nil {
		m.SubUserName = *r.SubUserName
	}
	if r.SubUserRole != nil {
		m.SubUserRole = *r.SubUserRole
	}
	if r.SubUserUsername != nil {
		m.SubUserUsername = *r.SubUserUsername
	}
	if r.SubUserPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*r.SubUserPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		m.SubUserPassword = string(hash)
	}
	return nil
}
