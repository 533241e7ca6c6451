package dto

import (
	"time"

	"github.com/google/uuid"

	subUserModel "ansarullah_backend/internals/features/users/subuser/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthUserResponse struct {
	SubUserID       uuid.UUID `json:"sub_user_id"`
	SubUserName     string    `json:"sub_user_name"`
	SubUserUsername string    `json:"sub_user_username"`
	SubUserRole     string    `json:"sub_user_role"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresAt   time.Time        `json:"expires_at"`
	User        AuthUserResponse `json:"user"`
}

func NewAuthUserResponse(u *subUserModel.SubUserModel) AuthUserResponse {
	return AuthUserResponse{
		SubUserID:       u.SubUserID,
		SubUserName:     u.SubUserName,
		SubUserUsername: u.SubUserUsername,
		SubUserRole:     u.SubUserRole,
	}
}
