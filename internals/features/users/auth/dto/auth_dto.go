package dto

import (
	"github.com/google/uuid"

	userModel "echomind_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName    string  `json:"user_name" validate:"required,min=3,max=50"`
	FullName    *string `json:"full_name" validate:"omitempty,max=120"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	InstituteID *uint   `json:"institute_id" validate:"omitempty,gt=0"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,nefield=OldPassword"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	FullName    *string   `json:"full_name,omitempty"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	InstituteID *uint     `json:"institute_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		UserName:    u.UserName,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        u.Role,
		InstituteID: u.InstituteID,
	}
}
