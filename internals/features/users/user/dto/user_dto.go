// internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"echomind_backend/internals/features/users/user/model"
)

type RegisterProfessorRequest struct {
	UserName    string  `json:"user_name" validate:"required,min=3,max=50"`
	FullName    *string `json:"full_name" validate:"omitempty,max=120"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	InstituteID *uint   `json:"institute_id" validate:"omitempty,gt=0"`
}

func (r *RegisterProfessorRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
}

type UserItem struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	FullName       *string   `json:"full_name,omitempty"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	InstituteID    *uint     `json:"institute_id,omitempty"`
	InstituteName  *string   `json:"institute_name,omitempty"`
	IsActive       bool      `json:"is_active"`
	ClassroomCount int64     `json:"classroom_count"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromModel(u model.UserModel) UserItem {
	return UserItem{
		ID:          u.ID,
		UserName:    u.UserName,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        u.Role,
		InstituteID: u.InstituteID,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}
