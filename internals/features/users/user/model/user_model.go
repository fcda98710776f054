package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users (admin, professor, student)
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName    string    `gorm:"size:50;not null" json:"user_name"`
	FullName    *string   `gorm:"size:120" json:"full_name,omitempty"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	InstituteID *uint     `gorm:"index" json:"institute_id,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
