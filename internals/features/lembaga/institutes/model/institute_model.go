package model

import (
	"time"

	"gorm.io/gorm"
)

// InstituteModel merepresentasikan tabel institutes
type InstituteModel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:text;not null" json:"name"`
	Address      *string        `gorm:"type:text" json:"address,omitempty"`
	ContactEmail *string        `gorm:"size:255" json:"contact_email,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (InstituteModel) TableName() string { return "institutes" }
