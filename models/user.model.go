package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"default:''"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Role         string    `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	Password     string    `json:"-" gorm:"not null"`
	ProfileImage string    `json:"profile_image" gorm:"default:''"`
	LastLogin    time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted    bool      `gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
