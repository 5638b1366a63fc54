package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product statuses control storefront visibility
const (
	ProductStatusPublic  = "PUBLIC"
	ProductStatusPrivate = "PRIVATE"
)

// Product is a purchasable bundle of one or more courses
type Product struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Description    string    `json:"description" gorm:"type:text"`
	ImagePath      string    `json:"image_path" gorm:"default:''"`
	PriceInDollars int       `json:"price_in_dollars" gorm:"default:0"`
	Status         string    `json:"status" gorm:"default:'PRIVATE'"` // PUBLIC, PRIVATE
	IsDeleted      bool      `gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductCourse links a product to the courses it grants access to
type ProductCourse struct {
	ProductID string `json:"product_id" gorm:"type:uuid;primaryKey"`
	CourseID  string `json:"course_id" gorm:"type:uuid;primaryKey;index"`
}
