package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Purchase records a customer's access grant to a product's courses.
// ProductDetails is a snapshot taken at purchase time so receipts stay
// correct even if the product is later edited or removed.
type Purchase struct {
	ID               string         `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           string         `json:"user_id" gorm:"type:uuid;index;not null"`
	ProductID        string         `json:"product_id" gorm:"type:uuid;index;not null"`
	PricePaidInCents int            `json:"price_paid_in_cents" gorm:"default:0"`
	ProductDetails   datatypes.JSON `json:"product_details" gorm:"type:jsonb"`
	RefundedAt       *time.Time     `json:"refunded_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
