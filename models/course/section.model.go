package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section statuses control what course viewers can see
const (
	SectionStatusPublic  = "PUBLIC"
	SectionStatusPrivate = "PRIVATE"
)

// Section represents an ordered group of lessons within a course
type Section struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID   string    `json:"course_id" gorm:"type:uuid;index;not null"`
	Name       string    `json:"name" gorm:"not null"`
	Status     string    `json:"status" gorm:"default:'PRIVATE'"` // PUBLIC, PRIVATE
	OrderIndex int       `json:"order_index" gorm:"default:0"`    // Section order in course
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *Section) GetID() string       { return s.ID }
func (s *Section) GetParentID() string { return s.CourseID }
func (s *Section) GetOrderIndex() int  { return s.OrderIndex }
