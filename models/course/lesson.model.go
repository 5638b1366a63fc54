package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson statuses; PREVIEW lessons are visible without a purchase
const (
	LessonStatusPublic  = "PUBLIC"
	LessonStatusPrivate = "PRIVATE"
	LessonStatusPreview = "PREVIEW"
)

// Lesson represents a single video lesson within a section
type Lesson struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	SectionID      string    `json:"section_id" gorm:"type:uuid;index;not null"`
	Name           string    `json:"name" gorm:"not null"`
	Description    string    `json:"description" gorm:"type:text"`
	YoutubeVideoID string    `json:"youtube_video_id"`
	Status         string    `json:"status" gorm:"default:'PRIVATE'"` // PUBLIC, PRIVATE, PREVIEW
	OrderIndex     int       `json:"order_index" gorm:"default:0"`    // Lesson order within section
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

func (l *Lesson) GetID() string       { return l.ID }
func (l *Lesson) GetParentID() string { return l.SectionID }
func (l *Lesson) GetOrderIndex() int  { return l.OrderIndex }
