package repository

import (
	"log"

	"coursehub/cache"
	courseModels "coursehub/models/course"
	"coursehub/ordering"

	"gorm.io/gorm"
)

// LessonInput carries the fields accepted when creating a lesson
type LessonInput struct {
	SectionID      string
	Name           string
	Description    string
	YoutubeVideoID string
	Status         string
}

// LessonUpdate carries the optional fields of a lesson update. A non-nil
// SectionID moves the lesson to another section; when OrderIndex is nil
// the move appends to the destination scope.
type LessonUpdate struct {
	Name           *string
	Description    *string
	YoutubeVideoID *string
	Status         *string
	SectionID      *string
	OrderIndex     *int
}

// CreateLesson appends a new lesson to the end of its section. The section
// and its owning course are resolved inside the insert transaction.
func CreateLesson(db *gorm.DB, input LessonInput) (*courseModels.Lesson, error) {
	var lesson *courseModels.Lesson
	var courseID string

	err := db.Transaction(func(tx *gorm.DB) error {
		var section courseModels.Section
		if err := tx.Where("id = ?", input.SectionID).First(&section).Error; err != nil {
			return err
		}
		courseID = section.CourseID

		next, err := ordering.NextIndex(tx, &courseModels.Lesson{}, "section_id", input.SectionID)
		if err != nil {
			return err
		}

		lesson = &courseModels.Lesson{
			SectionID:      input.SectionID,
			Name:           input.Name,
			Description:    input.Description,
			YoutubeVideoID: input.YoutubeVideoID,
			Status:         input.Status,
			OrderIndex:     next,
		}
		return tx.Create(lesson).Error
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateLessonTags(lesson.ID, lesson.SectionID, courseID)
	return lesson, nil
}

// UpdateLesson rewrites lesson fields and handles cross-section moves.
// Both the old and the new section scope are invalidated after commit.
func UpdateLesson(db *gorm.DB, lessonID string, input LessonUpdate) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	var oldSectionID, oldCourseID, courseID string

	err := db.Transaction(func(tx *gorm.DB) error {
		var current courseModels.Lesson
		if err := tx.Where("id = ?", lessonID).First(&current).Error; err != nil {
			return err
		}
		oldSectionID = current.SectionID

		// A cross-section move runs through the order mutator so the lesson
		// lands at the requested position, or is appended when none is given
		if input.SectionID != nil && *input.SectionID != current.SectionID {
			var dest courseModels.Section
			if err := tx.Where("id = ?", *input.SectionID).First(&dest).Error; err != nil {
				return err
			}

			if _, err := ordering.MoveTo(tx, &courseModels.Lesson{}, "section_id", lessonID, *input.SectionID, input.OrderIndex); err != nil {
				return err
			}
		} else if input.OrderIndex != nil {
			if err := tx.Model(&courseModels.Lesson{}).Where("id = ?", lessonID).Update("order_index", *input.OrderIndex).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.YoutubeVideoID != nil {
			updates["youtube_video_id"] = *input.YoutubeVideoID
		}
		if input.Status != nil {
			updates["status"] = *input.Status
		}
		if len(updates) > 0 {
			if err := tx.Model(&courseModels.Lesson{}).Where("id = ?", lessonID).Updates(updates).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
			return err
		}

		// Resolve the owning course for cache invalidation; a missing
		// section means orphaned data and aborts the whole update
		var section courseModels.Section
		if err := tx.Where("id = ?", lesson.SectionID).First(&section).Error; err != nil {
			log.Printf("Data integrity error: lesson %s references missing section %s", lesson.ID, lesson.SectionID)
			return ordering.ErrOrphaned
		}
		courseID = section.CourseID

		if oldSectionID != lesson.SectionID {
			var oldSection courseModels.Section
			if err := tx.Where("id = ?", oldSectionID).First(&oldSection).Error; err == nil {
				oldCourseID = oldSection.CourseID
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateLessonTags(lesson.ID, lesson.SectionID, courseID)
	if oldSectionID != lesson.SectionID {
		cache.Invalidate(cache.ParentTag("lessons", oldSectionID))
		if oldCourseID != "" && oldCourseID != courseID {
			cache.Invalidate(cache.IdTag("courses", oldCourseID))
		}
	}
	return &lesson, nil
}

// DeleteLesson hard-deletes a lesson, resolving the owning section and
// course from the pre-delete snapshot inside the delete transaction
func DeleteLesson(db *gorm.DB, lessonID string) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	var courseID string

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
			return err
		}

		if err := tx.Delete(&courseModels.Lesson{}, "id = ?", lessonID).Error; err != nil {
			return err
		}

		var section courseModels.Section
		if err := tx.Where("id = ?", lesson.SectionID).First(&section).Error; err != nil {
			log.Printf("Data integrity error: lesson %s references missing section %s", lesson.ID, lesson.SectionID)
			return ordering.ErrOrphaned
		}
		courseID = section.CourseID
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateLessonTags(lesson.ID, lesson.SectionID, courseID)
	return &lesson, nil
}

// ReorderLessons assigns order 0..n-1 following the supplied id sequence.
// The owning section and course are resolved through the first updated
// lesson; the batch rolls back when either is missing. An empty sequence
// is a no-op.
func ReorderLessons(db *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	var updated []string
	var sectionID, courseID string

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = ordering.ReindexAll(tx, &courseModels.Lesson{}, ids)
		if err != nil {
			return err
		}
		if len(updated) == 0 {
			return ordering.ErrOrphaned
		}

		// All lessons in one reorder call are siblings, so the first
		// updated row is a valid representative of the scope
		var first courseModels.Lesson
		if err := tx.Where("id = ?", updated[0]).First(&first).Error; err != nil {
			return ordering.ErrOrphaned
		}
		sectionID = first.SectionID

		var section courseModels.Section
		if err := tx.Where("id = ?", sectionID).First(&section).Error; err != nil {
			log.Printf("Data integrity error: lesson %s references missing section %s", first.ID, sectionID)
			return ordering.ErrOrphaned
		}
		courseID = section.CourseID
		return nil
	})
	if err != nil {
		return err
	}

	for _, id := range updated {
		cache.Invalidate(cache.IdTag("lessons", id))
	}
	cache.Invalidate(
		cache.GlobalTag("lessons"),
		cache.ParentTag("lessons", sectionID),
		cache.IdTag("courses", courseID),
	)
	return nil
}

// ListSectionLessons returns a section's lessons in display order, cached
// against the section's lesson scope
func ListSectionLessons(db *gorm.DB, sectionID string) ([]courseModels.Lesson, error) {
	cacheKey := "lessons:section:" + sectionID
	if cached, ok := cache.Get(cacheKey); ok {
		return cached.([]courseModels.Lesson), nil
	}

	var lessons []courseModels.Lesson
	if err := db.Where("section_id = ?", sectionID).Order("order_index asc").Find(&lessons).Error; err != nil {
		return nil, err
	}

	cache.Set(cacheKey, lessons, cache.ParentTag("lessons", sectionID))
	return lessons, nil
}
