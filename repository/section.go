package repository

import (
	"log"

	"coursehub/cache"
	courseModels "coursehub/models/course"
	"coursehub/ordering"

	"gorm.io/gorm"
)

// SectionInput carries the writable section fields
type SectionInput struct {
	Name   string
	Status string
}

// CreateSection appends a new section to the end of the course. The order
// lookup and the insert share one transaction.
func CreateSection(db *gorm.DB, courseID string, input SectionInput) (*courseModels.Section, error) {
	var section *courseModels.Section

	err := db.Transaction(func(tx *gorm.DB) error {
		var course courseModels.Course
		if err := tx.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return err
		}

		next, err := ordering.NextIndex(tx, &courseModels.Section{}, "course_id", courseID)
		if err != nil {
			return err
		}

		section = &courseModels.Section{
			CourseID:   courseID,
			Name:       input.Name,
			Status:     input.Status,
			OrderIndex: next,
		}
		return tx.Create(section).Error
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateSectionTags(section.ID, courseID)
	return section, nil
}

// UpdateSection rewrites the section's writable fields
func UpdateSection(db *gorm.DB, sectionID string, input SectionInput) (*courseModels.Section, error) {
	var section courseModels.Section

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", sectionID).First(&section).Error; err != nil {
			return err
		}

		if input.Name != "" {
			section.Name = input.Name
		}
		if input.Status != "" {
			section.Status = input.Status
		}
		return tx.Save(&section).Error
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateSectionTags(section.ID, section.CourseID)
	return &section, nil
}

// DeleteSection hard-deletes a section and its lessons. The owning course
// is resolved from the pre-delete row snapshot fetched in the same
// transaction, since the row is gone afterwards.
func DeleteSection(db *gorm.DB, sectionID string) (*courseModels.Section, error) {
	var section courseModels.Section

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", sectionID).First(&section).Error; err != nil {
			return err
		}

		if err := tx.Where("section_id = ?", sectionID).Delete(&courseModels.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Delete(&courseModels.Section{}, "id = ?", sectionID).Error
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateSectionTags(section.ID, section.CourseID)
	cache.Invalidate(cache.ParentTag("lessons", section.ID))
	return &section, nil
}

// ReorderSections assigns order 0..n-1 following the supplied id sequence.
// All siblings are assumed to belong to one course; the course is resolved
// through the first updated section and the whole batch rolls back when
// that resolution fails. An empty sequence is a no-op.
func ReorderSections(db *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	var updated []string
	var courseID string

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = ordering.ReindexAll(tx, &courseModels.Section{}, ids)
		if err != nil {
			return err
		}
		if len(updated) == 0 {
			return ordering.ErrOrphaned
		}

		var first courseModels.Section
		if err := tx.Where("id = ?", updated[0]).First(&first).Error; err != nil {
			return ordering.ErrOrphaned
		}

		var course courseModels.Course
		if err := tx.Where("id = ? AND is_deleted = ?", first.CourseID, false).First(&course).Error; err != nil {
			log.Printf("Data integrity error: section %s references missing course %s", first.ID, first.CourseID)
			return ordering.ErrOrphaned
		}
		courseID = course.ID
		return nil
	})
	if err != nil {
		return err
	}

	for _, id := range updated {
		cache.Invalidate(cache.IdTag("sections", id))
	}
	cache.Invalidate(
		cache.GlobalTag("sections"),
		cache.ParentTag("sections", courseID),
		cache.IdTag("courses", courseID),
	)
	return nil
}

// ListCourseSections returns a course's sections in display order, cached
// against the course's section scope
func ListCourseSections(db *gorm.DB, courseID string) ([]courseModels.Section, error) {
	cacheKey := "sections:course:" + courseID
	if cached, ok := cache.Get(cacheKey); ok {
		return cached.([]courseModels.Section), nil
	}

	var sections []courseModels.Section
	if err := db.Where("course_id = ?", courseID).Order("order_index asc").Find(&sections).Error; err != nil {
		return nil, err
	}

	cache.Set(cacheKey, sections,
		cache.ParentTag("sections", courseID),
		cache.IdTag("courses", courseID),
	)
	return sections, nil
}
