package repository

import (
	"coursehub/cache"
	courseModels "coursehub/models/course"

	"gorm.io/gorm"
)

// CourseInput carries the writable course fields
type CourseInput struct {
	Name        string
	Description string
}

// SectionNode is a section with its lessons attached
type SectionNode struct {
	courseModels.Section
	Lessons []courseModels.Lesson `json:"lessons"`
}

// CourseTree is a course with its full nested section/lesson tree in
// display order
type CourseTree struct {
	Course   courseModels.Course `json:"course"`
	Sections []SectionNode       `json:"sections"`
}

// CreateCourse inserts a new course
func CreateCourse(db *gorm.DB, input CourseInput) (*courseModels.Course, error) {
	course := &courseModels.Course{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := db.Create(course).Error; err != nil {
		return nil, err
	}

	cache.RevalidateCourseTags(course.ID)
	return course, nil
}

// UpdateCourse rewrites the course's writable fields
func UpdateCourse(db *gorm.DB, courseID string, input CourseInput) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, err
	}

	if input.Name != "" {
		course.Name = input.Name
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if err := db.Save(&course).Error; err != nil {
		return nil, err
	}

	cache.RevalidateCourseTags(course.ID)
	return &course, nil
}

// DeleteCourse soft-deletes a course and hard-deletes its section/lesson
// tree in one transaction
func DeleteCourse(db *gorm.DB, courseID string) (*courseModels.Course, error) {
	var course courseModels.Course
	var sectionIDs []string

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return err
		}

		if err := tx.Model(&courseModels.Section{}).Where("course_id = ?", courseID).Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}
		if len(sectionIDs) > 0 {
			if err := tx.Where("section_id IN ?", sectionIDs).Delete(&courseModels.Lesson{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", courseID).Delete(&courseModels.Section{}).Error; err != nil {
				return err
			}
		}

		course.IsDeleted = true
		return tx.Save(&course).Error
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateCourseTags(course.ID)
	cache.Invalidate(cache.ParentTag("sections", course.ID))
	for _, id := range sectionIDs {
		cache.Invalidate(cache.ParentTag("lessons", id))
	}
	return &course, nil
}

// ListCourses returns all live courses, cached against the course global tag
func ListCourses(db *gorm.DB) ([]courseModels.Course, error) {
	cacheKey := "courses:all"
	if cached, ok := cache.Get(cacheKey); ok {
		return cached.([]courseModels.Course), nil
	}

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}

	cache.Set(cacheKey, courses, cache.GlobalTag("courses"))
	return courses, nil
}

// GetCourseTree loads a course with its nested sections and lessons in
// display order. When publicOnly is set, private sections and private
// lessons are filtered out. Cached against the course id tag, which every
// section/lesson mutation under the course invalidates.
func GetCourseTree(db *gorm.DB, courseID string, publicOnly bool) (*CourseTree, error) {
	cacheKey := "courses:tree:" + courseID
	if publicOnly {
		cacheKey += ":public"
	}
	if cached, ok := cache.Get(cacheKey); ok {
		return cached.(*CourseTree), nil
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, err
	}

	sectionQuery := db.Where("course_id = ?", courseID)
	if publicOnly {
		sectionQuery = sectionQuery.Where("status = ?", courseModels.SectionStatusPublic)
	}
	var sections []courseModels.Section
	if err := sectionQuery.Order("order_index asc").Find(&sections).Error; err != nil {
		return nil, err
	}

	tree := &CourseTree{Course: course, Sections: make([]SectionNode, 0, len(sections))}
	for _, section := range sections {
		lessonQuery := db.Where("section_id = ?", section.ID)
		if publicOnly {
			lessonQuery = lessonQuery.Where("status IN ?", []string{courseModels.LessonStatusPublic, courseModels.LessonStatusPreview})
		}
		var lessons []courseModels.Lesson
		if err := lessonQuery.Order("order_index asc").Find(&lessons).Error; err != nil {
			return nil, err
		}
		tree.Sections = append(tree.Sections, SectionNode{Section: section, Lessons: lessons})
	}

	cache.Set(cacheKey, tree, cache.IdTag("courses", courseID))
	return tree, nil
}
