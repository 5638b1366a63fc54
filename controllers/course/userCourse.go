package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"
	"coursehub/repository"

	"github.com/gofiber/fiber/v2"
)

// GetCourseList lists all live courses for customers
func GetCourseList(c *fiber.Ctx) error {
	courses, err := repository.ListCourses(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a course with its public sections and lessons,
// plus whether the caller owns the course via a purchase
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	tree, err := repository.GetCourseTree(database.Database.Db, courseID, true)
	if err != nil {
		return repoErrorResponse(c, err, "Course not found!")
	}

	isOwned, err := repository.UserOwnsCourse(database.Database.Db, userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":   tree.Course,
		"sections": tree.Sections,
		"is_owned": isOwned,
	})
}

// GetLessonDetails returns one lesson for watching. Preview lessons are
// open to everyone; public lessons require an owning purchase; private
// lessons are never served to customers.
func GetLessonDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(string)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}
	if lesson.Status == courseModels.LessonStatusPrivate {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if lesson.Status != courseModels.LessonStatusPreview {
		var section courseModels.Section
		if err := database.Database.Db.Where("id = ?", lesson.SectionID).First(&section).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
		}

		isOwned, err := repository.UserOwnsCourse(database.Database.Db, userID, section.CourseID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
		}
		if !isOwned {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please purchase this course first!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}
