package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/repository"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateLesson creates a new lesson at the end of a section
func AdminCreateLesson(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(string)

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Name           string `json:"name"`
		Description    string `json:"description"`
		YoutubeVideoID string `json:"youtube_video_id"`
		Status         string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := repository.CreateLesson(database.Database.Db, repository.LessonInput{
		SectionID:      sectionID,
		Name:           reqData.Name,
		Description:    reqData.Description,
		YoutubeVideoID: reqData.YoutubeVideoID,
		Status:         reqData.Status,
	})
	if err != nil {
		return repoErrorResponse(c, err, "Section not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminUpdateLesson updates a lesson; supplying section_id moves it to
// another section, appended at the end unless order_index is also given
func AdminUpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(string)

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Name           *string `json:"name"`
		Description    *string `json:"description"`
		YoutubeVideoID *string `json:"youtube_video_id"`
		Status         *string `json:"status"`
		SectionID      *string `json:"section_id"`
		OrderIndex     *int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := repository.UpdateLesson(database.Database.Db, lessonID, repository.LessonUpdate{
		Name:           reqData.Name,
		Description:    reqData.Description,
		YoutubeVideoID: reqData.YoutubeVideoID,
		Status:         reqData.Status,
		SectionID:      reqData.SectionID,
		OrderIndex:     reqData.OrderIndex,
	})
	if err != nil {
		return repoErrorResponse(c, err, "Lesson not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson deletes a lesson
func AdminDeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(string)

	lesson, err := repository.DeleteLesson(database.Database.Db, lessonID)
	if err != nil {
		return repoErrorResponse(c, err, "Lesson not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", lesson)
}

// AdminReorderLessons rewrites the display order of a section's lessons
// to match the supplied id sequence
func AdminReorderLessons(c *fiber.Ctx) error {
	ids, ok := c.Locals("validatedReorder").([]string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := repository.ReorderLessons(database.Database.Db, ids); err != nil {
		return repoErrorResponse(c, err, "Lesson not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson order updated successfully!", nil)
}

// AdminListLessons lists a section's lessons in display order
func AdminListLessons(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(string)

	lessons, err := repository.ListSectionLessons(database.Database.Db, sectionID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}
