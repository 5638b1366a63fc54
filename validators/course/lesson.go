package courseValidator

import (
	"strings"

	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func isValidLessonStatus(status string) bool {
	switch status {
	case courseModels.LessonStatusPublic, courseModels.LessonStatusPrivate, courseModels.LessonStatusPreview:
		return true
	}
	return false
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID := c.Params("id")
		if _, err := uuid.Parse(sectionID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
		}

		reqData := new(struct {
			Name           string `json:"name"`
			Description    string `json:"description"`
			YoutubeVideoID string `json:"youtube_video_id"`
			Status         string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// Validate YoutubeVideoID
		if strings.TrimSpace(reqData.YoutubeVideoID) == "" {
			errors["youtube_video_id"] = "Youtube video id is required!"
		}

		// Validate Status
		if reqData.Status == "" {
			reqData.Status = courseModels.LessonStatusPrivate
		} else if !isValidLessonStatus(reqData.Status) {
			errors["status"] = "Status must be PUBLIC, PRIVATE or PREVIEW!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", sectionID)
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID := c.Params("id")
		if _, err := uuid.Parse(lessonID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
		}

		reqData := new(struct {
			Name           *string `json:"name"`
			Description    *string `json:"description"`
			YoutubeVideoID *string `json:"youtube_video_id"`
			Status         *string `json:"status"`
			SectionID      *string `json:"section_id"`
			OrderIndex     *int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}
		if reqData.Status != nil && !isValidLessonStatus(*reqData.Status) {
			errors["status"] = "Status must be PUBLIC, PRIVATE or PREVIEW!"
		}
		if reqData.SectionID != nil {
			if _, err := uuid.Parse(*reqData.SectionID); err != nil {
				errors["section_id"] = "Section id must be a valid uuid!"
			}
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonID validates the :id path parameter
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID := c.Params("id")
		if _, err := uuid.Parse(lessonID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
		}

		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}
