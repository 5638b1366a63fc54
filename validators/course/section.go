package courseValidator

import (
	"strings"

	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func isValidSectionStatus(status string) bool {
	return status == courseModels.SectionStatusPublic || status == courseModels.SectionStatusPrivate
}

func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Params("id")
		if _, err := uuid.Parse(courseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		reqData := new(struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// Validate Status
		if reqData.Status == "" {
			reqData.Status = courseModels.SectionStatusPrivate
		} else if !isValidSectionStatus(reqData.Status) {
			errors["status"] = "Status must be PUBLIC or PRIVATE!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID := c.Params("id")
		if _, err := uuid.Parse(sectionID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
		}

		reqData := new(struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != "" && !isValidSectionStatus(reqData.Status) {
			errors["status"] = "Status must be PUBLIC or PRIVATE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", sectionID)
		c.Locals("validatedSectionUpdate", reqData)
		return c.Next()
	}
}

// SectionID validates the :id path parameter
func SectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID := c.Params("id")
		if _, err := uuid.Parse(sectionID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
		}

		c.Locals("sectionID", sectionID)
		return c.Next()
	}
}

// ReorderIDs validates a reorder payload: a list of unique uuids. An empty
// list is allowed and handled as a no-op downstream.
func ReorderIDs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IDs []string `json:"ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		seen := make(map[string]bool, len(reqData.IDs))
		for _, id := range reqData.IDs {
			if _, err := uuid.Parse(id); err != nil {
				errors["ids"] = "All ids must be valid uuids!"
				break
			}
			if seen[id] {
				errors["ids"] = "Duplicate ids are not allowed!"
				break
			}
			seen[id] = true
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData.IDs)
		return c.Next()
	}
}
