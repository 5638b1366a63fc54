package productValidator

import (
	"strings"

	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func isValidProductStatus(status string) bool {
	return status == models.ProductStatusPublic || status == models.ProductStatusPrivate
}

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           string   `json:"name"`
			Description    string   `json:"description"`
			ImagePath      string   `json:"image_path"`
			PriceInDollars int      `json:"price_in_dollars"`
			Status         string   `json:"status"`
			CourseIDs      []string `json:"course_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// Validate Price
		if reqData.PriceInDollars < 0 {
			errors["price_in_dollars"] = "Price cannot be negative!"
		}

		// Validate Status
		if reqData.Status == "" {
			reqData.Status = models.ProductStatusPrivate
		} else if !isValidProductStatus(reqData.Status) {
			errors["status"] = "Status must be PUBLIC or PRIVATE!"
		}

		// Validate CourseIDs
		if len(reqData.CourseIDs) == 0 {
			errors["course_ids"] = "At least one course is required!"
		} else {
			for _, id := range reqData.CourseIDs {
				if _, err := uuid.Parse(id); err != nil {
					errors["course_ids"] = "All course ids must be valid uuids!"
					break
				}
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProduct", reqData)
		return c.Next()
	}
}

func UpdateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Params("id")
		if _, err := uuid.Parse(productID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
		}

		reqData := new(struct {
			Name           string   `json:"name"`
			Description    string   `json:"description"`
			ImagePath      string   `json:"image_path"`
			PriceInDollars int      `json:"price_in_dollars"`
			Status         string   `json:"status"`
			CourseIDs      []string `json:"course_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PriceInDollars < 0 {
			errors["price_in_dollars"] = "Price cannot be negative!"
		}
		if reqData.Status != "" && !isValidProductStatus(reqData.Status) {
			errors["status"] = "Status must be PUBLIC or PRIVATE!"
		}
		for _, id := range reqData.CourseIDs {
			if _, err := uuid.Parse(id); err != nil {
				errors["course_ids"] = "All course ids must be valid uuids!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("productID", productID)
		c.Locals("validatedProductUpdate", reqData)
		return c.Next()
	}
}

// ProductID validates the :id path parameter
func ProductID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Params("id")
		if _, err := uuid.Parse(productID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
		}

		c.Locals("productID", productID)
		return c.Next()
	}
}
