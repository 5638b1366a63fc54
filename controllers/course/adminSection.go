package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/repository"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateSection creates a new section at the end of a course
func AdminCreateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedSection").(*struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section, err := repository.CreateSection(database.Database.Db, courseID, repository.SectionInput{
		Name:   reqData.Name,
		Status: reqData.Status,
	})
	if err != nil {
		return repoErrorResponse(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// AdminUpdateSection updates an existing section
func AdminUpdateSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(string)

	reqData, ok := c.Locals("validatedSectionUpdate").(*struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section, err := repository.UpdateSection(database.Database.Db, sectionID, repository.SectionInput{
		Name:   reqData.Name,
		Status: reqData.Status,
	})
	if err != nil {
		return repoErrorResponse(c, err, "Section not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// AdminDeleteSection deletes a section and its lessons
func AdminDeleteSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(string)

	section, err := repository.DeleteSection(database.Database.Db, sectionID)
	if err != nil {
		return repoErrorResponse(c, err, "Section not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", section)
}

// AdminReorderSections rewrites the display order of a course's sections
// to match the supplied id sequence
func AdminReorderSections(c *fiber.Ctx) error {
	ids, ok := c.Locals("validatedReorder").([]string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := repository.ReorderSections(database.Database.Db, ids); err != nil {
		return repoErrorResponse(c, err, "Section not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section order updated successfully!", nil)
}

// AdminListSections lists a course's sections in display order
func AdminListSections(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	sections, err := repository.ListCourseSections(database.Database.Db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", sections)
}
