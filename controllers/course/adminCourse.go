package controllers

import (
	"errors"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// repoErrorResponse maps repository errors to the uniform response envelope
func repoErrorResponse(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFoundMsg, nil)
	}
	// Orphaned owner chains and other store failures both surface as a
	// generic database error; the repository already logged the details
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
}

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := repository.CreateCourse(database.Database.Db, repository.CourseInput{
		Name:        reqData.Name,
		Description: reqData.Description,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := repository.UpdateCourse(database.Database.Db, courseID, repository.CourseInput{
		Name:        reqData.Name,
		Description: reqData.Description,
	})
	if err != nil {
		return repoErrorResponse(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse deletes a course with its sections and lessons
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	course, err := repository.DeleteCourse(database.Database.Db, courseID)
	if err != nil {
		return repoErrorResponse(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", course)
}

// AdminListCourses lists all live courses
func AdminListCourses(c *fiber.Ctx) error {
	courses, err := repository.ListCourses(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// AdminGetCourseDetails returns a course with its full nested tree,
// private entries included
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	tree, err := repository.GetCourseTree(database.Database.Db, courseID, false)
	if err != nil {
		return repoErrorResponse(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", tree)
}
