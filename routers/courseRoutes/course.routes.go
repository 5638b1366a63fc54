package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminCourse := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminCourse.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminCourse.Get("/list", controllers.AdminListCourses)
	adminCourse.Put("/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminCourse.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminCourse.Get("/:id", validators.CourseID(), controllers.AdminGetCourseDetails)

	// Section management, ordered within a course
	adminCourse.Post("/:id/section", validators.CreateSection(), controllers.AdminCreateSection)
	adminCourse.Get("/:id/sections", validators.CourseID(), controllers.AdminListSections)
	adminCourse.Post("/:id/section/reorder", validators.CourseID(), validators.ReorderIDs(), controllers.AdminReorderSections)

	adminSection := app.Group("/admin/section", middleware.JWTMiddleware, middleware.AdminOnly)
	adminSection.Put("/:id", validators.UpdateSection(), controllers.AdminUpdateSection)
	adminSection.Delete("/:id", validators.SectionID(), controllers.AdminDeleteSection)

	// Lesson management, ordered within a section
	adminSection.Post("/:id/lesson", validators.CreateLesson(), controllers.AdminCreateLesson)
	adminSection.Get("/:id/lessons", validators.SectionID(), controllers.AdminListLessons)
	adminSection.Post("/:id/lesson/reorder", validators.SectionID(), validators.ReorderIDs(), controllers.AdminReorderLessons)

	adminLesson := app.Group("/admin/lesson", middleware.JWTMiddleware, middleware.AdminOnly)
	adminLesson.Put("/:id", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	adminLesson.Delete("/:id", validators.LessonID(), controllers.AdminDeleteLesson)
}

// SetupCourseRoutes sets up customer-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware)

	courseGroup.Get("/list", controllers.GetCourseList)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	lessonGroup := app.Group("/lesson", middleware.JWTMiddleware)
	lessonGroup.Get("/:id", validators.LessonID(), controllers.GetLessonDetails)
}
