package courseRoutes

import (
	controllers "lewagon/controllers/course"
	"lewagon/middleware"
	"lewagon/models"
	validators "lewagon/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, enrollment, progress, certificate and
// review routes. Static paths are registered before the :slug catch-all.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog
	courseGroup.Get("/list", controllers.GetAllCourses)

	// Student enrollments
	courseGroup.Get("/enrollments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), controllers.GetEnrollments)

	// Instructor catalog management
	courseGroup.Get("/instructor/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), controllers.InstructorCourseList)
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CourseID(), controllers.DeleteCourse)
	courseGroup.Post("/:id/video", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CourseID(), validators.AddVideo(), controllers.AddCourseVideo)
	courseGroup.Get("/:id/students", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CourseID(), controllers.GetEnrolledStudents)

	// Enrollment & progress workflow
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Patch("/:id/progress", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.UpdateProgress)
	courseGroup.Post("/:id/complete", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.MarkCompleted)
	courseGroup.Get("/:id/certificate", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.GetCertificate)

	// Reviews
	courseGroup.Post("/:id/review", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.SubmitReview)
	courseGroup.Get("/:id/reviews", validators.CourseID(), controllers.GetCourseReviews)

	// Public detail by slug, last so it does not shadow the routes above
	courseGroup.Get("/:slug", controllers.GetCourseDetails)
}
