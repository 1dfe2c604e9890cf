package controllers

import (
	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"

	"github.com/gofiber/fiber/v2"
)

// GetCertificate returns a derived certificate payload for a completed
// course. Nothing is persisted; the payload is recomputed on every call.
func GetCertificate(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	student, err := studentProfileFor(user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment models.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", student.ID, courseID, false).
		Preload("Course").
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.Progress < 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not completed yet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate generated successfully!", fiber.Map{
		"name":            user.Name,
		"course":          enrollment.Course.Title,
		"completion_date": enrollment.EnrolledOn.Format("2006-01-02"),
	})
}
