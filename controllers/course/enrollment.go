package controllers

import (
	"errors"

	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"
	"lewagon/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// studentProfileFor resolves the student profile of the requesting user.
func studentProfileFor(userID uint) (models.StudentProfile, error) {
	var student models.StudentProfile
	err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&student).Error
	return student, err
}

// EnrollInCourse enrolls the requesting student in a course. The
// (student, course) pair is unique; a second attempt is a conflict.
func EnrollInCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	student, err := studentProfileFor(user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check if student is already enrolled
	var existingEnrollment models.Enrollment
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", student.ID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		StudentID:  student.ID,
		CourseID:   course.ID,
		EnrolledOn: now.BeginningOfDay(),
		Progress:   0,
		Status:     models.EnrollmentStatusEnrolled,
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		// The unique index is the backstop for concurrent enrolls
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the requesting student's enrollments with course data.
func GetEnrollments(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	student, err := studentProfileFor(user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", student.ID, false).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// UpdateProgress overwrites the stored progress for the student's
// enrollment. Status is untouched; completion is a separate call.
func UpdateProgress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	student, err := studentProfileFor(user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		Progress *float64 `json:"progress"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Progress == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Progress is required!", nil)
	}

	if *reqData.Progress < 0 || *reqData.Progress > 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Progress must be between 0 and 100!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", student.ID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	enrollment.Progress = *reqData.Progress
	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", enrollment)
}

// MarkCompleted flips the enrollment status to COMPLETED. Requires the
// progress to already be at 100.
func MarkCompleted(c *fiber.Ctx) error {
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
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", student.ID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.Progress < 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please finish the course before marking it completed!", nil)
	}

	enrollment.Status = models.EnrollmentStatusCompleted
	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed!", enrollment)
}
