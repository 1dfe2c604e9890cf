package controllers

import (
	"errors"

	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// SubmitReview creates one review per (student, course) pair. Requires an
// existing enrollment.
func SubmitReview(c *fiber.Ctx) error {
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
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Rating < 1 || reqData.Rating > 5 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Reviews are only allowed after enrollment
	var enrollment models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", student.ID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	// One review per (student, course)
	var existingReview models.Review
	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", student.ID, courseID, false).First(&existingReview).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	review := models.Review{
		StudentID:  student.ID,
		CourseID:   course.ID,
		Rating:     reqData.Rating,
		Comment:    reqData.Comment,
		ReviewedOn: now.BeginningOfDay(),
	}

	if err := db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// GetCourseReviews lists a course's reviews with reviewer names. Public.
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var total int64
	db.Model(&models.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&total)

	var reviews []models.Review
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Preload("Student.User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewResponse struct {
		models.Review
		ReviewerName string `json:"reviewer_name"`
	}

	response := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = ReviewResponse{
			Review:       r,
			ReviewerName: r.Student.User.Name,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
