package controllers

import (
	"strings"

	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the validated create/update payload shared between the
// validator middleware and the handlers.
type CourseRequest struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Duration         int64          `json:"duration"`
	Price            float64        `json:"price"`
	CourseType       string         `json:"course_type"`
	Level            string         `json:"level"`
	Category         string         `json:"category"`
	WhatYouWillLearn string         `json:"what_you_will_learn"`
	Requirements     string         `json:"requirements"`
	ImageURL         string         `json:"image_url"`
	Videos           []VideoRequest `json:"videos"`
}

// VideoRequest is the validated lesson payload.
type VideoRequest struct {
	LessonName string `json:"lesson_name"`
	VideoURL   string `json:"video_url"`
	Duration   int    `json:"duration"`
	OrderIndex int    `json:"order_index"`
}

// GetAllCourses lists the public catalog with optional filtering. No auth
// required.
func GetAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false)

	if search := c.Query("search"); search != "" {
		// LIKE is case-sensitive on postgres, so lower both sides
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", like, like)
	}
	if category := c.Query("category"); category != "" && category != "All" {
		db = db.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" && level != "All" {
		db = db.Where("level = ?", level)
	}
	if minPrice := c.QueryFloat("min_price", -1); minPrice >= 0 {
		db = db.Where("price >= ?", minPrice)
	}
	if maxPrice := c.QueryFloat("max_price", -1); maxPrice >= 0 {
		db = db.Where("price <= ?", maxPrice)
	}

	switch c.Query("sort_by", "newest") {
	case "price-low":
		db = db.Order("price asc")
	case "price-high":
		db = db.Order("price desc")
	default:
		db = db.Order("created_at desc")
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns a course by slug with its ordered lessons and
// enrolled student count.
func GetCourseDetails(c *fiber.Ctx) error {
	courseSlug := c.Params("slug")

	var course models.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var videos []models.CourseVideo
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").
		Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course lessons!", nil)
	}

	var studentsCount int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Count(&studentsCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":         course,
		"videos":         videos,
		"students_count": studentsCount,
	})
}

// CreateCourse creates a course owned by the requesting instructor, with its
// lessons in one shot.
func CreateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:            reqData.Title,
		Description:      reqData.Description,
		Duration:         reqData.Duration,
		Price:            reqData.Price,
		CourseType:       reqData.CourseType,
		Level:            reqData.Level,
		Category:         reqData.Category,
		WhatYouWillLearn: reqData.WhatYouWillLearn,
		Requirements:     reqData.Requirements,
		ImageURL:         reqData.ImageURL,
		InstructorID:     user.ID,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	for i, video := range reqData.Videos {
		order := video.OrderIndex
		if order == 0 {
			order = i + 1
		}
		lesson := models.CourseVideo{
			CourseID:   course.ID,
			LessonName: video.LessonName,
			VideoURL:   video.VideoURL,
			Duration:   video.Duration,
			OrderIndex: order,
		}
		if err := tx.Create(&lesson).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course lessons!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates a course owned by the requester. The slug is derived
// once at creation and never rewritten here.
func UpdateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only edit your own courses!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Duration = reqData.Duration
	course.Price = reqData.Price
	course.CourseType = reqData.CourseType
	course.Level = reqData.Level
	course.Category = reqData.Category
	course.WhatYouWillLearn = reqData.WhatYouWillLearn
	course.Requirements = reqData.Requirements
	course.ImageURL = reqData.ImageURL

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft-deletes a course owned by the requester.
func DeleteCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own courses!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AddCourseVideo appends a lesson to a course owned by the requester.
func AddCourseVideo(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only edit your own courses!", nil)
	}

	reqData, ok := c.Locals("validatedVideo").(*VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	order := reqData.OrderIndex
	if order == 0 {
		var maxOrder int
		database.Database.Db.Model(&models.CourseVideo{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxOrder)
		order = maxOrder + 1
	}

	lesson := models.CourseVideo{
		CourseID:   course.ID,
		LessonName: reqData.LessonName,
		VideoURL:   reqData.VideoURL,
		Duration:   reqData.Duration,
		OrderIndex: order,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

// InstructorCourseList lists the requesting instructor's own courses.
func InstructorCourseList(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.
		Where("instructor_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetEnrolledStudents lists students enrolled in a course owned by the
// requester.
func GetEnrolledStudents(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view students of your own courses!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Preload("Student.User").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrolledStudent struct {
		StudentID uint    `json:"student_id"`
		Name      string  `json:"name"`
		Email     string  `json:"email"`
		Progress  float64 `json:"progress"`
		Status    string  `json:"status"`
	}

	students := make([]EnrolledStudent, len(enrollments))
	for i, e := range enrollments {
		students[i] = EnrolledStudent{
			StudentID: e.StudentID,
			Name:      e.Student.User.Name,
			Email:     e.Student.User.Email,
			Progress:  e.Progress,
			Status:    e.Status,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled students fetched successfully!", fiber.Map{
		"students": students,
		"total":    len(students),
	})
}
