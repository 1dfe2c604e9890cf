package adminController

import (
	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns platform-wide counts and revenue.
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalStudents, totalInstructors, totalCourses, totalEnrollments int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleStudent).Count(&totalStudents)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleInstructor).Count(&totalInstructors)
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	var revenue float64
	db.Model(&models.Payment{}).
		Where("is_deleted = ?", false).
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"users":       totalUsers,
		"students":    totalStudents,
		"instructors": totalInstructors,
		"courses":     totalCourses,
		"enrollments": totalEnrollments,
		"revenue":     revenue,
	})
}

// UserList returns a paginated user listing.
func UserList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ContactList returns the contact form inbox.
func ContactList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.ContactMessage{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var messages []models.ContactMessage
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contact messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact messages fetched successfully!", fiber.Map{
		"messages": messages,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
