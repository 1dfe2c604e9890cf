package paymentController

import (
	"errors"
	"log"

	"lewagon/config"
	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"
	"lewagon/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CaptureRequest is the provider callback payload.
type CaptureRequest struct {
	OrderID  string `json:"orderId" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	CourseID uint   `json:"courseId" validate:"required"`
}

// PayPalCapture converts an approved PayPal order into an enrollment plus a
// payment record. The provider order id is the idempotency key: a replayed
// callback is rejected before anything is written.
func PayPalCapture(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCapture").(*CaptureRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Dedupe on the provider order id
	var existingTxn models.Transactions
	if err := db.Where("order_id = ? AND is_deleted = ?", reqData.OrderID, false).First(&existingTxn).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment already captured!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var student models.StudentProfile
	if err := db.Where("user_id = ? AND is_deleted = ?", user.ID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	// Reject an already-enrolled pair before capturing at the provider, so
	// a duplicate purchase never takes the buyer's money.
	var existingEnrollment models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", student.ID, course.ID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	capture, err := utils.CapturePayPalOrder(reqData.OrderID)
	if err != nil {
		log.Printf("PayPal capture failed for order %s: %v", reqData.OrderID, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to capture payment!", nil)
	}

	amount := capture.Amount
	if amount == 0 {
		amount = course.Price
	}

	enrollment := models.Enrollment{
		StudentID:  student.ID,
		CourseID:   course.ID,
		EnrolledOn: now.BeginningOfDay(),
		Progress:   0,
		Status:     models.EnrollmentStatusEnrolled,
	}

	tx := db.Begin()

	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		// The unique (student, course) index catches a concurrent capture
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to capture payment!", nil)
	}

	payment := models.Payment{
		EnrollmentID: enrollment.ID,
		Price:        course.Price,
		Currency:     config.AppConfig.Currency,
		PaidOn:       now.BeginningOfDay(),
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to capture payment!", nil)
	}

	transaction := models.Transactions{
		UserID:           user.ID,
		CourseID:         course.ID,
		Amount:           amount,
		Status:           models.TransactionStatusCompleted,
		OrderID:          reqData.OrderID,
		Reference:        uuid.NewString(),
		ProviderResponse: datatypes.JSON(capture.Raw),
		TransactionDate:  now.BeginningOfDay(),
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to capture payment!", nil)
	}

	tx.Commit()

	utils.SendPaymentReceiptEmail(user.Email, user.Name, course.Title, payment.Price, payment.Currency)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment captured successfully!", fiber.Map{
		"enrollment":  enrollment,
		"payment":     payment,
		"transaction": transaction,
	})
}

// PaymentList returns the requester's payments; admins see everything.
func PaymentList(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	var payments []models.Payment

	if user.Role == models.RoleAdmin {
		if err := db.Where("is_deleted = ?", false).
			Preload("Enrollment.Course").
			Order("created_at desc").
			Find(&payments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
		}
	} else {
		var student models.StudentProfile
		if err := db.Where("user_id = ? AND is_deleted = ?", user.ID, false).First(&student).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		if err := db.Joins("JOIN enrollments ON enrollments.id = payments.enrollment_id").
			Where("enrollments.student_id = ? AND payments.is_deleted = ?", student.ID, false).
			Preload("Enrollment.Course").
			Order("payments.created_at desc").
			Find(&payments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"total":    len(payments),
	})
}

// TransactionList is the provider-side audit listing for admins.
func TransactionList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Transactions{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var transactions []models.Transactions
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched successfully!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
