package paymentController_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lewagon/config"
	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"
	paymentRoutes "lewagon/routers/paymentRoutes"
	"lewagon/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
		Currency:  "USD",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	paymentRoutes.SetupPaymentRoutes(app)
	return app
}

// stubCapture makes the capture workflow succeed without the PayPal sandbox.
func stubCapture(t *testing.T, amount float64) {
	t.Helper()

	orig := utils.CapturePayPalOrder
	utils.CapturePayPalOrder = func(orderID string) (*utils.PayPalCaptureResult, error) {
		return &utils.PayPalCaptureResult{
			OrderID: orderID,
			Status:  "COMPLETED",
			Amount:  amount,
			Raw:     []byte(`{"status":"COMPLETED"}`),
		}, nil
	}
	t.Cleanup(func() { utils.CapturePayPalOrder = orig })
}

func seedStudentAndCourse(t *testing.T, email, title string, price float64) (models.User, models.Course) {
	t.Helper()
	db := database.Database.Db

	instructor := models.User{Name: "Ines Teacher", Email: "ines-" + email, Password: "x", Role: models.RoleInstructor}
	require.NoError(t, db.Create(&instructor).Error)

	user := models.User{Name: "Sam Student", Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.StudentProfile{UserID: user.ID}).Error)

	course := models.Course{
		Title:        title,
		Description:  "a test course",
		Price:        price,
		CourseType:   models.CourseTypePaid,
		InstructorID: instructor.ID,
	}
	require.NoError(t, db.Create(&course).Error)

	return user, course
}

func capture(t *testing.T, app *fiber.App, orderID, email string, courseID uint) *http.Response {
	t.Helper()

	payload, err := json.Marshal(fiber.Map{
		"orderId":  orderID,
		"email":    email,
		"courseId": courseID,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/payment/paypal/capture", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func TestPayPalCapture(t *testing.T) {
	app := setupApp(t)
	stubCapture(t, 49.99)
	user, course := seedStudentAndCourse(t, "sam@test.com", "Go Basics", 49.99)

	res := capture(t, app, "ORDER-1", user.Email, course.ID)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	db := database.Database.Db

	var enrollment models.Enrollment
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&enrollment).Error)
	assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)

	var payment models.Payment
	require.NoError(t, db.Where("enrollment_id = ?", enrollment.ID).First(&payment).Error)
	assert.Equal(t, 49.99, payment.Price)
	assert.Equal(t, "USD", payment.Currency)

	var txn models.Transactions
	require.NoError(t, db.Where("order_id = ?", "ORDER-1").First(&txn).Error)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
	assert.Equal(t, user.ID, txn.UserID)
	assert.NotEmpty(t, txn.Reference)
}

func TestPayPalCaptureReplayedOrder(t *testing.T) {
	app := setupApp(t)
	stubCapture(t, 49.99)
	user, course := seedStudentAndCourse(t, "sam@test.com", "Go Basics", 49.99)

	res := capture(t, app, "ORDER-1", user.Email, course.ID)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	// Replaying the callback must not write anything new
	res = capture(t, app, "ORDER-1", user.Email, course.ID)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	db := database.Database.Db
	var enrollments, payments, txns int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	db.Model(&models.Payment{}).Count(&payments)
	db.Model(&models.Transactions{}).Count(&txns)
	assert.Equal(t, int64(1), enrollments)
	assert.Equal(t, int64(1), payments)
	assert.Equal(t, int64(1), txns)
}

func TestPayPalCaptureAlreadyEnrolled(t *testing.T) {
	app := setupApp(t)
	stubCapture(t, 49.99)
	user, course := seedStudentAndCourse(t, "sam@test.com", "Go Basics", 49.99)

	res := capture(t, app, "ORDER-1", user.Email, course.ID)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	// Fresh order id, same (student, course) pair
	res = capture(t, app, "ORDER-2", user.Email, course.ID)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	var enrollments int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&enrollments)
	assert.Equal(t, int64(1), enrollments)
}

func TestPayPalCaptureAlreadyEnrolledSkipsProvider(t *testing.T) {
	app := setupApp(t)
	user, course := seedStudentAndCourse(t, "sam@test.com", "Go Basics", 49.99)

	var student models.StudentProfile
	require.NoError(t, database.Database.Db.Where("user_id = ?", user.ID).First(&student).Error)
	enrollment := models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    models.EnrollmentStatusEnrolled,
	}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)

	// An enrolled pair must be rejected before any money moves
	calls := 0
	orig := utils.CapturePayPalOrder
	utils.CapturePayPalOrder = func(orderID string) (*utils.PayPalCaptureResult, error) {
		calls++
		return &utils.PayPalCaptureResult{OrderID: orderID, Status: "COMPLETED"}, nil
	}
	t.Cleanup(func() { utils.CapturePayPalOrder = orig })

	res := capture(t, app, "ORDER-2", user.Email, course.ID)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	assert.Equal(t, 0, calls)

	var txns int64
	database.Database.Db.Model(&models.Transactions{}).Count(&txns)
	assert.Equal(t, int64(0), txns)
}

func TestPayPalCaptureEnrollmentConflictRollsBack(t *testing.T) {
	app := setupApp(t)
	stubCapture(t, 49.99)
	user, course := seedStudentAndCourse(t, "sam@test.com", "Go Basics", 49.99)

	// A soft-deleted enrollment slips past the pre-check but still occupies
	// the unique index, so the insert inside the transaction conflicts.
	var student models.StudentProfile
	require.NoError(t, database.Database.Db.Where("user_id = ?", user.ID).First(&student).Error)
	seed := models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    models.EnrollmentStatusEnrolled,
		IsDeleted: true,
	}
	require.NoError(t, database.Database.Db.Create(&seed).Error)

	res := capture(t, app, "ORDER-1", user.Email, course.ID)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	db := database.Database.Db
	var enrollments, payments, txns int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	db.Model(&models.Payment{}).Count(&payments)
	db.Model(&models.Transactions{}).Count(&txns)
	assert.Equal(t, int64(1), enrollments)
	assert.Equal(t, int64(0), payments)
	assert.Equal(t, int64(0), txns)
}

func TestPayPalCaptureUnknownCourse(t *testing.T) {
	app := setupApp(t)
	stubCapture(t, 49.99)
	user, _ := seedStudentAndCourse(t, "sam@test.com", "Go Basics", 49.99)

	res := capture(t, app, "ORDER-1", user.Email, 999)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestPayPalCaptureProviderFailure(t *testing.T) {
	app := setupApp(t)
	user, course := seedStudentAndCourse(t, "sam@test.com", "Go Basics", 49.99)

	orig := utils.CapturePayPalOrder
	utils.CapturePayPalOrder = func(orderID string) (*utils.PayPalCaptureResult, error) {
		return nil, errors.New("order not approved")
	}
	t.Cleanup(func() { utils.CapturePayPalOrder = orig })

	res := capture(t, app, "ORDER-1", user.Email, course.ID)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	var enrollments int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&enrollments)
	assert.Equal(t, int64(0), enrollments)
}

func TestPayPalCaptureValidation(t *testing.T) {
	app := setupApp(t)

	payload := []byte(`{"orderId":"","email":"not-an-email"}`)
	req := httptest.NewRequest("POST", "/payment/paypal/capture", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
}

func TestPaymentListStudentScope(t *testing.T) {
	app := setupApp(t)
	stubCapture(t, 49.99)
	user, course := seedStudentAndCourse(t, "sam@test.com", "Go Basics", 49.99)
	other, otherCourse := seedStudentAndCourse(t, "tom@test.com", "Ruby Basics", 19.99)

	res := capture(t, app, "ORDER-1", user.Email, course.ID)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	res = capture(t, app, "ORDER-2", other.Email, otherCourse.ID)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/payment/list", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	listRes, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listRes.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(listRes.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
}
