package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lewagon/config"
	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"
	courseRoutes "lewagon/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp wires a fresh in-memory database and the course routes.
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
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createStudent(t *testing.T, name, email string) (models.StudentProfile, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	student := models.StudentProfile{UserID: user.ID}
	require.NoError(t, database.Database.Db.Create(&student).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return student, token
}

func createInstructor(t *testing.T, name, email string) (models.User, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "x", Role: models.RoleInstructor}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	profile := models.InstructorProfile{UserID: user.ID, Expertise: "Go"}
	require.NoError(t, database.Database.Db.Create(&profile).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func createCourse(t *testing.T, instructorID uint, title string, price float64) models.Course {
	t.Helper()

	course := models.Course{
		Title:        title,
		Description:  "a test course",
		Price:        price,
		CourseType:   models.CourseTypePaid,
		InstructorID: instructorID,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func doRequest(t *testing.T, app *fiber.App, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func parseBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}
