package contactController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"lewagon/config"
	"lewagon/database"
	"lewagon/models"
	contactRoutes "lewagon/routers/contactRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	contactRoutes.SetupContactRoutes(app)
	return app
}

func submit(t *testing.T, app *fiber.App, body fiber.Map) int {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res.StatusCode
}

func TestSubmitContact(t *testing.T) {
	app := setupApp(t)

	status := submit(t, app, fiber.Map{
		"name":    "Sam Student",
		"email":   "sam@test.com",
		"subject": "Enrollment question",
		"message": "When does the next batch start?",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var message models.ContactMessage
	require.NoError(t, database.Database.Db.Where("email = ?", "sam@test.com").First(&message).Error)
	assert.Equal(t, "Enrollment question", message.Subject)
	assert.Equal(t, "When does the next batch start?", message.Message)
}

func TestSubmitContactWithoutSubject(t *testing.T) {
	app := setupApp(t)

	// Subject is optional
	status := submit(t, app, fiber.Map{
		"name":    "Sam Student",
		"email":   "sam@test.com",
		"message": "Hello there",
	})
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestSubmitContactValidation(t *testing.T) {
	app := setupApp(t)

	status := submit(t, app, fiber.Map{
		"name":  "Sam Student",
		"email": "not-an-email",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var count int64
	database.Database.Db.Model(&models.ContactMessage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
