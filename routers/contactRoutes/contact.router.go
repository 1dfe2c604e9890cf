package contactRoutes

import (
	contactController "lewagon/controllers/contact"
	contactValidator "lewagon/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", contactValidator.Contact(), contactController.SubmitContact)
}
