package contactValidator

import (
	contactController "lewagon/controllers/contact"
	"lewagon/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Contact validates the contact form. Required set is name/email/message;
// subject is optional.
func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(contactController.ContactRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name is required!"
				case "Email":
					errors["email"] = "A valid email is required!"
				case "Message":
					errors["message"] = "Message is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
