package paymentValidator

import (
	paymentController "lewagon/controllers/payment"
	"lewagon/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Capture validates the PayPal callback payload.
func Capture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(paymentController.CaptureRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "OrderID":
					errors["orderId"] = "Order ID is required!"
				case "Email":
					errors["email"] = "A valid email is required!"
				case "CourseID":
					errors["courseId"] = "Course ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCapture", reqData)
		return c.Next()
	}
}
