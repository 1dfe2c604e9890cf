package paymentRoutes

import (
	paymentController "lewagon/controllers/payment"
	"lewagon/middleware"
	"lewagon/models"
	paymentValidator "lewagon/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	// Provider callback, no auth header
	paymentGroup.Post("/paypal/capture", paymentValidator.Capture(), paymentController.PayPalCapture)

	paymentGroup.Get("/list", middleware.JWTMiddleware, paymentController.PaymentList)
	paymentGroup.Get("/transactions", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), paymentController.TransactionList)
}
