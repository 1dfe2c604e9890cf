package authRoutes

import (
	authControllers "lewagon/controllers/auth"
	"lewagon/middleware"
	authValidators "lewagon/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Get("/profile", middleware.JWTMiddleware, authControllers.Profile)
}
