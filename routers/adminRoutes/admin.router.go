package adminRoutes

import (
	adminController "lewagon/controllers/admin"
	"lewagon/middleware"
	"lewagon/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/dashboard", adminController.Dashboard)
	adminGroup.Get("/user/list", adminController.UserList)
	adminGroup.Get("/contact/list", adminController.ContactList)
}
