package middleware

import (
	"lewagon/database"
	"lewagon/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that allows the request only when the
// authenticated user's role is one of the given roles. Admins pass every
// gate. The failure body is the same for every gate so callers cannot tell
// which check rejected them.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User not found",
				"data":    nil,
			})
		}

		c.Locals("currentUser", user)

		if user.Role == models.RoleAdmin {
			return c.Next()
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "You do not have permission to access this resource!",
			"data":    nil,
		})
	}
}

// CurrentUser returns the user loaded by RequireRole, falling back to a
// lookup for routes that only run JWTMiddleware.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	if user, ok := c.Locals("currentUser").(models.User); ok {
		return user, true
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return models.User{}, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}
