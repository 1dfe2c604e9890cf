package contactController

import (
	"log"

	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"
	"lewagon/utils"

	"github.com/gofiber/fiber/v2"
)

// ContactRequest is the validated contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact persists a contact form message and notifies the operator
// inbox. The notification is best-effort: a mail failure is logged and the
// intake still succeeds.
func SubmitContact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		log.Printf("Failed to save contact message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while processing your request. Please try again later.", nil)
	}

	go func(m models.ContactMessage) {
		if err := utils.SendContactNotificationEmail(m.Name, m.Email, m.Subject, m.Message); err != nil {
			log.Printf("Failed to send contact form email for %s: %v", m.Email, err)
		}
	}(message)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thank you for your message! We will get back to you soon.", nil)
}
