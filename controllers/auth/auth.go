package authController

import (
	"log"
	"time"

	"lewagon/config"
	"lewagon/database"
	"lewagon/middleware"
	"lewagon/models"
	"lewagon/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		Phone     string `json:"phone"`
		Expertise string `json:"expertise"`
		Bio       string `json:"bio"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     reqData.Role,
		Phone:    reqData.Phone,
	}

	// Create the user and its role profile together
	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	switch reqData.Role {
	case models.RoleStudent:
		profile := models.StudentProfile{UserID: newUser.ID, Phone: reqData.Phone}
		if err := tx.Create(&profile).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating student profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
		}
	case models.RoleInstructor:
		profile := models.InstructorProfile{UserID: newUser.ID, Expertise: reqData.Expertise, Bio: reqData.Bio}
		if err := tx.Create(&profile).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating instructor profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
		}
	}
	tx.Commit()

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout blacklists the presented token by its jti until it would have
// expired anyway.
func Logout(c *fiber.Ctx) error {
	jti, ok := c.Locals("jti").(string)
	if !ok || jti == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid token!", nil)
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	if exp, ok := c.Locals("tokenExp").(time.Time); ok {
		expiresAt = exp
	}

	revoked := models.RevokedToken{Jti: jti, ExpiresAt: expiresAt}
	if err := database.Database.Db.Create(&revoked).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully logged out.", nil)
}

// Profile returns the current user with its role profile attached.
func Profile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user.Password = ""
	response := fiber.Map{"user": user}

	switch user.Role {
	case models.RoleStudent:
		var profile models.StudentProfile
		if err := database.Database.Db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			response["student_profile"] = profile
		}
	case models.RoleInstructor:
		var profile models.InstructorProfile
		if err := database.Database.Db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			response["instructor_profile"] = profile
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", response)
}
