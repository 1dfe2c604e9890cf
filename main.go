package main

import (
	"log"

	"lewagon/config"
	"lewagon/database"
	adminRoutes "lewagon/routers/adminRoutes"
	authRoutes "lewagon/routers/authRoutes"
	contactRoutes "lewagon/routers/contactRoutes"
	courseRoutes "lewagon/routers/courseRoutes"
	paymentRoutes "lewagon/routers/paymentRoutes"
	"lewagon/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
