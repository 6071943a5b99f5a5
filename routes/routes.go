package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"tripmate/config"
	controller "tripmate/controllers"
	"tripmate/middleware"
)

// SetupRoutes registers every endpoint under /api. The database handle is
// injected into each controller here; nothing reads it from global state.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db, log.New(os.Stdout, "AUTH: ", log.LstdFlags))
	tripController := controller.NewTripController(db, log.New(os.Stdout, "TRIP: ", log.LstdFlags))
	invitationController := controller.NewInvitationController(db, log.New(os.Stdout, "INVITE: ", log.LstdFlags))

	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	api.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hello from the Travel Planner backend!",
		})
	})

	// Public auth endpoints
	auth := api.Group("/auth")
	auth.Post("/signup", authController.Signup)
	auth.Post("/login", authController.Login)

	// Trip and invitation routes. Token verification is only applied when
	// enforcement is switched on; by default tokens are issued but never
	// checked here.
	var guarded []fiber.Handler
	if config.AppConfig.AuthEnforced {
		guarded = append(guarded, middleware.Protected(db))
	}

	trips := api.Group("/trips", guarded...)
	trips.Post("/", tripController.CreateTrip)
	trips.Get("/", tripController.GetTrips)
	trips.Delete("/:id", tripController.DeleteTrip)
	trips.Post("/:tripId/activities", tripController.AddActivity)
	trips.Post("/:tripId/invite", invitationController.InviteMember)

	user := api.Group("/user", guarded...)
	user.Get("/invitations", invitationController.GetUserInvitations)

	invitations := api.Group("/invitations", guarded...)
	invitations.Put("/:invitationId/accept", invitationController.AcceptInvitation)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("API routes initialized successfully")
}
