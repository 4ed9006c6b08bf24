package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tmercan/fightnight/internal/app/controllers"
	"github.com/tmercan/fightnight/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	profileController *controllers.ProfileController,
	rsvpController *controllers.RSVPController,
	chatController *controllers.ChatController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	api := router.Group("/api")
	api.Use(sessionMiddleware.Resolve())

	// Page payloads. Entity ids travel in the query string, mirroring the
	// page-to-URL mapping the frontend links with.
	pages := api.Group("/pages")
	{
		pages.GET("/events", eventController.List)
		pages.GET("/event-details", eventController.Details)
		pages.GET("/profile", profileController.Show)
	}

	// Auth surface. Login is a redirect to the hosted provider; no
	// credentials pass through this application.
	auth := api.Group("/auth")
	{
		auth.GET("/session", authController.Session)
		auth.GET("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Event-scoped reads and mutations.
	events := api.Group("/events")
	{
		events.POST("", eventController.Create)
		events.POST("/:id/bouts", eventController.AddBout)
		events.POST("/:id/rsvp", rsvpController.RSVP)
		events.POST("/:id/waiver", rsvpController.SignWaiver)
		events.GET("/:id/chat", chatController.Panel)
		events.POST("/:id/chat", chatController.Send)
	}

	// Fighter profile creation.
	api.POST("/fighters", profileController.CreateFighter)

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
