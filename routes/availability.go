package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/randevum/randevu-app/controllers"
)

// SetupAvailabilityRoutes configures the slot query routes
func SetupAvailabilityRoutes(app *fiber.App) {
	business := app.Group("/businesses")
	business.Get("/:id/slots", controllers.GetAvailableSlots)
}
