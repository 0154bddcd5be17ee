package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/randevum/randevu-app/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Post("/:id/confirmation", controllers.SendConfirmation)
}
