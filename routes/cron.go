package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/randevum/randevu-app/controllers"
	"github.com/randevum/randevu-app/middleware"
)

// SetupCronRoutes configures the scheduler-triggered sweep routes
func SetupCronRoutes(app *fiber.App) {
	cron := app.Group("/cron", middleware.CronAuth())
	cron.Post("/reminders", controllers.RunReminderSweep)
	cron.Post("/staff-digest", controllers.RunStaffDigest)
	cron.Post("/owner-digest", controllers.RunOwnerDigest)
}
