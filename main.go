package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/randevum/randevu-app/controllers"
	"github.com/randevum/randevu-app/cron"
	"github.com/randevum/randevu-app/db"
	"github.com/randevum/randevu-app/notify"
	"github.com/randevum/randevu-app/redis"
	"github.com/randevum/randevu-app/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	dispatcher := notify.NewDispatcher(notify.NewGormStore(db.DB), notify.NewWhatsAppClient())
	controllers.SetDispatcher(dispatcher)
	cron.StartCronJobs(dispatcher)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAvailabilityRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupCronRoutes(app)

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
