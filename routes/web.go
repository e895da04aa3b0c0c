package routes

import (
	web_handlers "dreach.in/handlers/web"

	"github.com/gofiber/fiber/v2"
)

func registerWebRoutes(app *fiber.App, svc Services) {
	boardHandler := web_handlers.NewScheduleBoardHandler(svc.Schedule, svc.Slot)

	app.Get("/schedules/:id/slots", boardHandler.ShowSlots) // GET /schedules/{id}/slots
}
