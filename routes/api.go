package routes

import (
	api_handlers "dreach.in/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes mounts the JSON API under /api.
func registerAPIRoutes(app *fiber.App, svc Services) {
	scheduleHandler := api_handlers.NewScheduleHandler(svc.Schedule)
	slotHandler := api_handlers.NewSlotHandler(svc.Slot)
	reportHandler := api_handlers.NewReportHandler(svc.Report)

	api := app.Group("/api")

	api.Post("/schedules", scheduleHandler.CreateSchedule)               // POST /api/schedules[?generate=true]
	api.Get("/schedules/:id", scheduleHandler.GetSchedule)               // GET /api/schedules/{id}
	api.Post("/schedules/:id/slots/generate", slotHandler.GenerateSlots) // POST /api/schedules/{id}/slots/generate
	api.Get("/schedules/:id/slots", slotHandler.ListSlots)               // GET /api/schedules/{id}/slots[?available=true]
	api.Post("/slots/:id/book", slotHandler.BookSlot)                    // POST /api/slots/{id}/book
	api.Get("/reports/clinic", reportHandler.ClinicReport)               // GET /api/reports/clinic
}
