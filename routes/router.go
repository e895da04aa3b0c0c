package routes

import (
	"dreach.in/repositories"
	"dreach.in/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Services is everything the handlers depend on.
type Services struct {
	Schedule services.IScheduleService
	Slot     services.ISlotService
	Report   services.IReportService
}

// NewServices wires repositories and services on db.
func NewServices(db *gorm.DB) Services {
	scheduleRepo := repositories.NewScheduleRepository(db)
	slotService := services.NewSlotService(repositories.NewSlotRepository(db), scheduleRepo)
	return Services{
		Schedule: services.NewScheduleService(scheduleRepo, slotService, repositories.NewTransactor(db)),
		Slot:     slotService,
		Report:   services.NewReportService(repositories.NewClinicRepository(db)),
	}
}

// SetupRoutes registers middleware and all route groups.
func SetupRoutes(app *fiber.App, svc Services) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	registerAPIRoutes(app, svc)
	registerWebRoutes(app, svc)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Must stay last.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
}
