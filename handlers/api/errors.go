package handlers

import (
	"errors"
	"net/http"

	"dreach.in/configs/configslog"
	"dreach.in/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusFor maps service errors to HTTP status codes. Anything unknown is a
// store failure and becomes 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrSlotInvalidInput),
		errors.Is(err, services.ErrScheduleInvalidInput),
		errors.Is(err, services.ErrScheduleProviderRequired),
		errors.Is(err, services.ErrScheduleWindowInvalid),
		errors.Is(err, services.ErrScheduleDurationInvalid),
		errors.Is(err, services.ErrScheduleDurationTooLong):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSlotNotFound),
		errors.Is(err, services.ErrScheduleNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSlotAlreadyBooked),
		errors.Is(err, services.ErrAppointmentAlreadyAssigned):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, op string, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		configslog.Log.Error("API - "+op+" Error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
