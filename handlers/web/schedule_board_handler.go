package handlers

import (
	"errors"
	"net/http"

	"dreach.in/configs/configslog"
	"dreach.in/pkg/renderer"
	"dreach.in/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScheduleBoardHandler renders a schedule and its slots as a page for front-desk staff.
type ScheduleBoardHandler struct {
	scheduleService services.IScheduleService
	slotService     services.ISlotService
}

func NewScheduleBoardHandler(scheduleService services.IScheduleService, slotService services.ISlotService) *ScheduleBoardHandler {
	return &ScheduleBoardHandler{scheduleService: scheduleService, slotService: slotService}
}

// ShowSlots GET /schedules/:id/slots
func (h *ScheduleBoardHandler) ShowSlots(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return renderer.Render(c, "errors/404", "layouts/main", fiber.Map{"Title": "Schedule not found"}, http.StatusNotFound)
	}

	schedule, err := h.scheduleService.GetSchedule(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			return renderer.Render(c, "errors/404", "layouts/main", fiber.Map{"Title": "Schedule not found"}, http.StatusNotFound)
		}
		configslog.Log.Error("Board - ShowSlots Error", zap.Stringer("schedule_id", id), zap.Error(err))
		return renderer.Render(c, "errors/500", "layouts/main", fiber.Map{"Title": "Error"}, http.StatusInternalServerError)
	}

	slots, err := h.slotService.ListSlots(c.UserContext(), id, false)
	if err != nil {
		configslog.Log.Error("Board - ShowSlots Error", zap.Stringer("schedule_id", id), zap.Error(err))
		return renderer.Render(c, "errors/500", "layouts/main", fiber.Map{"Title": "Error"}, http.StatusInternalServerError)
	}

	booked := 0
	for _, s := range slots {
		if s.IsBooked {
			booked++
		}
	}

	return renderer.Render(c, "schedules/slots", "layouts/main", fiber.Map{
		"Title":     "Slots - " + schedule.Location,
		"Schedule":  schedule,
		"Slots":     slots,
		"Booked":    booked,
		"Available": len(slots) - booked,
	})
}
