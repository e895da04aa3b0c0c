package handlers

import (
	"net/http"
	"time"

	"dreach.in/models"
	"dreach.in/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SlotHandler serves slot generation, listing and booking.
type SlotHandler struct {
	service services.ISlotService
}

func NewSlotHandler(service services.ISlotService) *SlotHandler {
	return &SlotHandler{service: service}
}

type generateRequest struct {
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes *int       `json:"duration_minutes"`
}

func (r generateRequest) empty() bool {
	return r.StartTime == nil && r.EndTime == nil && r.DurationMinutes == nil
}

func (r generateRequest) complete() bool {
	return r.StartTime != nil && r.EndTime != nil && r.DurationMinutes != nil
}

type bookRequest struct {
	AppointmentID string `json:"appointment_id"`
}

type slotsResponse struct {
	ScheduleID uuid.UUID     `json:"schedule_id"`
	Count      int           `json:"count"`
	Slots      []models.Slot `json:"slots"`
}

// GenerateSlots POST /api/schedules/:id/slots/generate
// An empty body generates over the schedule's own window.
func (h *SlotHandler) GenerateSlots(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid schedule id")
	}

	var req generateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	var slots []models.Slot
	switch {
	case req.empty():
		slots, err = h.service.GenerateSlotsForSchedule(c.UserContext(), scheduleID)
	case req.complete():
		slots, err = h.service.GenerateSlots(c.UserContext(), scheduleID, *req.StartTime, *req.EndTime, *req.DurationMinutes)
	default:
		return badRequest(c, "start_time, end_time and duration_minutes must be given together")
	}
	if err != nil {
		return errorResponse(c, "GenerateSlots", err)
	}
	return c.Status(http.StatusCreated).JSON(slotsResponse{ScheduleID: scheduleID, Count: len(slots), Slots: slots})
}

// ListSlots GET /api/schedules/:id/slots[?available=true]
func (h *SlotHandler) ListSlots(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid schedule id")
	}
	slots, err := h.service.ListSlots(c.UserContext(), scheduleID, c.QueryBool("available", false))
	if err != nil {
		return errorResponse(c, "ListSlots", err)
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	return c.JSON(slotsResponse{ScheduleID: scheduleID, Count: len(slots), Slots: slots})
}

// BookSlot POST /api/slots/:id/book
func (h *SlotHandler) BookSlot(c *fiber.Ctx) error {
	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}
	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	slot, err := h.service.BookSlot(c.UserContext(), slotID, appointmentID)
	if err != nil {
		return errorResponse(c, "BookSlot", err)
	}
	return c.JSON(slot)
}
