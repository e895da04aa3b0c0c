package handlers

import (
	"net/http"
	"strings"
	"time"

	"dreach.in/models"
	"dreach.in/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleHandler serves /api/schedules.
type ScheduleHandler struct {
	service services.IScheduleService
}

func NewScheduleHandler(service services.IScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

type scheduleRequest struct {
	ServiceProviderID string    `json:"service_provider_id"`
	Date              string    `json:"date"` // YYYY-MM-DD, optional
	DayOfWeek         string    `json:"day_of_week"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrenceType    string    `json:"recurrence_type"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	SlotDuration      int       `json:"slot_duration"`
	Location          string    `json:"location"`
	IsAvailable       *bool     `json:"is_available"`
	ServiceType       string    `json:"service_type"`
}

func (r scheduleRequest) toModel() (models.Schedule, error) {
	schedule := models.Schedule{
		ServiceProviderID: strings.TrimSpace(r.ServiceProviderID),
		DayOfWeek:         r.DayOfWeek,
		IsRecurring:       r.IsRecurring,
		RecurrenceType:    models.RecurrenceType(r.RecurrenceType),
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		SlotDuration:      r.SlotDuration,
		Location:          r.Location,
		IsAvailable:       true,
		ServiceType:       models.ServiceType(r.ServiceType),
	}
	if r.IsAvailable != nil {
		schedule.IsAvailable = *r.IsAvailable
	}
	if r.Date != "" {
		d, err := time.Parse(time.DateOnly, r.Date)
		if err != nil {
			return schedule, err
		}
		day := datatypes.Date(d)
		schedule.Date = &day
	}
	return schedule, nil
}

// CreateSchedule POST /api/schedules[?generate=true]
func (h *ScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	schedule, err := req.toModel()
	if err != nil {
		return badRequest(c, "date must be formatted as YYYY-MM-DD")
	}

	var created *models.Schedule
	if c.QueryBool("generate", false) {
		created, err = h.service.CreateScheduleWithSlots(c.UserContext(), schedule)
	} else {
		created, err = h.service.CreateSchedule(c.UserContext(), schedule)
	}
	if err != nil {
		return errorResponse(c, "CreateSchedule", err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// GetSchedule GET /api/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid schedule id")
	}
	schedule, err := h.service.GetSchedule(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, "GetSchedule", err)
	}
	return c.JSON(schedule)
}
