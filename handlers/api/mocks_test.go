package handlers

import (
	"context"
	"time"

	"dreach.in/models"
	"dreach.in/services"

	"github.com/google/uuid"
)

type generateCall struct {
	scheduleID uuid.UUID
	start, end time.Time
	duration   int
}

type mockSlotService struct {
	slots          []models.Slot
	err            error
	generateCalls  []generateCall
	forScheduleIDs []uuid.UUID
	listAvailable  *bool
	bookedSlot     uuid.UUID
	bookedAppt     uuid.UUID
}

func (m *mockSlotService) GenerateSlots(_ context.Context, scheduleID uuid.UUID, start, end time.Time, durationMinutes int) ([]models.Slot, error) {
	m.generateCalls = append(m.generateCalls, generateCall{scheduleID, start, end, durationMinutes})
	return m.slots, m.err
}

func (m *mockSlotService) GenerateSlotsForSchedule(_ context.Context, scheduleID uuid.UUID) ([]models.Slot, error) {
	m.forScheduleIDs = append(m.forScheduleIDs, scheduleID)
	return m.slots, m.err
}

func (m *mockSlotService) ListSlots(_ context.Context, _ uuid.UUID, onlyAvailable bool) ([]models.Slot, error) {
	m.listAvailable = &onlyAvailable
	return m.slots, m.err
}

func (m *mockSlotService) BookSlot(_ context.Context, slotID uuid.UUID, appointmentID uuid.UUID) (*models.Slot, error) {
	m.bookedSlot, m.bookedAppt = slotID, appointmentID
	if m.err != nil {
		return nil, m.err
	}
	return &models.Slot{BaseModel: models.BaseModel{ID: slotID}, IsBooked: true, AppointmentID: &appointmentID}, nil
}

var _ services.ISlotService = (*mockSlotService)(nil)

type mockScheduleService struct {
	err         error
	received    *models.Schedule
	withSlots   bool
	gotID       uuid.UUID
	createdSlot int
}

func (m *mockScheduleService) CreateSchedule(_ context.Context, schedule models.Schedule) (*models.Schedule, error) {
	m.received = &schedule
	if m.err != nil {
		return nil, m.err
	}
	schedule.ID = uuid.New()
	return &schedule, nil
}

func (m *mockScheduleService) CreateScheduleWithSlots(ctx context.Context, schedule models.Schedule) (*models.Schedule, error) {
	m.withSlots = true
	created, err := m.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, err
	}
	created.Slots = make([]models.Slot, m.createdSlot)
	return created, nil
}

func (m *mockScheduleService) GetSchedule(_ context.Context, id uuid.UUID) (*models.Schedule, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return &models.Schedule{BaseModel: models.BaseModel{ID: id}, Location: "Room 1"}, nil
}

var _ services.IScheduleService = (*mockScheduleService)(nil)

type mockReportService struct {
	report *services.ClinicReport
	err    error
}

func (m *mockReportService) BuildClinicReport(context.Context) (*services.ClinicReport, error) {
	return m.report, m.err
}

var _ services.IReportService = (*mockReportService)(nil)
