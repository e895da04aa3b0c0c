package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dreach.in/configs/configslog"
	"dreach.in/models"
	"dreach.in/pkg/timeslots"
	"dreach.in/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SlotServiceError is returned by the slot service.
type SlotServiceError string

func (e SlotServiceError) Error() string { return string(e) }

const (
	ErrSlotInvalidInput           SlotServiceError = "invalid slot input"
	ErrSlotNotFound               SlotServiceError = "slot not found"
	ErrSlotAlreadyBooked          SlotServiceError = "slot is already booked"
	ErrAppointmentAlreadyAssigned SlotServiceError = "appointment already holds another slot"
)

// MaxSlotsPerGeneration keeps one generation inside a single INSERT: postgres
// accepts at most 65535 bind parameters and a slot row binds 8.
const MaxSlotsPerGeneration = 8000

// ISlotService generates, lists and books slots.
type ISlotService interface {
	GenerateSlots(ctx context.Context, scheduleID uuid.UUID, start, end time.Time, durationMinutes int) ([]models.Slot, error)
	GenerateSlotsForSchedule(ctx context.Context, scheduleID uuid.UUID) ([]models.Slot, error)
	ListSlots(ctx context.Context, scheduleID uuid.UUID, onlyAvailable bool) ([]models.Slot, error)
	BookSlot(ctx context.Context, slotID uuid.UUID, appointmentID uuid.UUID) (*models.Slot, error)
}

type SlotService struct {
	repo         repositories.ISlotRepository
	scheduleRepo repositories.IScheduleRepository
}

func NewSlotService(repo repositories.ISlotRepository, scheduleRepo repositories.IScheduleRepository) ISlotService {
	return &SlotService{repo: repo, scheduleRepo: scheduleRepo}
}

// BuildSlots partitions [start, end) into durationMinutes-long slots owned by scheduleID.
// Nothing is persisted.
func BuildSlots(scheduleID uuid.UUID, start, end time.Time, durationMinutes int) ([]models.Slot, error) {
	if scheduleID == uuid.Nil {
		return nil, fmt.Errorf("%w: schedule id is required", ErrSlotInvalidInput)
	}
	if n := timeslots.Count(start, end, durationMinutes); n > MaxSlotsPerGeneration {
		return nil, fmt.Errorf("%w: window holds %d slots, at most %d can be generated at once", ErrSlotInvalidInput, n, MaxSlotsPerGeneration)
	}
	intervals, err := timeslots.PartitionMinutes(start, end, durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSlotInvalidInput, err)
	}

	slots := make([]models.Slot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, models.Slot{
			ScheduleID: scheduleID,
			StartTime:  iv.Start,
			EndTime:    iv.End,
		})
	}
	return slots, nil
}

// GenerateSlots builds the slots for the window and stores all of them with one
// bulk insert. An empty window stores nothing. An unknown schedule surfaces as
// ErrScheduleNotFound; other store errors are returned as is.
// Calling it twice for the same window creates a second, independent set.
func (s *SlotService) GenerateSlots(ctx context.Context, scheduleID uuid.UUID, start, end time.Time, durationMinutes int) ([]models.Slot, error) {
	slots, err := BuildSlots(scheduleID, start, end, durationMinutes)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		configslog.SLog.Infof("No full slot fits the window for schedule %s (%s - %s, %d min)",
			scheduleID, start.Format(time.RFC3339), end.Format(time.RFC3339), durationMinutes)
		return slots, nil
	}

	if err := s.repo.CreateMany(ctx, slots); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrScheduleNotFound
		}
		configslog.Log.Error("Slot generation failed",
			zap.Stringer("schedule_id", scheduleID), zap.Int("count", len(slots)), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Generated %d slots for schedule %s", len(slots), scheduleID)
	return slots, nil
}

// GenerateSlotsForSchedule generates over the schedule's own window and slot duration.
func (s *SlotService) GenerateSlotsForSchedule(ctx context.Context, scheduleID uuid.UUID) ([]models.Slot, error) {
	schedule, err := s.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return s.GenerateSlots(ctx, schedule.ID, schedule.StartTime, schedule.EndTime, schedule.SlotDuration)
}

func (s *SlotService) ListSlots(ctx context.Context, scheduleID uuid.UUID, onlyAvailable bool) ([]models.Slot, error) {
	if _, err := s.findSchedule(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.repo.FindBySchedule(ctx, scheduleID, onlyAvailable)
}

// BookSlot claims an unbooked slot for an appointment. At most one booking per
// slot is enforced by the store's conditional update.
func (s *SlotService) BookSlot(ctx context.Context, slotID uuid.UUID, appointmentID uuid.UUID) (*models.Slot, error) {
	if slotID == uuid.Nil || appointmentID == uuid.Nil {
		return nil, fmt.Errorf("%w: slot id and appointment id are required", ErrSlotInvalidInput)
	}

	slot, err := s.repo.Book(ctx, slotID, appointmentID)
	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrSlotNotFound
	case errors.Is(err, repositories.ErrConflict):
		return nil, ErrSlotAlreadyBooked
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, ErrAppointmentAlreadyAssigned
	default:
		return nil, err
	}

	configslog.SLog.Infof("Slot %s booked for appointment %s", slotID, appointmentID)
	return slot, nil
}

func (s *SlotService) findSchedule(ctx context.Context, scheduleID uuid.UUID) (*models.Schedule, error) {
	if scheduleID == uuid.Nil {
		return nil, fmt.Errorf("%w: schedule id is required", ErrSlotInvalidInput)
	}
	schedule, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return schedule, nil
}

var _ ISlotService = (*SlotService)(nil)
