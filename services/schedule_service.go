package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dreach.in/configs/configslog"
	"dreach.in/models"
	"dreach.in/pkg/timeslots"
	"dreach.in/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScheduleServiceError string

func (e ScheduleServiceError) Error() string { return string(e) }

const (
	ErrScheduleNotFound         ScheduleServiceError = "schedule not found"
	ErrScheduleInvalidInput     ScheduleServiceError = "invalid schedule input"
	ErrScheduleProviderRequired ScheduleServiceError = "service provider id is required"
	ErrScheduleWindowInvalid    ScheduleServiceError = "schedule start time must be before end time"
	ErrScheduleDurationInvalid  ScheduleServiceError = "slot duration (minutes) must be a positive number"
	ErrScheduleDurationTooLong  ScheduleServiceError = "slot duration must fit inside the schedule window"
)

// IScheduleService creates and reads schedules.
type IScheduleService interface {
	CreateSchedule(ctx context.Context, schedule models.Schedule) (*models.Schedule, error)
	CreateScheduleWithSlots(ctx context.Context, schedule models.Schedule) (*models.Schedule, error)
	GetSchedule(ctx context.Context, id uuid.UUID) (*models.Schedule, error)
}

type ScheduleService struct {
	repo        repositories.IScheduleRepository
	slotService ISlotService
	tx          repositories.ITransactor
}

func NewScheduleService(repo repositories.IScheduleRepository, slotService ISlotService, tx repositories.ITransactor) IScheduleService {
	return &ScheduleService{repo: repo, slotService: slotService, tx: tx}
}

var validServiceTypes = map[models.ServiceType]bool{
	models.ServiceTypeOndesk:    true,
	models.ServiceTypeOnline:    true,
	models.ServiceTypeHomeVisit: true,
}

var validRecurrenceTypes = map[models.RecurrenceType]bool{
	models.RecurrenceDaily:   true,
	models.RecurrenceWeekly:  true,
	models.RecurrenceMonthly: true,
}

// ValidateSchedule checks the fields slot generation depends on plus the
// enumerations. Descriptive fields are otherwise passed through untouched.
func ValidateSchedule(schedule models.Schedule) error {
	if strings.TrimSpace(schedule.ServiceProviderID) == "" {
		return ErrScheduleProviderRequired
	}
	if schedule.StartTime.IsZero() || schedule.EndTime.IsZero() || !schedule.StartTime.Before(schedule.EndTime) {
		return ErrScheduleWindowInvalid
	}
	if schedule.SlotDuration <= 0 {
		return ErrScheduleDurationInvalid
	}
	if timeslots.Count(schedule.StartTime, schedule.EndTime, schedule.SlotDuration) == 0 {
		return ErrScheduleDurationTooLong
	}
	if !validServiceTypes[schedule.ServiceType] {
		return fmt.Errorf("%w: unknown service type %q", ErrScheduleInvalidInput, schedule.ServiceType)
	}
	if schedule.IsRecurring && !validRecurrenceTypes[schedule.RecurrenceType] {
		return fmt.Errorf("%w: recurring schedule needs a recurrence type (Daily, Weekly, Monthly)", ErrScheduleInvalidInput)
	}
	if schedule.DayOfWeek != "" {
		if _, ok := parseWeekday(schedule.DayOfWeek); !ok {
			return fmt.Errorf("%w: unknown day of week %q", ErrScheduleInvalidInput, schedule.DayOfWeek)
		}
	}
	return nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(name)) {
			return d, true
		}
	}
	return 0, false
}

func normalizeSchedule(schedule *models.Schedule) {
	if schedule.ServiceType == "" {
		schedule.ServiceType = models.ServiceTypeOndesk
	}
	if d, ok := parseWeekday(schedule.DayOfWeek); ok {
		schedule.DayOfWeek = d.String()
	}
	schedule.Slots = nil
}

// CreateSchedule validates and stores one schedule record.
func (s *ScheduleService) CreateSchedule(ctx context.Context, schedule models.Schedule) (*models.Schedule, error) {
	normalizeSchedule(&schedule)
	if err := ValidateSchedule(schedule); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &schedule); err != nil {
		configslog.Log.Error("Schedule creation failed", zap.String("service_provider_id", schedule.ServiceProviderID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Schedule created: ID %s, provider %s, %s - %s every %d min",
		schedule.ID, schedule.ServiceProviderID,
		schedule.StartTime.Format(time.RFC3339), schedule.EndTime.Format(time.RFC3339), schedule.SlotDuration)
	return &schedule, nil
}

// CreateScheduleWithSlots stores the schedule and its generated slots in one
// transaction; either both are stored or neither.
func (s *ScheduleService) CreateScheduleWithSlots(ctx context.Context, schedule models.Schedule) (*models.Schedule, error) {
	var created *models.Schedule
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.CreateSchedule(txCtx, schedule)
		if err != nil {
			return err
		}
		slots, err := s.slotService.GenerateSlots(txCtx, created.ID, created.StartTime, created.EndTime, created.SlotDuration)
		if err != nil {
			return err
		}
		created.Slots = slots
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, id uuid.UUID) (*models.Schedule, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: schedule id is required", ErrScheduleInvalidInput)
	}
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return schedule, nil
}

var _ IScheduleService = (*ScheduleService)(nil)
