package seeders

import (
	"context"
	"errors"
	"time"

	"dreach.in/configs/configslog"
	"dreach.in/models"
	"dreach.in/repositories"
	"dreach.in/services"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedDemoSchedule creates a weekly on-desk schedule for the seeded doctor and
// generates its 15 minute slots. It does nothing if the doctor already has a
// schedule starting at the same instant, so slots are never generated twice.
func SeedDemoSchedule(ctx context.Context, db *gorm.DB, doctor models.Doctor) (*models.Schedule, error) {
	start := time.Date(2025, 3, 28, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 28, 11, 0, 0, 0, time.UTC)
	providerID := doctor.ID.String()

	var existing models.Schedule
	err := db.WithContext(ctx).
		Where("service_provider_id = ? AND start_time = ?", providerID, start).
		First(&existing).Error
	if err == nil {
		configslog.SLog.Debugf("Schedule %s already exists for provider %s, skipping.", existing.ID, providerID)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	day := datatypes.Date(start)
	scheduleRepo := repositories.NewScheduleRepository(db)
	slotService := services.NewSlotService(repositories.NewSlotRepository(db), scheduleRepo)
	scheduleService := services.NewScheduleService(scheduleRepo, slotService, repositories.NewTransactor(db))

	schedule, err := scheduleService.CreateScheduleWithSlots(ctx, models.Schedule{
		ServiceProviderID: providerID,
		Date:              &day,
		DayOfWeek:         start.Weekday().String(),
		IsRecurring:       true,
		RecurrenceType:    models.RecurrenceWeekly,
		StartTime:         start,
		EndTime:           end,
		SlotDuration:      15,
		Location:          "Clinic A",
		IsAvailable:       true,
		ServiceType:       models.ServiceTypeOndesk,
	})
	if err != nil {
		return nil, err
	}
	configslog.SLog.Infof("Demo schedule %s seeded with %d slots.", schedule.ID, len(schedule.Slots))
	return schedule, nil
}
