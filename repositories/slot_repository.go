package repositories

import (
	"context"
	"errors"

	"dreach.in/configs/configslog"
	"dreach.in/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ISlotRepository slot persistence.
type ISlotRepository interface {
	CreateMany(ctx context.Context, slots []models.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Slot, error)
	FindBySchedule(ctx context.Context, scheduleID uuid.UUID, onlyAvailable bool) ([]models.Slot, error)
	Book(ctx context.Context, id uuid.UUID, appointmentID uuid.UUID) (*models.Slot, error)
}

type SlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) ISlotRepository {
	return &SlotRepository{db: db}
}

// CreateMany inserts all slots with a single INSERT statement. IDs are written
// back into the given slice.
func (r *SlotRepository) CreateMany(ctx context.Context, slots []models.Slot) error {
	if len(slots) == 0 {
		return errors.New("no slots to insert")
	}
	if err := dbFor(ctx, r.db).Create(&slots).Error; err != nil {
		configslog.Log.Error("SlotRepository.CreateMany: DB error",
			zap.Stringer("schedule_id", slots[0].ScheduleID),
			zap.Int("count", len(slots)),
			zap.Error(err))
		return err
	}
	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Slot, error) {
	var slot models.Slot
	if err := dbFor(ctx, r.db).First(&slot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SlotRepository.FindByID: DB error", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	return &slot, nil
}

// FindBySchedule returns the slots of a schedule ordered by start time.
func (r *SlotRepository) FindBySchedule(ctx context.Context, scheduleID uuid.UUID, onlyAvailable bool) ([]models.Slot, error) {
	var slots []models.Slot
	query := dbFor(ctx, r.db).Where("schedule_id = ?", scheduleID)
	if onlyAvailable {
		query = query.Where("is_booked = ?", false)
	}
	if err := query.Order("start_time asc").Find(&slots).Error; err != nil {
		configslog.Log.Error("SlotRepository.FindBySchedule: DB error", zap.Stringer("schedule_id", scheduleID), zap.Error(err))
		return nil, err
	}
	return slots, nil
}

// Book marks an unbooked slot as booked for appointmentID in one conditional
// UPDATE, so two concurrent bookings cannot both succeed. Returns ErrNotFound
// for an unknown slot and ErrConflict when it was already booked.
func (r *SlotRepository) Book(ctx context.Context, id uuid.UUID, appointmentID uuid.UUID) (*models.Slot, error) {
	db := dbFor(ctx, r.db)

	var slot models.Slot
	result := db.Model(&slot).
		Clauses(clause.Returning{}).
		Where("id = ? AND is_booked = ?", id, false).
		Updates(map[string]interface{}{"is_booked": true, "appointment_id": appointmentID})
	if result.Error != nil {
		configslog.Log.Error("SlotRepository.Book: DB error",
			zap.Stringer("id", id), zap.Stringer("appointment_id", appointmentID), zap.Error(result.Error))
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := db.Model(&models.Slot{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return nil, err
		}
		if exists == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrConflict
	}
	return &slot, nil
}

var _ ISlotRepository = (*SlotRepository)(nil)
