package repositories

import (
	"context"
	"errors"

	"dreach.in/configs/configslog"
	"dreach.in/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IScheduleRepository schedule persistence.
type IScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Schedule, error)
}

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) IScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	if schedule == nil {
		return errors.New("cannot create a nil schedule")
	}
	// Slots are generated separately; never cascade-insert them from here.
	return dbFor(ctx, r.db).Omit("Slots").Create(schedule).Error
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	err := dbFor(ctx, r.db).First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ScheduleRepository.FindByID: DB error", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	return &schedule, nil
}

var _ IScheduleRepository = (*ScheduleRepository)(nil)
