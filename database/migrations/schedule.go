package migrations

import (
	"dreach.in/configs/configslog"
	"dreach.in/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSchedulesTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating schedules & slots tables...")
	if err := db.AutoMigrate(&models.Schedule{}, &models.Slot{}); err != nil {
		configslog.Log.Error("Failed to migrate schedules & slots tables", zap.Error(err))
		return err
	}

	// A slot may never end before it starts; generation always emits positive lengths.
	if !db.Migrator().HasConstraint(&models.Slot{}, "chk_slots_time_order") {
		sql := `ALTER TABLE slots ADD CONSTRAINT chk_slots_time_order CHECK (end_time > start_time)`
		if err := db.Exec(sql).Error; err != nil {
			configslog.Log.Error("Failed to add slot time order constraint", zap.Error(err))
			return err
		}
	}

	configslog.SLog.Info("Schedules & slots tables migrated successfully")
	return nil
}
