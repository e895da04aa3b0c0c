package database

import (
	"context"
	"errors"
	"fmt"

	"dreach.in/configs/configslog"
	"dreach.in/database/migrations"
	"dreach.in/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside one transaction. Any failure
// rolls everything back and is returned to the caller.
func Initialize(ctx context.Context, db *gorm.DB, migrate bool, seed bool) (err error) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed flag given, nothing to do.")
		return nil
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		configslog.Log.Error("Could not begin database transaction", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Error("Database initialization panicked", zap.Any("panic_info", r))
			err = fmt.Errorf("database initialization panicked: %v", r)
			return
		}
		if err != nil {
			configslog.SLog.Warn("Rolling back because initialization failed.")
			if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
				configslog.Log.Error("Additional error during rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		if err = RunMigrationsInOrder(tx); err != nil {
			return err
		}
	} else {
		configslog.SLog.Info("Migrate flag not given, skipping migrations.")
	}

	if seed {
		if err = RunSeeders(ctx, tx); err != nil {
			return err
		}
	} else {
		configslog.SLog.Info("Seed flag not given, skipping seeders.")
	}

	configslog.SLog.Info("Committing transaction...")
	if err = tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Database initialization completed successfully")
	return nil
}

// RunMigrationsInOrder migrates parents before children so foreign keys resolve.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"clinic", migrations.MigrateClinicTables},
		{"schedules", migrations.MigrateSchedulesTables},
	}

	for _, step := range steps {
		configslog.SLog.Infof(" -> Running %s migrations...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migration failed", zap.String("step", step.name), zap.Error(err))
			return fmt.Errorf("migrate %s: %w", step.name, err)
		}
	}

	configslog.SLog.Info("All migrations completed.")
	return nil
}

func RunSeeders(ctx context.Context, db *gorm.DB) error {
	configslog.SLog.Info(" -> Running clinic seeder...")
	clinic, err := seeders.SeedClinic(db)
	if err != nil {
		configslog.Log.Error("Clinic seed failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Running schedule seeder...")
	if _, err := seeders.SeedDemoSchedule(ctx, db, clinic.Doctor); err != nil {
		configslog.Log.Error("Schedule seed failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("All seeders completed.")
	return nil
}
