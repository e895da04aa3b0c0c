package migrations

import (
	"dreach.in/configs/configslog"
	"dreach.in/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateClinicTables creates doctors, patients, prescriptions and medications.
// The users table must exist first.
func MigrateClinicTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating doctors, patients, prescriptions & medications tables...")
	err := db.AutoMigrate(&models.Doctor{}, &models.Patient{}, &models.Prescription{}, &models.Medication{})
	if err != nil {
		configslog.Log.Error("Failed to migrate clinic tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Clinic tables migrated successfully")
	return nil
}
