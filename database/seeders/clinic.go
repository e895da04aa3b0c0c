package seeders

import (
	"errors"
	"fmt"
	"time"

	"dreach.in/configs/configslog"
	"dreach.in/models"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const seedPassword = "securepassword"

// ClinicSeed holds the records SeedClinic created or found.
type ClinicSeed struct {
	DoctorUser   models.User
	Doctor       models.Doctor
	PatientUser  models.User
	Patient      models.Patient
	Prescription models.Prescription
}

// SeedClinic creates a cardiologist, a patient and one prescription with two
// medications. Records already present (matched by user email) are reused.
func SeedClinic(db *gorm.DB) (*ClinicSeed, error) {
	configslog.SLog.Info("Clinic seed starting...")
	var seed ClinicSeed

	// Doctor and patient do not depend on each other; collect both failures.
	var errs error
	errs = multierr.Append(errs, seedDoctor(db, &seed))
	errs = multierr.Append(errs, seedPatient(db, &seed))
	if errs != nil {
		return nil, errs
	}

	if err := seedPrescription(db, &seed); err != nil {
		return nil, err
	}

	configslog.Log.Info("Clinic seed completed",
		zap.Stringer("doctor_user_id", seed.DoctorUser.ID),
		zap.Stringer("doctor_id", seed.Doctor.ID),
		zap.Stringer("patient_user_id", seed.PatientUser.ID),
		zap.Stringer("patient_id", seed.Patient.ID),
		zap.Stringer("prescription_id", seed.Prescription.ID),
		zap.Int("medications", len(seed.Prescription.Medications)))
	return &seed, nil
}

func seedDoctor(db *gorm.DB, seed *ClinicSeed) error {
	user, err := ensureUser(db, models.User{
		Name:  "Dr.Shreya Raj",
		Email: "shreyaraj@gmail.com",
		Phone: "1234567890",
		Role:  models.RoleDoctor,
	})
	if err != nil {
		return err
	}
	seed.DoctorUser = *user

	err = db.Where(models.Doctor{UserID: user.ID}).
		Attrs(models.Doctor{Specialization: "Cardiology"}).
		FirstOrCreate(&seed.Doctor).Error
	if err != nil {
		configslog.Log.Error("Doctor could not be seeded", zap.String("email", user.Email), zap.Error(err))
		return fmt.Errorf("seed doctor: %w", err)
	}
	seed.Doctor.User = *user
	return nil
}

func seedPatient(db *gorm.DB, seed *ClinicSeed) error {
	user, err := ensureUser(db, models.User{
		Name:  "Anand Kumar",
		Email: "anand@dreach.in",
		Phone: "0987654321",
		Role:  models.RolePatient,
	})
	if err != nil {
		return err
	}
	seed.PatientUser = *user

	err = db.Where(models.Patient{UserID: user.ID}).
		Attrs(models.Patient{
			Address:    "Patna, Bihar",
			Conditions: datatypes.JSONSlice[string]{"Hypertension"},
			BloodGroup: "O+",
		}).
		FirstOrCreate(&seed.Patient).Error
	if err != nil {
		configslog.Log.Error("Patient could not be seeded", zap.String("email", user.Email), zap.Error(err))
		return fmt.Errorf("seed patient: %w", err)
	}
	seed.Patient.User = *user
	return nil
}

func seedPrescription(db *gorm.DB, seed *ClinicSeed) error {
	const notes = "Take medications after meals."

	var existing models.Prescription
	err := db.Preload("Medications").
		Where("patient_id = ? AND doctor_id = ? AND notes = ?", seed.Patient.ID, seed.Doctor.ID, notes).
		First(&existing).Error
	if err == nil {
		configslog.SLog.Debugf("Prescription %s already exists, skipping.", existing.ID)
		seed.Prescription = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Database error while checking prescription", zap.Error(err))
		return err
	}

	prescription := models.Prescription{
		PatientID:  seed.Patient.ID,
		DoctorID:   seed.Doctor.ID,
		Notes:      notes,
		DateIssued: time.Now().UTC(),
		Medications: []models.Medication{
			{
				Name: "Paracetamol", Dosage: "500mg", Frequency: "Twice a day", Duration: "5 days",
				Status: models.MedicationStatusActive, PatientID: seed.Patient.ID,
			},
			{
				Name: "Ibuprofen", Dosage: "200mg", Frequency: "Once a day", Duration: "3 days",
				Status: models.MedicationStatusActive, PatientID: seed.Patient.ID,
			},
		},
	}
	// Patient and Doctor are already stored; only insert the prescription and its medications.
	if err := db.Omit("Patient", "Doctor").Create(&prescription).Error; err != nil {
		configslog.Log.Error("Prescription could not be seeded", zap.Error(err))
		return fmt.Errorf("seed prescription: %w", err)
	}
	configslog.SLog.Infof("Prescription %s created with %d medications.", prescription.ID, len(prescription.Medications))
	seed.Prescription = prescription
	return nil
}

// ensureUser returns the user with the same email or creates it with the seed password hashed.
func ensureUser(db *gorm.DB, user models.User) (*models.User, error) {
	var existing models.User
	result := db.Where("email = ?", user.Email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("User '%s' already exists, skipping creation.", user.Email)
		return &existing, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Database error while checking user", zap.String("email", user.Email), zap.Error(result.Error))
		return nil, result.Error
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", user.Email, err)
	}
	user.Password = string(hashed)

	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("User could not be created", zap.String("email", user.Email), zap.Error(err))
		return nil, fmt.Errorf("seed user %s: %w", user.Email, err)
	}
	configslog.SLog.Infof("User '%s' created (ID: %s, role: %s).", user.Email, user.ID, user.Role)
	return &user, nil
}
