package repositories

import (
	"context"

	"dreach.in/configs/configslog"
	"dreach.in/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IClinicRepository read access to users and clinical records.
type IClinicRepository interface {
	FindUsers(ctx context.Context) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindDoctorsWithUser(ctx context.Context) ([]models.Doctor, error)
	FindPatientsWithUser(ctx context.Context) ([]models.Patient, error)
	FindPrescriptionsWithRelations(ctx context.Context) ([]models.Prescription, error)
}

type ClinicRepository struct {
	db *gorm.DB
}

func NewClinicRepository(db *gorm.DB) IClinicRepository {
	return &ClinicRepository{db: db}
}

func (r *ClinicRepository) FindUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := dbFor(ctx, r.db).Order("created_at asc").Find(&users).Error; err != nil {
		configslog.Log.Error("ClinicRepository.FindUsers: DB error", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (r *ClinicRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := dbFor(ctx, r.db).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *ClinicRepository) FindDoctorsWithUser(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := dbFor(ctx, r.db).Preload("User").Order("created_at asc").Find(&doctors).Error; err != nil {
		configslog.Log.Error("ClinicRepository.FindDoctorsWithUser: DB error", zap.Error(err))
		return nil, err
	}
	return doctors, nil
}

func (r *ClinicRepository) FindPatientsWithUser(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := dbFor(ctx, r.db).Preload("User").Order("created_at asc").Find(&patients).Error; err != nil {
		configslog.Log.Error("ClinicRepository.FindPatientsWithUser: DB error", zap.Error(err))
		return nil, err
	}
	return patients, nil
}

// FindPrescriptionsWithRelations loads patient.user, doctor.user and medications.
func (r *ClinicRepository) FindPrescriptionsWithRelations(ctx context.Context) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := dbFor(ctx, r.db).
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Medications", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Order("date_issued desc").
		Find(&prescriptions).Error
	if err != nil {
		configslog.Log.Error("ClinicRepository.FindPrescriptionsWithRelations: DB error", zap.Error(err))
		return nil, err
	}
	return prescriptions, nil
}

var _ IClinicRepository = (*ClinicRepository)(nil)
