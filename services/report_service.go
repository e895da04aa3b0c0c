package services

import (
	"context"

	"dreach.in/configs/configslog"
	"dreach.in/models"
	"dreach.in/repositories"

	"go.uber.org/zap"
)

// ClinicReport is a snapshot of the clinical records with their relations loaded.
type ClinicReport struct {
	Users         []models.User         `json:"users"`
	Doctors       []models.Doctor       `json:"doctors"`
	Patients      []models.Patient      `json:"patients"`
	Prescriptions []models.Prescription `json:"prescriptions"`
}

type IReportService interface {
	BuildClinicReport(ctx context.Context) (*ClinicReport, error)
}

type ReportService struct {
	repo repositories.IClinicRepository
}

func NewReportService(repo repositories.IClinicRepository) IReportService {
	return &ReportService{repo: repo}
}

// BuildClinicReport reads users, doctors, patients and prescriptions in that
// order and stops at the first store error.
func (s *ReportService) BuildClinicReport(ctx context.Context) (*ClinicReport, error) {
	var (
		report ClinicReport
		err    error
	)

	if report.Users, err = s.repo.FindUsers(ctx); err != nil {
		return nil, err
	}
	if report.Doctors, err = s.repo.FindDoctorsWithUser(ctx); err != nil {
		return nil, err
	}
	if report.Patients, err = s.repo.FindPatientsWithUser(ctx); err != nil {
		return nil, err
	}
	if report.Prescriptions, err = s.repo.FindPrescriptionsWithRelations(ctx); err != nil {
		return nil, err
	}

	configslog.Log.Info("Clinic report built",
		zap.Int("users", len(report.Users)),
		zap.Int("doctors", len(report.Doctors)),
		zap.Int("patients", len(report.Patients)),
		zap.Int("prescriptions", len(report.Prescriptions)))
	return &report, nil
}

var _ IReportService = (*ReportService)(nil)
