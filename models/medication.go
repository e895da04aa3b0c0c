package models

import "github.com/google/uuid"

type MedicationStatus string

const (
	MedicationStatusActive    MedicationStatus = "Active"
	MedicationStatusCompleted MedicationStatus = "Completed"
	MedicationStatusStopped   MedicationStatus = "Stopped"
)

type Medication struct {
	BaseModel
	PrescriptionID uuid.UUID        `gorm:"type:uuid;not null;index" json:"prescription_id"`
	PatientID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"patient_id"`
	Name           string           `gorm:"type:varchar(150);not null" json:"name"`
	Dosage         string           `gorm:"type:varchar(50)" json:"dosage"`
	Frequency      string           `gorm:"type:varchar(100)" json:"frequency"`
	Duration       string           `gorm:"type:varchar(50)" json:"duration"`
	Status         MedicationStatus `gorm:"type:varchar(20);not null;default:'Active';index" json:"status"`
}
