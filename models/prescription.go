package models

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is issued by a doctor to a patient and groups the prescribed medications.
type Prescription struct {
	BaseModel
	PatientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Notes      string    `gorm:"type:text" json:"notes"`
	DateIssued time.Time `gorm:"type:timestamptz;not null" json:"date_issued"`

	Patient     Patient      `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`
	Doctor      Doctor       `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"doctor"`
	Medications []Medication `gorm:"foreignKey:PrescriptionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"medications"`
}
