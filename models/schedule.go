package models

import (
	"time"

	"gorm.io/datatypes"
)

// ServiceType is how the appointment is delivered.
type ServiceType string

const (
	ServiceTypeOndesk    ServiceType = "OndeskAppointment"
	ServiceTypeOnline    ServiceType = "OnlineAppointment"
	ServiceTypeHomeVisit ServiceType = "HomeVisit"
)

type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = ""
	RecurrenceDaily   RecurrenceType = "Daily"
	RecurrenceWeekly  RecurrenceType = "Weekly"
	RecurrenceMonthly RecurrenceType = "Monthly"
)

// Schedule is a window in which a service provider takes appointments.
// Only StartTime, EndTime and SlotDuration drive slot generation; the rest is
// stored as given.
type Schedule struct {
	BaseModel
	ServiceProviderID string          `gorm:"type:varchar(100);not null;index" json:"service_provider_id"`
	Date              *datatypes.Date `gorm:"type:date" json:"date,omitempty"`
	DayOfWeek         string          `gorm:"type:varchar(10)" json:"day_of_week"`
	IsRecurring       bool            `gorm:"not null" json:"is_recurring"`
	RecurrenceType    RecurrenceType  `gorm:"type:varchar(20)" json:"recurrence_type"`
	StartTime         time.Time       `gorm:"type:timestamptz;not null" json:"start_time"`
	EndTime           time.Time       `gorm:"type:timestamptz;not null" json:"end_time"`
	SlotDuration      int             `gorm:"type:integer;not null" json:"slot_duration"` // minutes
	Location          string          `gorm:"type:varchar(200)" json:"location"`
	IsAvailable       bool            `gorm:"not null;index" json:"is_available"`
	ServiceType       ServiceType     `gorm:"type:varchar(30);not null" json:"service_type"`

	Slots []Slot `gorm:"foreignKey:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slots,omitempty"`
}
