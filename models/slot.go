package models

import (
	"time"

	"github.com/google/uuid"
)

// Slot is one bookable piece of a Schedule. It starts unbooked and is claimed
// by exactly one appointment.
type Slot struct {
	BaseModel
	ScheduleID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_slots_schedule_start,priority:1" json:"schedule_id"`
	StartTime     time.Time  `gorm:"type:timestamptz;not null;index:idx_slots_schedule_start,priority:2" json:"start_time"`
	EndTime       time.Time  `gorm:"type:timestamptz;not null" json:"end_time"`
	IsBooked      bool       `gorm:"not null;default:false;index" json:"is_booked"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"appointment_id,omitempty"`
}

func (s Slot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}
