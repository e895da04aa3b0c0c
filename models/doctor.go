package models

import "github.com/google/uuid"

type Doctor struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialization string    `gorm:"type:varchar(100);not null" json:"specialization"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
}
