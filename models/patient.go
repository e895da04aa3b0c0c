package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Patient struct {
	BaseModel
	UserID     uuid.UUID                   `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Address    string                      `gorm:"type:text" json:"address"`
	Conditions datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"conditions"`
	BloodGroup string                      `gorm:"type:varchar(5)" json:"blood_group"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
}
