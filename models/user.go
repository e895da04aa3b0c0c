package models

// Role is what a user acts as.
type Role string

const (
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
	RoleAdmin   Role = "ADMIN"
)

// User is the login identity shared by doctors and patients.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(150);not null" json:"name"`
	Email    string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`
	Role     Role   `gorm:"type:varchar(20);not null;index" json:"role"`
}
