package model

import (
	"time"

	"github.com/google/uuid"
)

// DriverLicense tracks a user's current license document. A user has at most
// one live record: re-upload replaces both the row fields and the stored file.
type DriverLicense struct {
	Base
	ExpirationDate time.Time `gorm:"type:date;not null"`
	FileName       string    `gorm:"not null"`
	FileType       string    `gorm:"not null"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index"`

	User *User `gorm:"foreignKey:UserID"`
}

func (DriverLicense) TableName() string { return "driver_licenses" }
