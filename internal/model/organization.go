package model

import "github.com/google/uuid"

// Organization is the top tenant boundary. SuperManagerID points at the user
// who owns the organization; ContactID may be the same user.
type Organization struct {
	Base
	Name           string    `gorm:"not null"`
	BusinessName   string    `gorm:"not null"`
	DocumentNumber string    `gorm:"size:30;default:''"`
	SuperManagerID uuid.UUID `gorm:"type:uuid;not null"`
	ContactID      uuid.UUID `gorm:"type:uuid;not null"`

	Branches []Branch `gorm:"foreignKey:OrganizationID"`
}

func (Organization) TableName() string { return "organizations" }
