package model

import (
	"github.com/google/uuid"
)

// User stores platform accounts with role-based access.
// IsActive is independent of the soft-delete marker: an account can be
// deactivated (login refused) without being deleted.
type User struct {
	Base
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;size:60;not null"`
	Email        string `gorm:"size:50;uniqueIndex;not null"`
	FirstName    string `gorm:"size:40;not null"`
	LastName     string `gorm:"size:40;not null"`
	Phone        string `gorm:"size:25;default:''"`
	Job          string `gorm:"size:25;default:''"`
	IsActive     bool   `gorm:"not null;default:true"`
	Role         Role   `gorm:"size:20;not null"`

	BranchID  *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID *uuid.UUID `gorm:"type:uuid"`

	Branch  *Branch  `gorm:"foreignKey:BranchID"`
	Vehicle *Vehicle `gorm:"foreignKey:VehicleID"`
}

func (User) TableName() string { return "users" }
