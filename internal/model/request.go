package model

import (
	"time"

	"github.com/google/uuid"
)

// Request is a vehicle service request. The tire sub-fields are only
// meaningful when Type is RequestTires; TireImage stores the uploaded
// filename, the bytes live in the blob store.
type Request struct {
	Base
	Type            RequestType     `gorm:"not null"`
	Status          OperationStatus `gorm:"not null;default:'Abierta'"`
	Details         string          `gorm:"default:''"`
	Odometer        int             `gorm:"not null"`
	AppointmentDate *time.Time
	AlternativeDate *time.Time
	Emergency       bool   `gorm:"default:false"`
	Zone            string `gorm:"default:''"`
	UserValidation  bool   `gorm:"default:false"`

	VerificationType *VerificationType

	TireQuantity         *int
	TireBrand            string      `gorm:"default:''"`
	TireAlternativeBrand string      `gorm:"default:''"`
	TireMeasure          string      `gorm:"default:''"`
	TireReason           *TireReason
	TireImage            string      `gorm:"default:''"`

	ApproverUserID *uuid.UUID `gorm:"type:uuid"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null"`
	VehicleID      uuid.UUID  `gorm:"type:uuid;not null;index"`

	User     *User    `gorm:"foreignKey:UserID"`
	Vehicle  *Vehicle `gorm:"foreignKey:VehicleID"`
	Approver *User    `gorm:"foreignKey:ApproverUserID"`
}

func (Request) TableName() string { return "requests" }
