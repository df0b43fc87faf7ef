package model

import "github.com/google/uuid"

// Sinister is an insurance/incident claim against a vehicle. FilesURLs holds
// uploaded filenames (serialized as JSON so the column works on both postgres
// and the sqlite test driver); the bytes live in the blob store.
type Sinister struct {
	Base
	Status        OperationStatus `gorm:"not null;default:'Abierta'"`
	FilesURLs     []string        `gorm:"serializer:json"`
	DetailsDamage string          `gorm:"default:''"`
	DetailsEvent  string          `gorm:"default:''"`
	Type          SinisterType    `gorm:"not null"`
	Place         SinisterPlace   `gorm:"not null"`
	Zone          string          `gorm:"default:''"`

	ApproverUserID *uuid.UUID `gorm:"type:uuid"`
	VehicleID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null"`

	Vehicle  *Vehicle `gorm:"foreignKey:VehicleID"`
	User     *User    `gorm:"foreignKey:UserID"`
	Approver *User    `gorm:"foreignKey:ApproverUserID"`
}

func (Sinister) TableName() string { return "sinisters" }
