package model

import (
	"time"

	"github.com/google/uuid"
)

// Branch is the second tenant boundary; branch-scoped endpoints filter every
// query by BranchID.
type Branch struct {
	Base
	Name                  string     `gorm:"not null"`
	CostCenter            string     `gorm:"not null;default:''"`
	Area                  string     `gorm:"not null;default:''"`
	PurchaseOrderSentDate *time.Time `gorm:"type:date"`
	ManagerID             uuid.UUID  `gorm:"type:uuid;not null"`
	AgentID               *uuid.UUID `gorm:"type:uuid"`
	OrganizationID        uuid.UUID  `gorm:"type:uuid;not null;index"`

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
	Vehicles     []Vehicle     `gorm:"foreignKey:BranchID"`
}

func (Branch) TableName() string { return "branches" }
