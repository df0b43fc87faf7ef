package model

import "github.com/google/uuid"

type WorkOrder struct {
	Base
	Name   string          `gorm:"not null"`
	Status WorkOrderStatus `gorm:"not null;default:'Abierta'"`

	VehicleID uuid.UUID `gorm:"type:uuid;not null;index"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID"`
}

func (WorkOrder) TableName() string { return "work_orders" }
