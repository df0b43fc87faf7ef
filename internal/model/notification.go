package model

import "github.com/google/uuid"

// Notification types.
const (
	NotificationSuggestion = "suggestion"
	NotificationReminder   = "reminder"
	NotificationWorkflow   = "workflow"
)

type Notification struct {
	Base
	Title   string `gorm:"not null"`
	Message string `gorm:"not null;default:''"`
	Type    string `gorm:"not null"`
	IsRead  bool   `gorm:"default:false"`

	VehicleID uuid.UUID `gorm:"type:uuid;not null;index"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID"`
}

func (Notification) TableName() string { return "notifications" }
