package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the columns shared by every persisted entity. Soft delete is a
// boolean marker rather than gorm.DeletedAt: marked rows are excluded from
// default queries at the repository layer but physically retained for audit.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
}

// BeforeCreate generates ids application-side so the same models work against
// postgres in production and in-memory sqlite in tests.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
