package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

type VehicleRepository interface {
	Repository[model.Vehicle]
	Activate(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	ListExpiringDocs(ctx context.Context, until time.Time) ([]model.Vehicle, error)
}

type vehicleRepository struct {
	Base[model.Vehicle]
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{NewBase[model.Vehicle](db)}
}

func (r *vehicleRepository) Activate(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	return r.Update(ctx, id, map[string]any{"is_active": true}, nil)
}

func (r *vehicleRepository) Deactivate(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	return r.Update(ctx, id, map[string]any{"is_active": false}, nil)
}

// ListExpiringDocs returns active vehicles with any tracked paperwork date
// falling on or before the horizon. Feeds the reminder scanner.
func (r *vehicleRepository) ListExpiringDocs(ctx context.Context, until time.Time) ([]model.Vehicle, error) {
	var rows []model.Vehicle
	err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND is_active = ?", false, true).
		Where(
			r.db.Where("vtv_expiration_date <= ?", until).
				Or("documents_expiration_date <= ?", until).
				Or("auth_documents_expiration_date <= ?", until).
				Or("fire_extinguisher_expiration_date <= ?", until).
				Or("ensurance_expiration_date <= ?", until).
				Or("next_service_date <= ?", until),
		).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
