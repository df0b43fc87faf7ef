package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

// RequestRepository adds branch-scoped lookups: requests hang off a vehicle,
// so the branch boundary is resolved through the vehicles table.
type RequestRepository interface {
	Repository[model.Request]
	GetBranchRequests(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]model.Request, error)
	GetBranchRequestByID(ctx context.Context, branchID, requestID uuid.UUID) (*model.Request, error)
}

type requestRepository struct {
	Base[model.Request]
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{NewBase[model.Request](db)}
}

func (r *requestRepository) GetBranchRequests(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]model.Request, error) {
	var rows []model.Request
	err := r.db.WithContext(ctx).
		Joins("JOIN vehicles ON vehicles.id = requests.vehicle_id").
		Where("vehicles.branch_id = ?", branchID).
		Where("requests.is_deleted = ?", false).
		Order("requests.created_at ASC, requests.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *requestRepository) GetBranchRequestByID(ctx context.Context, branchID, requestID uuid.UUID) (*model.Request, error) {
	var row model.Request
	err := r.db.WithContext(ctx).
		Joins("JOIN vehicles ON vehicles.id = requests.vehicle_id").
		Where("vehicles.branch_id = ?", branchID).
		Where("requests.id = ? AND requests.is_deleted = ?", requestID, false).
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}
