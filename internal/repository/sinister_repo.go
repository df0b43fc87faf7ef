package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

type SinisterRepository interface {
	Repository[model.Sinister]
	GetBranchSinisters(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]model.Sinister, error)
	GetBranchSinisterByID(ctx context.Context, branchID, sinisterID uuid.UUID) (*model.Sinister, error)
	UpdateFiles(ctx context.Context, sinisterID uuid.UUID, names []string) (*model.Sinister, error)
}

type sinisterRepository struct {
	Base[model.Sinister]
}

func NewSinisterRepository(db *gorm.DB) SinisterRepository {
	return &sinisterRepository{NewBase[model.Sinister](db)}
}

func (r *sinisterRepository) GetBranchSinisters(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]model.Sinister, error) {
	var rows []model.Sinister
	err := r.db.WithContext(ctx).
		Joins("JOIN vehicles ON vehicles.id = sinisters.vehicle_id").
		Where("vehicles.branch_id = ?", branchID).
		Where("sinisters.is_deleted = ?", false).
		Order("sinisters.created_at ASC, sinisters.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// UpdateFiles rewrites the stored file-name list. Map-based Updates skip gorm
// field serializers, so the list is marshalled here before it reaches the
// driver; FilesURLs comes back deserialized on the re-fetch.
func (r *sinisterRepository) UpdateFiles(ctx context.Context, sinisterID uuid.UUID, names []string) (*model.Sinister, error) {
	if names == nil {
		names = []string{}
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return nil, err
	}
	return r.Update(ctx, sinisterID, map[string]any{"files_urls": string(raw)}, nil)
}

func (r *sinisterRepository) GetBranchSinisterByID(ctx context.Context, branchID, sinisterID uuid.UUID) (*model.Sinister, error) {
	var row model.Sinister
	err := r.db.WithContext(ctx).
		Joins("JOIN vehicles ON vehicles.id = sinisters.vehicle_id").
		Where("vehicles.branch_id = ?", branchID).
		Where("sinisters.id = ? AND sinisters.is_deleted = ?", sinisterID, false).
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}
