package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

type UserRepository interface {
	Repository[model.User]
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Activate(ctx context.Context, id uuid.UUID) (*model.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userRepository struct {
	Base[model.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{NewBase[model.User](db)}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_deleted = ?", username, false).
		First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepository) Activate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.Update(ctx, id, map[string]any{"is_active": true}, nil)
}

func (r *userRepository) Deactivate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.Update(ctx, id, map[string]any{"is_active": false}, nil)
}
