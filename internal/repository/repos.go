package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

// Plain entity repositories: the generic contract is all they need.

type OrganizationRepository interface {
	Repository[model.Organization]
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	r := NewBase[model.Organization](db)
	return &r
}

type BranchRepository interface {
	Repository[model.Branch]
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	r := NewBase[model.Branch](db)
	return &r
}

type BudgetRepository interface {
	Repository[model.Budget]
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	r := NewBase[model.Budget](db)
	return &r
}

type PurchaseOrderRepository interface {
	Repository[model.PurchaseOrder]
}

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	r := NewBase[model.PurchaseOrder](db)
	return &r
}

type WorkOrderRepository interface {
	Repository[model.WorkOrder]
}

func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository {
	r := NewBase[model.WorkOrder](db)
	return &r
}

type NotificationRepository interface {
	Repository[model.Notification]
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	r := NewBase[model.Notification](db)
	return &r
}

type DriverLicenseRepository interface {
	Repository[model.DriverLicense]
}

func NewDriverLicenseRepository(db *gorm.DB) DriverLicenseRepository {
	r := NewBase[model.DriverLicense](db)
	return &r
}

// RegistrationTx runs the register workflow's repository calls inside a single
// commit/rollback unit, so a failure partway through cannot leave a dangling
// user or organization behind.
type RegistrationTx interface {
	InTx(ctx context.Context, fn func(users UserRepository, orgs OrganizationRepository, branches BranchRepository) error) error
}

type registrationTx struct {
	db *gorm.DB
}

func NewRegistrationTx(db *gorm.DB) RegistrationTx {
	return &registrationTx{db: db}
}

func (t *registrationTx) InTx(ctx context.Context, fn func(users UserRepository, orgs OrganizationRepository, branches BranchRepository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUserRepository(tx), NewOrganizationRepository(tx), NewBranchRepository(tx))
	})
}
