package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

const budgetFileKind = "budgets/allocation_files"

type BudgetService interface {
	Create(ctx context.Context, req dto.BudgetRequest) (*dto.BudgetResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.BudgetResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BudgetResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBudgetRequest) (*dto.BudgetResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	UploadAllocationFile(ctx context.Context, id uuid.UUID, fileName string, content []byte) error
	AllocationFilePath(ctx context.Context, id uuid.UUID) (string, error)
}

type budgetService struct {
	budgets repository.BudgetRepository
	files   *infra.FileStore
}

func NewBudgetService(budgets repository.BudgetRepository, files *infra.FileStore) BudgetService {
	return &budgetService{budgets: budgets, files: files}
}

func (s *budgetService) Create(ctx context.Context, req dto.BudgetRequest) (*dto.BudgetResponse, error) {
	status := model.BudgetStatus(req.Status)
	if status == "" {
		status = model.BudgetPending
	}
	if !status.Valid() {
		return nil, BadRequest("Invalid budget status.")
	}

	budget := &model.Budget{
		Detail:             req.Detail,
		Amount:             req.Amount,
		Status:             status,
		Approved:           req.Approved,
		EffectiveUntilDate: req.EffectiveUntilDate.TimePtr(),
	}
	var err error
	if budget.WorkOrderID, err = parseUUIDField(req.WorkOrderID, "work_order_id"); err != nil {
		return nil, err
	}
	if budget.VehicleID, err = parseUUIDField(req.VehicleID, "vehicle_id"); err != nil {
		return nil, err
	}
	if budget.OrganizationID, err = parseUUIDField(req.OrganizationID, "organization_id"); err != nil {
		return nil, err
	}
	if budget.UserID, err = parseUUIDField(req.UserID, "user_id"); err != nil {
		return nil, err
	}

	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, translateRepo(err, "")
	}
	return toBudgetResponse(budget), nil
}

func (s *budgetService) GetAll(ctx context.Context, limit, offset int) ([]dto.BudgetResponse, error) {
	budgets, err := s.budgets.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.BudgetResponse, 0, len(budgets))
	for i := range budgets {
		out = append(out, *toBudgetResponse(&budgets[i]))
	}
	return out, nil
}

func (s *budgetService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BudgetResponse, error) {
	budget, err := s.budgets.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Budget not found.")
	}
	return toBudgetResponse(budget), nil
}

func (s *budgetService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBudgetRequest) (*dto.BudgetResponse, error) {
	fields := map[string]any{}
	if req.Detail != nil {
		fields["detail"] = *req.Detail
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Status != nil {
		status := model.BudgetStatus(*req.Status)
		if !status.Valid() {
			return nil, BadRequest("Invalid budget status.")
		}
		fields["status"] = status
	}
	if req.Approved != nil {
		fields["approved"] = *req.Approved
	}
	if req.ApprovalDate != nil {
		fields["approval_date"] = req.ApprovalDate.TimePtr()
	}
	if req.EffectiveUntilDate != nil {
		fields["effective_until_date"] = req.EffectiveUntilDate.TimePtr()
	}
	if req.WorkOrderID != nil {
		workOrderID, err := parseUUIDField(req.WorkOrderID, "work_order_id")
		if err != nil {
			return nil, err
		}
		fields["work_order_id"] = workOrderID
	}

	budget, err := s.budgets.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Budget not found.")
	}
	return toBudgetResponse(budget), nil
}

func (s *budgetService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.budgets.Delete(ctx, id), "Budget not found.")
}

// UploadAllocationFile keeps at most one file per budget: a reupload replaces
// the previous blob and overwrites the stored key.
func (s *budgetService) UploadAllocationFile(ctx context.Context, id uuid.UUID, fileName string, content []byte) error {
	budget, err := s.budgets.GetByID(ctx, id, nil)
	if err != nil {
		return translateRepo(err, "Budget not found.")
	}

	key := id.String() + "_" + fileName
	if err := s.files.Write(budgetFileKind, key, content); err != nil {
		return err
	}

	if budget.AllocationFile != "" && budget.AllocationFile != key {
		if err := s.files.Delete(budgetFileKind, budget.AllocationFile); err != nil && !errors.Is(err, infra.ErrFileNotFound) {
			log.Warn().Err(err).Str("budget_id", id.String()).Msg("could not remove previous allocation file")
		}
	}

	_, err = s.budgets.Update(ctx, id, map[string]any{"allocation_file": key}, nil)
	return translateRepo(err, "Budget not found.")
}

func (s *budgetService) AllocationFilePath(ctx context.Context, id uuid.UUID) (string, error) {
	budget, err := s.budgets.GetByID(ctx, id, nil)
	if err != nil {
		return "", translateRepo(err, "Budget not found.")
	}
	if budget.AllocationFile == "" {
		return "", NotFound("File not found in budget.")
	}
	return s.files.Path(budgetFileKind, budget.AllocationFile), nil
}
