package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

// BranchService scopes super managers to their own organization: they can
// only create branches under it, list is silently narrowed to it, and updates
// require the target branch's organization to be theirs. Admin roles see
// everything.
type BranchService interface {
	Create(ctx context.Context, actor middleware.Actor, req dto.BranchRequest) (*dto.BranchResponse, error)
	GetAll(ctx context.Context, actor middleware.Actor, limit, offset int) ([]dto.BranchResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BranchResponse, error)
	Update(ctx context.Context, actor middleware.Actor, id uuid.UUID, req dto.UpdateBranchRequest) (*dto.BranchResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type branchService struct {
	branches repository.BranchRepository
	orgs     repository.OrganizationRepository
	users    repository.UserRepository
}

func NewBranchService(branches repository.BranchRepository, orgs repository.OrganizationRepository, users repository.UserRepository) BranchService {
	return &branchService{branches: branches, orgs: orgs, users: users}
}

func (s *branchService) Create(ctx context.Context, actor middleware.Actor, req dto.BranchRequest) (*dto.BranchResponse, error) {
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, BadRequest("Invalid organization id.")
	}

	if actor.Role == model.RoleSupermanager {
		ownOrgID, err := s.actorOrganization(ctx, actor)
		if err != nil {
			return nil, err
		}
		if ownOrgID != orgID {
			return nil, Forbidden("You can't create a branch to this organization")
		}
	}

	branch := &model.Branch{
		Name:                  req.Name,
		CostCenter:            req.CostCenter,
		Area:                  req.Area,
		PurchaseOrderSentDate: req.PurchaseOrderSentDate.TimePtr(),
		OrganizationID:        orgID,
	}
	if id := parseUUIDPtr(req.ManagerID); id != nil {
		branch.ManagerID = *id
	}
	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, translateRepo(err, "")
	}
	return toBranchResponse(branch), nil
}

func (s *branchService) GetAll(ctx context.Context, actor middleware.Actor, limit, offset int) ([]dto.BranchResponse, error) {
	filter := repository.Filter{}
	if actor.Role == model.RoleSupermanager {
		ownOrgID, err := s.actorOrganization(ctx, actor)
		if err != nil {
			return nil, err
		}
		filter["organization_id"] = ownOrgID
	}

	branches, err := s.branches.GetAll(ctx, limit, offset, filter)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for i := range branches {
		out = append(out, *toBranchResponse(&branches[i]))
	}
	return out, nil
}

func (s *branchService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BranchResponse, error) {
	branch, err := s.branches.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Branch not found.")
	}
	return toBranchResponse(branch), nil
}

func (s *branchService) Update(ctx context.Context, actor middleware.Actor, id uuid.UUID, req dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	if actor.Role == model.RoleSupermanager {
		branch, err := s.branches.GetByID(ctx, id, nil)
		if err != nil {
			return nil, translateRepo(err, "Branch not found.")
		}
		org, err := s.orgs.GetByID(ctx, branch.OrganizationID, nil)
		if err != nil {
			return nil, translateRepo(err, "Branch not found.")
		}
		if org.SuperManagerID != actor.ID {
			return nil, Forbidden("You can't edit this branch")
		}
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.CostCenter != nil {
		fields["cost_center"] = *req.CostCenter
	}
	if req.Area != nil {
		fields["area"] = *req.Area
	}
	if req.PurchaseOrderSentDate != nil {
		fields["purchase_order_sent_date"] = req.PurchaseOrderSentDate.TimePtr()
	}
	if id := parseUUIDPtr(req.ManagerID); id != nil {
		fields["manager_id"] = *id
	}
	if id := parseUUIDPtr(req.AgentID); id != nil {
		fields["agent_id"] = *id
	}

	branch, err := s.branches.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Branch not found.")
	}
	return toBranchResponse(branch), nil
}

func (s *branchService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.branches.Delete(ctx, id), "Branch not found.")
}

// actorOrganization resolves the caller's organization through their branch
// membership.
func (s *branchService) actorOrganization(ctx context.Context, actor middleware.Actor) (uuid.UUID, error) {
	user, err := s.users.GetByID(ctx, actor.ID, nil)
	if err != nil {
		return uuid.Nil, translateRepo(err, "User not found.")
	}
	if user.BranchID == nil {
		return uuid.Nil, Forbidden("You are not assigned to a branch.")
	}
	branch, err := s.branches.GetByID(ctx, *user.BranchID, nil)
	if err != nil {
		return uuid.Nil, translateRepo(err, "Branch not found.")
	}
	return branch.OrganizationID, nil
}
