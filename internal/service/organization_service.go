package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type OrganizationService interface {
	Create(ctx context.Context, req dto.OrganizationRequest) (*dto.OrganizationResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OrganizationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Branches(ctx context.Context, id uuid.UUID, limit, offset int) ([]dto.BranchResponse, error)
}

type organizationService struct {
	orgs     repository.OrganizationRepository
	branches repository.BranchRepository
}

func NewOrganizationService(orgs repository.OrganizationRepository, branches repository.BranchRepository) OrganizationService {
	return &organizationService{orgs: orgs, branches: branches}
}

func (s *organizationService) Create(ctx context.Context, req dto.OrganizationRequest) (*dto.OrganizationResponse, error) {
	org := &model.Organization{
		Name:         req.Name,
		BusinessName: req.BusinessName,
	}
	if id := parseUUIDPtr(req.SuperManagerID); id != nil {
		org.SuperManagerID = *id
	}
	if id := parseUUIDPtr(req.ContactID); id != nil {
		org.ContactID = *id
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, translateRepo(err, "")
	}
	return toOrganizationResponse(org), nil
}

func (s *organizationService) GetAll(ctx context.Context, limit, offset int) ([]dto.OrganizationResponse, error) {
	orgs, err := s.orgs.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		out = append(out, *toOrganizationResponse(&orgs[i]))
	}
	return out, nil
}

func (s *organizationService) GetByID(ctx context.Context, id uuid.UUID) (*dto.OrganizationResponse, error) {
	org, err := s.orgs.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Organization not found.")
	}
	return toOrganizationResponse(org), nil
}

func (s *organizationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.BusinessName != nil {
		fields["business_name"] = *req.BusinessName
	}
	if id := parseUUIDPtr(req.SuperManagerID); id != nil {
		fields["super_manager_id"] = *id
	}
	if id := parseUUIDPtr(req.ContactID); id != nil {
		fields["contact_id"] = *id
	}

	org, err := s.orgs.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Organization not found.")
	}
	return toOrganizationResponse(org), nil
}

func (s *organizationService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.orgs.Delete(ctx, id), "Organization not found.")
}

func (s *organizationService) Branches(ctx context.Context, id uuid.UUID, limit, offset int) ([]dto.BranchResponse, error) {
	if _, err := s.orgs.GetByID(ctx, id, nil); err != nil {
		return nil, translateRepo(err, "Organization not found.")
	}
	branches, err := s.branches.GetAll(ctx, limit, offset, repository.Filter{"organization_id": id})
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for i := range branches {
		out = append(out, *toBranchResponse(&branches[i]))
	}
	return out, nil
}
