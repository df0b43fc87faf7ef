package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

const tireImageKind = "requests/tires"

// Notifier enqueues an async workflow notification. The queue is best-effort:
// a failed enqueue is logged, never surfaced to the caller.
type Notifier interface {
	NotifyWorkflow(ctx context.Context, vehicleID uuid.UUID, title, message string)
}

// OperationsService is the branch-scoped window over requests and sinisters.
// Every lookup goes through the branch-join queries, so an id from another
// branch behaves exactly like a missing row.
type OperationsService interface {
	BranchRequests(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.ServiceRequestResponse, error)
	BranchRequestByID(ctx context.Context, branchID, requestID uuid.UUID) (*dto.ServiceRequestResponse, error)
	CreateRequest(ctx context.Context, branchID uuid.UUID, req dto.ServiceRequestCreate) (*dto.ServiceRequestResponse, error)
	ApproveRequest(ctx context.Context, actor middleware.Actor, branchID, requestID uuid.UUID) (*dto.ServiceRequestResponse, error)
	UpdateRequest(ctx context.Context, branchID, requestID uuid.UUID, req dto.ServiceRequestUpdate) (*dto.ServiceRequestResponse, error)
	DeleteRequest(ctx context.Context, branchID, requestID uuid.UUID) error

	UploadTireImage(ctx context.Context, branchID, requestID uuid.UUID, fileName string, content []byte) error
	TireImagePath(ctx context.Context, branchID, requestID uuid.UUID, fileName string) (string, error)
	DeleteTireImage(ctx context.Context, branchID, requestID uuid.UUID, fileName string) error

	BranchSinisters(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.SinisterResponse, error)
	BranchSinisterByID(ctx context.Context, branchID, sinisterID uuid.UUID) (*dto.SinisterResponse, error)
	CreateSinister(ctx context.Context, branchID uuid.UUID, req dto.SinisterRequest) (*dto.SinisterResponse, error)
	ApproveSinister(ctx context.Context, actor middleware.Actor, branchID, sinisterID uuid.UUID) (*dto.SinisterResponse, error)
	UpdateSinister(ctx context.Context, branchID, sinisterID uuid.UUID, req dto.UpdateSinisterRequest) (*dto.SinisterResponse, error)
	DeleteSinister(ctx context.Context, branchID, sinisterID uuid.UUID) error

	UploadSinisterFile(ctx context.Context, branchID, sinisterID uuid.UUID, fileName string, content []byte) error
	SinisterFilePath(ctx context.Context, branchID, sinisterID uuid.UUID, fileName string) (string, error)
	DeleteSinisterFile(ctx context.Context, branchID, sinisterID uuid.UUID, fileName string) error
}

type operationsService struct {
	requests  repository.RequestRepository
	sinisters repository.SinisterRepository
	vehicles  repository.VehicleRepository
	files     *infra.FileStore
	notifier  Notifier
}

func NewOperationsService(
	requests repository.RequestRepository,
	sinisters repository.SinisterRepository,
	vehicles repository.VehicleRepository,
	files *infra.FileStore,
	notifier Notifier,
) OperationsService {
	return &operationsService{
		requests:  requests,
		sinisters: sinisters,
		vehicles:  vehicles,
		files:     files,
		notifier:  notifier,
	}
}

// ─── Requests ────────────────────────────────────────────────────────────────

func (s *operationsService) BranchRequests(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.ServiceRequestResponse, error) {
	requests, err := s.requests.GetBranchRequests(ctx, branchID, limit, offset)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.ServiceRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *toRequestResponse(&requests[i]))
	}
	return out, nil
}

func (s *operationsService) BranchRequestByID(ctx context.Context, branchID, requestID uuid.UUID) (*dto.ServiceRequestResponse, error) {
	request, err := s.requests.GetBranchRequestByID(ctx, branchID, requestID)
	if err != nil {
		return nil, translateRepo(err, "Request not found in current branch.")
	}
	return toRequestResponse(request), nil
}

// CreateRequest refuses vehicles outside the branch before inserting.
func (s *operationsService) CreateRequest(ctx context.Context, branchID uuid.UUID, req dto.ServiceRequestCreate) (*dto.ServiceRequestResponse, error) {
	request, err := buildRequest(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.vehicles.GetByID(ctx, request.VehicleID, repository.Filter{"branch_id": branchID}); err != nil {
		return nil, translateRepo(err, "Vehicle not found in current branch.")
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, translateRepo(err, "")
	}
	return toRequestResponse(request), nil
}

// ApproveRequest sets the approved status and stamps the caller as approver.
func (s *operationsService) ApproveRequest(ctx context.Context, actor middleware.Actor, branchID, requestID uuid.UUID) (*dto.ServiceRequestResponse, error) {
	if _, err := s.requests.GetBranchRequestByID(ctx, branchID, requestID); err != nil {
		return nil, translateRepo(err, "Request not found in current branch.")
	}
	request, err := s.requests.Update(ctx, requestID, map[string]any{
		"status":           model.StatusApproved,
		"approver_user_id": actor.ID,
	}, nil)
	if err != nil {
		return nil, translateRepo(err, "Request not found in current branch.")
	}
	s.notify(ctx, request.VehicleID, "Request approved", "Service request "+requestID.String()+" was approved.")
	return toRequestResponse(request), nil
}

func (s *operationsService) UpdateRequest(ctx context.Context, branchID, requestID uuid.UUID, req dto.ServiceRequestUpdate) (*dto.ServiceRequestResponse, error) {
	if _, err := s.requests.GetBranchRequestByID(ctx, branchID, requestID); err != nil {
		return nil, translateRepo(err, "Request not found in current branch.")
	}
	fields, err := requestUpdateFields(req)
	if err != nil {
		return nil, err
	}
	request, err := s.requests.Update(ctx, requestID, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Request not found in current branch.")
	}
	return toRequestResponse(request), nil
}

func (s *operationsService) DeleteRequest(ctx context.Context, branchID, requestID uuid.UUID) error {
	if _, err := s.requests.GetBranchRequestByID(ctx, branchID, requestID); err != nil {
		return translateRepo(err, "Request not found in current branch.")
	}
	return translateRepo(s.requests.Delete(ctx, requestID), "Request not found in current branch.")
}

func (s *operationsService) UploadTireImage(ctx context.Context, branchID, requestID uuid.UUID, fileName string, content []byte) error {
	if _, err := s.requests.GetBranchRequestByID(ctx, branchID, requestID); err != nil {
		return translateRepo(err, "Request not found in current branch.")
	}
	if err := s.files.Write(tireImageKind, requestID.String()+"_"+fileName, content); err != nil {
		return err
	}
	_, err := s.requests.Update(ctx, requestID, map[string]any{"tire_image": fileName}, nil)
	return translateRepo(err, "Request not found in current branch.")
}

func (s *operationsService) TireImagePath(ctx context.Context, branchID, requestID uuid.UUID, fileName string) (string, error) {
	request, err := s.requests.GetBranchRequestByID(ctx, branchID, requestID)
	if err != nil {
		return "", translateRepo(err, "Request not found in current branch.")
	}
	if request.TireImage != fileName {
		return "", NotFound("File not found in request.")
	}
	return s.files.Path(tireImageKind, requestID.String()+"_"+fileName), nil
}

func (s *operationsService) DeleteTireImage(ctx context.Context, branchID, requestID uuid.UUID, fileName string) error {
	if _, err := s.requests.GetBranchRequestByID(ctx, branchID, requestID); err != nil {
		return translateRepo(err, "Request not found in current branch.")
	}
	if _, err := s.requests.Update(ctx, requestID, map[string]any{"tire_image": ""}, nil); err != nil {
		return translateRepo(err, "Request not found in current branch.")
	}
	err := s.files.Delete(tireImageKind, requestID.String()+"_"+fileName)
	if errors.Is(err, infra.ErrFileNotFound) {
		return NotFound("File not found in request.")
	}
	return err
}

// ─── Sinisters ───────────────────────────────────────────────────────────────

func (s *operationsService) BranchSinisters(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.SinisterResponse, error) {
	sinisters, err := s.sinisters.GetBranchSinisters(ctx, branchID, limit, offset)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.SinisterResponse, 0, len(sinisters))
	for i := range sinisters {
		out = append(out, *toSinisterResponse(&sinisters[i]))
	}
	return out, nil
}

func (s *operationsService) BranchSinisterByID(ctx context.Context, branchID, sinisterID uuid.UUID) (*dto.SinisterResponse, error) {
	sinister, err := s.sinisters.GetBranchSinisterByID(ctx, branchID, sinisterID)
	if err != nil {
		return nil, translateRepo(err, "Sinister not found in current branch.")
	}
	return toSinisterResponse(sinister), nil
}

func (s *operationsService) CreateSinister(ctx context.Context, branchID uuid.UUID, req dto.SinisterRequest) (*dto.SinisterResponse, error) {
	sinister, err := buildSinister(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.vehicles.GetByID(ctx, sinister.VehicleID, repository.Filter{"branch_id": branchID}); err != nil {
		return nil, translateRepo(err, "Vehicle not found in current branch.")
	}
	if err := s.sinisters.Create(ctx, sinister); err != nil {
		return nil, translateRepo(err, "")
	}
	return toSinisterResponse(sinister), nil
}

func (s *operationsService) ApproveSinister(ctx context.Context, actor middleware.Actor, branchID, sinisterID uuid.UUID) (*dto.SinisterResponse, error) {
	if _, err := s.sinisters.GetBranchSinisterByID(ctx, branchID, sinisterID); err != nil {
		return nil, translateRepo(err, "Sinister not found in current branch.")
	}
	sinister, err := s.sinisters.Update(ctx, sinisterID, map[string]any{
		"status":           model.StatusApproved,
		"approver_user_id": actor.ID,
	}, nil)
	if err != nil {
		return nil, translateRepo(err, "Sinister not found in current branch.")
	}
	s.notify(ctx, sinister.VehicleID, "Sinister approved", "Sinister "+sinisterID.String()+" was approved.")
	return toSinisterResponse(sinister), nil
}

func (s *operationsService) UpdateSinister(ctx context.Context, branchID, sinisterID uuid.UUID, req dto.UpdateSinisterRequest) (*dto.SinisterResponse, error) {
	if _, err := s.sinisters.GetBranchSinisterByID(ctx, branchID, sinisterID); err != nil {
		return nil, translateRepo(err, "Sinister not found in current branch.")
	}
	fields, err := sinisterUpdateFields(req)
	if err != nil {
		return nil, err
	}
	sinister, err := s.sinisters.Update(ctx, sinisterID, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Sinister not found in current branch.")
	}
	return toSinisterResponse(sinister), nil
}

func (s *operationsService) DeleteSinister(ctx context.Context, branchID, sinisterID uuid.UUID) error {
	if _, err := s.sinisters.GetBranchSinisterByID(ctx, branchID, sinisterID); err != nil {
		return translateRepo(err, "Sinister not found in current branch.")
	}
	return translateRepo(s.sinisters.Delete(ctx, sinisterID), "Sinister not found in current branch.")
}

func (s *operationsService) UploadSinisterFile(ctx context.Context, branchID, sinisterID uuid.UUID, fileName string, content []byte) error {
	sinister, err := s.sinisters.GetBranchSinisterByID(ctx, branchID, sinisterID)
	if err != nil {
		return translateRepo(err, "Sinister not found in current branch.")
	}

	if err := s.files.Write(sinisterKind, sinisterID.String()+"_"+fileName, content); err != nil {
		return err
	}

	names := sinister.FilesURLs
	found := false
	for _, n := range names {
		if n == fileName {
			found = true
			break
		}
	}
	if !found {
		names = append(names, fileName)
	}
	_, err = s.sinisters.UpdateFiles(ctx, sinisterID, names)
	return translateRepo(err, "Sinister not found in current branch.")
}

func (s *operationsService) SinisterFilePath(ctx context.Context, branchID, sinisterID uuid.UUID, fileName string) (string, error) {
	sinister, err := s.sinisters.GetBranchSinisterByID(ctx, branchID, sinisterID)
	if err != nil {
		return "", translateRepo(err, "Sinister not found in current branch.")
	}
	for _, n := range sinister.FilesURLs {
		if n == fileName {
			return s.files.Path(sinisterKind, sinisterID.String()+"_"+fileName), nil
		}
	}
	return "", NotFound("File not found in sinister.")
}

func (s *operationsService) DeleteSinisterFile(ctx context.Context, branchID, sinisterID uuid.UUID, fileName string) error {
	sinister, err := s.sinisters.GetBranchSinisterByID(ctx, branchID, sinisterID)
	if err != nil {
		return translateRepo(err, "Sinister not found in current branch.")
	}

	names := make([]string, 0, len(sinister.FilesURLs))
	for _, n := range sinister.FilesURLs {
		if n != fileName {
			names = append(names, n)
		}
	}
	if _, err := s.sinisters.UpdateFiles(ctx, sinisterID, names); err != nil {
		return translateRepo(err, "Sinister not found in current branch.")
	}

	err = s.files.Delete(sinisterKind, sinisterID.String()+"_"+fileName)
	if errors.Is(err, infra.ErrFileNotFound) {
		return NotFound("File not found in sinister.")
	}
	return err
}

func (s *operationsService) notify(ctx context.Context, vehicleID uuid.UUID, title, message string) {
	if s.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("notifier panicked")
		}
	}()
	s.notifier.NotifyWorkflow(ctx, vehicleID, title, message)
}
