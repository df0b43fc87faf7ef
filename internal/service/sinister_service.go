package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

const sinisterKind = "sinisters"

type SinisterService interface {
	Create(ctx context.Context, req dto.SinisterRequest) (*dto.SinisterResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.SinisterResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SinisterResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSinisterRequest) (*dto.SinisterResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	UploadFile(ctx context.Context, id uuid.UUID, fileName string, content []byte) error
	FilePath(ctx context.Context, id uuid.UUID, fileName string) (string, error)
	DeleteFile(ctx context.Context, id uuid.UUID, fileName string) error
}

type sinisterService struct {
	sinisters repository.SinisterRepository
	files     *infra.FileStore
}

func NewSinisterService(sinisters repository.SinisterRepository, files *infra.FileStore) SinisterService {
	return &sinisterService{sinisters: sinisters, files: files}
}

func (s *sinisterService) Create(ctx context.Context, req dto.SinisterRequest) (*dto.SinisterResponse, error) {
	sinister, err := buildSinister(req)
	if err != nil {
		return nil, err
	}
	if err := s.sinisters.Create(ctx, sinister); err != nil {
		return nil, translateRepo(err, "")
	}
	return toSinisterResponse(sinister), nil
}

func (s *sinisterService) GetAll(ctx context.Context, limit, offset int) ([]dto.SinisterResponse, error) {
	sinisters, err := s.sinisters.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.SinisterResponse, 0, len(sinisters))
	for i := range sinisters {
		out = append(out, *toSinisterResponse(&sinisters[i]))
	}
	return out, nil
}

func (s *sinisterService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SinisterResponse, error) {
	sinister, err := s.sinisters.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Sinister not found.")
	}
	return toSinisterResponse(sinister), nil
}

func (s *sinisterService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSinisterRequest) (*dto.SinisterResponse, error) {
	fields, err := sinisterUpdateFields(req)
	if err != nil {
		return nil, err
	}
	sinister, err := s.sinisters.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Sinister not found.")
	}
	return toSinisterResponse(sinister), nil
}

func (s *sinisterService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.sinisters.Delete(ctx, id), "Sinister not found.")
}

// UploadFile stores the blob and records the name in files_urls. Names are a
// set: re-uploading the same name overwrites the blob without duplicating the
// entry.
func (s *sinisterService) UploadFile(ctx context.Context, id uuid.UUID, fileName string, content []byte) error {
	sinister, err := s.sinisters.GetByID(ctx, id, nil)
	if err != nil {
		return translateRepo(err, "Sinister not found.")
	}

	if err := s.files.Write(sinisterKind, id.String()+"_"+fileName, content); err != nil {
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
	_, err = s.sinisters.UpdateFiles(ctx, id, names)
	return translateRepo(err, "Sinister not found.")
}

func (s *sinisterService) FilePath(ctx context.Context, id uuid.UUID, fileName string) (string, error) {
	sinister, err := s.sinisters.GetByID(ctx, id, nil)
	if err != nil {
		return "", translateRepo(err, "Sinister not found.")
	}
	for _, n := range sinister.FilesURLs {
		if n == fileName {
			return s.files.Path(sinisterKind, id.String()+"_"+fileName), nil
		}
	}
	return "", NotFound("File not found in sinister.")
}

func (s *sinisterService) DeleteFile(ctx context.Context, id uuid.UUID, fileName string) error {
	sinister, err := s.sinisters.GetByID(ctx, id, nil)
	if err != nil {
		return translateRepo(err, "Sinister not found.")
	}

	names := make([]string, 0, len(sinister.FilesURLs))
	for _, n := range sinister.FilesURLs {
		if n != fileName {
			names = append(names, n)
		}
	}
	if _, err := s.sinisters.UpdateFiles(ctx, id, names); err != nil {
		return translateRepo(err, "Sinister not found.")
	}

	err = s.files.Delete(sinisterKind, id.String()+"_"+fileName)
	if errors.Is(err, infra.ErrFileNotFound) {
		return NotFound("File not found in sinister.")
	}
	return err
}

func buildSinister(req dto.SinisterRequest) (*model.Sinister, error) {
	sinType := model.SinisterType(req.Type)
	if !sinType.Valid() {
		return nil, BadRequest("Unknown sinister type: " + req.Type)
	}
	place := model.SinisterPlace(req.Place)
	if !place.Valid() {
		return nil, BadRequest("Unknown sinister place: " + req.Place)
	}
	status := model.StatusOpen
	if req.Status != "" {
		status = model.OperationStatus(req.Status)
		if !status.Valid() {
			return nil, BadRequest("Unknown status: " + req.Status)
		}
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, BadRequest("Invalid vehicle id.")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, BadRequest("Invalid user id.")
	}

	return &model.Sinister{
		Status:        status,
		FilesURLs:     []string{},
		DetailsDamage: req.DetailsDamage,
		DetailsEvent:  req.DetailsEvent,
		Type:          sinType,
		Place:         place,
		Zone:          req.Zone,
		VehicleID:     vehicleID,
		UserID:        userID,
	}, nil
}

func sinisterUpdateFields(req dto.UpdateSinisterRequest) (map[string]any, error) {
	fields := map[string]any{}
	if req.DetailsDamage != nil {
		fields["details_damage"] = *req.DetailsDamage
	}
	if req.DetailsEvent != nil {
		fields["details_event"] = *req.DetailsEvent
	}
	if req.Type != nil {
		t := model.SinisterType(*req.Type)
		if !t.Valid() {
			return nil, BadRequest("Unknown sinister type: " + *req.Type)
		}
		fields["type"] = t
	}
	if req.Status != nil {
		st := model.OperationStatus(*req.Status)
		if !st.Valid() {
			return nil, BadRequest("Unknown status: " + *req.Status)
		}
		fields["status"] = st
	}
	if req.Place != nil {
		p := model.SinisterPlace(*req.Place)
		if !p.Valid() {
			return nil, BadRequest("Unknown sinister place: " + *req.Place)
		}
		fields["place"] = p
	}
	if req.Zone != nil {
		fields["zone"] = *req.Zone
	}
	return fields, nil
}
