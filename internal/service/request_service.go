package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type RequestService interface {
	Create(ctx context.Context, req dto.ServiceRequestCreate) (*dto.ServiceRequestResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.ServiceRequestResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceRequestResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ServiceRequestUpdate) (*dto.ServiceRequestResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type requestService struct {
	requests repository.RequestRepository
}

func NewRequestService(requests repository.RequestRepository) RequestService {
	return &requestService{requests: requests}
}

func (s *requestService) Create(ctx context.Context, req dto.ServiceRequestCreate) (*dto.ServiceRequestResponse, error) {
	request, err := buildRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, translateRepo(err, "")
	}
	return toRequestResponse(request), nil
}

func (s *requestService) GetAll(ctx context.Context, limit, offset int) ([]dto.ServiceRequestResponse, error) {
	requests, err := s.requests.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.ServiceRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *toRequestResponse(&requests[i]))
	}
	return out, nil
}

func (s *requestService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceRequestResponse, error) {
	request, err := s.requests.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Request not found.")
	}
	return toRequestResponse(request), nil
}

func (s *requestService) Update(ctx context.Context, id uuid.UUID, req dto.ServiceRequestUpdate) (*dto.ServiceRequestResponse, error) {
	fields, err := requestUpdateFields(req)
	if err != nil {
		return nil, err
	}
	request, err := s.requests.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Request not found.")
	}
	return toRequestResponse(request), nil
}

func (s *requestService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.requests.Delete(ctx, id), "Request not found.")
}

func buildRequest(req dto.ServiceRequestCreate) (*model.Request, error) {
	reqType := model.RequestType(req.Type)
	if !reqType.Valid() {
		return nil, BadRequest("Unknown request type: " + req.Type)
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

	request := &model.Request{
		Type:            reqType,
		Status:          status,
		Details:         req.Details,
		Odometer:        req.Odometer,
		AppointmentDate: req.AppointmentDate.TimePtr(),
		AlternativeDate: req.AlternativeDate.TimePtr(),
		Emergency:       req.Emergency,
		Zone:            req.Zone,
		UserValidation:  req.UserValidation,

		TireQuantity:         req.TireQuantity,
		TireBrand:            req.TireBrand,
		TireAlternativeBrand: req.TireAlternativeBrand,
		TireMeasure:          req.TireMeasure,

		VehicleID: vehicleID,
		UserID:    userID,
	}
	if req.VerificationType != nil {
		vt := model.VerificationType(*req.VerificationType)
		if !vt.Valid() {
			return nil, BadRequest("Unknown verification type: " + *req.VerificationType)
		}
		request.VerificationType = &vt
	}
	if req.TireReason != nil {
		tr := model.TireReason(*req.TireReason)
		if !tr.Valid() {
			return nil, BadRequest("Unknown tire reason: " + *req.TireReason)
		}
		request.TireReason = &tr
	}
	return request, nil
}

func requestUpdateFields(req dto.ServiceRequestUpdate) (map[string]any, error) {
	fields := map[string]any{}
	if req.Type != nil {
		t := model.RequestType(*req.Type)
		if !t.Valid() {
			return nil, BadRequest("Unknown request type: " + *req.Type)
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
	if req.Details != nil {
		fields["details"] = *req.Details
	}
	if req.Odometer != nil {
		fields["odometer"] = *req.Odometer
	}
	if req.AppointmentDate != nil {
		fields["appointment_date"] = req.AppointmentDate.TimePtr()
	}
	if req.AlternativeDate != nil {
		fields["alternative_date"] = req.AlternativeDate.TimePtr()
	}
	if req.Emergency != nil {
		fields["emergency"] = *req.Emergency
	}
	if req.Zone != nil {
		fields["zone"] = *req.Zone
	}
	if req.UserValidation != nil {
		fields["user_validation"] = *req.UserValidation
	}
	if req.VerificationType != nil {
		vt := model.VerificationType(*req.VerificationType)
		if !vt.Valid() {
			return nil, BadRequest("Unknown verification type: " + *req.VerificationType)
		}
		fields["verification_type"] = vt
	}
	if req.TireQuantity != nil {
		fields["tire_quantity"] = *req.TireQuantity
	}
	if req.TireBrand != nil {
		fields["tire_brand"] = *req.TireBrand
	}
	if req.TireAlternativeBrand != nil {
		fields["tire_alternative_brand"] = *req.TireAlternativeBrand
	}
	if req.TireMeasure != nil {
		fields["tire_measure"] = *req.TireMeasure
	}
	if req.TireReason != nil {
		tr := model.TireReason(*req.TireReason)
		if !tr.Valid() {
			return nil, BadRequest("Unknown tire reason: " + *req.TireReason)
		}
		fields["tire_reason"] = tr
	}
	return fields, nil
}
