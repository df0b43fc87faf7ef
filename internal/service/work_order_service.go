package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type WorkOrderService interface {
	Create(ctx context.Context, req dto.WorkOrderRequest) (*dto.WorkOrderResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.WorkOrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkOrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type workOrderService struct {
	orders repository.WorkOrderRepository
}

func NewWorkOrderService(orders repository.WorkOrderRepository) WorkOrderService {
	return &workOrderService{orders: orders}
}

func (s *workOrderService) Create(ctx context.Context, req dto.WorkOrderRequest) (*dto.WorkOrderResponse, error) {
	status := model.WorkOrderStatus(req.Status)
	if status == "" {
		status = model.WorkOrderOpen
	}
	if !status.Valid() {
		return nil, BadRequest("Invalid work order status.")
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, BadRequest("Invalid vehicle_id.")
	}

	order := &model.WorkOrder{
		Name:      req.Name,
		Status:    status,
		VehicleID: vehicleID,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, translateRepo(err, "")
	}
	return toWorkOrderResponse(order), nil
}

func (s *workOrderService) GetAll(ctx context.Context, limit, offset int) ([]dto.WorkOrderResponse, error) {
	orders, err := s.orders.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.WorkOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *toWorkOrderResponse(&orders[i]))
	}
	return out, nil
}

func (s *workOrderService) GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkOrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Work order not found.")
	}
	return toWorkOrderResponse(order), nil
}

func (s *workOrderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Status != nil {
		status := model.WorkOrderStatus(*req.Status)
		if !status.Valid() {
			return nil, BadRequest("Invalid work order status.")
		}
		fields["status"] = status
	}

	order, err := s.orders.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Work order not found.")
	}
	return toWorkOrderResponse(order), nil
}

func (s *workOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.orders.Delete(ctx, id), "Work order not found.")
}
