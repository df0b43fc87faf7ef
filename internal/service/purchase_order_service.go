package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type PurchaseOrderService interface {
	Create(ctx context.Context, req dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.PurchaseOrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseOrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type purchaseOrderService struct {
	orders repository.PurchaseOrderRepository
}

func NewPurchaseOrderService(orders repository.PurchaseOrderRepository) PurchaseOrderService {
	return &purchaseOrderService{orders: orders}
}

// checkDueDate rejects expiring orders whose due date is already behind us.
// Today counts as valid. Calendar days are compared, not instants: the wire
// date carries no zone, and truncating wall time to the UTC epoch grid would
// shift "today" by the server's offset.
func checkDueDate(expires bool, dueDate *time.Time) error {
	if !expires || dueDate == nil {
		return nil
	}
	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.Local)
	if due.Before(today) {
		return BadRequest("The expiration date cannot be earlier than the current day.")
	}
	return nil
}

func buildPurchaseOrder(req dto.PurchaseOrderRequest) (*model.PurchaseOrder, error) {
	order := &model.PurchaseOrder{
		Number:  req.Number,
		Amount:  req.Amount,
		Expires: req.Expires,
		DueDate: req.DueDate.TimePtr(),
	}
	if err := checkDueDate(order.Expires, order.DueDate); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *purchaseOrderService) Create(ctx context.Context, req dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := buildPurchaseOrder(req)
	if err != nil {
		return nil, err
	}
	if req.BranchID == "" {
		return nil, BadRequest("branch_id is required.")
	}
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, BadRequest("Invalid branch_id.")
	}
	order.BranchID = branchID

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, translateRepo(err, "")
	}
	return toPurchaseOrderResponse(order), nil
}

func (s *purchaseOrderService) GetAll(ctx context.Context, limit, offset int) ([]dto.PurchaseOrderResponse, error) {
	orders, err := s.orders.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *toPurchaseOrderResponse(&orders[i]))
	}
	return out, nil
}

func (s *purchaseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseOrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Purchase order not found.")
	}
	return toPurchaseOrderResponse(order), nil
}

func purchaseOrderUpdateFields(current *model.PurchaseOrder, req dto.UpdatePurchaseOrderRequest) (map[string]any, error) {
	expires := current.Expires
	dueDate := current.DueDate

	fields := map[string]any{}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Expires != nil {
		expires = *req.Expires
		fields["expires"] = expires
	}
	if req.DueDate != nil {
		dueDate = req.DueDate.TimePtr()
		fields["due_date"] = dueDate
	}
	if err := checkDueDate(expires, dueDate); err != nil {
		return nil, err
	}
	return fields, nil
}

func (s *purchaseOrderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	current, err := s.orders.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Purchase order not found.")
	}
	fields, err := purchaseOrderUpdateFields(current, req)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Purchase order not found.")
	}
	return toPurchaseOrderResponse(order), nil
}

func (s *purchaseOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.orders.Delete(ctx, id), "Purchase order not found.")
}
