package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

// MyBillsService is the branch-scoped purchase order surface. The branch in
// the path wins: any branch_id in the body is ignored.
type MyBillsService interface {
	Orders(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.PurchaseOrderResponse, error)
	OrderByID(ctx context.Context, branchID, orderID uuid.UUID) (*dto.PurchaseOrderResponse, error)
	CreateOrder(ctx context.Context, branchID uuid.UUID, req dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	UpdateOrder(ctx context.Context, branchID, orderID uuid.UUID, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	DeleteOrder(ctx context.Context, branchID, orderID uuid.UUID) error
}

type myBillsService struct {
	orders repository.PurchaseOrderRepository
}

func NewMyBillsService(orders repository.PurchaseOrderRepository) MyBillsService {
	return &myBillsService{orders: orders}
}

func (s *myBillsService) Orders(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.PurchaseOrderResponse, error) {
	orders, err := s.orders.GetAll(ctx, limit, offset, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *toPurchaseOrderResponse(&orders[i]))
	}
	return out, nil
}

func (s *myBillsService) OrderByID(ctx context.Context, branchID, orderID uuid.UUID) (*dto.PurchaseOrderResponse, error) {
	order, err := s.orders.GetByID(ctx, orderID, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "Purchase order not found in current branch.")
	}
	return toPurchaseOrderResponse(order), nil
}

func (s *myBillsService) CreateOrder(ctx context.Context, branchID uuid.UUID, req dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := buildPurchaseOrder(req)
	if err != nil {
		return nil, err
	}
	order.BranchID = branchID

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, translateRepo(err, "")
	}
	return toPurchaseOrderResponse(order), nil
}

func (s *myBillsService) UpdateOrder(ctx context.Context, branchID, orderID uuid.UUID, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	current, err := s.orders.GetByID(ctx, orderID, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "Purchase order not found in current branch.")
	}
	fields, err := purchaseOrderUpdateFields(current, req)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.Update(ctx, orderID, fields, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "Purchase order not found in current branch.")
	}
	return toPurchaseOrderResponse(order), nil
}

func (s *myBillsService) DeleteOrder(ctx context.Context, branchID, orderID uuid.UUID) error {
	if _, err := s.orders.GetByID(ctx, orderID, branchFilter(branchID)); err != nil {
		return translateRepo(err, "Purchase order not found in current branch.")
	}
	return translateRepo(s.orders.Delete(ctx, orderID), "Purchase order not found in current branch.")
}
