package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

// MyReportService answers the branch reporting queries. Reports only ever see
// active rows.
type MyReportService interface {
	ActiveVehicles(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.MyReportVehicleResponse, error)
	VehiclesWithExpenses(ctx context.Context, branchID uuid.UUID, fee *float64, limit, offset int) ([]dto.MyReportVehicleResponse, error)
	UsersWithExpenses(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.MyReportUserResponse, error)
}

type myReportService struct {
	vehicles repository.VehicleRepository
	users    repository.UserRepository
}

func NewMyReportService(vehicles repository.VehicleRepository, users repository.UserRepository) MyReportService {
	return &myReportService{vehicles: vehicles, users: users}
}

func (s *myReportService) ActiveVehicles(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.MyReportVehicleResponse, error) {
	return s.listVehicles(ctx, repository.Filter{"branch_id": branchID, "is_active": true}, limit, offset)
}

// VehiclesWithExpenses narrows the active-vehicle report to an exact fee when
// one is given.
func (s *myReportService) VehiclesWithExpenses(ctx context.Context, branchID uuid.UUID, fee *float64, limit, offset int) ([]dto.MyReportVehicleResponse, error) {
	filter := repository.Filter{"branch_id": branchID, "is_active": true}
	if fee != nil {
		filter["fee"] = *fee
	}
	return s.listVehicles(ctx, filter, limit, offset)
}

// UsersWithExpenses reports the active users whose assigned vehicle carries a
// nonzero fee.
func (s *myReportService) UsersWithExpenses(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.MyReportUserResponse, error) {
	users, err := s.users.GetAll(ctx, limit, offset, repository.Filter{"branch_id": branchID, "is_active": true})
	if err != nil {
		return nil, translateRepo(err, "")
	}

	out := make([]dto.MyReportUserResponse, 0, len(users))
	for i := range users {
		user := &users[i]
		if user.VehicleID == nil {
			continue
		}
		vehicle, err := s.vehicles.GetByID(ctx, *user.VehicleID, nil)
		if err != nil {
			return nil, translateRepo(err, "Vehicle not found.")
		}
		if vehicle.Fee != 0 {
			out = append(out, *toMyReportUserResponse(user))
		}
	}
	return out, nil
}

func (s *myReportService) listVehicles(ctx context.Context, filter repository.Filter, limit, offset int) ([]dto.MyReportVehicleResponse, error) {
	vehicles, err := s.vehicles.GetAll(ctx, limit, offset, filter)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.MyReportVehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, *toMyReportVehicleResponse(&vehicles[i]))
	}
	return out, nil
}
