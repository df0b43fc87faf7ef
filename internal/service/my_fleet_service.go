package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

// MyFleetService manages vehicles and staff of a single branch. All reads go
// through a branch filter, so ids belonging to other branches come back as
// not found rather than forbidden.
type MyFleetService interface {
	Vehicles(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.MyFleetVehicleResponse, error)
	VehicleByID(ctx context.Context, branchID, vehicleID uuid.UUID) (*dto.MyFleetVehicleResponse, error)
	CreateVehicle(ctx context.Context, branchID uuid.UUID, req dto.MyFleetVehicleRequest) (*dto.MyFleetVehicleResponse, error)
	UpdateVehicle(ctx context.Context, branchID, vehicleID uuid.UUID, req dto.MyFleetVehicleUpdate) (*dto.MyFleetVehicleResponse, error)
	DeleteVehicle(ctx context.Context, branchID, vehicleID uuid.UUID) error
	ActivateVehicle(ctx context.Context, branchID, vehicleID uuid.UUID) (*dto.MyFleetVehicleResponse, error)
	DeactivateVehicle(ctx context.Context, branchID, vehicleID uuid.UUID) (*dto.MyFleetVehicleResponse, error)

	Users(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.UserResponse, error)
	UserByID(ctx context.Context, branchID, userID uuid.UUID) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, branchID uuid.UUID, req dto.MyFleetUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, branchID, userID uuid.UUID, req dto.MyFleetUserUpdate) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, branchID, userID uuid.UUID) error
	ActivateUser(ctx context.Context, branchID, userID uuid.UUID) (*dto.UserResponse, error)
	DeactivateUser(ctx context.Context, branchID, userID uuid.UUID) (*dto.UserResponse, error)
}

type myFleetService struct {
	vehicles repository.VehicleRepository
	users    repository.UserRepository
}

func NewMyFleetService(vehicles repository.VehicleRepository, users repository.UserRepository) MyFleetService {
	return &myFleetService{vehicles: vehicles, users: users}
}

func branchFilter(branchID uuid.UUID) repository.Filter {
	return repository.Filter{"branch_id": branchID}
}

// ─── Vehicles ────────────────────────────────────────────────────────────────

func (s *myFleetService) Vehicles(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.MyFleetVehicleResponse, error) {
	vehicles, err := s.vehicles.GetAll(ctx, limit, offset, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.MyFleetVehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, *toMyFleetVehicleResponse(&vehicles[i]))
	}
	return out, nil
}

func (s *myFleetService) VehicleByID(ctx context.Context, branchID, vehicleID uuid.UUID) (*dto.MyFleetVehicleResponse, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "Vehicle not found in current branch.")
	}
	return toMyFleetVehicleResponse(vehicle), nil
}

func (s *myFleetService) CreateVehicle(ctx context.Context, branchID uuid.UUID, req dto.MyFleetVehicleRequest) (*dto.MyFleetVehicleResponse, error) {
	vehicle := &model.Vehicle{
		RegistrationPlate: req.RegistrationPlate,
		Brand:             req.Brand,
		Model:             req.Model,
		Year:              req.Year,
		Chassis:           req.Chassis,

		FireExtinguisherExpirationDate: req.FireExtinguisherExpirationDate.TimePtr(),
		VTVExpirationDate:              req.VTVExpirationDate.TimePtr(),
		DocumentsExpirationDate:        req.DocumentsExpirationDate.TimePtr(),
		NextServiceDate:                req.NextServiceDate.TimePtr(),

		PolicyNumber:  req.PolicyNumber,
		EngravedParts: req.EngravedParts,
		IsActive:      true,
		BranchID:      &branchID,
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, translateRepo(err, "")
	}
	return toMyFleetVehicleResponse(vehicle), nil
}

func (s *myFleetService) UpdateVehicle(ctx context.Context, branchID, vehicleID uuid.UUID, req dto.MyFleetVehicleUpdate) (*dto.MyFleetVehicleResponse, error) {
	fields := map[string]any{}
	if req.RegistrationPlate != nil {
		fields["registration_plate"] = *req.RegistrationPlate
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Chassis != nil {
		fields["chassis"] = *req.Chassis
	}
	if req.FireExtinguisherExpirationDate != nil {
		fields["fire_extinguisher_expiration_date"] = req.FireExtinguisherExpirationDate.TimePtr()
	}
	if req.VTVExpirationDate != nil {
		fields["vtv_expiration_date"] = req.VTVExpirationDate.TimePtr()
	}
	if req.DocumentsExpirationDate != nil {
		fields["documents_expiration_date"] = req.DocumentsExpirationDate.TimePtr()
	}
	if req.NextServiceDate != nil {
		fields["next_service_date"] = req.NextServiceDate.TimePtr()
	}
	if req.PolicyNumber != nil {
		fields["policy_number"] = *req.PolicyNumber
	}
	if req.EngravedParts != nil {
		fields["engraved_parts"] = *req.EngravedParts
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	vehicle, err := s.vehicles.Update(ctx, vehicleID, fields, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "Vehicle not found in current branch.")
	}
	return toMyFleetVehicleResponse(vehicle), nil
}

func (s *myFleetService) DeleteVehicle(ctx context.Context, branchID, vehicleID uuid.UUID) error {
	if _, err := s.vehicles.GetByID(ctx, vehicleID, branchFilter(branchID)); err != nil {
		return translateRepo(err, "Vehicle not found in current branch.")
	}
	return translateRepo(s.vehicles.Delete(ctx, vehicleID), "Vehicle not found in current branch.")
}

func (s *myFleetService) ActivateVehicle(ctx context.Context, branchID, vehicleID uuid.UUID) (*dto.MyFleetVehicleResponse, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID, branchFilter(branchID)); err != nil {
		return nil, translateRepo(err, "Vehicle not found in current branch.")
	}
	vehicle, err := s.vehicles.Activate(ctx, vehicleID)
	if err != nil {
		return nil, translateRepo(err, "Vehicle not found in current branch.")
	}
	return toMyFleetVehicleResponse(vehicle), nil
}

func (s *myFleetService) DeactivateVehicle(ctx context.Context, branchID, vehicleID uuid.UUID) (*dto.MyFleetVehicleResponse, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID, branchFilter(branchID)); err != nil {
		return nil, translateRepo(err, "Vehicle not found in current branch.")
	}
	vehicle, err := s.vehicles.Deactivate(ctx, vehicleID)
	if err != nil {
		return nil, translateRepo(err, "Vehicle not found in current branch.")
	}
	return toMyFleetVehicleResponse(vehicle), nil
}

// ─── Users ───────────────────────────────────────────────────────────────────

func (s *myFleetService) Users(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]dto.UserResponse, error) {
	users, err := s.users.GetAll(ctx, limit, offset, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *myFleetService) UserByID(ctx context.Context, branchID, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "User not found in current branch.")
	}
	return toUserResponse(user), nil
}

func (s *myFleetService) CreateUser(ctx context.Context, branchID uuid.UUID, req dto.MyFleetUserRequest) (*dto.UserResponse, error) {
	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleDriver
	}
	if !role.Valid() {
		return nil, BadRequest("Invalid role.")
	}

	if existing, err := s.users.ListByFilter(ctx, repository.Filter{"username": req.Username}); err != nil {
		return nil, translateRepo(err, "")
	} else if len(existing) > 0 {
		return nil, BadRequest(`User with username "` + req.Username + `" already exists.`)
	}
	email := normalizeEmail(req.Email)
	if existing, err := s.users.ListByFilter(ctx, repository.Filter{"email": email}); err != nil {
		return nil, translateRepo(err, "")
	} else if len(existing) > 0 {
		return nil, BadRequest(`User with email "` + email + `" already exists.`)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Job:          req.Job,
		Role:         role,
		IsActive:     true,
		BranchID:     &branchID,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if user.VehicleID, err = parseUUIDField(req.VehicleID, "vehicle_id"); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, translateRepo(err, "")
	}
	return toUserResponse(user), nil
}

func (s *myFleetService) UpdateUser(ctx context.Context, branchID, userID uuid.UUID, req dto.MyFleetUserUpdate) (*dto.UserResponse, error) {
	fields := map[string]any{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), passwordHashCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}
	if req.Email != nil {
		fields["email"] = normalizeEmail(*req.Email)
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Job != nil {
		fields["job"] = *req.Job
	}
	if req.Role != nil {
		role := model.Role(*req.Role)
		if !role.Valid() {
			return nil, BadRequest("Invalid role.")
		}
		fields["role"] = role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.VehicleID != nil {
		vehicleID, err := parseUUIDField(req.VehicleID, "vehicle_id")
		if err != nil {
			return nil, err
		}
		fields["vehicle_id"] = vehicleID
	}

	user, err := s.users.Update(ctx, userID, fields, branchFilter(branchID))
	if err != nil {
		return nil, translateRepo(err, "User not found in current branch.")
	}
	return toUserResponse(user), nil
}

func (s *myFleetService) DeleteUser(ctx context.Context, branchID, userID uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, userID, branchFilter(branchID)); err != nil {
		return translateRepo(err, "User not found in current branch.")
	}
	return translateRepo(s.users.Delete(ctx, userID), "User not found in current branch.")
}

func (s *myFleetService) ActivateUser(ctx context.Context, branchID, userID uuid.UUID) (*dto.UserResponse, error) {
	if _, err := s.users.GetByID(ctx, userID, branchFilter(branchID)); err != nil {
		return nil, translateRepo(err, "User not found in current branch.")
	}
	user, err := s.users.Activate(ctx, userID)
	if err != nil {
		return nil, translateRepo(err, "User not found in current branch.")
	}
	return toUserResponse(user), nil
}

func (s *myFleetService) DeactivateUser(ctx context.Context, branchID, userID uuid.UUID) (*dto.UserResponse, error) {
	if _, err := s.users.GetByID(ctx, userID, branchFilter(branchID)); err != nil {
		return nil, translateRepo(err, "User not found in current branch.")
	}
	user, err := s.users.Deactivate(ctx, userID)
	if err != nil {
		return nil, translateRepo(err, "User not found in current branch.")
	}
	return toUserResponse(user), nil
}
