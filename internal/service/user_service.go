package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, actor middleware.Actor, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	CreateFirstSuperadmin(ctx context.Context, req dto.FirstSuperadminRequest) (*dto.UserResponse, error)
}

type userService struct {
	users    repository.UserRepository
	licenses repository.DriverLicenseRepository
}

func NewUserService(users repository.UserRepository, licenses repository.DriverLicenseRepository) UserService {
	return &userService{users: users, licenses: licenses}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := model.Role(req.Role)
	if !role.Valid() {
		return nil, BadRequest("Unknown role: " + req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Job:          req.Job,
		IsActive:     true,
		Role:         role,
		BranchID:     parseUUIDPtr(req.BranchID),
		VehicleID:    parseUUIDPtr(req.VehicleID),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, translateRepo(err, "")
	}
	return toUserResponse(user), nil
}

func (s *userService) GetAll(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	users, err := s.users.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "User not found.")
	}
	resp := toUserResponse(user)
	s.attachLicenses(ctx, resp, id)
	return resp, nil
}

// Update applies a partial edit. Non-admins may only edit themselves; the
// coarse route gate admits every role, so the ownership check lives here.
func (s *userService) Update(ctx context.Context, actor middleware.Actor, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if id != actor.ID && !actor.Role.In(model.AdminRoles) {
		return nil, Forbidden("You can't edit this user.")
	}

	fields := map[string]any{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = normalizeEmail(*req.Email)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), passwordHashCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}
	if req.Role != nil {
		role := model.Role(*req.Role)
		if !role.Valid() {
			return nil, BadRequest("Unknown role: " + *req.Role)
		}
		fields["role"] = role
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
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.BranchID != nil {
		fields["branch_id"] = parseUUIDPtr(req.BranchID)
	}
	if req.VehicleID != nil {
		fields["vehicle_id"] = parseUUIDPtr(req.VehicleID)
	}

	user, err := s.users.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "User not found.")
	}
	return toUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.users.Delete(ctx, id), "User not found.")
}

func (s *userService) Activate(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.Activate(ctx, id)
	if err != nil {
		return nil, translateRepo(err, "User not found.")
	}
	return toUserResponse(user), nil
}

func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.Deactivate(ctx, id)
	if err != nil {
		return nil, translateRepo(err, "User not found.")
	}
	return toUserResponse(user), nil
}

// CreateFirstSuperadmin bootstraps the platform. It refuses once any
// superadmin exists; the endpoint is unauthenticated on purpose, so the guard
// is the only gate.
func (s *userService) CreateFirstSuperadmin(ctx context.Context, req dto.FirstSuperadminRequest) (*dto.UserResponse, error) {
	existing, err := s.users.GetAll(ctx, 1, 0, repository.Filter{"role": model.RoleSuperadmin})
	if err != nil {
		return nil, translateRepo(err, "")
	}
	if len(existing) > 0 {
		return nil, BadRequest("There are at least one user with superadmin role.")
	}

	log.Info().Str("username", req.Username).Msg("bootstrapping first superadmin")

	return s.Create(ctx, dto.CreateUserRequest{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      string(model.RoleSuperadmin),
		FirstName: "super",
		LastName:  "admin",
	})
}

func (s *userService) attachLicenses(ctx context.Context, resp *dto.UserResponse, userID uuid.UUID) {
	licenses, err := s.licenses.GetAll(ctx, 10, 0, repository.Filter{"user_id": userID})
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("could not load driver licenses")
		return
	}
	for i := range licenses {
		resp.DriverLicense = append(resp.DriverLicense, *toDriverLicenseResponse(&licenses[i]))
	}
}
