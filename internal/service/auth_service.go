package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmpanasiti/rda-platform-api/internal/config"
	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

// bcrypt work factor shared by every password write path.
const passwordHashCost = 12

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Renew(actor middleware.Actor) (*dto.TokenResponse, error)
	CurrentUser(ctx context.Context, actor middleware.Actor) (*dto.UserResponse, error)
}

type authService struct {
	users   repository.UserRepository
	regTx   repository.RegistrationTx
	userSvc UserService
	cfg     *config.Config
}

func NewAuthService(users repository.UserRepository, regTx repository.RegistrationTx, userSvc UserService, cfg *config.Config) AuthService {
	return &authService{users: users, regTx: regTx, userSvc: userSvc, cfg: cfg}
}

// Register signs up a super manager with their first organization and branch
// in one transaction. The uniqueness pre-check deliberately uses the
// unfiltered lookup: a soft-deleted user still blocks username/email reuse.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	byUsername, err := s.users.ListByFilter(ctx, repository.Filter{"username": req.Username})
	if err != nil {
		return nil, translateRepo(err, "")
	}
	if len(byUsername) > 0 {
		return nil, BadRequest(`User with username "` + req.Username + `" already exists.`)
	}
	email := normalizeEmail(req.Email)
	byEmail, err := s.users.ListByFilter(ctx, repository.Filter{"email": email})
	if err != nil {
		return nil, translateRepo(err, "")
	}
	if len(byEmail) > 0 {
		return nil, BadRequest(`User with email "` + email + `" already exists.`)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
		Role:         model.RoleSupermanager,
	}

	err = s.regTx.InTx(ctx, func(users repository.UserRepository, orgs repository.OrganizationRepository, branches repository.BranchRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}

		org := &model.Organization{
			Name:           req.OrganizationName,
			BusinessName:   req.OrganizationName,
			SuperManagerID: user.ID,
			ContactID:      user.ID,
		}
		if err := orgs.Create(ctx, org); err != nil {
			return err
		}

		branch := &model.Branch{
			Name:           req.BranchName,
			ManagerID:      user.ID,
			OrganizationID: org.ID,
		}
		if err := branches.Create(ctx, branch); err != nil {
			return err
		}

		updated, err := users.Update(ctx, user.ID, map[string]any{"branch_id": branch.ID}, nil)
		if err != nil {
			return err
		}
		user = updated
		return nil
	})
	if err != nil {
		return nil, translateRepo(err, "")
	}

	log.Info().Str("username", user.Username).Msg("new user registered")

	token, err := s.issueToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Str("username", req.Username).Msg("login attempt for unknown user")
			return nil, Unauthorized("Error on username/password")
		}
		return nil, translateRepo(err, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("username", user.Username).Msg("login attempt with wrong password")
		return nil, Unauthorized("Error on username/password")
	}

	token, err := s.issueToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", user.Username).Msg("user logged in")
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Renew issues a fresh token for an already-authenticated caller. Stateless:
// the old token stays valid until its own expiry.
func (s *authService) Renew(actor middleware.Actor) (*dto.TokenResponse, error) {
	token, err := s.issueToken(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *authService) CurrentUser(ctx context.Context, actor middleware.Actor) (*dto.UserResponse, error) {
	return s.userSvc.GetByID(ctx, actor.ID)
}

func (s *authService) issueToken(id uuid.UUID, role model.Role) (string, error) {
	claims := middleware.JWTClaims{
		UserID: id.String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}
