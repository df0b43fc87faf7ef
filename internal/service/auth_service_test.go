package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmpanasiti/rda-platform-api/internal/config"
	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// newTestDB backs the service tests with the real repositories on in-memory
// sqlite, so repository semantics (soft delete, filters) are in play.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.Migrate(db))
	return db
}

func mustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func newTestCfg() *config.Config {
	return &config.Config{JWTSecret: testSecret, JWTExpirationHours: 8}
}

func newAuthStack(t *testing.T) (AuthService, UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	licenses := repository.NewDriverLicenseRepository(db)
	userSvc := NewUserService(users, licenses)
	authSvc := NewAuthService(users, repository.NewRegistrationTx(db), userSvc, newTestCfg())
	return authSvc, userSvc, db
}

func registerReq(username string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:         username,
		Email:            username + "@example.com",
		Password:         "secret-password",
		FirstName:        "Test",
		LastName:         "User",
		OrganizationName: "Test Org",
		BranchName:       "HQ",
	}
}

func TestRegisterCreatesTenantChain(t *testing.T) {
	authSvc, _, db := newAuthStack(t)
	ctx := context.Background()

	resp, err := authSvc.Register(ctx, registerReq("new_supermanager"))
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	var user model.User
	require.NoError(t, db.Where("username = ?", "new_supermanager").First(&user).Error)
	assert.Equal(t, model.RoleSupermanager, user.Role)
	require.NotNil(t, user.BranchID)

	var org model.Organization
	require.NoError(t, db.Where("super_manager_id = ?", user.ID).First(&org).Error)
	assert.Equal(t, "Test Org", org.Name)

	var branch model.Branch
	require.NoError(t, db.Where("id = ?", *user.BranchID).First(&branch).Error)
	assert.Equal(t, "HQ", branch.Name)
	assert.Equal(t, org.ID, branch.OrganizationID)

	// The issued token carries the actor identity.
	claims := &middleware.JWTClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, string(model.RoleSupermanager), claims.Role)
}

func TestRegisterLowercasesEmail(t *testing.T) {
	authSvc, _, db := newAuthStack(t)
	ctx := context.Background()

	first := registerReq("first_supermanager")
	first.Email = "Shared@Example.COM"
	_, err := authSvc.Register(ctx, first)
	require.NoError(t, err)

	var user model.User
	require.NoError(t, db.Where("username = ?", "first_supermanager").First(&user).Error)
	assert.Equal(t, "shared@example.com", user.Email)

	// A re-cased address is the same mailbox, so the second signup is refused.
	second := registerReq("other_supermanager")
	second.Email = "sHARED@example.com"
	_, err = authSvc.Register(ctx, second)
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Contains(t, err.Error(), "shared@example.com")
}

func TestRegisterRejectsReusedUsername(t *testing.T) {
	authSvc, _, db := newAuthStack(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, registerReq("taken_username"))
	require.NoError(t, err)

	req := registerReq("taken_username")
	req.Email = "other@example.com"
	_, err = authSvc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Contains(t, err.Error(), "taken_username")

	// A soft-deleted account still blocks reuse.
	var user model.User
	require.NoError(t, db.Where("username = ?", "taken_username").First(&user).Error)
	users := repository.NewUserRepository(db)
	require.NoError(t, users.Delete(ctx, user.ID))

	_, err = authSvc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestLoginFailureStaysGeneric(t *testing.T) {
	authSvc, _, _ := newAuthStack(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, registerReq("login_target"))
	require.NoError(t, err)

	// Wrong password and unknown user read identically to the client.
	_, err = authSvc.Login(ctx, dto.LoginRequest{Username: "login_target", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, "Error on username/password", err.Error())

	_, err = authSvc.Login(ctx, dto.LoginRequest{Username: "no_such_user1", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, "Error on username/password", err.Error())
}

func TestLoginHappyPath(t *testing.T) {
	authSvc, _, _ := newAuthStack(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, registerReq("happy_login"))
	require.NoError(t, err)

	resp, err := authSvc.Login(ctx, dto.LoginRequest{Username: "happy_login", Password: "secret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRenewIssuesFreshToken(t *testing.T) {
	authSvc, _, _ := newAuthStack(t)

	actor := middleware.Actor{ID: uuid.New(), Role: model.RoleAgent}
	resp, err := authSvc.Renew(actor)
	require.NoError(t, err)

	claims := &middleware.JWTClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, actor.ID.String(), claims.UserID)
	assert.Equal(t, string(model.RoleAgent), claims.Role)
}
