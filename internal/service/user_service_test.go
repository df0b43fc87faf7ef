package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

func newUserService(t *testing.T) UserService {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepository(db), repository.NewDriverLicenseRepository(db))
}

func createUserReq(username, role string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret-password",
		Role:      role,
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Create(context.Background(), createUserReq("bad_role_user", "emperor"))
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Contains(t, err.Error(), "emperor")
}

func TestCreateNeverExposesPassword(t *testing.T) {
	svc := newUserService(t)

	resp, err := svc.Create(context.Background(), createUserReq("driver_user1", string(model.RoleDriver)))
	require.NoError(t, err)
	assert.Equal(t, string(model.RoleDriver), resp.Role)
	assert.True(t, resp.IsActive)
}

func TestFirstSuperadminGuard(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	req := dto.FirstSuperadminRequest{
		Username: "bootstrap_admin",
		Email:    "boot@example.com",
		Password: "secret-password",
	}
	resp, err := svc.CreateFirstSuperadmin(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, string(model.RoleSuperadmin), resp.Role)

	req.Username = "bootstrap_admin2"
	req.Email = "boot2@example.com"
	_, err = svc.CreateFirstSuperadmin(ctx, req)
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestUpdateOwnershipRule(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	owner, err := svc.Create(ctx, createUserReq("owner_user1", string(model.RoleDriver)))
	require.NoError(t, err)
	other, err := svc.Create(ctx, createUserReq("other_user1", string(model.RoleDriver)))
	require.NoError(t, err)

	ownerID := mustParse(t, owner.ID)
	otherID := mustParse(t, other.ID)
	newPhone := "1155550000"

	// A non-admin editing someone else is refused before any lookup.
	_, err = svc.Update(ctx, middleware.Actor{ID: ownerID, Role: model.RoleDriver}, otherID, dto.UpdateUserRequest{Phone: &newPhone})
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))

	// Self-edit passes.
	resp, err := svc.Update(ctx, middleware.Actor{ID: ownerID, Role: model.RoleDriver}, ownerID, dto.UpdateUserRequest{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, newPhone, resp.Phone)

	// Admins edit anyone.
	resp, err = svc.Update(ctx, middleware.Actor{ID: otherID, Role: model.RoleAdmin}, ownerID, dto.UpdateUserRequest{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, newPhone, resp.Phone)
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createUserReq("delete_me1", string(model.RoleDriver)))
	require.NoError(t, err)
	id := mustParse(t, resp.ID)

	require.NoError(t, svc.Delete(ctx, id))
	err = svc.Delete(ctx, id)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "User not found.", err.Error())
}

func TestActivateDeactivate(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, createUserReq("flip_user11", string(model.RoleDriver)))
	require.NoError(t, err)
	id := mustParse(t, resp.ID)

	resp, err = svc.Deactivate(ctx, id)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	resp, err = svc.Activate(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}
