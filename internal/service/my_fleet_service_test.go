package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

func newMyFleet(t *testing.T) MyFleetService {
	t.Helper()
	db := newTestDB(t)
	return NewMyFleetService(repository.NewVehicleRepository(db), repository.NewUserRepository(db))
}

func fleetVehicleReq(plate string) dto.MyFleetVehicleRequest {
	return dto.MyFleetVehicleRequest{
		RegistrationPlate: plate,
		Brand:             "Ford",
		Model:             "Ranger",
		Year:              2023,
	}
}

func fleetUserReq(username string) dto.MyFleetUserRequest {
	return dto.MyFleetUserRequest{
		Username:  username,
		Password:  "secret-password",
		Email:     username + "@example.com",
		FirstName: "Fleet",
		LastName:  "User",
	}
}

func TestFleetVehicleCrossBranchReadsAsMissing(t *testing.T) {
	svc := newMyFleet(t)
	ctx := context.Background()

	branchA := uuid.New()
	branchB := uuid.New()
	created, err := svc.CreateVehicle(ctx, branchA, fleetVehicleReq("FLT001"))
	require.NoError(t, err)
	id := mustParse(t, created.ID)

	_, err = svc.VehicleByID(ctx, branchA, id)
	require.NoError(t, err)

	_, err = svc.VehicleByID(ctx, branchB, id)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Vehicle not found in current branch.", err.Error())

	// Same boundary on writes.
	_, err = svc.DeactivateVehicle(ctx, branchB, id)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	require.Error(t, svc.DeleteVehicle(ctx, branchB, id))
}

func TestFleetVehicleListStaysInBranch(t *testing.T) {
	svc := newMyFleet(t)
	ctx := context.Background()

	branchA := uuid.New()
	branchB := uuid.New()
	_, err := svc.CreateVehicle(ctx, branchA, fleetVehicleReq("LIA001"))
	require.NoError(t, err)
	_, err = svc.CreateVehicle(ctx, branchB, fleetVehicleReq("LIB001"))
	require.NoError(t, err)

	rows, err := svc.Vehicles(ctx, branchA, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "LIA001", rows[0].RegistrationPlate)
}

func TestFleetUserDefaultsToDriverRole(t *testing.T) {
	svc := newMyFleet(t)
	ctx := context.Background()

	branch := uuid.New()
	created, err := svc.CreateUser(ctx, branch, fleetUserReq("branch_driver1"))
	require.NoError(t, err)
	assert.Equal(t, string(model.RoleDriver), created.Role)
	require.NotNil(t, created.BranchID)
	assert.Equal(t, branch.String(), *created.BranchID)
}

func TestFleetUserRejectsDuplicateUsername(t *testing.T) {
	svc := newMyFleet(t)
	ctx := context.Background()

	branch := uuid.New()
	_, err := svc.CreateUser(ctx, branch, fleetUserReq("dup_driver11"))
	require.NoError(t, err)

	req := fleetUserReq("dup_driver11")
	req.Email = "other@example.com"
	_, err = svc.CreateUser(ctx, branch, req)
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Equal(t, `User with username "dup_driver11" already exists.`, err.Error())
}

func TestFleetUserCrossBranchReadsAsMissing(t *testing.T) {
	svc := newMyFleet(t)
	ctx := context.Background()

	branchA := uuid.New()
	branchB := uuid.New()
	created, err := svc.CreateUser(ctx, branchA, fleetUserReq("scoped_user1"))
	require.NoError(t, err)
	id := mustParse(t, created.ID)

	_, err = svc.UserByID(ctx, branchB, id)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "User not found in current branch.", err.Error())
}
