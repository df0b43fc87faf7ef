package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type reportFixture struct {
	svc      MyReportService
	vehicles repository.VehicleRepository
	users    repository.UserRepository
	branch   uuid.UUID
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	db := newTestDB(t)
	vehicles := repository.NewVehicleRepository(db)
	users := repository.NewUserRepository(db)
	return &reportFixture{
		svc:      NewMyReportService(vehicles, users),
		vehicles: vehicles,
		users:    users,
		branch:   uuid.New(),
	}
}

func (f *reportFixture) addVehicle(t *testing.T, plate string, fee float64) *model.Vehicle {
	t.Helper()
	v := &model.Vehicle{RegistrationPlate: plate, Brand: "Ford", Model: "Ka", Year: 2021, Fee: fee, BranchID: &f.branch}
	require.NoError(t, f.vehicles.Create(context.Background(), v))
	return v
}

func TestActiveVehiclesExcludesDeactivated(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	f.addVehicle(t, "RPT001", 0)
	off := f.addVehicle(t, "RPT002", 0)
	_, err := f.vehicles.Deactivate(ctx, off.ID)
	require.NoError(t, err)

	rows, err := f.svc.ActiveVehicles(ctx, f.branch, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "RPT001", rows[0].RegistrationPlate)
}

func TestVehiclesWithExpensesFiltersByExactFee(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	f.addVehicle(t, "FEE100", 100)
	f.addVehicle(t, "FEE200", 200)

	fee := 200.0
	rows, err := f.svc.VehiclesWithExpenses(ctx, f.branch, &fee, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "FEE200", rows[0].RegistrationPlate)

	// Without the filter every active vehicle is reported.
	rows, err = f.svc.VehiclesWithExpenses(ctx, f.branch, nil, 10, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestUsersWithExpensesSkipsUnassignedAndFreeVehicles(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	paid := f.addVehicle(t, "PAY001", 150)
	free := f.addVehicle(t, "FREE01", 0)

	mkUser := func(name string, vehicleID *uuid.UUID) {
		u := &model.User{
			Username: name, Email: name + "@example.com", PasswordHash: "x",
			FirstName: "R", LastName: "U", Role: model.RoleDriver, IsActive: true,
			BranchID: &f.branch, VehicleID: vehicleID,
		}
		require.NoError(t, f.users.Create(ctx, u))
	}
	mkUser("with_expense", &paid.ID)
	mkUser("free_vehicle", &free.ID)
	mkUser("no_vehicle11", nil)

	rows, err := f.svc.UsersWithExpenses(ctx, f.branch, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "with_expense@example.com", rows[0].Email)
}
