package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.Branch{},
		&model.Vehicle{},
		&model.Request{},
		&model.Sinister{},
		&model.Notification{},
	))
	return db
}

func newOrg(name string) *model.Organization {
	return &model.Organization{
		Name:           name,
		BusinessName:   name + " S.A.",
		SuperManagerID: uuid.New(),
		ContactID:      uuid.New(),
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := newOrg("Acme")
	require.NoError(t, repo.Create(ctx, org))

	assert.NotEqual(t, uuid.Nil, org.ID)

	got, err := repo.GetByID(ctx, org.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetAllPaginatesInInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	names := []string{"first", "second", "third", "fourth"}
	for _, n := range names {
		require.NoError(t, repo.Create(ctx, newOrg(n)))
	}

	page, err := repo.GetAll(ctx, 2, 0, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "first", page[0].Name)
	assert.Equal(t, "second", page[1].Name)

	page, err = repo.GetAll(ctx, 2, 2, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Name)
	assert.Equal(t, "fourth", page[1].Name)
}

func TestSoftDeleteHidesRowEverywhereButListByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := newOrg("Ghost")
	require.NoError(t, repo.Create(ctx, org))
	require.NoError(t, repo.Delete(ctx, org.ID))

	_, err := repo.GetByID(ctx, org.ID, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := repo.GetAll(ctx, 10, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Existence pre-checks must still see the tombstone.
	rows, err := repo.ListByFilter(ctx, Filter{"name": "Ghost"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsDeleted)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := newOrg("Once")
	require.NoError(t, repo.Create(ctx, org))

	require.NoError(t, repo.Delete(ctx, org.ID))
	assert.ErrorIs(t, repo.Delete(ctx, org.ID), ErrNotFound)
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrganizationRepository(db)

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrNotFound)
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := newOrg("Before")
	org.DocumentNumber = "20-12345678-9"
	require.NoError(t, repo.Create(ctx, org))

	created, err := repo.GetByID(ctx, org.ID, nil)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	got, err := repo.Update(ctx, org.ID, map[string]any{"name": "After"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	// Untouched columns survive a partial update.
	assert.Equal(t, "20-12345678-9", got.DocumentNumber)
	// updated_at moves strictly forward on every update.
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt))
}

func TestSinisterFileListRoundTrips(t *testing.T) {
	db := newTestDB(t)
	repo := NewSinisterRepository(db)
	ctx := context.Background()

	sinister := &model.Sinister{
		Type:      model.SinisterRobbery,
		Place:     model.PlaceRoute,
		Status:    model.StatusOpen,
		FilesURLs: []string{},
		VehicleID: uuid.New(),
		UserID:    uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, sinister))

	got, err := repo.UpdateFiles(ctx, sinister.ID, []string{"front.jpg", "back.jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, got.FilesURLs)

	// The list survives a fresh read, not just the update's re-fetch.
	got, err = repo.GetByID(ctx, sinister.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, got.FilesURLs)

	got, err = repo.UpdateFiles(ctx, sinister.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got.FilesURLs)
}

func TestUpdateCannotResurrectSoftDeletedRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := newOrg("Tombstone")
	require.NoError(t, repo.Create(ctx, org))

	// is_deleted is stripped from the field set before it reaches the db.
	got, err := repo.Update(ctx, org.ID, map[string]any{"is_deleted": true, "name": "Renamed"}, nil)
	require.NoError(t, err)
	assert.False(t, got.IsDeleted)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, repo.Delete(ctx, org.ID))
	_, err = repo.Update(ctx, org.ID, map[string]any{"is_deleted": false}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilterScopesLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	branchA := uuid.New()
	branchB := uuid.New()
	v := &model.Vehicle{RegistrationPlate: "AA123BB", Brand: "Ford", Model: "Ranger", Year: 2022, BranchID: &branchA}
	require.NoError(t, repo.Create(ctx, v))

	got, err := repo.GetByID(ctx, v.ID, Filter{"branch_id": branchA})
	require.NoError(t, err)
	assert.Equal(t, "AA123BB", got.RegistrationPlate)

	// The wrong branch reads as nonexistent, not forbidden.
	_, err = repo.GetByID(ctx, v.ID, Filter{"branch_id": branchB})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateUniqueColumnTranslates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &model.User{Username: "driver_one", Email: "one@example.com", PasswordHash: "x", FirstName: "A", LastName: "B", Role: model.RoleDriver}
	require.NoError(t, repo.Create(ctx, u))

	dup := &model.User{Username: "driver_one", Email: "two@example.com", PasswordHash: "x", FirstName: "A", LastName: "B", Role: model.RoleDriver}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	var dbErr *DatabaseError
	assert.ErrorAs(t, err, &dbErr)
}

func TestGetByUsernameIgnoresDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &model.User{Username: "gone_user1", Email: "gone@example.com", PasswordHash: "x", FirstName: "A", LastName: "B", Role: model.RoleDriver}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByUsername(ctx, "gone_user1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.GetByUsername(ctx, "gone_user1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivateDeactivateToggleFlag(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &model.User{Username: "toggle_me1", Email: "t@example.com", PasswordHash: "x", FirstName: "A", LastName: "B", Role: model.RoleDriver, IsActive: true}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.Deactivate(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = repo.Activate(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

// Branch-scoped request lookups resolve the boundary through the vehicle.
func TestBranchRequestsJoinScoping(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	requests := NewRequestRepository(db)
	ctx := context.Background()

	branchA := uuid.New()
	branchB := uuid.New()
	vA := &model.Vehicle{RegistrationPlate: "AA000AA", Brand: "Ford", Model: "Ka", Year: 2020, BranchID: &branchA}
	vB := &model.Vehicle{RegistrationPlate: "BB000BB", Brand: "Fiat", Model: "Uno", Year: 2019, BranchID: &branchB}
	require.NoError(t, vehicles.Create(ctx, vA))
	require.NoError(t, vehicles.Create(ctx, vB))

	reqA := &model.Request{VehicleID: vA.ID, UserID: uuid.New(), Type: model.RequestPreventive, Status: model.StatusOpen}
	reqB := &model.Request{VehicleID: vB.ID, UserID: uuid.New(), Type: model.RequestPreventive, Status: model.StatusOpen}
	require.NoError(t, requests.Create(ctx, reqA))
	require.NoError(t, requests.Create(ctx, reqB))

	rows, err := requests.GetBranchRequests(ctx, branchA, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, reqA.ID, rows[0].ID)

	_, err = requests.GetBranchRequestByID(ctx, branchA, reqB.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, requests.Delete(ctx, reqA.ID))
	rows, err = requests.GetBranchRequests(ctx, branchA, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListExpiringDocs(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	soon := time.Now().Add(10 * 24 * time.Hour)
	far := time.Now().Add(90 * 24 * time.Hour)
	horizon := time.Now().Add(30 * 24 * time.Hour)

	expiring := &model.Vehicle{RegistrationPlate: "EXP001", Brand: "Ford", Model: "Ka", Year: 2020, VTVExpirationDate: &soon}
	future := &model.Vehicle{RegistrationPlate: "FUT001", Brand: "Fiat", Model: "Uno", Year: 2021, VTVExpirationDate: &far}
	inactive := &model.Vehicle{RegistrationPlate: "OFF001", Brand: "VW", Model: "Gol", Year: 2018, VTVExpirationDate: &soon}
	require.NoError(t, repo.Create(ctx, expiring))
	require.NoError(t, repo.Create(ctx, future))
	require.NoError(t, repo.Create(ctx, inactive))
	_, err := repo.Deactivate(ctx, inactive.ID)
	require.NoError(t, err)

	rows, err := repo.ListExpiringDocs(ctx, horizon)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EXP001", rows[0].RegistrationPlate)
}
