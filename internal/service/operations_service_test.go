package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) NotifyWorkflow(_ context.Context, _ uuid.UUID, title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, title)
}

type operationsFixture struct {
	svc      OperationsService
	notifier *recordingNotifier
	vehicles repository.VehicleRepository
	branchA  uuid.UUID
	branchB  uuid.UUID
	vehicleA *model.Vehicle
	vehicleB *model.Vehicle
}

func newOperationsFixture(t *testing.T) *operationsFixture {
	t.Helper()
	db := newTestDB(t)
	files, err := infra.NewFileStore(t.TempDir())
	require.NoError(t, err)

	vehicles := repository.NewVehicleRepository(db)
	notifier := &recordingNotifier{}
	svc := NewOperationsService(
		repository.NewRequestRepository(db),
		repository.NewSinisterRepository(db),
		vehicles,
		files,
		notifier,
	)

	f := &operationsFixture{
		svc:      svc,
		notifier: notifier,
		vehicles: vehicles,
		branchA:  uuid.New(),
		branchB:  uuid.New(),
	}
	ctx := context.Background()
	f.vehicleA = &model.Vehicle{RegistrationPlate: "OPA001", Brand: "Ford", Model: "Ranger", Year: 2022, BranchID: &f.branchA}
	f.vehicleB = &model.Vehicle{RegistrationPlate: "OPB001", Brand: "Fiat", Model: "Toro", Year: 2023, BranchID: &f.branchB}
	require.NoError(t, vehicles.Create(ctx, f.vehicleA))
	require.NoError(t, vehicles.Create(ctx, f.vehicleB))
	return f
}

func serviceRequestFor(vehicleID uuid.UUID) dto.ServiceRequestCreate {
	return dto.ServiceRequestCreate{
		Type:      string(model.RequestPreventive),
		Odometer:  42000,
		VehicleID: vehicleID.String(),
		UserID:    uuid.New().String(),
	}
}

func TestCreateRequestRejectsForeignVehicle(t *testing.T) {
	f := newOperationsFixture(t)
	ctx := context.Background()

	// Vehicle B belongs to the other branch: from A's perspective it does
	// not exist.
	_, err := f.svc.CreateRequest(ctx, f.branchA, serviceRequestFor(f.vehicleB.ID))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Vehicle not found in current branch.", err.Error())
}

func TestCreateAndListBranchRequests(t *testing.T) {
	f := newOperationsFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, f.branchA, serviceRequestFor(f.vehicleA.ID))
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusOpen), created.Status)

	rows, err := f.svc.BranchRequests(ctx, f.branchA, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = f.svc.BranchRequests(ctx, f.branchB, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestApproveRequestStampsApproverAndNotifies(t *testing.T) {
	f := newOperationsFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, f.branchA, serviceRequestFor(f.vehicleA.ID))
	require.NoError(t, err)

	actor := middleware.Actor{ID: uuid.New(), Role: model.RoleManager}
	approved, err := f.svc.ApproveRequest(ctx, actor, f.branchA, mustParse(t, created.ID))
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusApproved), approved.Status)
	require.NotNil(t, approved.ApproverUserID)
	assert.Equal(t, actor.ID.String(), *approved.ApproverUserID)

	require.Len(t, f.notifier.calls, 1)
}

func TestApproveRequestAcrossBranchFails(t *testing.T) {
	f := newOperationsFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, f.branchA, serviceRequestFor(f.vehicleA.ID))
	require.NoError(t, err)

	actor := middleware.Actor{ID: uuid.New(), Role: model.RoleManager}
	_, err = f.svc.ApproveRequest(ctx, actor, f.branchB, mustParse(t, created.ID))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTireImageLifecycle(t *testing.T) {
	f := newOperationsFixture(t)
	ctx := context.Background()

	req := serviceRequestFor(f.vehicleA.ID)
	req.Type = string(model.RequestTires)
	created, err := f.svc.CreateRequest(ctx, f.branchA, req)
	require.NoError(t, err)
	id := mustParse(t, created.ID)

	require.NoError(t, f.svc.UploadTireImage(ctx, f.branchA, id, "tire.jpg", []byte("jpeg-bytes")))

	path, err := f.svc.TireImagePath(ctx, f.branchA, id, "tire.jpg")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	require.NoError(t, f.svc.DeleteTireImage(ctx, f.branchA, id, "tire.jpg"))
	_, err = f.svc.TireImagePath(ctx, f.branchA, id, "tire.jpg")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func sinisterRequestFor(vehicleID uuid.UUID) dto.SinisterRequest {
	return dto.SinisterRequest{
		Type:      string(model.SinisterRobbery),
		Place:     string(model.PlaceStreet),
		VehicleID: vehicleID.String(),
		UserID:    uuid.New().String(),
	}
}

func TestSinisterFilesKeepSetSemantics(t *testing.T) {
	f := newOperationsFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateSinister(ctx, f.branchA, sinisterRequestFor(f.vehicleA.ID))
	require.NoError(t, err)
	id := mustParse(t, created.ID)

	require.NoError(t, f.svc.UploadSinisterFile(ctx, f.branchA, id, "crash.jpg", []byte("one")))
	// Re-uploading the same name replaces the blob without duplicating the entry.
	require.NoError(t, f.svc.UploadSinisterFile(ctx, f.branchA, id, "crash.jpg", []byte("two")))

	got, err := f.svc.BranchSinisterByID(ctx, f.branchA, id)
	require.NoError(t, err)
	assert.Len(t, got.FilesURLs, 1)

	require.NoError(t, f.svc.DeleteSinisterFile(ctx, f.branchA, id, "crash.jpg"))
	got, err = f.svc.BranchSinisterByID(ctx, f.branchA, id)
	require.NoError(t, err)
	assert.Empty(t, got.FilesURLs)
}

func TestCreateSinisterRejectsForeignVehicle(t *testing.T) {
	f := newOperationsFixture(t)

	_, err := f.svc.CreateSinister(context.Background(), f.branchA, sinisterRequestFor(f.vehicleB.ID))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
