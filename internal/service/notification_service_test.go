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

func newNotificationService(t *testing.T) NotificationService {
	t.Helper()
	return NewNotificationService(repository.NewNotificationRepository(newTestDB(t)))
}

func notificationReq(title, kind string, vehicleID uuid.UUID) dto.NotificationRequest {
	return dto.NotificationRequest{
		Title:     title,
		Message:   "msg",
		Type:      kind,
		VehicleID: vehicleID.String(),
	}
}

func TestNotificationFilterMatchesExactColumns(t *testing.T) {
	svc := newNotificationService(t)
	ctx := context.Background()

	vehicleA := uuid.New()
	vehicleB := uuid.New()
	_, err := svc.Create(ctx, notificationReq("VTV expires soon", model.NotificationReminder, vehicleA))
	require.NoError(t, err)
	_, err = svc.Create(ctx, notificationReq("Request approved", model.NotificationWorkflow, vehicleA))
	require.NoError(t, err)
	_, err = svc.Create(ctx, notificationReq("VTV expires soon", model.NotificationReminder, vehicleB))
	require.NoError(t, err)

	kind := model.NotificationReminder
	vid := vehicleA.String()
	rows, err := svc.Filter(ctx, 10, 0, dto.NotificationFilterRequest{Type: &kind, VehicleID: &vid})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "VTV expires soon", rows[0].Title)
}

func TestNotificationFilterHidesDeletedRows(t *testing.T) {
	svc := newNotificationService(t)
	ctx := context.Background()

	kept, err := svc.Create(ctx, notificationReq("Kept", model.NotificationWorkflow, uuid.New()))
	require.NoError(t, err)
	gone, err := svc.Create(ctx, notificationReq("Gone", model.NotificationWorkflow, uuid.New()))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, mustParse(t, gone.ID)))

	kind := model.NotificationWorkflow
	rows, err := svc.Filter(ctx, 10, 0, dto.NotificationFilterRequest{Type: &kind})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, kept.ID, rows[0].ID)
}

func TestNotificationFilterPaginates(t *testing.T) {
	svc := newNotificationService(t)
	ctx := context.Background()

	kind := model.NotificationReminder
	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, notificationReq(title, kind, uuid.New()))
		require.NoError(t, err)
	}

	rows, err := svc.Filter(ctx, 2, 1, dto.NotificationFilterRequest{Type: &kind})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "two", rows[0].Title)
	assert.Equal(t, "three", rows[1].Title)
}

func TestNotificationMarkRead(t *testing.T) {
	svc := newNotificationService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, notificationReq("Unread", model.NotificationSuggestion, uuid.New()))
	require.NoError(t, err)
	assert.False(t, created.IsRead)

	updated, err := svc.MarkRead(ctx, mustParse(t, created.ID))
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
}

func TestNotificationDeleteThenLookupFails(t *testing.T) {
	svc := newNotificationService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, notificationReq("Gone", model.NotificationSuggestion, uuid.New()))
	require.NoError(t, err)
	id := mustParse(t, created.ID)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.GetByID(ctx, id)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
