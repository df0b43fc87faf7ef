package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

func newLicenseService(t *testing.T) DriverLicenseService {
	t.Helper()
	db := newTestDB(t)
	files, err := infra.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewDriverLicenseService(repository.NewDriverLicenseRepository(db), files)
}

func TestLicenseUploadKeepsSingleRecordPerUser(t *testing.T) {
	svc := newLicenseService(t)
	ctx := context.Background()
	userID := uuid.New()
	expires := time.Now().Add(365 * 24 * time.Hour)

	first, err := svc.Upload(ctx, userID, expires, "license_v1.jpg", "image/jpeg", []byte("v1"))
	require.NoError(t, err)
	firstPath, err := svc.DownloadPath(ctx, mustParse(t, first.ID))
	require.NoError(t, err)

	// A second upload replaces the same row instead of adding one.
	second, err := svc.Upload(ctx, userID, expires, "license_v2.jpg", "image/jpeg", []byte("v2"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "license_v2.jpg", second.FileName)

	// The old blob is gone; the new one is readable.
	_, err = os.Stat(firstPath)
	assert.True(t, os.IsNotExist(err))

	secondPath, err := svc.DownloadPath(ctx, mustParse(t, second.ID))
	require.NoError(t, err)
	data, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestLicenseLookupUnknownID(t *testing.T) {
	svc := newLicenseService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Driver license not found.", err.Error())
}
