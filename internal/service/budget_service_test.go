package service

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

func newBudgetService(t *testing.T) BudgetService {
	t.Helper()
	db := newTestDB(t)
	files, err := infra.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewBudgetService(repository.NewBudgetRepository(db), files)
}

func TestBudgetDefaultsToPending(t *testing.T) {
	svc := newBudgetService(t)

	resp, err := svc.Create(context.Background(), dto.BudgetRequest{
		Detail: "Brake pads",
		Amount: decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.BudgetPending), resp.Status)
}

func TestBudgetRejectsUnknownStatus(t *testing.T) {
	svc := newBudgetService(t)

	_, err := svc.Create(context.Background(), dto.BudgetRequest{
		Detail: "Brake pads",
		Amount: decimal.NewFromInt(300),
		Status: "Maybe",
	})
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestAllocationFileReplacesPreviousBlob(t *testing.T) {
	svc := newBudgetService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, dto.BudgetRequest{Detail: "Tires", Amount: decimal.NewFromInt(900)})
	require.NoError(t, err)
	id := mustParse(t, resp.ID)

	// No file yet.
	_, err = svc.AllocationFilePath(ctx, id)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "File not found in budget.", err.Error())

	require.NoError(t, svc.UploadAllocationFile(ctx, id, "first.pdf", []byte("v1")))
	firstPath, err := svc.AllocationFilePath(ctx, id)
	require.NoError(t, err)

	require.NoError(t, svc.UploadAllocationFile(ctx, id, "second.pdf", []byte("v2")))
	secondPath, err := svc.AllocationFilePath(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, firstPath, secondPath)

	// The replaced blob is gone from disk.
	_, err = os.Stat(firstPath)
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}
