package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

func newPOStack(t *testing.T) (PurchaseOrderService, MyBillsService) {
	t.Helper()
	db := newTestDB(t)
	orders := repository.NewPurchaseOrderRepository(db)
	return NewPurchaseOrderService(orders), NewMyBillsService(orders)
}

func dateOf(t time.Time) *dto.Date {
	return dto.DateFromPtr(&t)
}

func poReq(branchID uuid.UUID) dto.PurchaseOrderRequest {
	return dto.PurchaseOrderRequest{
		Number:   1001,
		Amount:   decimal.NewFromInt(2500),
		BranchID: branchID.String(),
	}
}

func TestCreateRejectsPastDueDate(t *testing.T) {
	svc, _ := newPOStack(t)

	req := poReq(uuid.New())
	req.Expires = true
	req.DueDate = dateOf(time.Now().Add(-48 * time.Hour))

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Equal(t, "The expiration date cannot be earlier than the current day.", err.Error())
}

func TestCreateAcceptsTodayAsDueDate(t *testing.T) {
	svc, _ := newPOStack(t)

	req := poReq(uuid.New())
	req.Expires = true
	req.DueDate = dateOf(time.Now())

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Expires)
}

func TestDueDateComparesCalendarDays(t *testing.T) {
	svc, _ := newPOStack(t)

	// A wire date has no zone and parses as UTC midnight; today's date must
	// pass whatever the server's offset is.
	var due dto.Date
	require.NoError(t, due.UnmarshalParam(time.Now().Format("2006-01-02")))

	req := poReq(uuid.New())
	req.Expires = true
	req.DueDate = &due

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Expires)

	// Yesterday's calendar date still fails.
	var past dto.Date
	require.NoError(t, past.UnmarshalParam(time.Now().AddDate(0, 0, -1).Format("2006-01-02")))
	req = poReq(uuid.New())
	req.Expires = true
	req.DueDate = &past

	_, err = svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestCreateRequiresBranch(t *testing.T) {
	svc, _ := newPOStack(t)

	req := poReq(uuid.New())
	req.BranchID = ""
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

// Turning expires on without touching the stored past due date must still be
// rejected: the rule is re-checked against the merged state.
func TestUpdateRechecksMergedDueDate(t *testing.T) {
	svc, _ := newPOStack(t)
	ctx := context.Background()

	past := time.Now().Add(-72 * time.Hour)
	req := poReq(uuid.New())
	req.DueDate = dateOf(past) // expires=false, so the past date is accepted
	resp, err := svc.Create(ctx, req)
	require.NoError(t, err)
	id := mustParse(t, resp.ID)

	expires := true
	_, err = svc.Update(ctx, id, dto.UpdatePurchaseOrderRequest{Expires: &expires})
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestMyBillsScopesOrdersToBranch(t *testing.T) {
	svc, bills := newPOStack(t)
	ctx := context.Background()

	branchA := uuid.New()
	branchB := uuid.New()
	respA, err := svc.Create(ctx, poReq(branchA))
	require.NoError(t, err)
	_, err = svc.Create(ctx, poReq(branchB))
	require.NoError(t, err)

	rows, err := bills.Orders(ctx, branchA, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, respA.ID, rows[0].ID)

	// The foreign order reads as missing from A's perspective.
	_, err = bills.OrderByID(ctx, branchA, mustParse(t, respA.ID))
	require.NoError(t, err)
	_, err = bills.OrderByID(ctx, branchB, mustParse(t, respA.ID))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Purchase order not found in current branch.", err.Error())
}

func TestMyBillsCreateForcesPathBranch(t *testing.T) {
	_, bills := newPOStack(t)
	ctx := context.Background()

	pathBranch := uuid.New()
	req := poReq(uuid.New()) // body carries a different branch id
	resp, err := bills.CreateOrder(ctx, pathBranch, req)
	require.NoError(t, err)
	assert.Equal(t, pathBranch.String(), resp.BranchID)
}
