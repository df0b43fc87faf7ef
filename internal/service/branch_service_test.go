package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type branchFixture struct {
	svc      BranchService
	db       *gorm.DB
	orgOwn   *model.Organization
	orgOther *model.Organization
	actor    middleware.Actor
}

// Seeds two organizations and a super manager assigned to a branch of the
// first one.
func newBranchFixture(t *testing.T) *branchFixture {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()
	branches := repository.NewBranchRepository(db)
	orgs := repository.NewOrganizationRepository(db)
	users := repository.NewUserRepository(db)

	manager := &model.User{
		Username: "branch_owner1", Email: "owner@example.com", PasswordHash: "x",
		FirstName: "O", LastName: "W", Role: model.RoleSupermanager, IsActive: true,
	}
	require.NoError(t, users.Create(ctx, manager))

	orgOwn := &model.Organization{Name: "Own", BusinessName: "Own S.A.", SuperManagerID: manager.ID, ContactID: manager.ID}
	orgOther := &model.Organization{Name: "Other", BusinessName: "Other S.A.", SuperManagerID: uuid.New(), ContactID: uuid.New()}
	require.NoError(t, orgs.Create(ctx, orgOwn))
	require.NoError(t, orgs.Create(ctx, orgOther))

	home := &model.Branch{Name: "Home", ManagerID: manager.ID, OrganizationID: orgOwn.ID}
	require.NoError(t, branches.Create(ctx, home))
	foreign := &model.Branch{Name: "Foreign", ManagerID: uuid.New(), OrganizationID: orgOther.ID}
	require.NoError(t, branches.Create(ctx, foreign))

	_, err := users.Update(ctx, manager.ID, map[string]any{"branch_id": home.ID}, nil)
	require.NoError(t, err)

	return &branchFixture{
		svc:      NewBranchService(branches, orgs, users),
		db:       db,
		orgOwn:   orgOwn,
		orgOther: orgOther,
		actor:    middleware.Actor{ID: manager.ID, Role: model.RoleSupermanager},
	}
}

func TestSupermanagerCannotCreateBranchElsewhere(t *testing.T) {
	f := newBranchFixture(t)

	_, err := f.svc.Create(context.Background(), f.actor, dto.BranchRequest{
		Name:           "Intruder",
		OrganizationID: f.orgOther.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestSupermanagerCreatesBranchInOwnOrg(t *testing.T) {
	f := newBranchFixture(t)

	resp, err := f.svc.Create(context.Background(), f.actor, dto.BranchRequest{
		Name:           "Second",
		OrganizationID: f.orgOwn.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, f.orgOwn.ID.String(), resp.OrganizationID)
}

func TestSupermanagerListIsNarrowedToOwnOrg(t *testing.T) {
	f := newBranchFixture(t)
	ctx := context.Background()

	rows, err := f.svc.GetAll(ctx, f.actor, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Home", rows[0].Name)

	// Admins see both organizations.
	rows, err = f.svc.GetAll(ctx, middleware.Actor{ID: uuid.New(), Role: model.RoleAdmin}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSupermanagerCannotEditForeignBranch(t *testing.T) {
	f := newBranchFixture(t)
	ctx := context.Background()

	var foreign model.Branch
	require.NoError(t, f.db.Where("name = ?", "Foreign").First(&foreign).Error)

	name := "Taken over"
	_, err := f.svc.Update(ctx, f.actor, foreign.ID, dto.UpdateBranchRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))
}
