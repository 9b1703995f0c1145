package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
)

func TestMerchantRepository_CreateGetUpdateStatusDelete(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	m := &entities.Merchant{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		BusinessName:  "Bersih Laundry",
		BusinessEmail: "bersih@example.com",
		Phone:         null.StringFrom("+62812222222"),
		Address:       "Jl. Sudirman 1, Jakarta",
		Latitude:      null.Float64From(-6.2088),
		Longitude:     null.Float64From(106.8456),
	}

	require.NoError(t, repo.Create(ctx, m))
	require.Equal(t, entities.MerchantStatusPending, m.Status)
	require.False(t, m.IsActive)

	byID, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.BusinessName, byID.BusinessName)
	require.InDelta(t, -6.2088, byID.Latitude.Float64, 1e-6)

	byUser, err := repo.GetByUserID(ctx, m.UserID)
	require.NoError(t, err)
	require.Equal(t, m.ID, byUser.ID)

	m.BusinessName = "Bersih Laundry Express"
	m.Rating = 4.5
	m.ReviewCount = 12
	require.NoError(t, repo.Update(ctx, m))

	require.NoError(t, repo.UpdateStatus(ctx, m.ID, entities.MerchantStatusApproved))
	approved, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, entities.MerchantStatusApproved, approved.Status)
	require.True(t, approved.IsActive)
	require.True(t, approved.ApprovedAt.Valid)

	require.NoError(t, repo.UpdateStatus(ctx, m.ID, entities.MerchantStatusSuspended))
	suspended, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.False(t, suspended.IsActive)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, repo.SoftDelete(ctx, m.ID))
	_, err = repo.GetByID(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMerchantRepository_ListApprovedActive(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	approved := &entities.Merchant{UserID: uuid.New(), BusinessName: "A", BusinessEmail: "a@x", Address: "Addr A"}
	pending := &entities.Merchant{UserID: uuid.New(), BusinessName: "B", BusinessEmail: "b@x", Address: "Addr B"}
	require.NoError(t, repo.Create(ctx, approved))
	require.NoError(t, repo.Create(ctx, pending))
	require.NoError(t, repo.UpdateStatus(ctx, approved.ID, entities.MerchantStatusApproved))

	items, err := repo.ListApprovedActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, approved.ID, items[0].ID)
}

func TestMerchantRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByUserID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Merchant{ID: id, BusinessName: "x", BusinessEmail: "x@x", Address: "x"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateStatus(ctx, id, entities.MerchantStatusApproved)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.SoftDelete(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMerchantRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	_, err = repo.GetByUserID(ctx, uuid.New())
	require.Error(t, err)
	_, err = repo.List(ctx)
	require.Error(t, err)
	_, err = repo.ListApprovedActive(ctx)
	require.Error(t, err)
	err = repo.Create(ctx, &entities.Merchant{ID: uuid.New(), UserID: uuid.New(), BusinessName: "x", BusinessEmail: "x@x", Address: "x"})
	require.Error(t, err)
	err = repo.UpdateStatus(ctx, uuid.New(), entities.MerchantStatusApproved)
	require.Error(t, err)
	err = repo.SoftDelete(ctx, uuid.New())
	require.Error(t, err)
}
