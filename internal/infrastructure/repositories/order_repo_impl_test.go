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

func newTestOrder(customerID, merchantID uuid.UUID) *entities.Order {
	return &entities.Order{
		CustomerID:      customerID,
		MerchantID:      merchantID,
		ServiceType:     entities.ServiceTypeWashFold,
		PickupAddress:   "Jl. Melati 1",
		DeliveryAddress: "Jl. Melati 1",
		ScheduledDate:   "2026-09-02",
		ScheduledTime:   "10:00",
		WeightKg:        null.Float64From(4.5),
		Instructions:    null.StringFrom("no fabric softener"),
	}
}

func TestOrderRepository_CreateGetUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := newTestOrder(uuid.New(), uuid.New())
	require.NoError(t, repo.Create(ctx, o))
	require.NotEqual(t, uuid.Nil, o.ID)
	require.Equal(t, entities.OrderStatusPending, o.Status)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, o.CustomerID, got.CustomerID)
	require.InDelta(t, 4.5, got.WeightKg.Float64, 1e-9)
	require.Equal(t, "no fabric softener", got.Instructions.String)

	require.NoError(t, repo.UpdateStatus(ctx, o.ID, entities.OrderStatusConfirmed))
	got, err = repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusConfirmed, got.Status)
}

func TestOrderRepository_ListByCustomerAndMerchant(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	merchantID := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newTestOrder(customerID, merchantID)))
	}
	require.NoError(t, repo.Create(ctx, newTestOrder(uuid.New(), merchantID)))

	byCustomer, total, err := repo.ListByCustomer(ctx, customerID, 2, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, byCustomer, 2)

	byMerchant, total, err := repo.ListByMerchant(ctx, merchantID, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Len(t, byMerchant, 4)
}

func TestOrderRepository_QuoteIDRoundTrip(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	quoteID := uuid.New()
	o := newTestOrder(uuid.New(), uuid.New())
	o.QuoteID = null.StringFrom(quoteID.String())
	o.TotalPrice = null.Float64From(75000)

	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, quoteID.String(), got.QuoteID.String)
	require.InDelta(t, 75000, got.TotalPrice.Float64, 1e-9)
}

func TestOrderRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateStatus(ctx, uuid.New(), entities.OrderStatusConfirmed)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewOrderRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	_, _, err = repo.ListByCustomer(ctx, uuid.New(), 10, 0)
	require.Error(t, err)
	err = repo.Create(ctx, newTestOrder(uuid.New(), uuid.New()))
	require.Error(t, err)
	err = repo.UpdateStatus(ctx, uuid.New(), entities.OrderStatusConfirmed)
	require.Error(t, err)
}
