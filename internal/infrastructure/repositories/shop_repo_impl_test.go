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

func TestProductRepository_CRUDAndStock(t *testing.T) {
	db := newTestDB(t)
	createShopTables(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := &entities.Product{
		Name:        "Mesh Laundry Bag",
		Description: null.StringFrom("40x50cm zippered bag"),
		Price:       25000,
		Stock:       10,
		IsActive:    true,
	}

	require.NoError(t, repo.Create(ctx, p))
	require.NotEqual(t, uuid.Nil, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 10, got.Stock)

	require.NoError(t, repo.DecrementStock(ctx, p.ID, 4))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 6, got.Stock)

	// more than remaining stock
	require.ErrorIs(t, repo.DecrementStock(ctx, p.ID, 7), domainerrors.ErrOutOfStock)

	p.Price = 27500
	p.IsActive = false
	require.NoError(t, repo.Update(ctx, p))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Empty(t, active)

	require.NoError(t, repo.SoftDelete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProductRepository_ListActiveOrdersByName(t *testing.T) {
	db := newTestDB(t)
	createShopTables(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Product{Name: "Detergent", Price: 15000, Stock: 5, IsActive: true}))
	require.NoError(t, repo.Create(ctx, &entities.Product{Name: "Basket", Price: 40000, Stock: 2, IsActive: true}))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "Basket", active[0].Name)
}

func TestShopOrderRepository_CreateWithItemsAndGet(t *testing.T) {
	db := newTestDB(t)
	createShopTables(t, db)
	repo := NewShopOrderRepository(db)
	ctx := context.Background()

	o := &entities.ShopOrder{
		CustomerID: uuid.New(),
		Total:      65000,
		Items: []entities.ShopOrderItem{
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: 25000},
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: 20000},
		},
	}

	require.NoError(t, repo.Create(ctx, o))
	require.Equal(t, entities.ShopOrderStatusPending, o.Status)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	require.InDelta(t, 65000, got.Total, 1e-9)

	byCustomer, err := repo.ListByCustomer(ctx, o.CustomerID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	require.Len(t, byCustomer[0].Items, 2)

	all, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, all, 1)

	require.NoError(t, repo.UpdateStatus(ctx, o.ID, entities.ShopOrderStatusProcessing))
	got, err = repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ShopOrderStatusProcessing, got.Status)
}

func TestShopRepositories_JoinUnitOfWorkTransaction(t *testing.T) {
	db := newTestDB(t)
	createShopTables(t, db)
	products := NewProductRepository(db)
	orders := NewShopOrderRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	p := &entities.Product{Name: "Hanger Set", Price: 10000, Stock: 3, IsActive: true}
	require.NoError(t, products.Create(ctx, p))

	// the decrement succeeds inside the transaction but the rollback must undo it
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := products.DecrementStock(txCtx, p.ID, 2); err != nil {
			return err
		}
		return orders.Create(txCtx, &entities.ShopOrder{
			CustomerID: uuid.New(),
			Total:      20000,
			Items:      []entities.ShopOrderItem{{ProductID: p.ID, Quantity: 2, UnitPrice: 10000}},
		})
	})
	require.NoError(t, err)

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Stock)

	err = uow.Do(ctx, func(txCtx context.Context) error {
		return products.DecrementStock(txCtx, p.ID, 5)
	})
	require.ErrorIs(t, err, domainerrors.ErrOutOfStock)

	got, err = products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Stock)
}

func TestShopRepositories_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createShopTables(t, db)
	products := NewProductRepository(db)
	orders := NewShopOrderRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := products.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = products.Update(ctx, &entities.Product{ID: id, Name: "x"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = products.DecrementStock(ctx, id, 1)
	require.ErrorIs(t, err, domainerrors.ErrOutOfStock)
	err = products.SoftDelete(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = orders.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = orders.UpdateStatus(ctx, id, entities.ShopOrderStatusCompleted)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestShopRepositories_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	products := NewProductRepository(db)
	orders := NewShopOrderRepository(db)
	ctx := context.Background()

	_, err := products.GetByID(ctx, uuid.New())
	require.Error(t, err)
	_, err = products.ListActive(ctx)
	require.Error(t, err)
	err = products.Create(ctx, &entities.Product{Name: "x", Price: 1})
	require.Error(t, err)

	_, err = orders.GetByID(ctx, uuid.New())
	require.Error(t, err)
	_, _, err = orders.List(ctx, 10, 0)
	require.Error(t, err)
	err = orders.Create(ctx, &entities.ShopOrder{CustomerID: uuid.New(), Total: 1})
	require.Error(t, err)
}
