package repositories

import (
	"context"

	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
)

// ProductRepository defines accessory shop product operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListActive(ctx context.Context) ([]*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	DecrementStock(ctx context.Context, id uuid.UUID, by int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ShopOrderRepository defines accessory shop order operations
type ShopOrderRepository interface {
	Create(ctx context.Context, order *entities.ShopOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ShopOrder, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.ShopOrder, error)
	List(ctx context.Context, limit, offset int) ([]*entities.ShopOrder, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ShopOrderStatus) error
}
