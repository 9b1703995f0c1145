package repositories

import (
	"context"

	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
)

// OrderRepository defines laundry order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error
}

// BookingRepository defines booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entities.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.Booking, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error
}
