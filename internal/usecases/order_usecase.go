package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
)

// OrderUsecase handles laundry order business logic
type OrderUsecase struct {
	orderRepo    repositories.OrderRepository
	merchantRepo repositories.MerchantRepository
	quoteRepo    repositories.QuoteRepository
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	merchantRepo repositories.MerchantRepository,
	quoteRepo repositories.QuoteRepository,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:    orderRepo,
		merchantRepo: merchantRepo,
		quoteRepo:    quoteRepo,
	}
}

// Create places a new laundry order for the customer. A referenced quote must
// belong to the customer and still be valid; its total is copied onto the
// order and the quote is marked accepted.
func (u *OrderUsecase) Create(ctx context.Context, customerID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	if !entities.KnownServiceType(input.ServiceType) {
		return nil, domainerrors.ErrInvalidInput
	}

	merchant, err := u.merchantRepo.GetByID(ctx, input.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Status != entities.MerchantStatusApproved || !merchant.IsActive {
		return nil, domainerrors.ErrMerchantNotActive
	}

	order := &entities.Order{
		CustomerID:      customerID,
		MerchantID:      merchant.ID,
		ServiceType:     input.ServiceType,
		PickupAddress:   input.PickupAddress,
		DeliveryAddress: input.DeliveryAddress,
		ScheduledDate:   input.ScheduledDate,
		ScheduledTime:   input.ScheduledTime,
		WeightKg:        null.Float64FromPtr(input.WeightKg),
	}
	if input.Instructions != "" {
		order.Instructions.SetValid(input.Instructions)
	}

	if input.QuoteID != nil {
		quote, err := u.quoteRepo.GetByID(ctx, *input.QuoteID)
		if err != nil {
			return nil, err
		}
		if quote.CustomerID != customerID {
			return nil, domainerrors.ErrForbidden
		}
		if quote.ServiceType != input.ServiceType {
			return nil, domainerrors.ErrInvalidInput
		}
		if quote.Status != entities.QuoteStatusPending || time.Now().After(quote.ExpiresAt) {
			return nil, domainerrors.ErrQuoteExpired
		}

		order.QuoteID = null.StringFrom(quote.ID.String())
		order.TotalPrice = null.Float64From(quote.QuotedTotal)
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if input.QuoteID != nil {
		// Quote acceptance is best effort once the order exists
		_ = u.quoteRepo.UpdateStatus(ctx, *input.QuoteID, entities.QuoteStatusAccepted)
	}

	return order, nil
}

// Get returns an order if the caller may see it
func (u *OrderUsecase) Get(ctx context.Context, callerID uuid.UUID, callerRole string, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := u.authorize(ctx, callerID, callerRole, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListCustomerOrders returns the customer's orders, newest first
func (u *OrderUsecase) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	return u.orderRepo.ListByCustomer(ctx, customerID, limit, offset)
}

// ListMerchantOrders returns the orders routed to a merchant, newest first
func (u *OrderUsecase) ListMerchantOrders(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	return u.orderRepo.ListByMerchant(ctx, merchantID, limit, offset)
}

// UpdateStatus sets an order to any known status. Transitions between known
// statuses are not restricted.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entities.OrderStatus) error {
	if !entities.KnownOrderStatus(status) {
		return domainerrors.ErrInvalidInput
	}
	return u.orderRepo.UpdateStatus(ctx, orderID, status)
}

// Cancel cancels the customer's own order; delivered or already cancelled
// orders stay as they are.
func (u *OrderUsecase) Cancel(ctx context.Context, customerID, orderID uuid.UUID) error {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return domainerrors.ErrForbidden
	}
	if order.Status == entities.OrderStatusDelivered || order.Status == entities.OrderStatusCancelled {
		return domainerrors.ErrOrderNotCancelable
	}
	return u.orderRepo.UpdateStatus(ctx, orderID, entities.OrderStatusCancelled)
}

func (u *OrderUsecase) authorize(ctx context.Context, callerID uuid.UUID, callerRole string, order *entities.Order) error {
	if callerRole == string(entities.UserRoleAdmin) {
		return nil
	}
	if order.CustomerID == callerID {
		return nil
	}
	if callerRole == string(entities.UserRoleMerchant) {
		merchant, err := u.merchantRepo.GetByUserID(ctx, callerID)
		if err == nil && merchant.ID == order.MerchantID {
			return nil
		}
	}
	return domainerrors.ErrForbidden
}
