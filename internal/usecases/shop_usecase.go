package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
	"laundrylink.backend/pkg/logger"
	"laundrylink.backend/pkg/metrics"
	"laundrylink.backend/pkg/redis"
)

// ShopOrdersChannel is the Redis pub/sub channel carrying shop order inserts
const ShopOrdersChannel = "shop_orders"

// Stubbed in tests
var shopRedisPublish = redis.Publish

// ShopUsecase handles the accessory shop
type ShopUsecase struct {
	productRepo repositories.ProductRepository
	orderRepo   repositories.ShopOrderRepository
	uow         repositories.UnitOfWork
}

// NewShopUsecase creates a new shop usecase
func NewShopUsecase(
	productRepo repositories.ProductRepository,
	orderRepo repositories.ShopOrderRepository,
	uow repositories.UnitOfWork,
) *ShopUsecase {
	return &ShopUsecase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		uow:         uow,
	}
}

// --- products ---

// ListProducts returns active products for the storefront
func (u *ShopUsecase) ListProducts(ctx context.Context) ([]*entities.Product, error) {
	return u.productRepo.ListActive(ctx)
}

// GetProduct returns a single product
func (u *ShopUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// CreateProduct adds a product to the shop (admin)
func (u *ShopUsecase) CreateProduct(ctx context.Context, product *entities.Product) error {
	if product.Name == "" || product.Price < 0 || product.Stock < 0 {
		return domainerrors.ErrInvalidInput
	}
	return u.productRepo.Create(ctx, product)
}

// UpdateProduct edits a product (admin)
func (u *ShopUsecase) UpdateProduct(ctx context.Context, product *entities.Product) error {
	if product.Name == "" || product.Price < 0 || product.Stock < 0 {
		return domainerrors.ErrInvalidInput
	}
	return u.productRepo.Update(ctx, product)
}

// DeleteProduct removes a product from the shop (admin)
func (u *ShopUsecase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return u.productRepo.SoftDelete(ctx, id)
}

// --- shop orders ---

// CreateOrder places an accessory order. Stock decrements and the order
// insert run in one transaction, so an out-of-stock line aborts the whole
// order. The insert notification is published after commit.
func (u *ShopUsecase) CreateOrder(ctx context.Context, customerID uuid.UUID, input *entities.CreateShopOrderInput) (*entities.ShopOrder, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrInvalidInput
	}

	order := &entities.ShopOrder{CustomerID: customerID}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		var total float64
		items := make([]entities.ShopOrderItem, 0, len(input.Items))

		for _, line := range input.Items {
			if line.Quantity <= 0 {
				return domainerrors.ErrInvalidInput
			}

			product, err := u.productRepo.GetByID(txCtx, line.ProductID)
			if err != nil {
				return err
			}
			if !product.IsActive {
				return domainerrors.ErrNotFound
			}

			if err := u.productRepo.DecrementStock(txCtx, product.ID, line.Quantity); err != nil {
				return err
			}

			items = append(items, entities.ShopOrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}

		order.Items = items
		order.Total = total
		return u.orderRepo.Create(txCtx, order)
	})
	if err != nil {
		return nil, err
	}

	u.publishOrderNotification(ctx, order)
	return order, nil
}

// GetOrder returns a shop order visible to the caller
func (u *ShopUsecase) GetOrder(ctx context.Context, callerID uuid.UUID, callerRole string, orderID uuid.UUID) (*entities.ShopOrder, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if callerRole != string(entities.UserRoleAdmin) && order.CustomerID != callerID {
		return nil, domainerrors.ErrForbidden
	}
	return order, nil
}

// ListCustomerOrders returns the customer's shop orders
func (u *ShopUsecase) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entities.ShopOrder, error) {
	return u.orderRepo.ListByCustomer(ctx, customerID)
}

// ListAllOrders returns all shop orders (admin)
func (u *ShopUsecase) ListAllOrders(ctx context.Context, limit, offset int) ([]*entities.ShopOrder, int64, error) {
	return u.orderRepo.List(ctx, limit, offset)
}

// UpdateOrderStatus sets a shop order to any known status (admin)
func (u *ShopUsecase) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entities.ShopOrderStatus) error {
	if !entities.KnownShopOrderStatus(status) {
		return domainerrors.ErrInvalidInput
	}
	return u.orderRepo.UpdateStatus(ctx, orderID, status)
}

func (u *ShopUsecase) publishOrderNotification(ctx context.Context, order *entities.ShopOrder) {
	notification := entities.ShopOrderNotification{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total,
		ItemCount:  len(order.Items),
		CreatedAt:  orderCreatedAt(order),
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		logger.Warn(ctx, "failed to encode shop order notification", zap.Error(err))
		return
	}

	if err := shopRedisPublish(ctx, ShopOrdersChannel, payload); err != nil {
		logger.Warn(ctx, "failed to publish shop order notification",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
		return
	}
	metrics.ShopOrderEventsTotal.Inc()
}

func orderCreatedAt(order *entities.ShopOrder) time.Time {
	if order.CreatedAt.IsZero() {
		return time.Now()
	}
	return order.CreatedAt
}
