package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/interfaces/http/middleware"
)

// asUser injects an authenticated identity the way the auth middleware does
func asUser(userID uuid.UUID, role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, "test@mail.com")
		c.Set(middleware.UserRoleKey, string(role))
		c.Next()
	}
}

type userRepoStub struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
	updateFn     func(ctx context.Context, user *entities.User) error
	listFn       func(ctx context.Context) ([]*entities.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(ctx context.Context, user *entities.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.User{}, nil
}

type merchantRepoStub struct {
	createFn             func(ctx context.Context, merchant *entities.Merchant) error
	getByIDFn            func(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	getByUserIDFn        func(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error)
	updateFn             func(ctx context.Context, merchant *entities.Merchant) error
	updateStatusFn       func(ctx context.Context, id uuid.UUID, status entities.MerchantStatus) error
	listApprovedActiveFn func(ctx context.Context) ([]*entities.Merchant, error)
	listFn               func(ctx context.Context) ([]*entities.Merchant, error)
}

func (s *merchantRepoStub) Create(ctx context.Context, merchant *entities.Merchant) error {
	if s.createFn != nil {
		return s.createFn(ctx, merchant)
	}
	return nil
}

func (s *merchantRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *merchantRepoStub) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *merchantRepoStub) Update(ctx context.Context, merchant *entities.Merchant) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, merchant)
	}
	return nil
}

func (s *merchantRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MerchantStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *merchantRepoStub) ListApprovedActive(ctx context.Context) ([]*entities.Merchant, error) {
	if s.listApprovedActiveFn != nil {
		return s.listApprovedActiveFn(ctx)
	}
	return []*entities.Merchant{}, nil
}

func (s *merchantRepoStub) List(ctx context.Context) ([]*entities.Merchant, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Merchant{}, nil
}

func (s *merchantRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) error { return nil }

type orderRepoStub struct {
	createFn         func(ctx context.Context, order *entities.Order) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	listByCustomerFn func(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error)
	listByMerchantFn func(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error)
	updateStatusFn   func(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error
}

func (s *orderRepoStub) Create(ctx context.Context, order *entities.Order) error {
	if s.createFn != nil {
		return s.createFn(ctx, order)
	}
	order.ID = uuid.New()
	return nil
}

func (s *orderRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *orderRepoStub) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	if s.listByCustomerFn != nil {
		return s.listByCustomerFn(ctx, customerID, limit, offset)
	}
	return []*entities.Order{}, 0, nil
}

func (s *orderRepoStub) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	if s.listByMerchantFn != nil {
		return s.listByMerchantFn(ctx, merchantID, limit, offset)
	}
	return []*entities.Order{}, 0, nil
}

func (s *orderRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

type bookingRepoStub struct {
	createFn         func(ctx context.Context, booking *entities.Booking) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	getByOrderIDFn   func(ctx context.Context, orderID uuid.UUID) (*entities.Booking, error)
	listByCustomerFn func(ctx context.Context, customerID uuid.UUID) ([]*entities.Booking, error)
	listByMerchantFn func(ctx context.Context, merchantID uuid.UUID) ([]*entities.Booking, error)
	updateStatusFn   func(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error
}

func (s *bookingRepoStub) Create(ctx context.Context, booking *entities.Booking) error {
	if s.createFn != nil {
		return s.createFn(ctx, booking)
	}
	booking.ID = uuid.New()
	return nil
}

func (s *bookingRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *bookingRepoStub) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Booking, error) {
	if s.getByOrderIDFn != nil {
		return s.getByOrderIDFn(ctx, orderID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *bookingRepoStub) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.Booking, error) {
	if s.listByCustomerFn != nil {
		return s.listByCustomerFn(ctx, customerID)
	}
	return []*entities.Booking{}, nil
}

func (s *bookingRepoStub) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Booking, error) {
	if s.listByMerchantFn != nil {
		return s.listByMerchantFn(ctx, merchantID)
	}
	return []*entities.Booking{}, nil
}

func (s *bookingRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

type productRepoStub struct {
	createFn         func(ctx context.Context, product *entities.Product) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	listActiveFn     func(ctx context.Context) ([]*entities.Product, error)
	updateFn         func(ctx context.Context, product *entities.Product) error
	decrementStockFn func(ctx context.Context, id uuid.UUID, by int) error
	softDeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s *productRepoStub) Create(ctx context.Context, product *entities.Product) error {
	if s.createFn != nil {
		return s.createFn(ctx, product)
	}
	product.ID = uuid.New()
	return nil
}

func (s *productRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *productRepoStub) ListActive(ctx context.Context) ([]*entities.Product, error) {
	if s.listActiveFn != nil {
		return s.listActiveFn(ctx)
	}
	return []*entities.Product{}, nil
}

func (s *productRepoStub) Update(ctx context.Context, product *entities.Product) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, product)
	}
	return nil
}

func (s *productRepoStub) DecrementStock(ctx context.Context, id uuid.UUID, by int) error {
	if s.decrementStockFn != nil {
		return s.decrementStockFn(ctx, id, by)
	}
	return nil
}

func (s *productRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if s.softDeleteFn != nil {
		return s.softDeleteFn(ctx, id)
	}
	return nil
}

type shopOrderRepoStub struct {
	createFn         func(ctx context.Context, order *entities.ShopOrder) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.ShopOrder, error)
	listByCustomerFn func(ctx context.Context, customerID uuid.UUID) ([]*entities.ShopOrder, error)
	listFn           func(ctx context.Context, limit, offset int) ([]*entities.ShopOrder, int64, error)
	updateStatusFn   func(ctx context.Context, id uuid.UUID, status entities.ShopOrderStatus) error
}

func (s *shopOrderRepoStub) Create(ctx context.Context, order *entities.ShopOrder) error {
	if s.createFn != nil {
		return s.createFn(ctx, order)
	}
	order.ID = uuid.New()
	return nil
}

func (s *shopOrderRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.ShopOrder, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *shopOrderRepoStub) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.ShopOrder, error) {
	if s.listByCustomerFn != nil {
		return s.listByCustomerFn(ctx, customerID)
	}
	return []*entities.ShopOrder{}, nil
}

func (s *shopOrderRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.ShopOrder, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return []*entities.ShopOrder{}, 0, nil
}

func (s *shopOrderRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ShopOrderStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

type priceRuleRepoStub struct {
	upsertFn           func(ctx context.Context, rule *entities.PriceRule) error
	getByServiceTypeFn func(ctx context.Context, serviceType entities.ServiceType) (*entities.PriceRule, error)
	listFn             func(ctx context.Context) ([]*entities.PriceRule, error)
}

func (s *priceRuleRepoStub) Upsert(ctx context.Context, rule *entities.PriceRule) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, rule)
	}
	return nil
}

func (s *priceRuleRepoStub) GetByServiceType(ctx context.Context, serviceType entities.ServiceType) (*entities.PriceRule, error) {
	if s.getByServiceTypeFn != nil {
		return s.getByServiceTypeFn(ctx, serviceType)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *priceRuleRepoStub) List(ctx context.Context) ([]*entities.PriceRule, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.PriceRule{}, nil
}

type quoteRepoStub struct {
	createFn         func(ctx context.Context, quote *entities.PriceQuote) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.PriceQuote, error)
	listByCustomerFn func(ctx context.Context, customerID uuid.UUID) ([]*entities.PriceQuote, error)
	updateStatusFn   func(ctx context.Context, id uuid.UUID, status entities.QuoteStatus) error
}

func (s *quoteRepoStub) Create(ctx context.Context, quote *entities.PriceQuote) error {
	if s.createFn != nil {
		return s.createFn(ctx, quote)
	}
	quote.ID = uuid.New()
	return nil
}

func (s *quoteRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.PriceQuote, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *quoteRepoStub) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.PriceQuote, error) {
	if s.listByCustomerFn != nil {
		return s.listByCustomerFn(ctx, customerID)
	}
	return []*entities.PriceQuote{}, nil
}

func (s *quoteRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.QuoteStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *quoteRepoStub) GetExpiredPending(ctx context.Context, limit int) ([]*entities.PriceQuote, error) {
	return []*entities.PriceQuote{}, nil
}

func (s *quoteRepoStub) ExpireQuotes(ctx context.Context, ids []uuid.UUID) error { return nil }

type unitOfWorkStub struct{}

func (s *unitOfWorkStub) Do(ctx context.Context, f func(ctx context.Context) error) error {
	return f(ctx)
}
