package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
	"laundrylink.backend/internal/infrastructure/models"
)

// orderRepo implements repositories.OrderRepository
type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = entities.OrderStatusPending
	}

	m := r.toModel(order)
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	return r.list(ctx, "customer_id = ?", customerID, limit, offset)
}

func (r *orderRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	return r.list(ctx, "merchant_id = ?", merchantID, limit, offset)
}

func (r *orderRepo) list(ctx context.Context, cond string, id uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	var ms []models.Order
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Order{}).Where(cond, id)

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var orders []*entities.Order
	for _, m := range ms {
		model := m
		orders = append(orders, r.toEntity(&model))
	}
	return orders, totalCount, nil
}

// UpdateStatus writes the target status unconditionally; legality of the
// transition is not checked here.
func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *orderRepo) toModel(e *entities.Order) *models.Order {
	var quoteID *uuid.UUID
	if e.QuoteID.Valid {
		if id, err := uuid.Parse(e.QuoteID.String); err == nil {
			quoteID = &id
		}
	}
	return &models.Order{
		ID:              e.ID,
		CustomerID:      e.CustomerID,
		MerchantID:      e.MerchantID,
		ServiceType:     string(e.ServiceType),
		Status:          string(e.Status),
		PickupAddress:   e.PickupAddress,
		DeliveryAddress: e.DeliveryAddress,
		ScheduledDate:   e.ScheduledDate,
		ScheduledTime:   e.ScheduledTime,
		WeightKg:        e.WeightKg.Ptr(),
		Instructions:    e.Instructions.Ptr(),
		QuoteID:         quoteID,
		TotalPrice:      e.TotalPrice.Ptr(),
	}
}

func (r *orderRepo) toEntity(m *models.Order) *entities.Order {
	var quoteID null.String
	if m.QuoteID != nil {
		quoteID = null.StringFrom(m.QuoteID.String())
	}
	return &entities.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		MerchantID:      m.MerchantID,
		ServiceType:     entities.ServiceType(m.ServiceType),
		Status:          entities.OrderStatus(m.Status),
		PickupAddress:   m.PickupAddress,
		DeliveryAddress: m.DeliveryAddress,
		ScheduledDate:   m.ScheduledDate,
		ScheduledTime:   m.ScheduledTime,
		WeightKg:        null.Float64FromPtr(m.WeightKg),
		Instructions:    null.StringFromPtr(m.Instructions),
		QuoteID:         quoteID,
		TotalPrice:      null.Float64FromPtr(m.TotalPrice),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
