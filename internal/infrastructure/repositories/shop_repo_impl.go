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

// productRepo implements repositories.ProductRepository
type productRepo struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m := r.toModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := getDB(ctx, r.db).WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *productRepo) ListActive(ctx context.Context) ([]*entities.Product, error) {
	var ms []models.Product
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}

	var products []*entities.Product
	for _, m := range ms {
		model := m
		products = append(products, r.toEntity(&model))
	}
	return products, nil
}

func (r *productRepo) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"name":        product.Name,
		"description": product.Description.Ptr(),
		"price":       product.Price,
		"stock":       product.Stock,
		"is_active":   product.IsActive,
	}

	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DecrementStock atomically reduces stock. The guard keeps stock from going
// negative under concurrent orders; zero rows affected means insufficient
// stock or a missing product.
func (r *productRepo) DecrementStock(ctx context.Context, id uuid.UUID, by int) error {
	result := getDB(ctx, r.db).WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, by).
		Update("stock", gorm.Expr("stock - ?", by))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOutOfStock
	}
	return nil
}

func (r *productRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *productRepo) toModel(e *entities.Product) *models.Product {
	return &models.Product{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description.Ptr(),
		Price:       e.Price,
		Stock:       e.Stock,
		IsActive:    e.IsActive,
	}
}

func (r *productRepo) toEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: null.StringFromPtr(m.Description),
		Price:       m.Price,
		Stock:       m.Stock,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// shopOrderRepo implements repositories.ShopOrderRepository
type shopOrderRepo struct {
	db *gorm.DB
}

// NewShopOrderRepository creates a new shop order repository
func NewShopOrderRepository(db *gorm.DB) repositories.ShopOrderRepository {
	return &shopOrderRepo{db: db}
}

// Create inserts the order and its item rows in a single statement chain.
// Callers wanting atomicity with stock decrements run it inside UnitOfWork.Do.
func (r *shopOrderRepo) Create(ctx context.Context, order *entities.ShopOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = entities.ShopOrderStatusPending
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
	}

	m := r.toModel(order)
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *shopOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.ShopOrder, error) {
	var m models.ShopOrder
	if err := r.db.WithContext(ctx).Preload("Items").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *shopOrderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.ShopOrder, error) {
	var ms []models.ShopOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	var orders []*entities.ShopOrder
	for _, m := range ms {
		model := m
		orders = append(orders, r.toEntity(&model))
	}
	return orders, nil
}

func (r *shopOrderRepo) List(ctx context.Context, limit, offset int) ([]*entities.ShopOrder, int64, error) {
	var ms []models.ShopOrder
	var totalCount int64

	if err := r.db.WithContext(ctx).Model(&models.ShopOrder{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var orders []*entities.ShopOrder
	for _, m := range ms {
		model := m
		orders = append(orders, r.toEntity(&model))
	}
	return orders, totalCount, nil
}

func (r *shopOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ShopOrderStatus) error {
	result := r.db.WithContext(ctx).Model(&models.ShopOrder{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *shopOrderRepo) toModel(e *entities.ShopOrder) *models.ShopOrder {
	items := make([]models.ShopOrderItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, models.ShopOrderItem{
			ID:          item.ID,
			ShopOrderID: e.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return &models.ShopOrder{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		Total:      e.Total,
		Status:     string(e.Status),
		Items:      items,
	}
}

func (r *shopOrderRepo) toEntity(m *models.ShopOrder) *entities.ShopOrder {
	items := make([]entities.ShopOrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entities.ShopOrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return &entities.ShopOrder{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Items:      items,
		Total:      m.Total,
		Status:     entities.ShopOrderStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
