package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product represents an accessory shop product
type Product struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	DeletedAt   null.Time   `json:"-"`
}

// ShopOrderStatus represents accessory shop order status
type ShopOrderStatus string

const (
	ShopOrderStatusPending    ShopOrderStatus = "pending"
	ShopOrderStatusProcessing ShopOrderStatus = "processing"
	ShopOrderStatusCompleted  ShopOrderStatus = "completed"
	ShopOrderStatusCancelled  ShopOrderStatus = "cancelled"
)

// KnownShopOrderStatus reports whether s is a recognized shop order status
func KnownShopOrderStatus(s ShopOrderStatus) bool {
	switch s {
	case ShopOrderStatusPending, ShopOrderStatusProcessing, ShopOrderStatusCompleted, ShopOrderStatusCancelled:
		return true
	}
	return false
}

// ShopOrderItem is a product line within a shop order
type ShopOrderItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

// ShopOrder represents an accessory shop purchase
type ShopOrder struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customerId"`
	Items      []ShopOrderItem `json:"items"`
	Total      float64         `json:"total"`
	Status     ShopOrderStatus `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	DeletedAt  null.Time       `json:"-"`
}

// CreateShopOrderInput represents input for shop order creation
type CreateShopOrderInput struct {
	Items []ShopOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// ShopOrderItemInput is a requested product line
type ShopOrderItemInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// ShopOrderNotification is published on the shop-orders channel when a new
// order is inserted
type ShopOrderNotification struct {
	OrderID    uuid.UUID `json:"orderId"`
	CustomerID uuid.UUID `json:"customerId"`
	Total      float64   `json:"total"`
	ItemCount  int       `json:"itemCount"`
	CreatedAt  time.Time `json:"createdAt"`
}
