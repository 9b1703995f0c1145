package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ServiceType represents laundry service types
type ServiceType string

const (
	ServiceTypeWashFold    ServiceType = "wash-fold"
	ServiceTypeDryCleaning ServiceType = "dry-cleaning"
	ServiceTypeExpress     ServiceType = "express"
	ServiceTypeDelicate    ServiceType = "delicate"
)

// KnownServiceType reports whether s is a recognized service type
func KnownServiceType(s ServiceType) bool {
	switch s {
	case ServiceTypeWashFold, ServiceTypeDryCleaning, ServiceTypeExpress, ServiceTypeDelicate:
		return true
	}
	return false
}

// OrderStatus represents the order status progression
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPickedUp   OrderStatus = "picked-up"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// KnownOrderStatus reports whether s is a recognized order status.
// Transitions between known statuses are not restricted.
func KnownOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPickedUp,
		OrderStatusInProgress, OrderStatusReady, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a customer's laundry service request
type Order struct {
	ID              uuid.UUID    `json:"id"`
	CustomerID      uuid.UUID    `json:"customerId"`
	MerchantID      uuid.UUID    `json:"merchantId"`
	ServiceType     ServiceType  `json:"serviceType"`
	Status          OrderStatus  `json:"status"`
	PickupAddress   string       `json:"pickupAddress"`
	DeliveryAddress string       `json:"deliveryAddress"`
	ScheduledDate   string       `json:"scheduledDate"`
	ScheduledTime   string       `json:"scheduledTime"`
	WeightKg        null.Float64 `json:"weightKg,omitempty"`
	Instructions    null.String  `json:"instructions,omitempty"`
	QuoteID         null.String  `json:"quoteId,omitempty"`
	TotalPrice      null.Float64 `json:"totalPrice,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	DeletedAt       null.Time    `json:"-"`
}

// CreateOrderInput represents input for order creation
type CreateOrderInput struct {
	MerchantID      uuid.UUID   `json:"merchantId" binding:"required"`
	ServiceType     ServiceType `json:"serviceType" binding:"required"`
	PickupAddress   string      `json:"pickupAddress" binding:"required"`
	DeliveryAddress string      `json:"deliveryAddress" binding:"required"`
	ScheduledDate   string      `json:"scheduledDate" binding:"required"`
	ScheduledTime   string      `json:"scheduledTime" binding:"required"`
	WeightKg        *float64    `json:"weightKg,omitempty"`
	Instructions    string      `json:"instructions,omitempty"`
	QuoteID         *uuid.UUID  `json:"quoteId,omitempty"`
}

// UpdateOrderStatusInput represents a status update request
type UpdateOrderStatusInput struct {
	Status OrderStatus `json:"status" binding:"required"`
}
