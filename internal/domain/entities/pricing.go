package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PriceRule holds per-service pricing, admin-managed
type PriceRule struct {
	ID          uuid.UUID   `json:"id"`
	ServiceType ServiceType `json:"serviceType"`
	PricePerKg  float64     `json:"pricePerKg"`
	BaseFee     float64     `json:"baseFee"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// QuoteStatus represents price quote status
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// PriceQuote is a customer-requested price estimate with a validity window
type PriceQuote struct {
	ID                uuid.UUID   `json:"id"`
	CustomerID        uuid.UUID   `json:"customerId"`
	ServiceType       ServiceType `json:"serviceType"`
	EstimatedWeightKg float64     `json:"estimatedWeightKg"`
	QuotedTotal       float64     `json:"quotedTotal"`
	Status            QuoteStatus `json:"status"`
	ExpiresAt         time.Time   `json:"expiresAt"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
	DeletedAt         null.Time   `json:"-"`
}

// RequestQuoteInput represents input for requesting a price quote
type RequestQuoteInput struct {
	ServiceType       ServiceType `json:"serviceType" binding:"required"`
	EstimatedWeightKg float64     `json:"estimatedWeightKg" binding:"required,gt=0"`
}

// UpsertPriceRuleInput represents admin input for pricing management
type UpsertPriceRuleInput struct {
	ServiceType ServiceType `json:"serviceType" binding:"required"`
	PricePerKg  float64     `json:"pricePerKg" binding:"required,gte=0"`
	BaseFee     float64     `json:"baseFee" binding:"gte=0"`
}
