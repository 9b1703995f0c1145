package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MerchantStatus represents merchant approval status
type MerchantStatus string

const (
	MerchantStatusPending   MerchantStatus = "pending"
	MerchantStatusApproved  MerchantStatus = "approved"
	MerchantStatusRejected  MerchantStatus = "rejected"
	MerchantStatusSuspended MerchantStatus = "suspended"
)

// UnrankedDistanceKm is the sentinel distance assigned to merchants without
// coordinates so they sort last in proximity ranking.
const UnrankedDistanceKm = 999

// Merchant represents a laundry provider listed in the marketplace
type Merchant struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"userId"`
	BusinessName  string         `json:"businessName"`
	BusinessEmail string         `json:"businessEmail"`
	Phone         null.String    `json:"phone,omitempty"`
	Address       string         `json:"address"`
	Latitude      null.Float64   `json:"latitude,omitempty"`
	Longitude     null.Float64   `json:"longitude,omitempty"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"reviewCount"`
	Status        MerchantStatus `json:"status"`
	IsActive      bool           `json:"isActive"`
	ApprovedAt    null.Time      `json:"approvedAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     null.Time      `json:"-"`
}

// HasCoordinates reports whether the merchant has a usable location
func (m *Merchant) HasCoordinates() bool {
	return m.Latitude.Valid && m.Longitude.Valid
}

// RankedMerchant is a merchant extended at query time with a computed
// distance and travel-time estimate. Never persisted.
type RankedMerchant struct {
	Merchant
	DistanceKm null.Float64 `json:"distanceKm,omitempty"`
	EtaMinutes null.Int     `json:"etaMinutes,omitempty"`
}

// MerchantApplyInput represents input for merchant registration
type MerchantApplyInput struct {
	BusinessName  string   `json:"businessName" binding:"required,min=2,max=255"`
	BusinessEmail string   `json:"businessEmail" binding:"required,email"`
	Phone         string   `json:"phone,omitempty"`
	Address       string   `json:"address" binding:"required"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// MerchantStatusResponse represents merchant status response
type MerchantStatusResponse struct {
	MerchantID   uuid.UUID      `json:"merchantId,omitempty"`
	Status       MerchantStatus `json:"status"`
	BusinessName string         `json:"businessName,omitempty"`
	Message      string         `json:"message,omitempty"`
	SubmittedAt  time.Time      `json:"submittedAt,omitempty"`
	ReviewedAt   null.Time      `json:"reviewedAt,omitempty"`
}

// DiscoveryQuery holds the optional customer location for merchant ranking
type DiscoveryQuery struct {
	Latitude  *float64 `form:"lat"`
	Longitude *float64 `form:"lng"`
}

// HasLocation reports whether a customer location was supplied
func (q DiscoveryQuery) HasLocation() bool {
	return q.Latitude != nil && q.Longitude != nil
}
