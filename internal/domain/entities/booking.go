package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BookingStatus represents booking appointment status
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// KnownBookingStatus reports whether s is a recognized booking status
func KnownBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking ties a customer, merchant and order to an appointment slot.
// A booking always references exactly one order; an order may exist
// without a booking.
type Booking struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customerId"`
	MerchantID uuid.UUID     `json:"merchantId"`
	OrderID    uuid.UUID     `json:"orderId"`
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	Address    string        `json:"address"`
	Notes      null.String   `json:"notes,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	DeletedAt  null.Time     `json:"-"`
}

// DraftStep represents a step of the staged booking workflow
type DraftStep string

const (
	DraftStepMerchant DraftStep = "merchant"
	DraftStepDetails  DraftStep = "details"
	DraftStepSlot     DraftStep = "slot"
)

// BookingDraft holds the in-progress state of the staged booking workflow.
// One draft exists per customer; it lives in Redis with a TTL and is cleared
// on successful submit.
type BookingDraft struct {
	CustomerID      uuid.UUID   `json:"customerId"`
	Step            DraftStep   `json:"step"`
	MerchantID      uuid.UUID   `json:"merchantId,omitempty"`
	ServiceType     ServiceType `json:"serviceType,omitempty"`
	PickupAddress   string      `json:"pickupAddress,omitempty"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
	WeightKg        *float64    `json:"weightKg,omitempty"`
	Instructions    string      `json:"instructions,omitempty"`
	Date            string      `json:"date,omitempty"`
	Time            string      `json:"time,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}

// HasMerchant reports whether a merchant has been chosen in the draft
func (d *BookingDraft) HasMerchant() bool {
	return d.MerchantID != uuid.Nil
}

// ServiceDetailsInput represents step-two form fields
type ServiceDetailsInput struct {
	ServiceType     ServiceType `json:"serviceType" binding:"required"`
	PickupAddress   string      `json:"pickupAddress" binding:"required"`
	DeliveryAddress string      `json:"deliveryAddress" binding:"required"`
	WeightKg        *float64    `json:"weightKg,omitempty"`
	Instructions    string      `json:"instructions,omitempty"`
}

// TimeSlotInput represents step-three form fields
type TimeSlotInput struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes,omitempty"`
}

// SubmitResult is returned by a successful booking workflow submit. The
// booking id is null when the booking insert failed after the order was
// created; the order always stands.
type SubmitResult struct {
	OrderID   uuid.UUID  `json:"orderId"`
	BookingID *uuid.UUID `json:"bookingId"`
}

// UpdateBookingStatusInput represents a booking status update request
type UpdateBookingStatusInput struct {
	Status BookingStatus `json:"status" binding:"required"`
}
