package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
	"laundrylink.backend/pkg/logger"
	"laundrylink.backend/pkg/redis"
)

const draftKeyPrefix = "booking:draft:"

// Stubbed in tests
var (
	draftRedisGet = redis.Get
	draftRedisSet = redis.Set
	draftRedisDel = redis.Del
)

// BookingUsecase drives the staged booking workflow and booking records
type BookingUsecase struct {
	bookingRepo  repositories.BookingRepository
	orderRepo    repositories.OrderRepository
	merchantRepo repositories.MerchantRepository
	draftTTL     time.Duration
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(
	bookingRepo repositories.BookingRepository,
	orderRepo repositories.OrderRepository,
	merchantRepo repositories.MerchantRepository,
	draftTTL time.Duration,
) *BookingUsecase {
	return &BookingUsecase{
		bookingRepo:  bookingRepo,
		orderRepo:    orderRepo,
		merchantRepo: merchantRepo,
		draftTTL:     draftTTL,
	}
}

// --- staged draft workflow ---

// StartDraft creates (or resets) the customer's booking draft
func (u *BookingUsecase) StartDraft(ctx context.Context, customerID uuid.UUID) (*entities.BookingDraft, error) {
	draft := &entities.BookingDraft{
		CustomerID: customerID,
		Step:       entities.DraftStepMerchant,
	}
	if err := u.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns the customer's current draft
func (u *BookingUsecase) GetDraft(ctx context.Context, customerID uuid.UUID) (*entities.BookingDraft, error) {
	return u.loadDraft(ctx, customerID)
}

// SelectMerchant pins a merchant on the draft. Only approved active merchants
// can be chosen.
func (u *BookingUsecase) SelectMerchant(ctx context.Context, customerID, merchantID uuid.UUID) (*entities.BookingDraft, error) {
	draft, err := u.loadDraft(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if draft.Step != entities.DraftStepMerchant {
		return nil, domainerrors.ErrDraftStateInvalid
	}

	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Status != entities.MerchantStatusApproved || !merchant.IsActive {
		return nil, domainerrors.ErrMerchantNotActive
	}

	draft.MerchantID = merchant.ID
	if err := u.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Next advances the draft one step. Leaving the merchant step requires a
// chosen merchant.
func (u *BookingUsecase) Next(ctx context.Context, customerID uuid.UUID) (*entities.BookingDraft, error) {
	draft, err := u.loadDraft(ctx, customerID)
	if err != nil {
		return nil, err
	}

	switch draft.Step {
	case entities.DraftStepMerchant:
		if !draft.HasMerchant() {
			return nil, domainerrors.ErrMerchantNotChosen
		}
		draft.Step = entities.DraftStepDetails
	case entities.DraftStepDetails:
		draft.Step = entities.DraftStepSlot
	default:
		return nil, domainerrors.ErrDraftStateInvalid
	}

	if err := u.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Back moves the draft one step backwards; backing out of the first step is
// an error.
func (u *BookingUsecase) Back(ctx context.Context, customerID uuid.UUID) (*entities.BookingDraft, error) {
	draft, err := u.loadDraft(ctx, customerID)
	if err != nil {
		return nil, err
	}

	switch draft.Step {
	case entities.DraftStepSlot:
		draft.Step = entities.DraftStepDetails
	case entities.DraftStepDetails:
		draft.Step = entities.DraftStepMerchant
	default:
		return nil, domainerrors.ErrDraftStateInvalid
	}

	if err := u.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetServiceDetails fills in the details step
func (u *BookingUsecase) SetServiceDetails(ctx context.Context, customerID uuid.UUID, input *entities.ServiceDetailsInput) (*entities.BookingDraft, error) {
	draft, err := u.loadDraft(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if draft.Step != entities.DraftStepDetails {
		return nil, domainerrors.ErrDraftStateInvalid
	}
	if !entities.KnownServiceType(input.ServiceType) {
		return nil, domainerrors.ErrInvalidInput
	}

	draft.ServiceType = input.ServiceType
	draft.PickupAddress = input.PickupAddress
	draft.DeliveryAddress = input.DeliveryAddress
	draft.WeightKg = input.WeightKg
	draft.Instructions = input.Instructions

	if err := u.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetTimeSlot fills in the slot step
func (u *BookingUsecase) SetTimeSlot(ctx context.Context, customerID uuid.UUID, input *entities.TimeSlotInput) (*entities.BookingDraft, error) {
	draft, err := u.loadDraft(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if draft.Step != entities.DraftStepSlot {
		return nil, domainerrors.ErrDraftStateInvalid
	}

	draft.Date = input.Date
	draft.Time = input.Time
	draft.Notes = input.Notes

	if err := u.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Submit finalizes the draft: the order is inserted first, then the booking
// referencing it. The two writes are not transactional; a booking failure is
// logged and the submit still succeeds with a null booking id. A successful
// submit clears the draft.
func (u *BookingUsecase) Submit(ctx context.Context, customerID uuid.UUID) (*entities.SubmitResult, error) {
	draft, err := u.loadDraft(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if draft.Step != entities.DraftStepSlot {
		return nil, domainerrors.ErrDraftStateInvalid
	}
	if draft.Date == "" || draft.Time == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	// Next does not force the details step to be filled in, so the draft can
	// reach the slot step with zero-valued details. Hold submits to the same
	// bar as a direct order.
	if !entities.KnownServiceType(draft.ServiceType) {
		return nil, domainerrors.ErrInvalidInput
	}
	if draft.PickupAddress == "" || draft.DeliveryAddress == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	order := &entities.Order{
		CustomerID:      customerID,
		MerchantID:      draft.MerchantID,
		ServiceType:     draft.ServiceType,
		PickupAddress:   draft.PickupAddress,
		DeliveryAddress: draft.DeliveryAddress,
		ScheduledDate:   draft.Date,
		ScheduledTime:   draft.Time,
		WeightKg:        null.Float64FromPtr(draft.WeightKg),
	}
	if draft.Instructions != "" {
		order.Instructions.SetValid(draft.Instructions)
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	result := &entities.SubmitResult{OrderID: order.ID}

	booking := &entities.Booking{
		CustomerID: customerID,
		MerchantID: draft.MerchantID,
		OrderID:    order.ID,
		Date:       draft.Date,
		Time:       draft.Time,
		Address:    draft.PickupAddress,
	}
	if draft.Notes != "" {
		booking.Notes.SetValid(draft.Notes)
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		// The order stands without its booking; surface in logs only
		logger.Error(ctx, "booking insert failed after order creation",
			zap.String("order_id", order.ID.String()),
			zap.String("customer_id", customerID.String()),
			zap.Error(err),
		)
	} else {
		result.BookingID = &booking.ID
	}

	if err := draftRedisDel(ctx, draftKey(customerID)); err != nil {
		logger.Warn(ctx, "failed to clear booking draft",
			zap.String("customer_id", customerID.String()),
			zap.Error(err),
		)
	}

	return result, nil
}

// --- booking records ---

// CreateBooking inserts a booking directly, outside the staged workflow
func (u *BookingUsecase) CreateBooking(ctx context.Context, booking *entities.Booking) (uuid.UUID, error) {
	if _, err := u.orderRepo.GetByID(ctx, booking.OrderID); err != nil {
		return uuid.Nil, err
	}
	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return uuid.Nil, err
	}
	return booking.ID, nil
}

// GetBooking returns a booking if the caller may see it
func (u *BookingUsecase) GetBooking(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID) (*entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.authorize(ctx, callerID, callerRole, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBookingForOrder returns the booking linked to an order, scoped the same
// way as GetBooking. Orders whose booking insert failed have none.
func (u *BookingUsecase) GetBookingForOrder(ctx context.Context, callerID uuid.UUID, callerRole string, orderID uuid.UUID) (*entities.Booking, error) {
	booking, err := u.bookingRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := u.authorize(ctx, callerID, callerRole, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListCustomerBookings returns the customer's bookings
func (u *BookingUsecase) ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*entities.Booking, error) {
	return u.bookingRepo.ListByCustomer(ctx, customerID)
}

// ListMerchantBookings returns a merchant's bookings
func (u *BookingUsecase) ListMerchantBookings(ctx context.Context, merchantID uuid.UUID) ([]*entities.Booking, error) {
	return u.bookingRepo.ListByMerchant(ctx, merchantID)
}

// UpdateStatus sets a booking to any known status. Transitions between known
// statuses are not restricted.
func (u *BookingUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	if !entities.KnownBookingStatus(status) {
		return domainerrors.ErrInvalidInput
	}
	return u.bookingRepo.UpdateStatus(ctx, id, status)
}

// Cancel cancels the customer's own booking. Only pending or confirmed
// bookings can be cancelled; the linked order is untouched.
func (u *BookingUsecase) Cancel(ctx context.Context, customerID, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.CustomerID != customerID {
		return domainerrors.ErrForbidden
	}
	if booking.Status != entities.BookingStatusPending && booking.Status != entities.BookingStatusConfirmed {
		return domainerrors.ErrOrderNotCancelable
	}
	return u.bookingRepo.UpdateStatus(ctx, bookingID, entities.BookingStatusCancelled)
}

func (u *BookingUsecase) authorize(ctx context.Context, callerID uuid.UUID, callerRole string, booking *entities.Booking) error {
	if callerRole == string(entities.UserRoleAdmin) {
		return nil
	}
	if booking.CustomerID == callerID {
		return nil
	}
	if callerRole == string(entities.UserRoleMerchant) {
		merchant, err := u.merchantRepo.GetByUserID(ctx, callerID)
		if err == nil && merchant.ID == booking.MerchantID {
			return nil
		}
	}
	return domainerrors.ErrForbidden
}

// --- draft persistence ---

func draftKey(customerID uuid.UUID) string {
	return draftKeyPrefix + customerID.String()
}

func (u *BookingUsecase) saveDraft(ctx context.Context, draft *entities.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return draftRedisSet(ctx, draftKey(draft.CustomerID), payload, u.draftTTL)
}

func (u *BookingUsecase) loadDraft(ctx context.Context, customerID uuid.UUID) (*entities.BookingDraft, error) {
	val, err := draftRedisGet(ctx, draftKey(customerID))
	if err != nil {
		if err.Error() == "redis: nil" {
			return nil, domainerrors.NotFound("no booking draft in progress")
		}
		return nil, err
	}

	var draft entities.BookingDraft
	if err := json.Unmarshal([]byte(val), &draft); err != nil {
		return nil, fmt.Errorf("corrupt booking draft: %w", err)
	}
	if draft.CustomerID != customerID {
		return nil, errors.New("booking draft customer mismatch")
	}
	return &draft, nil
}
