package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/interfaces/http/middleware"
	"laundrylink.backend/internal/interfaces/http/response"
	"laundrylink.backend/internal/usecases"
)

// BookingHandler handles the staged booking workflow and booking records
type BookingHandler struct {
	bookingUsecase  *usecases.BookingUsecase
	merchantUsecase *usecases.MerchantUsecase
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUsecase *usecases.BookingUsecase, merchantUsecase *usecases.MerchantUsecase) *BookingHandler {
	return &BookingHandler{
		bookingUsecase:  bookingUsecase,
		merchantUsecase: merchantUsecase,
	}
}

func (h *BookingHandler) customerID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return uuid.Nil, false
	}
	return userID, true
}

// --- staged draft workflow ---

// StartDraft creates or resets the customer's booking draft
// POST /api/v1/bookings/draft
func (h *BookingHandler) StartDraft(c *gin.Context) {
	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUsecase.StartDraft(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, draft)
}

// GetDraft returns the customer's in-progress draft
// GET /api/v1/bookings/draft
func (h *BookingHandler) GetDraft(c *gin.Context) {
	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUsecase.GetDraft(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// SelectMerchant pins a merchant on the draft
// PUT /api/v1/bookings/draft/merchant
func (h *BookingHandler) SelectMerchant(c *gin.Context) {
	var input struct {
		MerchantID uuid.UUID `json:"merchantId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUsecase.SelectMerchant(c.Request.Context(), userID, input.MerchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// Next advances the draft one step
// POST /api/v1/bookings/draft/next
func (h *BookingHandler) Next(c *gin.Context) {
	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUsecase.Next(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// Back moves the draft one step backwards
// POST /api/v1/bookings/draft/back
func (h *BookingHandler) Back(c *gin.Context) {
	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUsecase.Back(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// SetServiceDetails fills in the details step
// PUT /api/v1/bookings/draft/details
func (h *BookingHandler) SetServiceDetails(c *gin.Context) {
	var input entities.ServiceDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUsecase.SetServiceDetails(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// SetTimeSlot fills in the slot step
// PUT /api/v1/bookings/draft/slot
func (h *BookingHandler) SetTimeSlot(c *gin.Context) {
	var input entities.TimeSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUsecase.SetTimeSlot(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, draft)
}

// Submit finalizes the draft into an order and its booking
// POST /api/v1/bookings/draft/submit
func (h *BookingHandler) Submit(c *gin.Context) {
	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	result, err := h.bookingUsecase.Submit(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// --- booking records ---

// Create inserts a booking directly against an existing order, outside the
// staged workflow
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var input struct {
		MerchantID uuid.UUID `json:"merchantId" binding:"required"`
		OrderID    uuid.UUID `json:"orderId" binding:"required"`
		Date       string    `json:"date" binding:"required"`
		Time       string    `json:"time" binding:"required"`
		Address    string    `json:"address" binding:"required"`
		Notes      string    `json:"notes,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	booking := &entities.Booking{
		CustomerID: userID,
		MerchantID: input.MerchantID,
		OrderID:    input.OrderID,
		Date:       input.Date,
		Time:       input.Time,
		Address:    input.Address,
		Status:     entities.BookingStatusPending,
	}
	if input.Notes != "" {
		booking.Notes.SetValid(input.Notes)
	}

	id, err := h.bookingUsecase.CreateBooking(c.Request.Context(), booking)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"bookingId": id,
	})
}

// Get returns a single booking
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid booking ID"))
		return
	}

	userID, ok := h.customerID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	booking, err := h.bookingUsecase.GetBooking(c.Request.Context(), userID, role, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, booking)
}

// GetForOrder returns the booking linked to an order
// GET /api/v1/orders/:id/booking
func (h *BookingHandler) GetForOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	userID, ok := h.customerID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	booking, err := h.bookingUsecase.GetBookingForOrder(c.Request.Context(), userID, role, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, booking)
}

// ListMine returns the authenticated customer's bookings
// GET /api/v1/bookings
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingUsecase.ListCustomerBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// ListForMerchant returns the authenticated merchant's bookings
// GET /api/v1/merchants/me/bookings
func (h *BookingHandler) ListForMerchant(c *gin.Context) {
	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	merchant, err := h.merchantUsecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.bookingUsecase.ListMerchantBookings(c.Request.Context(), merchant.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// UpdateStatus moves a booking to a new status (merchant or admin)
// PATCH /api/v1/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid booking ID"))
		return
	}

	var input entities.UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.bookingUsecase.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Booking status updated",
		"status":  input.Status,
	})
}

// Cancel cancels the caller's own booking
// POST /api/v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid booking ID"))
		return
	}

	userID, ok := h.customerID(c)
	if !ok {
		return
	}

	if err := h.bookingUsecase.Cancel(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Booking cancelled",
	})
}
