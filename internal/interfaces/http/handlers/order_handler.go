package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/interfaces/http/middleware"
	"laundrylink.backend/internal/interfaces/http/response"
	"laundrylink.backend/internal/usecases"
	"laundrylink.backend/pkg/utils"
)

// OrderHandler handles laundry order endpoints
type OrderHandler struct {
	orderUsecase    *usecases.OrderUsecase
	merchantUsecase *usecases.MerchantUsecase
	receiptUsecase  *usecases.ReceiptUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderUsecase *usecases.OrderUsecase,
	merchantUsecase *usecases.MerchantUsecase,
	receiptUsecase *usecases.ReceiptUsecase,
) *OrderHandler {
	return &OrderHandler{
		orderUsecase:    orderUsecase,
		merchantUsecase: merchantUsecase,
		receiptUsecase:  receiptUsecase,
	}
}

func pagination(c *gin.Context) (limit, offset int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	p := utils.GetPaginationParams(page, limit, 20)
	return p.Limit, p.CalculateOffset()
}

// Create places a new laundry order
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var input entities.CreateOrderInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	order, err := h.orderUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, order)
}

// Get returns a single order visible to the caller
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	order, err := h.orderUsecase.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// ListMine returns the authenticated customer's orders
// GET /api/v1/orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	limit, offset := pagination(c)
	orders, total, err := h.orderUsecase.ListCustomerOrders(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
	})
}

// ListForMerchant returns the orders routed to the authenticated merchant
// GET /api/v1/merchants/me/orders
func (h *OrderHandler) ListForMerchant(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	merchant, err := h.merchantUsecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	limit, offset := pagination(c)
	orders, total, err := h.orderUsecase.ListMerchantOrders(c.Request.Context(), merchant.ID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
	})
}

// UpdateStatus moves an order to a new status (merchant or admin)
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	var input entities.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.orderUsecase.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Order status updated",
		"status":  input.Status,
	})
}

// Cancel cancels the caller's own order
// POST /api/v1/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.orderUsecase.Cancel(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Order cancelled",
	})
}

// Receipt renders a PDF receipt for an order the caller may see
// GET /api/v1/orders/:id/receipt
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	pdf, err := h.receiptUsecase.OrderReceipt(c.Request.Context(), userID, role, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
