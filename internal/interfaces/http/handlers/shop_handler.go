package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/interfaces/http/middleware"
	"laundrylink.backend/internal/interfaces/http/response"
	"laundrylink.backend/internal/usecases"
	"laundrylink.backend/pkg/redis"
)

// ShopHandler handles the accessory shop endpoints
type ShopHandler struct {
	shopUsecase *usecases.ShopUsecase
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopUsecase *usecases.ShopUsecase) *ShopHandler {
	return &ShopHandler{shopUsecase: shopUsecase}
}

// --- products ---

// ListProducts returns the storefront catalogue
// GET /api/v1/shop/products
func (h *ShopHandler) ListProducts(c *gin.Context) {
	products, err := h.shopUsecase.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct returns a single product
// GET /api/v1/shop/products/:id
func (h *ShopHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	product, err := h.shopUsecase.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// CreateProduct adds a product to the shop (admin)
// POST /api/v1/shop/products
func (h *ShopHandler) CreateProduct(c *gin.Context) {
	var product entities.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.shopUsecase.CreateProduct(c.Request.Context(), &product); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// UpdateProduct edits a product (admin)
// PUT /api/v1/shop/products/:id
func (h *ShopHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	var product entities.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	product.ID = id

	if err := h.shopUsecase.UpdateProduct(c.Request.Context(), &product); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product from the shop (admin)
// DELETE /api/v1/shop/products/:id
func (h *ShopHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	if err := h.shopUsecase.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Product deleted",
	})
}

// --- shop orders ---

// CreateOrder places an accessory order
// POST /api/v1/shop/orders
func (h *ShopHandler) CreateOrder(c *gin.Context) {
	var input entities.CreateShopOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	order, err := h.shopUsecase.CreateOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, order)
}

// GetOrder returns a shop order visible to the caller
// GET /api/v1/shop/orders/:id
func (h *ShopHandler) GetOrder(c *gin.Context) {
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

	order, err := h.shopUsecase.GetOrder(c.Request.Context(), userID, role, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// ListMyOrders returns the authenticated customer's shop orders
// GET /api/v1/shop/orders
func (h *ShopHandler) ListMyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	orders, err := h.shopUsecase.ListCustomerOrders(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}

// ListAllOrders returns all shop orders (admin)
// GET /api/v1/admin/shop/orders
func (h *ShopHandler) ListAllOrders(c *gin.Context) {
	limit, offset := pagination(c)
	orders, total, err := h.shopUsecase.ListAllOrders(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
	})
}

// UpdateOrderStatus moves a shop order to a new status (admin)
// PATCH /api/v1/admin/shop/orders/:id/status
func (h *ShopHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	var input struct {
		Status entities.ShopOrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.shopUsecase.UpdateOrderStatus(c.Request.Context(), id, input.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Shop order status updated",
		"status":  input.Status,
	})
}

// StreamOrders relays new shop order notifications as server-sent events
// (admin dashboard)
// GET /api/v1/admin/shop/orders/stream
func (h *ShopHandler) StreamOrders(c *gin.Context) {
	if redis.GetClient() == nil {
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, "Event stream unavailable")
		return
	}

	sub := redis.Subscribe(c.Request.Context(), usecases.ShopOrdersChannel)
	defer sub.Close()
	ch := sub.Channel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent("shop_order", msg.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
