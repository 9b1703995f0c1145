package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
	"laundrylink.backend/internal/interfaces/http/response"
	"laundrylink.backend/internal/usecases"
)

// AdminHandler handles admin endpoints
type AdminHandler struct {
	userRepo        repositories.UserRepository
	shopOrderRepo   repositories.ShopOrderRepository
	merchantUsecase *usecases.MerchantUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	userRepo repositories.UserRepository,
	shopOrderRepo repositories.ShopOrderRepository,
	merchantUsecase *usecases.MerchantUsecase,
) *AdminHandler {
	return &AdminHandler{
		userRepo:        userRepo,
		shopOrderRepo:   shopOrderRepo,
		merchantUsecase: merchantUsecase,
	}
}

// ListUsers lists all users
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// ListMerchants lists all merchants regardless of status
// GET /api/v1/admin/merchants
func (h *AdminHandler) ListMerchants(c *gin.Context) {
	merchants, err := h.merchantUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"merchants": merchants,
		"total":     len(merchants),
	})
}

// ApproveMerchant approves an application and promotes the owning user
// POST /api/v1/admin/merchants/:id/approve
func (h *AdminHandler) ApproveMerchant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	if err := h.merchantUsecase.Approve(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Merchant approved",
	})
}

// RejectMerchant rejects an application
// POST /api/v1/admin/merchants/:id/reject
func (h *AdminHandler) RejectMerchant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	if err := h.merchantUsecase.Reject(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Merchant rejected",
	})
}

// SuspendMerchant takes an approved merchant off the marketplace
// POST /api/v1/admin/merchants/:id/suspend
func (h *AdminHandler) SuspendMerchant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	if err := h.merchantUsecase.Suspend(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Merchant suspended",
	})
}

// GetStats returns marketplace totals for the admin dashboard
// GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	merchants, err := h.merchantUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	var pendingMerchants, activeMerchants int
	for _, m := range merchants {
		switch {
		case m.Status == entities.MerchantStatusPending:
			pendingMerchants++
		case m.Status == entities.MerchantStatusApproved && m.IsActive:
			activeMerchants++
		}
	}

	_, shopOrders, err := h.shopOrderRepo.List(c.Request.Context(), 1, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"totalUsers":       len(users),
		"totalMerchants":   len(merchants),
		"pendingMerchants": pendingMerchants,
		"activeMerchants":  activeMerchants,
		"totalShopOrders":  shopOrders,
	})
}
