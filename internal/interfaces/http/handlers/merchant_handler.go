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

// MerchantHandler handles merchant application and discovery endpoints
type MerchantHandler struct {
	merchantUsecase  *usecases.MerchantUsecase
	discoveryUsecase *usecases.DiscoveryUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase, discoveryUsecase *usecases.DiscoveryUsecase) *MerchantHandler {
	return &MerchantHandler{
		merchantUsecase:  merchantUsecase,
		discoveryUsecase: discoveryUsecase,
	}
}

// Apply submits a merchant application for the authenticated user
// POST /api/v1/merchants/apply
func (h *MerchantHandler) Apply(c *gin.Context) {
	var input entities.MerchantApplyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	status, err := h.merchantUsecase.Apply(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, status)
}

// Status returns the authenticated user's merchant application status
// GET /api/v1/merchants/status
func (h *MerchantHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	status, err := h.merchantUsecase.GetStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// UpdateProfile edits the authenticated merchant's listing
// PUT /api/v1/merchants/profile
func (h *MerchantHandler) UpdateProfile(c *gin.Context) {
	var input entities.MerchantApplyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	merchant, err := h.merchantUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}

// Discover lists approved active merchants ranked for the customer.
// With lat/lng the list is ordered by distance, otherwise by rating.
// GET /api/v1/merchants?lat=..&lng=..
func (h *MerchantHandler) Discover(c *gin.Context) {
	var query entities.DiscoveryQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchants, err := h.discoveryUsecase.ListMerchants(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"merchants": merchants,
		"total":     len(merchants),
	})
}

// Get returns a single merchant listing
// GET /api/v1/merchants/:id
func (h *MerchantHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return
	}

	merchant, err := h.merchantUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}
