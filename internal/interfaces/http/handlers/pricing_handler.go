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

// PricingHandler handles pricing table and quote endpoints
type PricingHandler struct {
	pricingUsecase *usecases.PricingUsecase
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingUsecase *usecases.PricingUsecase) *PricingHandler {
	return &PricingHandler{pricingUsecase: pricingUsecase}
}

// ListRules returns the full pricing table
// GET /api/v1/pricing
func (h *PricingHandler) ListRules(c *gin.Context) {
	rules, err := h.pricingUsecase.ListRules(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"rules": rules,
		"total": len(rules),
	})
}

// UpsertRule creates or replaces a pricing rule (admin)
// PUT /api/v1/admin/pricing
func (h *PricingHandler) UpsertRule(c *gin.Context) {
	var input entities.UpsertPriceRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	rule, err := h.pricingUsecase.UpsertRule(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, rule)
}

// RequestQuote computes and stores a price quote for the customer
// POST /api/v1/quotes
func (h *PricingHandler) RequestQuote(c *gin.Context) {
	var input entities.RequestQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	quote, err := h.pricingUsecase.RequestQuote(c.Request.Context(), userID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No pricing rule for this service type"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, quote)
}

// GetQuote returns the customer's own quote
// GET /api/v1/quotes/:id
func (h *PricingHandler) GetQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid quote ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	quote, err := h.pricingUsecase.GetQuote(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, quote)
}

// ListQuotes returns the customer's quotes
// GET /api/v1/quotes
func (h *PricingHandler) ListQuotes(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	quotes, err := h.pricingUsecase.ListQuotes(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"quotes": quotes,
		"total":  len(quotes),
	})
}
