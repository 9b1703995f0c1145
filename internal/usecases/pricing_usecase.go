package usecases

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
)

// PricingUsecase handles the admin pricing table and customer quotes
type PricingUsecase struct {
	ruleRepo      repositories.PriceRuleRepository
	quoteRepo     repositories.QuoteRepository
	quoteValidity time.Duration
}

// NewPricingUsecase creates a new pricing usecase
func NewPricingUsecase(
	ruleRepo repositories.PriceRuleRepository,
	quoteRepo repositories.QuoteRepository,
	quoteValidity time.Duration,
) *PricingUsecase {
	return &PricingUsecase{
		ruleRepo:      ruleRepo,
		quoteRepo:     quoteRepo,
		quoteValidity: quoteValidity,
	}
}

// UpsertRule creates or replaces the pricing rule for a service type (admin)
func (u *PricingUsecase) UpsertRule(ctx context.Context, input *entities.UpsertPriceRuleInput) (*entities.PriceRule, error) {
	if !entities.KnownServiceType(input.ServiceType) {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.PricePerKg < 0 || input.BaseFee < 0 {
		return nil, domainerrors.ErrInvalidInput
	}

	rule := &entities.PriceRule{
		ServiceType: input.ServiceType,
		PricePerKg:  input.PricePerKg,
		BaseFee:     input.BaseFee,
	}
	if err := u.ruleRepo.Upsert(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// ListRules returns the full pricing table
func (u *PricingUsecase) ListRules(ctx context.Context) ([]*entities.PriceRule, error) {
	return u.ruleRepo.List(ctx)
}

// RequestQuote computes a quoted total from the pricing table and stores it
// with a validity window.
func (u *PricingUsecase) RequestQuote(ctx context.Context, customerID uuid.UUID, input *entities.RequestQuoteInput) (*entities.PriceQuote, error) {
	if !entities.KnownServiceType(input.ServiceType) {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.EstimatedWeightKg <= 0 {
		return nil, domainerrors.ErrInvalidInput
	}

	rule, err := u.ruleRepo.GetByServiceType(ctx, input.ServiceType)
	if err != nil {
		return nil, err
	}

	total := rule.BaseFee + rule.PricePerKg*input.EstimatedWeightKg
	// keep money at two decimals
	total = math.Round(total*100) / 100

	quote := &entities.PriceQuote{
		CustomerID:        customerID,
		ServiceType:       input.ServiceType,
		EstimatedWeightKg: input.EstimatedWeightKg,
		QuotedTotal:       total,
		ExpiresAt:         time.Now().Add(u.quoteValidity),
	}
	if err := u.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// GetQuote returns the customer's own quote
func (u *PricingUsecase) GetQuote(ctx context.Context, customerID, quoteID uuid.UUID) (*entities.PriceQuote, error) {
	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.CustomerID != customerID {
		return nil, domainerrors.ErrForbidden
	}
	return quote, nil
}

// ListQuotes returns the customer's quotes, newest first
func (u *PricingUsecase) ListQuotes(ctx context.Context, customerID uuid.UUID) ([]*entities.PriceQuote, error) {
	return u.quoteRepo.ListByCustomer(ctx, customerID)
}
