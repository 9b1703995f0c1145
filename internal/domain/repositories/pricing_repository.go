package repositories

import (
	"context"

	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
)

// PriceRuleRepository defines pricing table operations
type PriceRuleRepository interface {
	Upsert(ctx context.Context, rule *entities.PriceRule) error
	GetByServiceType(ctx context.Context, serviceType entities.ServiceType) (*entities.PriceRule, error)
	List(ctx context.Context) ([]*entities.PriceRule, error)
}

// QuoteRepository defines price quote operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entities.PriceQuote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PriceQuote, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.PriceQuote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.QuoteStatus) error
	GetExpiredPending(ctx context.Context, limit int) ([]*entities.PriceQuote, error)
	ExpireQuotes(ctx context.Context, ids []uuid.UUID) error
}
