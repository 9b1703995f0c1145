package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
	"laundrylink.backend/internal/infrastructure/models"
)

// priceRuleRepo implements repositories.PriceRuleRepository
type priceRuleRepo struct {
	db *gorm.DB
}

// NewPriceRuleRepository creates a new price rule repository
func NewPriceRuleRepository(db *gorm.DB) repositories.PriceRuleRepository {
	return &priceRuleRepo{db: db}
}

// Upsert inserts the rule or updates the existing row for the service type.
func (r *priceRuleRepo) Upsert(ctx context.Context, rule *entities.PriceRule) error {
	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}

	m := &models.PriceRule{
		ID:          rule.ID,
		ServiceType: string(rule.ServiceType),
		PricePerKg:  rule.PricePerKg,
		BaseFee:     rule.BaseFee,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_per_kg", "base_fee", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	rule.CreatedAt = m.CreatedAt
	rule.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *priceRuleRepo) GetByServiceType(ctx context.Context, serviceType entities.ServiceType) (*entities.PriceRule, error) {
	var m models.PriceRule
	if err := r.db.WithContext(ctx).Where("service_type = ?", string(serviceType)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *priceRuleRepo) List(ctx context.Context) ([]*entities.PriceRule, error) {
	var ms []models.PriceRule
	if err := r.db.WithContext(ctx).Order("service_type").Find(&ms).Error; err != nil {
		return nil, err
	}

	var rules []*entities.PriceRule
	for _, m := range ms {
		model := m
		rules = append(rules, r.toEntity(&model))
	}
	return rules, nil
}

func (r *priceRuleRepo) toEntity(m *models.PriceRule) *entities.PriceRule {
	return &entities.PriceRule{
		ID:          m.ID,
		ServiceType: entities.ServiceType(m.ServiceType),
		PricePerKg:  m.PricePerKg,
		BaseFee:     m.BaseFee,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// quoteRepo implements repositories.QuoteRepository
type quoteRepo struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) repositories.QuoteRepository {
	return &quoteRepo{db: db}
}

func (r *quoteRepo) Create(ctx context.Context, quote *entities.PriceQuote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	if quote.Status == "" {
		quote.Status = entities.QuoteStatusPending
	}

	m := r.toModel(quote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	quote.CreatedAt = m.CreatedAt
	quote.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *quoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.PriceQuote, error) {
	var m models.Quote
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *quoteRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.PriceQuote, error) {
	var ms []models.Quote
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	var quotes []*entities.PriceQuote
	for _, m := range ms {
		model := m
		quotes = append(quotes, r.toEntity(&model))
	}
	return quotes, nil
}

func (r *quoteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.QuoteStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Quote{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetExpiredPending returns pending quotes whose validity window has lapsed.
func (r *quoteRepo) GetExpiredPending(ctx context.Context, limit int) ([]*entities.PriceQuote, error) {
	var ms []models.Quote
	query := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", string(entities.QuoteStatusPending), time.Now()).
		Order("expires_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	var quotes []*entities.PriceQuote
	for _, m := range ms {
		model := m
		quotes = append(quotes, r.toEntity(&model))
	}
	return quotes, nil
}

func (r *quoteRepo) ExpireQuotes(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("id IN ?", ids).
		Update("status", string(entities.QuoteStatusExpired)).Error
}

func (r *quoteRepo) toModel(e *entities.PriceQuote) *models.Quote {
	return &models.Quote{
		ID:                e.ID,
		CustomerID:        e.CustomerID,
		ServiceType:       string(e.ServiceType),
		EstimatedWeightKg: e.EstimatedWeightKg,
		QuotedTotal:       e.QuotedTotal,
		Status:            string(e.Status),
		ExpiresAt:         e.ExpiresAt,
	}
}

func (r *quoteRepo) toEntity(m *models.Quote) *entities.PriceQuote {
	return &entities.PriceQuote{
		ID:                m.ID,
		CustomerID:        m.CustomerID,
		ServiceType:       entities.ServiceType(m.ServiceType),
		EstimatedWeightKg: m.EstimatedWeightKg,
		QuotedTotal:       m.QuotedTotal,
		Status:            entities.QuoteStatus(m.Status),
		ExpiresAt:         m.ExpiresAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
