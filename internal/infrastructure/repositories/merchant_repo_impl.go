package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
	"laundrylink.backend/internal/infrastructure/models"
)

// merchantRepo implements repositories.MerchantRepository
type merchantRepo struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) repositories.MerchantRepository {
	return &merchantRepo{db: db}
}

func (r *merchantRepo) Create(ctx context.Context, merchant *entities.Merchant) error {
	if merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	merchant.Status = entities.MerchantStatusPending
	merchant.IsActive = false

	m := r.toModel(merchant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	merchant.CreatedAt = m.CreatedAt
	merchant.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *merchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *merchantRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *merchantRepo) Update(ctx context.Context, merchant *entities.Merchant) error {
	updates := map[string]interface{}{
		"business_name":  merchant.BusinessName,
		"business_email": merchant.BusinessEmail,
		"phone":          merchant.Phone.Ptr(),
		"address":        merchant.Address,
		"latitude":       merchant.Latitude.Ptr(),
		"longitude":      merchant.Longitude.Ptr(),
		"rating":         merchant.Rating,
		"review_count":   merchant.ReviewCount,
		"is_active":      merchant.IsActive,
	}

	result := r.db.WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", merchant.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates the approval status. Approval also activates the
// merchant and stamps approved_at; any other status deactivates it.
func (r *merchantRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MerchantStatus) error {
	updates := map[string]interface{}{
		"status":    string(status),
		"is_active": status == entities.MerchantStatusApproved,
	}
	if status == entities.MerchantStatusApproved {
		updates["approved_at"] = time.Now()
	}

	result := r.db.WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *merchantRepo) ListApprovedActive(ctx context.Context) ([]*entities.Merchant, error) {
	var ms []models.Merchant
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_active = ?", string(entities.MerchantStatusApproved), true).
		Order("created_at").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	var merchants []*entities.Merchant
	for _, m := range ms {
		model := m
		merchants = append(merchants, r.toEntity(&model))
	}
	return merchants, nil
}

func (r *merchantRepo) List(ctx context.Context) ([]*entities.Merchant, error) {
	var ms []models.Merchant
	if err := r.db.WithContext(ctx).Order("created_at").Find(&ms).Error; err != nil {
		return nil, err
	}

	var merchants []*entities.Merchant
	for _, m := range ms {
		model := m
		merchants = append(merchants, r.toEntity(&model))
	}
	return merchants, nil
}

func (r *merchantRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Merchant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *merchantRepo) toModel(e *entities.Merchant) *models.Merchant {
	return &models.Merchant{
		ID:            e.ID,
		UserID:        e.UserID,
		BusinessName:  e.BusinessName,
		BusinessEmail: e.BusinessEmail,
		Phone:         e.Phone.Ptr(),
		Address:       e.Address,
		Latitude:      e.Latitude.Ptr(),
		Longitude:     e.Longitude.Ptr(),
		Rating:        e.Rating,
		ReviewCount:   e.ReviewCount,
		Status:        string(e.Status),
		IsActive:      e.IsActive,
		ApprovedAt:    e.ApprovedAt.Ptr(),
	}
}

func (r *merchantRepo) toEntity(m *models.Merchant) *entities.Merchant {
	return &entities.Merchant{
		ID:            m.ID,
		UserID:        m.UserID,
		BusinessName:  m.BusinessName,
		BusinessEmail: m.BusinessEmail,
		Phone:         null.StringFromPtr(m.Phone),
		Address:       m.Address,
		Latitude:      null.Float64FromPtr(m.Latitude),
		Longitude:     null.Float64FromPtr(m.Longitude),
		Rating:        m.Rating,
		ReviewCount:   m.ReviewCount,
		Status:        entities.MerchantStatus(m.Status),
		IsActive:      m.IsActive,
		ApprovedAt:    null.TimeFromPtr(m.ApprovedAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
