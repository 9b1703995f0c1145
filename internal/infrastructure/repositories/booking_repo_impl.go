package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
	"laundrylink.backend/internal/infrastructure/models"
)

// bookingRepo implements repositories.BookingRepository
type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) repositories.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *entities.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.Status == "" {
		booking.Status = entities.BookingStatusPending
	}

	m := r.toModel(booking)
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	booking.CreatedAt = m.CreatedAt
	booking.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *bookingRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *bookingRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.Booking, error) {
	return r.list(ctx, "customer_id = ?", customerID)
}

func (r *bookingRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Booking, error) {
	return r.list(ctx, "merchant_id = ?", merchantID)
}

func (r *bookingRepo) list(ctx context.Context, cond string, id uuid.UUID) ([]*entities.Booking, error) {
	var ms []models.Booking
	if err := r.db.WithContext(ctx).Where(cond, id).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	var bookings []*entities.Booking
	for _, m := range ms {
		model := m
		bookings = append(bookings, r.toEntity(&model))
	}
	return bookings, nil
}

// UpdateStatus writes the target status unconditionally; legality of the
// transition is not checked here.
func (r *bookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *bookingRepo) toModel(e *entities.Booking) *models.Booking {
	return &models.Booking{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		MerchantID: e.MerchantID,
		OrderID:    e.OrderID,
		Date:       e.Date,
		Time:       e.Time,
		Address:    e.Address,
		Notes:      e.Notes.Ptr(),
		Status:     string(e.Status),
	}
}

func (r *bookingRepo) toEntity(m *models.Booking) *entities.Booking {
	return &entities.Booking{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		MerchantID: m.MerchantID,
		OrderID:    m.OrderID,
		Date:       m.Date,
		Time:       m.Time,
		Address:    m.Address,
		Notes:      null.StringFromPtr(m.Notes),
		Status:     entities.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
