package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"laundrylink.backend/internal/domain/entities"
	domainerrors "laundrylink.backend/internal/domain/errors"
	"laundrylink.backend/internal/domain/repositories"
)

// MerchantUsecase handles merchant business logic
type MerchantUsecase struct {
	merchantRepo repositories.MerchantRepository
	userRepo     repositories.UserRepository
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	userRepo repositories.UserRepository,
) *MerchantUsecase {
	return &MerchantUsecase{
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
	}
}

// Apply handles a merchant application
func (u *MerchantUsecase) Apply(ctx context.Context, userID uuid.UUID, input *entities.MerchantApplyInput) (*entities.MerchantStatusResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// One application per user
	existing, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return &entities.MerchantStatusResponse{
			MerchantID:   existing.ID,
			Status:       existing.Status,
			BusinessName: existing.BusinessName,
			Message:      "Merchant application already exists",
			SubmittedAt:  existing.CreatedAt,
		}, nil
	}

	// Both coordinates or neither
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrInvalidInput
	}

	merchant := &entities.Merchant{
		UserID:        user.ID,
		BusinessName:  input.BusinessName,
		BusinessEmail: input.BusinessEmail,
		Address:       input.Address,
		Latitude:      null.Float64FromPtr(input.Latitude),
		Longitude:     null.Float64FromPtr(input.Longitude),
	}
	if input.Phone != "" {
		merchant.Phone.SetValid(input.Phone)
	}

	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}

	return &entities.MerchantStatusResponse{
		MerchantID:   merchant.ID,
		Status:       merchant.Status,
		BusinessName: merchant.BusinessName,
		Message:      "Merchant application submitted successfully",
		SubmittedAt:  merchant.CreatedAt,
	}, nil
}

// GetStatus gets merchant application status for a user
func (u *MerchantUsecase) GetStatus(ctx context.Context, userID uuid.UUID) (*entities.MerchantStatusResponse, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.MerchantStatusResponse{
				Status:  entities.MerchantStatusPending,
				Message: "No merchant application found",
			}, nil
		}
		return nil, err
	}

	return &entities.MerchantStatusResponse{
		MerchantID:   merchant.ID,
		Status:       merchant.Status,
		BusinessName: merchant.BusinessName,
		Message:      statusMessage(merchant.Status),
		SubmittedAt:  merchant.CreatedAt,
		ReviewedAt:   merchant.ApprovedAt,
	}, nil
}

// GetByID returns a single merchant
func (u *MerchantUsecase) GetByID(ctx context.Context, merchantID uuid.UUID) (*entities.Merchant, error) {
	return u.merchantRepo.GetByID(ctx, merchantID)
}

// GetByUserID returns the merchant owned by the given user
func (u *MerchantUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	return u.merchantRepo.GetByUserID(ctx, userID)
}

// List returns all merchants regardless of status (admin only)
func (u *MerchantUsecase) List(ctx context.Context) ([]*entities.Merchant, error) {
	return u.merchantRepo.List(ctx)
}

// Approve approves a merchant application and promotes the owning user to
// the merchant role (admin only)
func (u *MerchantUsecase) Approve(ctx context.Context, merchantID uuid.UUID) error {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return err
	}

	if err := u.merchantRepo.UpdateStatus(ctx, merchantID, entities.MerchantStatusApproved); err != nil {
		return err
	}

	user, err := u.userRepo.GetByID(ctx, merchant.UserID)
	if err != nil {
		return err
	}
	if user.Role == entities.UserRoleCustomer {
		user.Role = entities.UserRoleMerchant
		if err := u.userRepo.Update(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

// Reject rejects a merchant application (admin only)
func (u *MerchantUsecase) Reject(ctx context.Context, merchantID uuid.UUID) error {
	return u.merchantRepo.UpdateStatus(ctx, merchantID, entities.MerchantStatusRejected)
}

// Suspend suspends a merchant (admin only)
func (u *MerchantUsecase) Suspend(ctx context.Context, merchantID uuid.UUID) error {
	return u.merchantRepo.UpdateStatus(ctx, merchantID, entities.MerchantStatusSuspended)
}

// UpdateProfile lets the owning merchant edit their listing
func (u *MerchantUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.MerchantApplyInput) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrInvalidInput
	}

	merchant.BusinessName = input.BusinessName
	merchant.BusinessEmail = input.BusinessEmail
	merchant.Address = input.Address
	merchant.Latitude = null.Float64FromPtr(input.Latitude)
	merchant.Longitude = null.Float64FromPtr(input.Longitude)
	merchant.Phone = null.String{}
	if input.Phone != "" {
		merchant.Phone.SetValid(input.Phone)
	}

	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

func statusMessage(status entities.MerchantStatus) string {
	switch status {
	case entities.MerchantStatusPending:
		return "Your merchant application is under review"
	case entities.MerchantStatusApproved:
		return "Your merchant account is active"
	case entities.MerchantStatusSuspended:
		return "Your merchant account has been suspended"
	case entities.MerchantStatusRejected:
		return "Your merchant application was rejected"
	default:
		return ""
	}
}
