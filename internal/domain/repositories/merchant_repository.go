package repositories

import (
	"context"

	"github.com/google/uuid"
	"laundrylink.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error)
	Update(ctx context.Context, merchant *entities.Merchant) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MerchantStatus) error
	ListApprovedActive(ctx context.Context) ([]*entities.Merchant, error)
	List(ctx context.Context) ([]*entities.Merchant, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
