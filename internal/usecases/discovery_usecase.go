package usecases

import (
	"context"
	"math"
	"sort"

	"github.com/volatiletech/null/v8"
	"laundrylink.backend/internal/domain/entities"
	"laundrylink.backend/internal/domain/repositories"
	"laundrylink.backend/pkg/geo"
)

// DiscoveryUsecase ranks approved merchants for the customer-facing listing
type DiscoveryUsecase struct {
	merchantRepo repositories.MerchantRepository
}

// NewDiscoveryUsecase creates a new discovery usecase
func NewDiscoveryUsecase(merchantRepo repositories.MerchantRepository) *DiscoveryUsecase {
	return &DiscoveryUsecase{merchantRepo: merchantRepo}
}

// ListMerchants returns approved active merchants ranked for the customer.
// With a location the list is ordered by distance; merchants without
// coordinates get the sentinel distance so they sort last while keeping their
// relative order. Without a location the list is ordered by rating.
func (u *DiscoveryUsecase) ListMerchants(ctx context.Context, query entities.DiscoveryQuery) ([]*entities.RankedMerchant, error) {
	merchants, err := u.merchantRepo.ListApprovedActive(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]*entities.RankedMerchant, 0, len(merchants))
	for _, m := range merchants {
		ranked = append(ranked, &entities.RankedMerchant{Merchant: *m})
	}

	if query.HasLocation() {
		u.rankByDistance(ranked, *query.Latitude, *query.Longitude)
	} else {
		u.rankByRating(ranked)
	}

	return ranked, nil
}

func (u *DiscoveryUsecase) rankByDistance(ranked []*entities.RankedMerchant, lat, lng float64) {
	for _, r := range ranked {
		if !r.HasCoordinates() {
			r.DistanceKm = null.Float64From(entities.UnrankedDistanceKm)
			continue
		}
		km := geo.Distance(lat, lng, r.Latitude.Float64, r.Longitude.Float64)
		if math.IsNaN(km) {
			r.DistanceKm = null.Float64From(entities.UnrankedDistanceKm)
			continue
		}
		r.DistanceKm = null.Float64From(km)
		r.EtaMinutes = null.IntFrom(geo.TravelTimeMinutes(km))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm.Float64 < ranked[j].DistanceKm.Float64
	})
}

func (u *DiscoveryUsecase) rankByRating(ranked []*entities.RankedMerchant) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].ReviewCount > ranked[j].ReviewCount
	})
}
