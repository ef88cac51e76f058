package usecase

import (
	"context"
	"errors"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"
)

var (
	ErrUnknownServiceKey = errors.New("unknown service key")
	ErrNegativePrice     = errors.New("price must not be negative")
)

// CatalogEntry pairs a service key with its current catalog row, in display
// order (rooms first, then add-ons).
type CatalogEntry struct {
	Key   entities.ServiceKey
	Entry entities.PriceEntry
}

// IPricingUseCase is the pricing catalog edit surface used by the admin UI.
type IPricingUseCase interface {
	Catalog(ctx context.Context) ([]CatalogEntry, error)
	UpdatePrice(ctx context.Context, key entities.ServiceKey, price float64) (entities.PriceEntry, error)
}

type PricingUseCase struct {
	repo interfaces.IPricingRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IPricingRepository) *PricingUseCase {
	return &PricingUseCase{repo: repo}
}

func (u *PricingUseCase) Catalog(ctx context.Context) ([]CatalogEntry, error) {
	catalog, err := u.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	ordered := make([]CatalogEntry, 0, len(catalog))
	for _, key := range entities.RoomKeys {
		ordered = append(ordered, CatalogEntry{Key: key, Entry: catalog[key]})
	}
	for _, key := range entities.AddonKeys {
		ordered = append(ordered, CatalogEntry{Key: key, Entry: catalog[key]})
	}
	return ordered, nil
}

// UpdatePrice changes one entry's unit price. Negative prices and unknown
// keys are rejected before anything is written; there is no partial update.
// The change applies to every quote calculated afterwards, never
// retroactively.
func (u *PricingUseCase) UpdatePrice(ctx context.Context, key entities.ServiceKey, price float64) (entities.PriceEntry, error) {
	if price < 0 {
		return entities.PriceEntry{}, ErrNegativePrice
	}

	catalog, err := u.repo.Catalog(ctx)
	if err != nil {
		return entities.PriceEntry{}, err
	}
	if !catalog.HasKey(key) {
		return entities.PriceEntry{}, ErrUnknownServiceKey
	}

	return u.repo.SetPrice(ctx, key, price)
}
