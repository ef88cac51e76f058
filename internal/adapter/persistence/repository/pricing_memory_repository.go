package repository

import (
	"context"
	"sync"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"
)

// PricingMemoryRepository holds the session's live pricing catalog. The
// catalog is deliberately session-scoped in every storage driver: prices are
// an operator's working table, not durable records.
type PricingMemoryRepository struct {
	mu      sync.RWMutex
	catalog entities.Catalog
}

var _ interfaces.IPricingRepository = (*PricingMemoryRepository)(nil)

func NewPricingMemoryRepository(catalog entities.Catalog) *PricingMemoryRepository {
	if catalog == nil {
		catalog = entities.DefaultCatalog()
	}
	return &PricingMemoryRepository{catalog: catalog.Clone()}
}

func (r *PricingMemoryRepository) Catalog(_ context.Context) (entities.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.catalog.Clone(), nil
}

func (r *PricingMemoryRepository) SetPrice(_ context.Context, key entities.ServiceKey, price float64) (entities.PriceEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.catalog[key]
	entry.Price = price
	r.catalog[key] = entry
	return entry, nil
}
