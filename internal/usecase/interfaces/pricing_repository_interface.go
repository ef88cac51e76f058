package interfaces

import (
	"context"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

// IPricingRepository holds the live pricing catalog for the session.
//
// SetPrice replaces one entry's unit price and leaves the display metadata
// alone. Validation (known key, non-negative price) happens in the usecase
// before the repository is touched, so no partial update can slip through.
type IPricingRepository interface {
	Catalog(ctx context.Context) (entities.Catalog, error)
	SetPrice(ctx context.Context, key entities.ServiceKey, price float64) (entities.PriceEntry, error)
}
