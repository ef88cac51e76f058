package interfaces

import (
	"context"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

// IEnquiryRepository abstracts storage for Enquiry.
//
// Ordering contract: Create inserts at the head, so List always returns
// enquiries most-recent-first without reordering existing entries. This is
// what lets the async intake queue and the demo generator append safely
// while the operator works.
type IEnquiryRepository interface {
	Create(ctx context.Context, e entities.Enquiry) (entities.Enquiry, error)
	GetByID(ctx context.Context, id string) (entities.Enquiry, error)
	List(ctx context.Context) ([]entities.Enquiry, error)
	Update(ctx context.Context, e entities.Enquiry) (entities.Enquiry, error)
}
