package repository

import (
	"context"
	"sync"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"
)

// EnquiryMemoryRepository keeps enquiries in process memory for the life of
// the session.
//
// The slice is ordered most-recent-first: Create prepends and nothing ever
// reorders existing entries. The mutex is what lets the intake queue and the
// demo generator append while the operator's requests mutate records.
type EnquiryMemoryRepository struct {
	mu        sync.RWMutex
	enquiries []entities.Enquiry
}

var _ interfaces.IEnquiryRepository = (*EnquiryMemoryRepository)(nil)

func NewEnquiryMemoryRepository() *EnquiryMemoryRepository {
	return &EnquiryMemoryRepository{}
}

func (r *EnquiryMemoryRepository) Create(_ context.Context, e entities.Enquiry) (entities.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enquiries = append([]entities.Enquiry{cloneEnquiry(e)}, r.enquiries...)
	return e, nil
}

func (r *EnquiryMemoryRepository) GetByID(_ context.Context, id string) (entities.Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.enquiries {
		if e.ID == id {
			return cloneEnquiry(e), nil
		}
	}
	return entities.Enquiry{}, nil
}

func (r *EnquiryMemoryRepository) List(_ context.Context) ([]entities.Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Enquiry, 0, len(r.enquiries))
	for _, e := range r.enquiries {
		out = append(out, cloneEnquiry(e))
	}
	return out, nil
}

// Update replaces the stored record in place, keeping its list position.
func (r *EnquiryMemoryRepository) Update(_ context.Context, e entities.Enquiry) (entities.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.enquiries {
		if r.enquiries[i].ID == e.ID {
			r.enquiries[i] = cloneEnquiry(e)
			return e, nil
		}
	}
	return entities.Enquiry{}, nil
}

// cloneEnquiry deep-copies the Details pointer so callers and the store
// never share a Requirements value.
func cloneEnquiry(e entities.Enquiry) entities.Enquiry {
	if e.Details != nil {
		details := *e.Details
		e.Details = &details
	}
	return e
}
