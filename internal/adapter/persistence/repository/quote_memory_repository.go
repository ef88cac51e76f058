package repository

import (
	"context"
	"sync"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"
)

// QuoteMemoryRepository keeps quotes in process memory, most-recent-first,
// and owns the monotonic sequence behind Q001-style numbers. The counter
// only moves forward; numbers are never reused even if a quote's enquiry is
// later mutated.
type QuoteMemoryRepository struct {
	mu     sync.RWMutex
	quotes []entities.Quote
	seq    int
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{}
}

func (r *QuoteMemoryRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.quotes = append([]entities.Quote{q}, r.quotes...)
	return q, nil
}

func (r *QuoteMemoryRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, q := range r.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteMemoryRepository) List(_ context.Context) ([]entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Quote, len(r.quotes))
	copy(out, r.quotes)
	return out, nil
}

func (r *QuoteMemoryRepository) Update(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.quotes {
		if r.quotes[i].ID == q.ID {
			r.quotes[i] = q
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteMemoryRepository) NextSequence(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	return r.seq, nil
}
