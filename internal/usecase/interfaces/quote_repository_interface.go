package interfaces

import (
	"context"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

// IQuoteRepository abstracts storage for Quote.
//
// NextSequence hands out the monotonic counter behind the Q001-style quote
// numbers: strictly increasing, never reused, regardless of what later
// happens to the quotes or their enquiries.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	NextSequence(ctx context.Context) (int, error)
}
