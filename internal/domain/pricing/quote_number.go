package pricing

import (
	"fmt"
	"strings"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

// FormatQuoteNumber renders the human-readable quote id for a sequence
// value: Q001, Q002, ... Sequence values are monotonic and never reused.
func FormatQuoteNumber(seq int) string {
	return fmt.Sprintf("Q%03d", seq)
}

// MessagePreview builds the outbound message the operator reviews before a
// quote is sent. No real delivery happens; this is preview text only.
func MessagePreview(q entities.Quote, result entities.QuoteResult) string {
	first := q.Name
	if parts := strings.Fields(q.Name); len(parts) > 0 {
		first = parts[0]
	}

	discountNote := ""
	if result.DiscountLabel != "" {
		discountNote = " (with your 10% weekly discount! 🎉)"
	}

	return fmt.Sprintf(
		"Hey %s! 🌿 Thanks so much for your details! We've put together a personalised quote for your %d-bed, %d-bath home in %s. Your %s clean comes to $%.2f per visit%s. Have a look at the attached quote and let us know if you'd like to go ahead! 💚",
		first,
		q.Details.Bedrooms,
		q.Details.Bathrooms,
		q.Suburb,
		strings.ToLower(q.Frequency),
		result.Total,
		discountNote,
	)
}
