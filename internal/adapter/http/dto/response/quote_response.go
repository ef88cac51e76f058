package response

import (
	"time"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
)

type QuoteResponse struct {
	ID        string               `json:"id"`
	EnquiryID string               `json:"enquiry_id"`
	Name      string               `json:"name"`
	Channel   string               `json:"channel"`
	Suburb    string               `json:"suburb"`
	Frequency string               `json:"frequency"`
	Status    string               `json:"status"`
	Details   RequirementsResponse `json:"details"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		EnquiryID: q.EnquiryID,
		Name:      q.Name,
		Channel:   string(q.Channel),
		Suburb:    q.Suburb,
		Frequency: q.Frequency,
		Status:    string(q.Status),
		Details:   FromRequirements(q.Details),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteResultResponse struct {
	Items         []LineItemResponse `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	Discount      float64            `json:"discount"`
	DiscountLabel string             `json:"discount_label,omitempty"`
	Total         float64            `json:"total"`
}

// QuoteRenderResponse is the full admin rendering surface: the quote, its
// breakdown priced against the live catalog, and the message preview ready
// to paste back to the customer.
type QuoteRenderResponse struct {
	Quote          QuoteResponse       `json:"quote"`
	Result         QuoteResultResponse `json:"result"`
	MessagePreview string              `json:"message_preview"`
}

func FromQuoteRender(r usecase.QuoteRender) QuoteRenderResponse {
	items := make([]LineItemResponse, 0, len(r.Result.Items))
	for _, it := range r.Result.Items {
		items = append(items, LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return QuoteRenderResponse{
		Quote: FromQuote(r.Quote),
		Result: QuoteResultResponse{
			Items:         items,
			Subtotal:      r.Result.Subtotal,
			Discount:      r.Result.Discount,
			DiscountLabel: r.Result.DiscountLabel,
			Total:         r.Result.Total,
		},
		MessagePreview: r.MessagePreview,
	}
}
