package entities

// LineItem is one priced component of a quote.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// QuoteResult is a computed, never-stored pricing breakdown. It is always
// recalculated from the live catalog when a quote is rendered.
type QuoteResult struct {
	Items         []LineItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Discount      float64    `json:"discount"`
	DiscountLabel string     `json:"discount_label,omitempty"`
	Total         float64    `json:"total"`
}
