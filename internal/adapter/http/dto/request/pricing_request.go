package request

// PricingUpdateRequest sets a new unit price for one catalog entry. The
// pointer distinguishes an explicit 0 from a missing field.
type PricingUpdateRequest struct {
	Price *float64 `json:"price" binding:"required"`
}
