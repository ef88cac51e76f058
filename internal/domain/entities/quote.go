package entities

import "time"

// QuoteStatus is the quote's own linear lifecycle:
// pending_approval -> sent -> accepted.
//
// Each step is driven by the matching operator action on the enquiry side
// (approve, mark accepted); the orchestrator keeps both statuses in lockstep.
type QuoteStatus string

const (
	QuoteStatusPendingApproval QuoteStatus = "pending_approval"
	QuoteStatusSent            QuoteStatus = "sent"
	QuoteStatusAccepted        QuoteStatus = "accepted"
)

// Quote is a priced proposal derived from one enquiry.
//
// Name/Channel/Suburb are denormalized from the enquiry at creation time.
// Details is the quote's own snapshot of the requirements: editing it never
// touches the originating enquiry, and vice versa.
type Quote struct {
	ID        string  `json:"id"`
	EnquiryID string  `json:"enquiry_id"`
	Name      string  `json:"name"`
	Channel   Channel `json:"channel"`
	Suburb    string  `json:"suburb"`

	Frequency string       `json:"frequency"`
	Status    QuoteStatus  `json:"status"`
	Details   Requirements `json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *Quote) CanApprove() bool {
	return q.Status == QuoteStatusPendingApproval
}

func (q *Quote) CanMarkAccepted() bool {
	return q.Status == QuoteStatusSent
}

// CanEdit: only a quote still waiting for approval may have its snapshot
// changed. Editing never advances the status.
func (q *Quote) CanEdit() bool {
	return q.Status == QuoteStatusPendingApproval
}
