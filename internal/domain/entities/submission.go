package entities

import "time"

// Submission is the payload the customer form hands to the delivery channel:
// contact identity plus the captured requirements.
//
// Delivery is at-least-once from the producer's side; the orchestrator makes
// no attempt to deduplicate, so a replayed submission becomes a new enquiry.
type Submission struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Suburb string `json:"suburb"`

	Requirements Requirements `json:"requirements"`
	SubmittedAt  time.Time    `json:"submitted_at"`
}
