package request

import (
	"strings"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

// EnquiryCreateRequest is the payload for logging a new customer contact by
// hand (the operator pasted it out of Messenger or Instagram).
type EnquiryCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Channel string `json:"channel" binding:"required"`
	Suburb  string `json:"suburb" binding:"required"`
	Message string `json:"message"`
}

func (r EnquiryCreateRequest) ResolveChannel() entities.Channel {
	return entities.Channel(strings.ToLower(strings.TrimSpace(r.Channel)))
}

// RequirementsRequest carries the info-form fields, both when the operator
// records them on an enquiry and when a pending quote is edited.
type RequirementsRequest struct {
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	Living      int    `json:"living"`
	Kitchen     int    `json:"kitchen"`
	Frequency   string `json:"frequency" binding:"required"`
	Oven        bool   `json:"oven"`
	Sheets      bool   `json:"sheets"`
	Windows     bool   `json:"windows"`
	WindowCount int    `json:"window_count"`
	Organising  bool   `json:"organising"`
	Notes       string `json:"notes"`
}

func (r RequirementsRequest) ToEntity() entities.Requirements {
	return entities.Requirements{
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Living:      r.Living,
		Kitchen:     r.Kitchen,
		Frequency:   entities.Frequency(strings.ToLower(strings.TrimSpace(r.Frequency))),
		Oven:        r.Oven,
		Sheets:      r.Sheets,
		Windows:     r.Windows,
		WindowCount: r.WindowCount,
		Organising:  r.Organising,
		Notes:       strings.TrimSpace(r.Notes),
	}
}
