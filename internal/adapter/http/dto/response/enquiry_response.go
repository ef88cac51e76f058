package response

import (
	"time"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

type RequirementsResponse struct {
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	Living      int    `json:"living"`
	Kitchen     int    `json:"kitchen"`
	Frequency   string `json:"frequency"`
	Oven        bool   `json:"oven"`
	Sheets      bool   `json:"sheets"`
	Windows     bool   `json:"windows"`
	WindowCount int    `json:"window_count"`
	Organising  bool   `json:"organising"`
	Notes       string `json:"notes,omitempty"`
}

func FromRequirements(r entities.Requirements) RequirementsResponse {
	return RequirementsResponse{
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Living:      r.Living,
		Kitchen:     r.Kitchen,
		Frequency:   string(r.Frequency),
		Oven:        r.Oven,
		Sheets:      r.Sheets,
		Windows:     r.Windows,
		WindowCount: r.WindowCount,
		Organising:  r.Organising,
		Notes:       r.Notes,
	}
}

type EnquiryResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Channel   string                `json:"channel"`
	Suburb    string                `json:"suburb"`
	Message   string                `json:"message"`
	Avatar    string                `json:"avatar"`
	Status    string                `json:"status"`
	Details   *RequirementsResponse `json:"details,omitempty"`
	QuoteID   string                `json:"quote_id,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func FromEnquiry(e entities.Enquiry) EnquiryResponse {
	res := EnquiryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Channel:   string(e.Channel),
		Suburb:    e.Suburb,
		Message:   e.Message,
		Avatar:    e.Avatar,
		Status:    string(e.Status),
		QuoteID:   e.QuoteID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Details != nil {
		details := FromRequirements(*e.Details)
		res.Details = &details
	}
	return res
}

func FromEnquiries(enquiries []entities.Enquiry) []EnquiryResponse {
	out := make([]EnquiryResponse, 0, len(enquiries))
	for _, e := range enquiries {
		out = append(out, FromEnquiry(e))
	}
	return out
}
