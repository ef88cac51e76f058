package entities

import "fmt"

// Frequency is how often the customer wants the clean.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly:
		return true
	}
	return false
}

// Label returns the display form ("weekly" -> "Weekly").
func (f Frequency) Label() string {
	if f == "" {
		return ""
	}
	s := string(f)
	return string(s[0]-'a'+'A') + s[1:]
}

// Requirements describes the customer's home and the service they want.
//
// WindowCount is only meaningful while Windows is set; Normalize zeroes it
// otherwise so downstream consumers never have to re-check the flag.
type Requirements struct {
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms int       `json:"bathrooms"`
	Living    int       `json:"living"`
	Kitchen   int       `json:"kitchen"`
	Frequency Frequency `json:"frequency"`

	Oven        bool   `json:"oven"`
	Sheets      bool   `json:"sheets"`
	Windows     bool   `json:"windows"`
	WindowCount int    `json:"window_count"`
	Organising  bool   `json:"organising"`
	Notes       string `json:"notes,omitempty"`
}

// Normalize clamps out-of-range values at the boundary: negative room counts
// become 0, and the window count is zeroed when window cleaning is off.
func (r *Requirements) Normalize() {
	if r.Bedrooms < 0 {
		r.Bedrooms = 0
	}
	if r.Bathrooms < 0 {
		r.Bathrooms = 0
	}
	if r.Living < 0 {
		r.Living = 0
	}
	if r.Kitchen < 0 {
		r.Kitchen = 0
	}
	if !r.Windows || r.WindowCount < 0 {
		r.WindowCount = 0
	}
}

// Summary renders the short inbox message used for self-served submissions.
func (r Requirements) Summary() string {
	return fmt.Sprintf("Form submitted: %d bed, %d bath, %s clean", r.Bedrooms, r.Bathrooms, r.Frequency)
}
