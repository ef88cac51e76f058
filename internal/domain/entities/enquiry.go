package entities

import (
	"strings"
	"time"
)

// EnquiryStatus tracks where a customer contact sits in the intake pipeline.
//
// Happy path: new -> info_requested -> info_received -> quote_ready ->
// quote_sent -> accepted. The single side branch is new -> out_of_area.
// out_of_area and accepted are terminal.
type EnquiryStatus string

const (
	EnquiryStatusNew           EnquiryStatus = "new"
	EnquiryStatusInfoRequested EnquiryStatus = "info_requested"
	EnquiryStatusInfoReceived  EnquiryStatus = "info_received"
	EnquiryStatusQuoteReady    EnquiryStatus = "quote_ready"
	EnquiryStatusQuoteSent     EnquiryStatus = "quote_sent"
	EnquiryStatusAccepted      EnquiryStatus = "accepted"
	EnquiryStatusOutOfArea     EnquiryStatus = "out_of_area"
)

// enquiryTransitions is the full transition table. Every exposed operation
// goes through CanTransition, so no action can skip an intermediate state.
var enquiryTransitions = map[EnquiryStatus]map[EnquiryStatus]bool{
	EnquiryStatusNew:           {EnquiryStatusInfoRequested: true, EnquiryStatusOutOfArea: true},
	EnquiryStatusInfoRequested: {EnquiryStatusInfoReceived: true},
	EnquiryStatusInfoReceived:  {EnquiryStatusQuoteReady: true},
	EnquiryStatusQuoteReady:    {EnquiryStatusQuoteSent: true},
	EnquiryStatusQuoteSent:     {EnquiryStatusAccepted: true},
	EnquiryStatusAccepted:      {},
	EnquiryStatusOutOfArea:     {},
}

func (s EnquiryStatus) IsValid() bool {
	_, ok := enquiryTransitions[s]
	return ok
}

func (s EnquiryStatus) CanTransition(to EnquiryStatus) bool {
	next, ok := enquiryTransitions[s]
	if !ok {
		return false
	}
	return next[to]
}

// Channel is where the first contact came from.
type Channel string

const (
	ChannelMessenger Channel = "messenger"
	ChannelInstagram Channel = "instagram"
	ChannelEmail     Channel = "email"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelMessenger, ChannelInstagram, ChannelEmail:
		return true
	}
	return false
}

// Enquiry is a single customer contact and its progress through the
// quoting pipeline. Details is attached when the customer's requirements
// arrive; QuoteID links the quote generated from those details.
type Enquiry struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Channel Channel `json:"channel"`
	Suburb  string  `json:"suburb"`
	Message string  `json:"message"`
	Avatar  string  `json:"avatar"`

	Status  EnquiryStatus `json:"status"`
	Details *Requirements `json:"details,omitempty"`
	QuoteID string        `json:"quote_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Enquiry) CanRequestInfo() bool {
	return e.Status.CanTransition(EnquiryStatusInfoRequested)
}

func (e *Enquiry) CanDecline() bool {
	return e.Status.CanTransition(EnquiryStatusOutOfArea)
}

func (e *Enquiry) CanReceiveInfo() bool {
	return e.Status.CanTransition(EnquiryStatusInfoReceived)
}

// CanGenerateQuote requires captured requirements and no quote linked yet.
func (e *Enquiry) CanGenerateQuote() bool {
	return e.Status.CanTransition(EnquiryStatusQuoteReady) && e.Details != nil && e.QuoteID == ""
}

// Initials builds the avatar shorthand shown on enquiry cards ("Sarah
// Mitchell" -> "SM").
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}
