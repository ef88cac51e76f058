package entities

import "testing"

func TestEnquiryStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to EnquiryStatus
		ok       bool
	}{
		{EnquiryStatusNew, EnquiryStatusInfoRequested, true},
		{EnquiryStatusNew, EnquiryStatusOutOfArea, true},
		{EnquiryStatusNew, EnquiryStatusQuoteReady, false},
		{EnquiryStatusInfoRequested, EnquiryStatusInfoReceived, true},
		{EnquiryStatusInfoRequested, EnquiryStatusOutOfArea, false},
		{EnquiryStatusInfoReceived, EnquiryStatusQuoteReady, true},
		{EnquiryStatusQuoteReady, EnquiryStatusQuoteSent, true},
		{EnquiryStatusQuoteSent, EnquiryStatusAccepted, true},
		{EnquiryStatusQuoteSent, EnquiryStatusQuoteReady, false},
		{EnquiryStatusAccepted, EnquiryStatusNew, false},
		{EnquiryStatusOutOfArea, EnquiryStatusInfoRequested, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", c.from, c.to, c.ok, got)
		}
	}
}

func TestEnquiryCanGenerateQuote(t *testing.T) {
	e := Enquiry{Status: EnquiryStatusInfoReceived}
	if e.CanGenerateQuote() {
		t.Fatal("must not generate without details")
	}

	e.Details = &Requirements{Frequency: FrequencyWeekly}
	if !e.CanGenerateQuote() {
		t.Fatal("expected generation to be allowed")
	}

	e.QuoteID = "Q001"
	if e.CanGenerateQuote() {
		t.Fatal("must not generate twice for the same enquiry")
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Sarah Mitchell":  "SM",
		"Priya":           "P",
		"ben gallagher":   "BG",
		"Mary Jane Smith": "MJS",
	}
	for name, want := range cases {
		if got := Initials(name); got != want {
			t.Fatalf("%q: expected %q, got %q", name, want, got)
		}
	}
}

func TestInServicedArea(t *testing.T) {
	if !InServicedArea("Buderim") {
		t.Fatal("Buderim is serviced")
	}
	if InServicedArea("Caloundra") {
		t.Fatal("Caloundra is not serviced")
	}
}

func TestRequirementsNormalize(t *testing.T) {
	r := Requirements{Bedrooms: -1, Bathrooms: 2, Windows: false, WindowCount: 5}
	r.Normalize()
	if r.Bedrooms != 0 || r.Bathrooms != 2 {
		t.Fatalf("unexpected room counts: %+v", r)
	}
	if r.WindowCount != 0 {
		t.Fatalf("window count must be zeroed when windows is off, got %d", r.WindowCount)
	}

	r2 := Requirements{Windows: true, WindowCount: 4}
	r2.Normalize()
	if r2.WindowCount != 4 {
		t.Fatalf("window count must survive when windows is on, got %d", r2.WindowCount)
	}
}

func TestFrequencyLabel(t *testing.T) {
	if got := FrequencyFortnightly.Label(); got != "Fortnightly" {
		t.Fatalf("expected Fortnightly, got %q", got)
	}
	if got := Frequency("").Label(); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}
