package response

import (
	"testing"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	q := entities.Quote{
		ID:        "Q001",
		EnquiryID: "enq-1",
		Name:      "Sarah Mitchell",
		Channel:   entities.ChannelMessenger,
		Suburb:    "Buderim",
		Frequency: "Fortnightly",
		Status:    entities.QuoteStatusPendingApproval,
		Details:   entities.Requirements{Bedrooms: 3, Frequency: entities.FrequencyFortnightly},
	}

	res := FromQuote(q)
	if res.ID != "Q001" || res.EnquiryID != "enq-1" || res.Status != "pending_approval" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Frequency != "Fortnightly" || res.Details.Bedrooms != 3 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromQuoteRender(t *testing.T) {
	r := usecase.QuoteRender{
		Quote: entities.Quote{ID: "Q002", Status: entities.QuoteStatusSent},
		Result: entities.QuoteResult{
			Items: []entities.LineItem{
				{Description: "Bedroom cleaning", Quantity: 4, UnitPrice: 25, Total: 100},
				{Description: "Kitchen cleaning", Quantity: 1, UnitPrice: 50, Total: 50},
			},
			Subtotal:      150,
			Discount:      15,
			DiscountLabel: "Weekly Clean Discount (10%)",
			Total:         135,
		},
		MessagePreview: "Hey Lena! ...",
	}

	res := FromQuoteRender(r)
	if res.Quote.ID != "Q002" || res.MessagePreview != "Hey Lena! ..." {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Result.Items) != 2 || res.Result.Items[0].Total != 100 {
		t.Fatalf("unexpected items: %+v", res.Result.Items)
	}
	if res.Result.Subtotal != 150 || res.Result.Discount != 15 || res.Result.Total != 135 {
		t.Fatalf("unexpected totals: %+v", res.Result)
	}
}
