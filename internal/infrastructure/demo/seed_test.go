package demo

import (
	"context"
	"testing"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/persistence/repository"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

func TestSeed(t *testing.T) {
	enquiries := repository.NewEnquiryMemoryRepository()
	quotes := repository.NewQuoteMemoryRepository()
	ctx := context.Background()

	if err := Seed(ctx, enquiries, quotes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _ := enquiries.List(ctx)
	if len(list) != 5 {
		t.Fatalf("expected 5 enquiries, got %d", len(list))
	}
	// Most recent first: Emily (30m ago) leads, Lena (a day ago) trails.
	if list[0].Name != "Emily Watson" || list[4].Name != "Lena Nguyen" {
		t.Fatalf("unexpected inbox order: %s ... %s", list[0].Name, list[4].Name)
	}

	statuses := map[string]entities.EnquiryStatus{}
	for _, e := range list {
		statuses[e.Name] = e.Status
	}
	if statuses["Sarah Mitchell"] != entities.EnquiryStatusQuoteReady ||
		statuses["James Cooper"] != entities.EnquiryStatusInfoRequested ||
		statuses["Tom Brady"] != entities.EnquiryStatusOutOfArea ||
		statuses["Lena Nguyen"] != entities.EnquiryStatusAccepted ||
		statuses["Emily Watson"] != entities.EnquiryStatusNew {
		t.Fatalf("unexpected seeded statuses: %+v", statuses)
	}

	q1, _ := quotes.GetByID(ctx, "Q001")
	if q1.Name != "Sarah Mitchell" || q1.Status != entities.QuoteStatusPendingApproval {
		t.Fatalf("unexpected Q001: %+v", q1)
	}
	q2, _ := quotes.GetByID(ctx, "Q002")
	if q2.Name != "Lena Nguyen" || q2.Status != entities.QuoteStatusAccepted {
		t.Fatalf("unexpected Q002: %+v", q2)
	}

	// Quotes are linked back to their enquiries.
	for _, e := range list {
		switch e.Name {
		case "Sarah Mitchell":
			if e.QuoteID != "Q001" {
				t.Fatalf("Sarah not linked to Q001: %+v", e)
			}
		case "Lena Nguyen":
			if e.QuoteID != "Q002" {
				t.Fatalf("Lena not linked to Q002: %+v", e)
			}
		}
	}

	// Seeding consumed Q001 and Q002, so generation continues at Q003.
	seq, _ := quotes.NextSequence(ctx)
	if seq != 3 {
		t.Fatalf("expected next sequence 3, got %d", seq)
	}
}
