package repository

import (
	"context"
	"testing"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

func TestQuoteMemoryRepository_NextSequence(t *testing.T) {
	repo := NewQuoteMemoryRepository()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := repo.NextSequence(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestQuoteMemoryRepository_SequenceNeverReused(t *testing.T) {
	repo := NewQuoteMemoryRepository()
	ctx := context.Background()

	seen := map[int]bool{}
	for i := 0; i < 10; i++ {
		seq, _ := repo.NextSequence(ctx)
		if seen[seq] {
			t.Fatalf("sequence %d handed out twice", seq)
		}
		seen[seq] = true
	}
}

func TestQuoteMemoryRepository_CreateAndUpdate(t *testing.T) {
	repo := NewQuoteMemoryRepository()
	ctx := context.Background()

	repo.Create(ctx, entities.Quote{ID: "Q001", Status: entities.QuoteStatusPendingApproval})
	repo.Create(ctx, entities.Quote{ID: "Q002", Status: entities.QuoteStatusPendingApproval})

	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0].ID != "Q002" {
		t.Fatalf("expected most-recent-first order, got %+v", list)
	}

	if _, err := repo.Update(ctx, entities.Quote{ID: "Q001", Status: entities.QuoteStatusSent}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, _ := repo.GetByID(ctx, "Q001")
	if q.Status != entities.QuoteStatusSent {
		t.Fatalf("expected sent, got %+v", q)
	}

	missing, _ := repo.GetByID(ctx, "Q999")
	if missing.ID != "" {
		t.Fatalf("expected zero value for missing id, got %+v", missing)
	}
}
