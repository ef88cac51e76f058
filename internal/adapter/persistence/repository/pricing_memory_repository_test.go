package repository

import (
	"context"
	"testing"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

func TestPricingMemoryRepository_DefaultsAndSetPrice(t *testing.T) {
	repo := NewPricingMemoryRepository(nil)
	ctx := context.Background()

	catalog, err := repo.Catalog(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog[entities.ServiceBedroom].Price != 25 {
		t.Fatalf("expected default bedroom price 25, got %+v", catalog[entities.ServiceBedroom])
	}

	entry, err := repo.SetPrice(ctx, entities.ServiceBedroom, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Price != 30 || entry.Label != "Bedroom" {
		t.Fatalf("expected price changed and metadata kept, got %+v", entry)
	}

	after, _ := repo.Catalog(ctx)
	if after[entities.ServiceBedroom].Price != 30 {
		t.Fatalf("expected updated price visible, got %+v", after[entities.ServiceBedroom])
	}
}

func TestPricingMemoryRepository_CatalogIsACopy(t *testing.T) {
	repo := NewPricingMemoryRepository(nil)
	ctx := context.Background()

	catalog, _ := repo.Catalog(ctx)
	entry := catalog[entities.ServiceOven]
	entry.Price = 999
	catalog[entities.ServiceOven] = entry

	fresh, _ := repo.Catalog(ctx)
	if fresh[entities.ServiceOven].Price != 65 {
		t.Fatalf("catalog reads must not share state, got %+v", fresh[entities.ServiceOven])
	}
}
