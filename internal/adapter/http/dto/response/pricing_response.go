package response

import (
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
)

type PriceEntryResponse struct {
	Key   string  `json:"key"`
	Price float64 `json:"price"`
	Label string  `json:"label"`
	Unit  string  `json:"unit"`
	Icon  string  `json:"icon"`
}

func FromPriceEntry(key entities.ServiceKey, e entities.PriceEntry) PriceEntryResponse {
	return PriceEntryResponse{
		Key:   string(key),
		Price: e.Price,
		Label: e.Label,
		Unit:  e.Unit,
		Icon:  e.Icon,
	}
}

func FromCatalog(entries []usecase.CatalogEntry) []PriceEntryResponse {
	out := make([]PriceEntryResponse, 0, len(entries))
	for _, ce := range entries {
		out = append(out, FromPriceEntry(ce.Key, ce.Entry))
	}
	return out
}
