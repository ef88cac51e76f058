package entities

// ServiceKey identifies one priced line in the catalog.
type ServiceKey string

const (
	ServiceBedroom    ServiceKey = "bedroom"
	ServiceBathroom   ServiceKey = "bathroom"
	ServiceLiving     ServiceKey = "living"
	ServiceKitchen    ServiceKey = "kitchen"
	ServiceOven       ServiceKey = "oven"
	ServiceSheets     ServiceKey = "sheets"
	ServiceWindows    ServiceKey = "windows"
	ServiceOrganising ServiceKey = "organising"
)

// RoomKeys and AddonKeys fix the order line items appear in on a quote.
var (
	RoomKeys  = []ServiceKey{ServiceBedroom, ServiceBathroom, ServiceLiving, ServiceKitchen}
	AddonKeys = []ServiceKey{ServiceOven, ServiceSheets, ServiceWindows, ServiceOrganising}
)

// PriceEntry is one catalog row: the current unit price plus display metadata.
type PriceEntry struct {
	Price float64 `json:"price"`
	Label string  `json:"label"`
	Unit  string  `json:"unit"`
	Icon  string  `json:"icon"`
}

// Catalog is the live per-item pricing table. Mutations apply to every quote
// calculated afterwards; already-rendered results are never patched.
type Catalog map[ServiceKey]PriceEntry

func (c Catalog) HasKey(key ServiceKey) bool {
	_, ok := c[key]
	return ok
}

// Clone returns an independent copy so callers can't mutate shared state.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// DefaultCatalog returns the launch pricing for Dust Bunnies Cleaning.
func DefaultCatalog() Catalog {
	return Catalog{
		ServiceBedroom:    {Price: 25, Unit: "per room", Icon: "🛏️", Label: "Bedroom"},
		ServiceBathroom:   {Price: 35, Unit: "per room", Icon: "🚿", Label: "Bathroom"},
		ServiceLiving:     {Price: 25, Unit: "per room", Icon: "🛋️", Label: "Living Room"},
		ServiceKitchen:    {Price: 50, Unit: "per room", Icon: "🍳", Label: "Kitchen"},
		ServiceOven:       {Price: 65, Unit: "per clean", Icon: "♨️", Label: "Oven Deep Clean"},
		ServiceSheets:     {Price: 10, Unit: "per set", Icon: "🛏️", Label: "Sheet Changes"},
		ServiceWindows:    {Price: 5, Unit: "per window", Icon: "🪟", Label: "Window Cleaning"},
		ServiceOrganising: {Price: 60, Unit: "per session", Icon: "📦", Label: "Organising"},
	}
}
