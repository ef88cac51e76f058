// Package pricing holds the pure quote calculation rules. Everything here is
// deterministic and side-effect free: (requirements, catalog) in, itemized
// result out.
package pricing

import (
	"fmt"
	"math"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
)

const (
	// WeeklyDiscountRate is applied to the subtotal of weekly cleans.
	WeeklyDiscountRate = 0.10

	WeeklyDiscountLabel = "Weekly Clean Discount (10%)"
)

// CalcQuote prices a set of requirements against the given catalog.
//
// Rooms are emitted first in fixed order, then add-ons in fixed order.
// A window-cleaning add-on with a zero count prices as inactive even when
// the flag is set. An all-zero input yields an empty item list and zero
// totals rather than an error.
func CalcQuote(req entities.Requirements, catalog entities.Catalog) entities.QuoteResult {
	var result entities.QuoteResult

	rooms := []struct {
		key entities.ServiceKey
		qty int
	}{
		{entities.ServiceBedroom, req.Bedrooms},
		{entities.ServiceBathroom, req.Bathrooms},
		{entities.ServiceLiving, req.Living},
		{entities.ServiceKitchen, req.Kitchen},
	}
	for _, r := range rooms {
		if r.qty <= 0 {
			continue
		}
		entry := catalog[r.key]
		total := float64(r.qty) * entry.Price
		result.Items = append(result.Items, entities.LineItem{
			Description: fmt.Sprintf("%s cleaning", entry.Label),
			Quantity:    r.qty,
			UnitPrice:   entry.Price,
			Total:       total,
		})
		result.Subtotal += total
	}

	addons := []struct {
		key    entities.ServiceKey
		active bool
		qty    int
	}{
		{entities.ServiceOven, req.Oven, 1},
		{entities.ServiceSheets, req.Sheets, 1},
		{entities.ServiceWindows, req.Windows, req.WindowCount},
		{entities.ServiceOrganising, req.Organising, 1},
	}
	for _, a := range addons {
		if !a.active || a.qty <= 0 {
			continue
		}
		entry := catalog[a.key]
		total := float64(a.qty) * entry.Price
		result.Items = append(result.Items, entities.LineItem{
			Description: entry.Label,
			Quantity:    a.qty,
			UnitPrice:   entry.Price,
			Total:       total,
		})
		result.Subtotal += total
	}

	if req.Frequency == entities.FrequencyWeekly {
		result.Discount = round2(result.Subtotal * WeeklyDiscountRate)
		result.DiscountLabel = WeeklyDiscountLabel
	}
	result.Total = result.Subtotal - result.Discount

	return result
}

// round2 rounds to two decimal places, the same way the quote totals are
// displayed to customers.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
