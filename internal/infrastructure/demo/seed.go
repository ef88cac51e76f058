package demo

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/pricing"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"
)

// Seed loads the sample inbox used for demos: five enquiries spread across
// the pipeline stages plus the two quotes linked to them. Quote numbers are
// drawn from the repository sequence, so generation after seeding continues
// at Q003.
func Seed(ctx context.Context, enquiries interfaces.IEnquiryRepository, quotes interfaces.IQuoteRepository) error {
	now := time.Now().UTC()

	sarahDetails := entities.Requirements{
		Bedrooms: 3, Bathrooms: 2, Living: 1, Kitchen: 1,
		Frequency: entities.FrequencyFortnightly,
		Oven:      true,
	}
	lenaDetails := entities.Requirements{
		Bedrooms: 4, Bathrooms: 2, Living: 2, Kitchen: 1,
		Frequency: entities.FrequencyWeekly,
		Sheets:    true, Windows: true, WindowCount: 8,
		Notes: "2 dogs, please close front gate",
	}

	sarahQuoteID, err := nextQuoteID(ctx, quotes)
	if err != nil {
		return err
	}
	lenaQuoteID, err := nextQuoteID(ctx, quotes)
	if err != nil {
		return err
	}

	sarah := sampleEnquiry("Sarah Mitchell", entities.ChannelMessenger, "Buderim",
		"Hi! I'd love a quote for a regular clean of my 3-bed home please 🏡",
		entities.EnquiryStatusQuoteReady, now.Add(-2*time.Hour))
	sarah.Details = &sarahDetails
	sarah.QuoteID = sarahQuoteID

	james := sampleEnquiry("James Cooper", entities.ChannelEmail, "Maroochydore",
		"Hey, was recommended by a friend. Looking for weekly cleaning of our place?",
		entities.EnquiryStatusInfoRequested, now.Add(-5*time.Hour))

	tom := sampleEnquiry("Tom Brady", entities.ChannelInstagram, "Caloundra",
		"Hi do you clean in Caloundra? Need a fortnightly cleaner",
		entities.EnquiryStatusOutOfArea, now.Add(-8*time.Hour))

	lena := sampleEnquiry("Lena Nguyen", entities.ChannelMessenger, "Mooloolaba",
		"Hello! Just moved here and need a regular cleaner. Have a 4 bed 2 bath.",
		entities.EnquiryStatusAccepted, now.Add(-24*time.Hour))
	lena.Details = &lenaDetails
	lena.QuoteID = lenaQuoteID

	emily := sampleEnquiry("Emily Watson", entities.ChannelEmail, "Twin Waters",
		"Hi there, interested in your cleaning services for our holiday rental",
		entities.EnquiryStatusNew, now.Add(-30*time.Minute))

	// Oldest first, so head insertion leaves the inbox most-recent-first.
	for _, e := range []entities.Enquiry{lena, tom, james, sarah, emily} {
		if _, err := enquiries.Create(ctx, e); err != nil {
			return fmt.Errorf("seed enquiry %q: %w", e.Name, err)
		}
	}

	sampleQuotes := []entities.Quote{
		{
			ID:        lenaQuoteID,
			EnquiryID: lena.ID,
			Name:      lena.Name,
			Channel:   lena.Channel,
			Suburb:    lena.Suburb,
			Frequency: lenaDetails.Frequency.Label(),
			Status:    entities.QuoteStatusAccepted,
			Details:   lenaDetails,
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        sarahQuoteID,
			EnquiryID: sarah.ID,
			Name:      sarah.Name,
			Channel:   sarah.Channel,
			Suburb:    sarah.Suburb,
			Frequency: sarahDetails.Frequency.Label(),
			Status:    entities.QuoteStatusPendingApproval,
			Details:   sarahDetails,
			CreatedAt: now.Add(-1 * time.Hour),
			UpdatedAt: now.Add(-1 * time.Hour),
		},
	}
	for _, q := range sampleQuotes {
		if _, err := quotes.Create(ctx, q); err != nil {
			return fmt.Errorf("seed quote %s: %w", q.ID, err)
		}
	}

	log.Printf("[demo] seeded %d enquiries and %d quotes", 5, len(sampleQuotes))
	return nil
}

func nextQuoteID(ctx context.Context, quotes interfaces.IQuoteRepository) (string, error) {
	seq, err := quotes.NextSequence(ctx)
	if err != nil {
		return "", fmt.Errorf("seed quote sequence: %w", err)
	}
	return pricing.FormatQuoteNumber(seq), nil
}

func sampleEnquiry(name string, channel entities.Channel, suburb, message string, status entities.EnquiryStatus, at time.Time) entities.Enquiry {
	return entities.Enquiry{
		ID:        uuid.NewString(),
		Name:      name,
		Channel:   channel,
		Suburb:    suburb,
		Message:   message,
		Avatar:    entities.Initials(name),
		Status:    status,
		CreatedAt: at,
		UpdatedAt: at,
	}
}
