package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/pricing"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrMissingDetails     = errors.New("enquiry has no requirements attached")
	ErrQuoteAlreadyLinked = errors.New("enquiry already has a quote")
	ErrQuoteNotEditable   = errors.New("quote can no longer be edited")
)

// QuoteRender is the rendering-surface output: the live pricing breakdown
// plus the message the operator would send.
type QuoteRender struct {
	Quote          entities.Quote
	Result         entities.QuoteResult
	MessagePreview string
}

// IQuoteUseCase exposes the quote side of the dashboard pipeline.
//
// Operator actions:
//   - "Generate Quote"   => Generate()
//   - "Approve & Send"   => Approve()
//   - "Mark Accepted"    => MarkAccepted()
//   - "Modify" + save    => UpdateDetails()
//
// Approve and MarkAccepted advance the linked enquiry in the same call, so
// the two state machines never drift apart.
type IQuoteUseCase interface {
	List(ctx context.Context, status string) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Generate(ctx context.Context, enquiryID string) (entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	MarkAccepted(ctx context.Context, id string) (entities.Quote, error)
	UpdateDetails(ctx context.Context, id string, req entities.Requirements) (entities.Quote, error)
	Render(ctx context.Context, id string) (QuoteRender, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	enquiryRepo interfaces.IEnquiryRepository
	pricingRepo interfaces.IPricingRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, enquiryRepo interfaces.IEnquiryRepository, pricingRepo interfaces.IPricingRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, enquiryRepo: enquiryRepo, pricingRepo: pricingRepo}
}

func (u *QuoteUseCase) List(ctx context.Context, status string) ([]entities.Quote, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	status = strings.TrimSpace(status)
	if status == "" {
		return all, nil
	}

	filtered := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if q.Status == entities.QuoteStatus(status) {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// Generate creates a pending_approval quote from an enquiry's captured
// requirements, links it, and moves the enquiry to quote_ready.
//
// An enquiry without details, or with a quote already linked, is left
// completely untouched: no quote record, no sequence consumed before the
// checks pass, no status change.
func (u *QuoteUseCase) Generate(ctx context.Context, enquiryID string) (entities.Quote, error) {
	enquiryID = strings.TrimSpace(enquiryID)
	if enquiryID == "" {
		return entities.Quote{}, ErrInvalidEnquiryID
	}

	e, err := u.enquiryRepo.GetByID(ctx, enquiryID)
	if err != nil {
		return entities.Quote{}, err
	}
	if e.ID == "" {
		return entities.Quote{}, ErrEnquiryNotFound
	}
	if e.QuoteID != "" {
		return entities.Quote{}, ErrQuoteAlreadyLinked
	}
	if e.Details == nil {
		return entities.Quote{}, ErrMissingDetails
	}
	if !e.CanGenerateQuote() {
		return entities.Quote{}, ErrInvalidTransition
	}

	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:        pricing.FormatQuoteNumber(seq),
		EnquiryID: e.ID,
		Name:      e.Name,
		Channel:   e.Channel,
		Suburb:    e.Suburb,
		Frequency: e.Details.Frequency.Label(),
		Status:    entities.QuoteStatusPendingApproval,
		Details:   *e.Details, // snapshot; future edits never touch the enquiry
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	e.Status = entities.EnquiryStatusQuoteReady
	e.QuoteID = created.ID
	e.UpdatedAt = now
	if _, err := u.enquiryRepo.Update(ctx, e); err != nil {
		return entities.Quote{}, err
	}
	return created, nil
}

// Approve sends the quote: pending_approval -> sent, and the linked enquiry
// quote_ready -> quote_sent.
func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.advance(ctx, id,
		func(q *entities.Quote) bool { return q.CanApprove() },
		entities.QuoteStatusSent,
		entities.EnquiryStatusQuoteSent,
	)
}

// MarkAccepted records the customer saying yes: sent -> accepted on the
// quote, quote_sent -> accepted on the enquiry.
func (u *QuoteUseCase) MarkAccepted(ctx context.Context, id string) (entities.Quote, error) {
	return u.advance(ctx, id,
		func(q *entities.Quote) bool { return q.CanMarkAccepted() },
		entities.QuoteStatusAccepted,
		entities.EnquiryStatusAccepted,
	)
}

func (u *QuoteUseCase) advance(
	ctx context.Context,
	id string,
	allowed func(*entities.Quote) bool,
	quoteStatus entities.QuoteStatus,
	enquiryStatus entities.EnquiryStatus,
) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !allowed(&q) {
		return entities.Quote{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	q.Status = quoteStatus
	q.UpdatedAt = now

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	e, err := u.enquiryRepo.GetByID(ctx, q.EnquiryID)
	if err != nil {
		return entities.Quote{}, err
	}
	if e.ID != "" && e.Status.CanTransition(enquiryStatus) {
		e.Status = enquiryStatus
		e.UpdatedAt = now
		if _, err := u.enquiryRepo.Update(ctx, e); err != nil {
			return entities.Quote{}, err
		}
	}
	return updated, nil
}

// UpdateDetails replaces a pending quote's requirements snapshot. The
// snapshot may diverge from the originating enquiry permanently; editing
// never changes the quote's status.
func (u *QuoteUseCase) UpdateDetails(ctx context.Context, id string, req entities.Requirements) (entities.Quote, error) {
	if !req.Frequency.IsValid() {
		return entities.Quote{}, ErrInvalidRequirement
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.CanEdit() {
		return entities.Quote{}, ErrQuoteNotEditable
	}

	req.Normalize()
	q.Details = req
	q.Frequency = req.Frequency.Label()
	q.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, q)
}

// Render prices the quote against the live catalog and builds the message
// preview. Nothing is cached: a pricing change is reflected on the very next
// render.
func (u *QuoteUseCase) Render(ctx context.Context, id string) (QuoteRender, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return QuoteRender{}, err
	}

	catalog, err := u.pricingRepo.Catalog(ctx)
	if err != nil {
		return QuoteRender{}, err
	}

	result := pricing.CalcQuote(q.Details, catalog)
	return QuoteRender{
		Quote:          q,
		Result:         result,
		MessagePreview: pricing.MessagePreview(q, result),
	}, nil
}
