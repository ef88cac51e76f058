package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"
)

var (
	ErrEnquiryNotFound    = errors.New("enquiry not found")
	ErrInvalidEnquiryID   = errors.New("invalid enquiry id")
	ErrInvalidEnquiry     = errors.New("invalid enquiry")
	ErrInvalidSubmission  = errors.New("invalid submission")
	ErrInvalidTransition  = errors.New("transition not allowed from current status")
	ErrSuburbServiced     = errors.New("suburb is inside the serviced area")
	ErrInvalidRequirement = errors.New("invalid requirements")
)

// IEnquiryUseCase exposes the enquiry side of the dashboard pipeline.
//
// Operator actions:
//   - "Send Info Form"            => RequestInfo()
//   - "Decline (Out of Area)"     => DeclineOutOfArea()
//   - details arriving (real or simulated) => ReceiveInfo()
//
// The customer-form delivery channel enters through IngestSubmission, which
// is the alternate entry point straight into info_received.
type IEnquiryUseCase interface {
	List(ctx context.Context, status string) ([]entities.Enquiry, error)
	GetByID(ctx context.Context, id string) (entities.Enquiry, error)
	Create(ctx context.Context, name string, channel entities.Channel, suburb, message string) (entities.Enquiry, error)
	RequestInfo(ctx context.Context, id string) (entities.Enquiry, error)
	DeclineOutOfArea(ctx context.Context, id string) (entities.Enquiry, error)
	ReceiveInfo(ctx context.Context, id string, req entities.Requirements) (entities.Enquiry, error)
	IngestSubmission(ctx context.Context, sub entities.Submission) (entities.Enquiry, error)
}

type EnquiryUseCase struct {
	repo interfaces.IEnquiryRepository
}

var _ IEnquiryUseCase = (*EnquiryUseCase)(nil)

func NewEnquiryUseCase(repo interfaces.IEnquiryRepository) *EnquiryUseCase {
	return &EnquiryUseCase{repo: repo}
}

func (u *EnquiryUseCase) List(ctx context.Context, status string) ([]entities.Enquiry, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	status = strings.TrimSpace(status)
	if status == "" {
		return all, nil
	}

	filtered := make([]entities.Enquiry, 0, len(all))
	for _, e := range all {
		if e.Status == entities.EnquiryStatus(status) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (u *EnquiryUseCase) GetByID(ctx context.Context, id string) (entities.Enquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Enquiry{}, ErrInvalidEnquiryID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Enquiry{}, err
	}
	if e.ID == "" {
		return entities.Enquiry{}, ErrEnquiryNotFound
	}
	return e, nil
}

// Create records a fresh customer contact in status "new".
func (u *EnquiryUseCase) Create(ctx context.Context, name string, channel entities.Channel, suburb, message string) (entities.Enquiry, error) {
	name = strings.TrimSpace(name)
	suburb = strings.TrimSpace(suburb)
	if name == "" || suburb == "" || !channel.IsValid() {
		return entities.Enquiry{}, ErrInvalidEnquiry
	}

	now := time.Now().UTC()
	e := entities.Enquiry{
		ID:        uuid.NewString(),
		Name:      name,
		Channel:   channel,
		Suburb:    suburb,
		Message:   strings.TrimSpace(message),
		Avatar:    entities.Initials(name),
		Status:    entities.EnquiryStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, e)
}

// RequestInfo marks that the operator sent the info-collection form.
func (u *EnquiryUseCase) RequestInfo(ctx context.Context, id string) (entities.Enquiry, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Enquiry{}, err
	}
	if !e.CanRequestInfo() {
		return entities.Enquiry{}, ErrInvalidTransition
	}

	e.Status = entities.EnquiryStatusInfoRequested
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

// DeclineOutOfArea closes out an enquiry whose suburb the business does not
// cover. Declining someone inside the serviced area is refused.
func (u *EnquiryUseCase) DeclineOutOfArea(ctx context.Context, id string) (entities.Enquiry, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Enquiry{}, err
	}
	if !e.CanDecline() {
		return entities.Enquiry{}, ErrInvalidTransition
	}
	if entities.InServicedArea(e.Suburb) {
		return entities.Enquiry{}, ErrSuburbServiced
	}

	e.Status = entities.EnquiryStatusOutOfArea
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

// ReceiveInfo attaches the customer's requirements to an enquiry that was
// asked for them.
func (u *EnquiryUseCase) ReceiveInfo(ctx context.Context, id string, req entities.Requirements) (entities.Enquiry, error) {
	if !req.Frequency.IsValid() {
		return entities.Enquiry{}, ErrInvalidRequirement
	}

	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Enquiry{}, err
	}
	if !e.CanReceiveInfo() {
		return entities.Enquiry{}, ErrInvalidTransition
	}

	req.Normalize()
	e.Status = entities.EnquiryStatusInfoReceived
	e.Details = &req
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

// IngestSubmission turns a delivery-channel payload into a brand-new enquiry
// that skips straight to info_received: the customer self-served the info
// form, so there is nothing left to request. Channel is fixed to email.
//
// Duplicate deliveries are not detected; each one becomes its own enquiry.
func (u *EnquiryUseCase) IngestSubmission(ctx context.Context, sub entities.Submission) (entities.Enquiry, error) {
	name := strings.TrimSpace(sub.Name)
	suburb := strings.TrimSpace(sub.Suburb)
	if name == "" || suburb == "" || !sub.Requirements.Frequency.IsValid() {
		return entities.Enquiry{}, ErrInvalidSubmission
	}

	req := sub.Requirements
	req.Normalize()

	now := time.Now().UTC()
	e := entities.Enquiry{
		ID:        uuid.NewString(),
		Name:      name,
		Channel:   entities.ChannelEmail,
		Suburb:    suburb,
		Message:   req.Summary(),
		Avatar:    entities.Initials(name),
		Status:    entities.EnquiryStatusInfoReceived,
		Details:   &req,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, e)
}
