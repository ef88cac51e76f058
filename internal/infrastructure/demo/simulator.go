package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/infrastructure/intake"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
)

const DefaultInterval = 25 * time.Second

var mockNames = []string{
	"Sarah Mitchell", "James Cooper", "Priya Sharma", "Lena Nguyen",
	"Tom Brady", "Emily Watson", "Mike Chen", "Jessica Lee",
	"David Kim", "Rachel Green", "Sophie Turner", "Alex Morrison",
	"Hannah Brooks", "Ben Gallagher", "Olivia Hart", "Nathan Price",
}

var mockMessages = []string{
	"Hi! I'd love a quote for a regular clean of my home please 🏡",
	"Hey, was recommended by a friend. Looking for fortnightly cleaning?",
	"Hello! Just moved to the area and need a cleaner. Can you help?",
	"Hi there, interested in your cleaning services. What do you need from me?",
	"Hey! Do you service my area? Looking for weekly cleaning.",
	"Hi, I need a deep clean + regular ongoing service. What are your rates?",
	"Hello! Saw your page on Facebook. Would love a quote please!",
	"Hey there! Looking for a reliable cleaner, my friend Sarah recommended you 💚",
}

var mockChannels = []entities.Channel{
	entities.ChannelMessenger,
	entities.ChannelInstagram,
	entities.ChannelEmail,
}

// outOfAreaSuburb is outside the serviced list, so roughly 15% of generated
// enquiries exercise the decline path.
const outOfAreaSuburb = "Caloundra"

// Simulator feeds the dashboard with synthetic traffic while demoing: new
// enquiries straight into the pipeline, plus the occasional customer form
// submission through the intake queue.
//
// Start and Stop are idempotent and the simulator may be restarted any
// number of times.
type Simulator struct {
	enquiries usecase.IEnquiryUseCase
	queue     *intake.Queue
	interval  time.Duration
	rng       *rand.Rand

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewSimulator(enquiries usecase.IEnquiryUseCase, queue *intake.Queue, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Simulator{
		enquiries: enquiries,
		queue:     queue,
		interval:  interval,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Running reports whether the ticker loop is currently active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Start launches the ticker loop. Calling Start while already running is a
// no-op.
func (s *Simulator) Start(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return false
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go s.run(runCtx)
	log.Printf("[demo] simulator started (interval %s)", s.interval)
	return true
}

// Stop halts the ticker loop. Calling Stop while stopped is a no-op. After
// Stop returns no further synthetic enquiries are produced by this cycle.
func (s *Simulator) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return false
	}
	s.cancel()
	s.cancel = nil
	log.Printf("[demo] simulator stopped")
	return true
}

func (s *Simulator) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick produces one synthetic event: usually a fresh enquiry, sometimes a
// customer form submission through the delivery channel.
func (s *Simulator) tick(ctx context.Context) {
	s.mu.Lock()
	viaForm := s.rng.Float64() < 0.25
	s.mu.Unlock()

	if viaForm && s.queue != nil {
		s.PublishSubmission()
		return
	}
	s.CreateEnquiry(ctx)
}

// CreateEnquiry inserts one synthetic enquiry immediately. Also used by the
// one-shot demo endpoint.
func (s *Simulator) CreateEnquiry(ctx context.Context) (entities.Enquiry, error) {
	s.mu.Lock()
	name := mockNames[s.rng.Intn(len(mockNames))]
	channel := mockChannels[s.rng.Intn(len(mockChannels))]
	message := mockMessages[s.rng.Intn(len(mockMessages))]
	suburb := entities.ServicedAreas[s.rng.Intn(len(entities.ServicedAreas))]
	if s.rng.Float64() < 0.15 {
		suburb = outOfAreaSuburb
	}
	s.mu.Unlock()

	e, err := s.enquiries.Create(ctx, name, channel, suburb, message)
	if err != nil {
		log.Printf("[demo] synthetic enquiry rejected: %v", err)
		return entities.Enquiry{}, err
	}
	log.Printf("[demo] synthetic enquiry %s from %q (%s)", e.ID, e.Name, e.Suburb)
	return e, nil
}

// PublishSubmission pushes one synthetic customer form payload onto the
// intake queue, exactly the way the real form producer would.
func (s *Simulator) PublishSubmission() entities.Submission {
	sub := s.randomSubmission()
	raw, err := json.Marshal(sub)
	if err != nil {
		log.Printf("[demo] synthetic submission marshal failed: %v", err)
		return sub
	}
	s.queue.Publish(raw)
	return sub
}

func (s *Simulator) randomSubmission() entities.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := mockNames[s.rng.Intn(len(mockNames))]
	req := entities.Requirements{
		Bedrooms:  2 + s.rng.Intn(3),
		Bathrooms: 1 + s.rng.Intn(2),
		Living:    1 + s.rng.Intn(2),
		Kitchen:   1,
		Frequency: []entities.Frequency{
			entities.FrequencyWeekly,
			entities.FrequencyFortnightly,
			entities.FrequencyMonthly,
		}[s.rng.Intn(3)],
		Oven:       s.rng.Float64() > 0.6,
		Sheets:     s.rng.Float64() > 0.7,
		Windows:    s.rng.Float64() > 0.5,
		Organising: s.rng.Float64() > 0.8,
	}
	if req.Windows {
		req.WindowCount = 2 + s.rng.Intn(8)
	}
	if s.rng.Float64() > 0.5 {
		req.Notes = "We have a dog, please keep the gate closed!"
	}

	return entities.Submission{
		Name:         name,
		Email:        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@email.com",
		Phone:        fmt.Sprintf("04%08d", 10000000+s.rng.Intn(90000000)),
		Suburb:       entities.ServicedAreas[s.rng.Intn(len(entities.ServicedAreas))],
		Requirements: req,
		SubmittedAt:  time.Now().UTC(),
	}
}
