package intake

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
)

const defaultBufferSize = 64

// Queue is the in-process delivery channel between the customer form and the
// dashboard. Producers hand over raw payloads and immediately move on; a
// single consumer goroutine decodes each one and feeds it to the enquiry
// pipeline.
//
// Delivery is best-effort: when the buffer is full the payload is dropped
// and logged rather than blocking the producer. Malformed or invalid
// payloads are logged and skipped, never retried.
type Queue struct {
	enquiries usecase.IEnquiryUseCase
	ch        chan json.RawMessage

	startOnce sync.Once
	done      chan struct{}
}

func NewQueue(enquiries usecase.IEnquiryUseCase, bufferSize int) *Queue {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Queue{
		enquiries: enquiries,
		ch:        make(chan json.RawMessage, bufferSize),
		done:      make(chan struct{}),
	}
}

// Publish enqueues one raw submission payload. It never blocks; the return
// value reports whether the payload was accepted into the buffer.
func (q *Queue) Publish(raw json.RawMessage) bool {
	select {
	case q.ch <- raw:
		return true
	default:
		log.Printf("[intake] buffer full, dropping submission (%d bytes)", len(raw))
		return false
	}
}

// Start launches the consumer goroutine. It runs until ctx is cancelled and
// is safe to call only once; later calls are no-ops.
func (q *Queue) Start(ctx context.Context) {
	q.startOnce.Do(func() {
		go q.run(ctx)
	})
}

// Done is closed once the consumer goroutine has exited.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

func (q *Queue) run(ctx context.Context) {
	defer close(q.done)
	for {
		select {
		case <-ctx.Done():
			return
		case raw := <-q.ch:
			q.consume(ctx, raw)
		}
	}
}

func (q *Queue) consume(ctx context.Context, raw json.RawMessage) {
	var sub entities.Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		log.Printf("[intake] dropping malformed submission: %v", err)
		return
	}

	e, err := q.enquiries.IngestSubmission(ctx, sub)
	if err != nil {
		log.Printf("[intake] dropping submission from %q: %v", sub.Name, err)
		return
	}
	log.Printf("[intake] submission from %q ingested as enquiry %s", e.Name, e.ID)
}
