package intake

import (
	"context"
	"testing"
	"time"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/persistence/repository"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
)

func waitForEnquiries(t *testing.T, repo *repository.EnquiryMemoryRepository, want int) []entities.Enquiry {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		list, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) >= want {
			return list
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d enquiries", want)
	return nil
}

func TestQueue_ConsumesSubmissions(t *testing.T) {
	repo := repository.NewEnquiryMemoryRepository()
	uc := usecase.NewEnquiryUseCase(repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewQueue(uc, 8)
	q.Start(ctx)

	payload := []byte(`{"name":"Priya Sharma","suburb":"Kuluin","requirements":{"bedrooms":2,"bathrooms":1,"frequency":"weekly"}}`)
	if !q.Publish(payload) {
		t.Fatal("expected publish to be accepted")
	}

	list := waitForEnquiries(t, repo, 1)
	e := list[0]
	if e.Status != entities.EnquiryStatusInfoReceived {
		t.Fatalf("expected info_received, got %q", e.Status)
	}
	if e.Channel != entities.ChannelEmail {
		t.Fatalf("expected email channel, got %q", e.Channel)
	}
	if e.Details == nil || e.Details.Bedrooms != 2 {
		t.Fatalf("expected details attached, got %+v", e.Details)
	}
}

func TestQueue_DropsMalformedPayload(t *testing.T) {
	repo := repository.NewEnquiryMemoryRepository()
	uc := usecase.NewEnquiryUseCase(repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewQueue(uc, 8)
	q.Start(ctx)

	q.Publish([]byte(`{not json`))
	q.Publish([]byte(`{"name":"Priya Sharma","suburb":"Kuluin","requirements":{"frequency":"weekly"}}`))

	list := waitForEnquiries(t, repo, 1)
	if len(list) != 1 {
		t.Fatalf("expected only the valid payload ingested, got %+v", list)
	}
}

func TestQueue_PublishNeverBlocks(t *testing.T) {
	q := NewQueue(nil, 1)

	if !q.Publish([]byte(`{}`)) {
		t.Fatal("expected first publish to fit the buffer")
	}

	done := make(chan bool, 1)
	go func() {
		done <- q.Publish([]byte(`{}`))
	}()

	select {
	case accepted := <-done:
		if accepted {
			t.Fatal("expected overflow publish to be rejected")
		}
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full buffer")
	}
}

func TestQueue_StopsOnCancel(t *testing.T) {
	q := NewQueue(usecase.NewEnquiryUseCase(repository.NewEnquiryMemoryRepository()), 4)

	ctx, cancel := context.WithCancel(context.Background())
	q.Start(ctx)
	cancel()

	select {
	case <-q.Done():
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop on cancel")
	}
}
