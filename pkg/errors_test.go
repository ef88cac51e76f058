package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("formats code and message", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "enquiry not found", http.StatusNotFound)
		if got := e.Error(); got != "NOT_FOUND: enquiry not found" {
			t.Fatalf("unexpected error string: %q", got)
		}
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", e.HTTPStatus)
		}
	})

	t.Run("wraps the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		e := NewDomainError("STORAGE_ERROR", "storage unavailable", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatal("expected errors.Is to find the wrapped cause")
		}
		if got := e.Error(); got != "STORAGE_ERROR: storage unavailable: connection refused" {
			t.Fatalf("unexpected error string: %q", got)
		}
	})

	t.Run("http body omits the cause", func(t *testing.T) {
		e := NewDomainError("STORAGE_ERROR", "storage unavailable", errors.New("secret detail"), http.StatusInternalServerError)
		body := e.ToHTTPError()
		if body.Code != "STORAGE_ERROR" || body.Message != "storage unavailable" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
