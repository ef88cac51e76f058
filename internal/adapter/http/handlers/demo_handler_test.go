package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/persistence/repository"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/infrastructure/demo"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/infrastructure/intake"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newDemoTestRouter(t *testing.T) (*gin.Engine, *demo.Simulator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	enquiries := usecase.NewEnquiryUseCase(repository.NewEnquiryMemoryRepository())
	queue := intake.NewQueue(enquiries, 4)
	// A long interval keeps ticks out of the test window.
	sim := demo.NewSimulator(enquiries, queue, time.Hour)
	t.Cleanup(func() { sim.Stop() })

	h := NewDemoHandler(sim, nil)
	r := gin.New()
	r.POST("/v1/demo/start", h.Start)
	r.POST("/v1/demo/stop", h.Stop)
	r.GET("/v1/demo/status", h.Status)
	return r, sim
}

func demoRequest(t *testing.T, r *gin.Engine, method, path string) map[string]bool {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s: expected 200, got %d", method, path, w.Code)
	}
	var res map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return res
}

func TestDemoHandler(t *testing.T) {
	t.Run("status reports not running initially", func(t *testing.T) {
		r, _ := newDemoTestRouter(t)
		res := demoRequest(t, r, http.MethodGet, "/v1/demo/status")
		if res["running"] {
			t.Fatalf("expected running=false, got %+v", res)
		}
	})

	t.Run("start then stop", func(t *testing.T) {
		r, sim := newDemoTestRouter(t)

		res := demoRequest(t, r, http.MethodPost, "/v1/demo/start")
		if !res["running"] || !res["started"] {
			t.Fatalf("expected running=true started=true, got %+v", res)
		}
		if !sim.Running() {
			t.Fatal("expected simulator to be running")
		}

		res = demoRequest(t, r, http.MethodPost, "/v1/demo/stop")
		if res["running"] || !res["stopped"] {
			t.Fatalf("expected running=false stopped=true, got %+v", res)
		}
		if sim.Running() {
			t.Fatal("expected simulator to be stopped")
		}
	})

	t.Run("double start reports already running", func(t *testing.T) {
		r, _ := newDemoTestRouter(t)

		demoRequest(t, r, http.MethodPost, "/v1/demo/start")
		res := demoRequest(t, r, http.MethodPost, "/v1/demo/start")
		if !res["running"] || res["started"] {
			t.Fatalf("expected running=true started=false, got %+v", res)
		}
	})

	t.Run("stop without start reports nothing stopped", func(t *testing.T) {
		r, _ := newDemoTestRouter(t)
		res := demoRequest(t, r, http.MethodPost, "/v1/demo/stop")
		if res["running"] || res["stopped"] {
			t.Fatalf("expected running=false stopped=false, got %+v", res)
		}
	})
}
