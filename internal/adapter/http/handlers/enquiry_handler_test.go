package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/handlers/mocks"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEnquiryHandler_ListEnquiries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns inbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.GET("/v1/enquiries", h.ListEnquiries)

		uc.EXPECT().List(gomock.Any(), "").Return([]entities.Enquiry{
			{ID: "enq-1", Name: "Emily Watson", Status: entities.EnquiryStatusNew},
			{ID: "enq-2", Name: "Sarah Mitchell", Status: entities.EnquiryStatusQuoteReady},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/enquiries", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[0]["id"] != "enq-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("passes status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.GET("/v1/enquiries", h.ListEnquiries)

		uc.EXPECT().List(gomock.Any(), "new").Return([]entities.Enquiry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/enquiries?status=new", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEnquiryHandler_GetEnquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.GET("/v1/enquiries/:id", h.GetEnquiry)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Enquiry{}, usecase.ErrEnquiryNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/enquiries/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEnquiryHandler_CreateEnquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.POST("/v1/enquiries", h.CreateEnquiry)

		req := httptest.NewRequest(http.MethodPost, "/v1/enquiries", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("creates and returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.POST("/v1/enquiries", h.CreateEnquiry)

		uc.EXPECT().
			Create(gomock.Any(), "Mike Chen", entities.ChannelInstagram, "Buderim", "quote please").
			Return(entities.Enquiry{ID: "enq-9", Name: "Mike Chen", Status: entities.EnquiryStatusNew}, nil)

		body := `{"name":"Mike Chen","channel":"Instagram","suburb":"Buderim","message":"quote please"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/enquiries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestEnquiryHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("request info", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/enquiries/:id/request-info", h.RequestInfo)

		uc.EXPECT().RequestInfo(gomock.Any(), "enq-1").
			Return(entities.Enquiry{ID: "enq-1", Status: entities.EnquiryStatusInfoRequested}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/enquiries/enq-1/request-info", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/enquiries/:id/request-info", h.RequestInfo)

		uc.EXPECT().RequestInfo(gomock.Any(), "enq-1").
			Return(entities.Enquiry{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/enquiries/enq-1/request-info", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("decline inside serviced area maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/enquiries/:id/decline", h.Decline)

		uc.EXPECT().DeclineOutOfArea(gomock.Any(), "enq-1").
			Return(entities.Enquiry{}, usecase.ErrSuburbServiced)

		req := httptest.NewRequest(http.MethodPatch, "/v1/enquiries/enq-1/decline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/enquiries/:id/decline", h.Decline)

		uc.EXPECT().DeclineOutOfArea(gomock.Any(), "enq-1").
			Return(entities.Enquiry{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/enquiries/enq-1/decline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEnquiryHandler_ReceiveInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("normalizes frequency from payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/enquiries/:id/details", h.ReceiveInfo)

		uc.EXPECT().
			ReceiveInfo(gomock.Any(), "enq-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, req entities.Requirements) (entities.Enquiry, error) {
				if req.Frequency != entities.FrequencyWeekly || req.Bedrooms != 3 {
					t.Fatalf("unexpected requirements: %+v", req)
				}
				return entities.Enquiry{ID: "enq-1", Status: entities.EnquiryStatusInfoReceived}, nil
			})

		body := `{"bedrooms":3,"bathrooms":1,"frequency":"Weekly"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/enquiries/enq-1/details", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing frequency fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEnquiryUseCase(ctrl)
		h := NewEnquiryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/enquiries/:id/details", h.ReceiveInfo)

		req := httptest.NewRequest(http.MethodPatch, "/v1/enquiries/enq-1/details", bytes.NewBufferString(`{"bedrooms":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
