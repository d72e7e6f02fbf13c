package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loja_xpto/internal/adapter/http/handlers/mocks"
	"loja_xpto/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestGuestCustomerHandler_ListGuestCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuestCustomerUseCase(ctrl)
		h := NewGuestCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/guests", h.ListGuestCustomers)

		uc.EXPECT().GetGuestCustomers(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/guests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuestCustomerUseCase(ctrl)
		h := NewGuestCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/guests", h.ListGuestCustomers)

		now := time.Now().UTC()
		uc.EXPECT().GetGuestCustomers(gomock.Any()).Return([]entities.GuestCustomer{
			{Key: "5511987654321", TotalOrders: 2, CompletedOrders: 1, AbandonedCarts: 1, TotalSpent: 150, FirstOrder: now, LastOrder: now, ContactType: entities.ContactTypePhoneOnly, Status: entities.GuestCustomerStatusMixed},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/guests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["key"] != "5511987654321" || body[0]["status"] != "mixed" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestGuestCustomerHandler_GetGuestStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuestCustomerUseCase(ctrl)
		h := NewGuestCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/guests/stats", h.GetGuestStats)

		uc.EXPECT().GetGuestCustomerStats(gomock.Any()).Return(entities.GuestStats{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/guests/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuestCustomerUseCase(ctrl)
		h := NewGuestCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/guests/stats", h.GetGuestStats)

		uc.EXPECT().GetGuestCustomerStats(gomock.Any()).Return(entities.GuestStats{
			TotalGuests: 3, TotalOrders: 10, CompletedOrders: 3, AbandonedCarts: 7, TotalRevenue: 300, AverageOrderValue: 100, ConversionRate: 30,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/guests/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["conversion_rate"] != 30.0 || body["total_guests"] != 3.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestGuestCustomerHandler_GetContactStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuestCustomerUseCase(ctrl)
		h := NewGuestCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/guests/contact-stats", h.GetContactStats)

		uc.EXPECT().GetGuestContactStats(gomock.Any()).Return(entities.ContactStats{
			PhoneOnly: entities.ContactTypeStat{Count: 1, Percentage: 25},
			EmailOnly: entities.ContactTypeStat{Count: 1, Percentage: 25},
			Both:      entities.ContactTypeStat{Count: 1, Percentage: 25},
			None:      entities.ContactTypeStat{Count: 1, Percentage: 25},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/guests/contact-stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["phone_only"]["count"] != 1.0 || body["none"]["percentage"] != 25.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuestCustomerUseCase(ctrl)
		h := NewGuestCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/guests/contact-stats", h.GetContactStats)

		uc.EXPECT().GetGuestContactStats(gomock.Any()).Return(entities.ContactStats{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/guests/contact-stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
