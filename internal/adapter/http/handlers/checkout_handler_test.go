package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loja_xpto/internal/adapter/http/handlers/mocks"
	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreatePaymentByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc *mocks.MockICheckoutUseCase) *gin.Engine {
		h := NewCheckoutHandler(uc)
		r := gin.New()
		r.POST("/v1/checkout/:order_id/payments", h.CreatePaymentByOrderID)
		return r
	}

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/o-1/payments", bytes.NewBufferString(""))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/o-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bare provider body passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.CheckoutPayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.CheckoutPayment{ID: "mp-1", OrderID: "o-1", Status: entities.PaymentStatusApproved, Date: time.Now().UTC()}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/o-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("envelope body is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.CheckoutPayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got: %s", payload)
				}
				return entities.CheckoutPayment{ID: "mp-1", OrderID: "o-1", Status: entities.PaymentStatusApproved}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/o-1/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "o-404", gomock.Any()).Return(entities.CheckoutPayment{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/o-404/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("order not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "o-1", gomock.Any()).Return(entities.CheckoutPayment{}, usecase.ErrOrderNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/o-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_GetPaymentByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc *mocks.MockICheckoutUseCase) *gin.Engine {
		h := NewCheckoutHandler(uc)
		r := gin.New()
		r.GET("/v1/checkout/:order_id/payments", h.GetPaymentByOrderID)
		return r
	}

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.CheckoutPayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/o-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("latest payment wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		old := time.Now().UTC().Add(-time.Hour)
		uc.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.CheckoutPayment{
			{ID: "mp-old", OrderID: "o-1", Date: old},
			{ID: "mp-new", OrderID: "o-1", Date: old.Add(30 * time.Minute)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/o-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "mp-new" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/o-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
