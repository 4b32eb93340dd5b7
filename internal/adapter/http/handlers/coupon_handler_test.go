package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nagrik_seva/internal/adapter/http/handlers/mocks"
	"nagrik_seva/internal/adapter/http/middleware"
	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCouponHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.POST("/v1/coupons/quote", middleware.RequireUser(), h.Quote)

		req := httptest.NewRequest(http.MethodPost, "/v1/coupons/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.POST("/v1/coupons/quote", middleware.RequireUser(), h.Quote)

		uc.EXPECT().Quote(gomock.Any(), "NOPE", int64(500), int64(120), "user-1").Return(usecase.CouponQuote{}, usecase.ErrCouponNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/coupons/quote", bytes.NewBufferString(`{"code":"NOPE","official_fee":500,"service_fee":120}`))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("below minimum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.POST("/v1/coupons/quote", middleware.RequireUser(), h.Quote)

		uc.EXPECT().Quote(gomock.Any(), "FLAT20", int64(0), int64(50), "user-1").Return(usecase.CouponQuote{}, usecase.ErrCouponBelowMinimum)

		req := httptest.NewRequest(http.MethodPost, "/v1/coupons/quote", bytes.NewBufferString(`{"code":"FLAT20","service_fee":50}`))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.POST("/v1/coupons/quote", middleware.RequireUser(), h.Quote)

		uc.EXPECT().Quote(gomock.Any(), "FLAT20", int64(500), int64(120), "user-1").Return(usecase.CouponQuote{Code: "FLAT20", Discount: 20, Payable: 600, UsageLimitPerUser: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/coupons/quote", bytes.NewBufferString(`{"code":"FLAT20","official_fee":500,"service_fee":120}`))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["discount"] != float64(20) || body["payable"] != float64(600) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, leaked := body["UsageLimitPerUser"]; leaked {
			t.Fatalf("usage limit must not serialize: %s", w.Body.String())
		}
	})
}

func TestCouponHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("operator forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.POST("/v1/staff/coupons", middleware.RequireActor(), h.Create)

		uc.EXPECT().Create(gomock.Any(), entities.Actor{ID: "op-1", Name: "Ravi", Role: entities.RoleOperator}, gomock.Any()).Return(entities.Coupon{}, usecase.ErrNotPermitted)

		req := httptest.NewRequest(http.MethodPost, "/v1/staff/coupons", bytes.NewBufferString(`{"code":"FLAT20","discount_type":"flat","value":20}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Id", "op-1")
		req.Header.Set("X-Actor-Name", "Ravi")
		req.Header.Set("X-Actor-Role", "operator")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("duplicate code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.POST("/v1/staff/coupons", middleware.RequireActor(), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Coupon{}, usecase.ErrCouponAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/staff/coupons", bytes.NewBufferString(`{"code":"FLAT20","discount_type":"flat","value":20}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.POST("/v1/staff/coupons", middleware.RequireActor(), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), entities.Coupon{
			Code:              "FLAT20",
			DiscountType:      entities.DiscountFlat,
			Value:             20,
			UsageLimitPerUser: 1,
			MinOrderValue:     100,
		}).Return(entities.Coupon{Code: "FLAT20", DiscountType: entities.DiscountFlat, Value: 20, UsageLimitPerUser: 1, MinOrderValue: 100, IsActive: true, CreatedAt: time.Now().UTC()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/staff/coupons", bytes.NewBufferString(`{"code":"FLAT20","discount_type":"flat","value":20,"usage_limit_per_user":1,"min_order_value":100}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "FLAT20" || body["is_active"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCouponHandler_Deactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.DELETE("/v1/staff/coupons/:code", middleware.RequireActor(), h.Deactivate)

		uc.EXPECT().Deactivate(gomock.Any(), gomock.Any(), "NOPE").Return(entities.Coupon{}, usecase.ErrCouponNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/staff/coupons/NOPE", nil)
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		r := gin.New()
		r.DELETE("/v1/staff/coupons/:code", middleware.RequireActor(), h.Deactivate)

		uc.EXPECT().Deactivate(gomock.Any(), gomock.Any(), "FLAT20").Return(entities.Coupon{Code: "FLAT20", DiscountType: entities.DiscountFlat, Value: 20, IsActive: false}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/staff/coupons/FLAT20", nil)
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_active"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapCouponError(t *testing.T) {
	if got := mapCouponError(usecase.ErrInvalidCouponCode); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCouponError(usecase.ErrInvalidCouponValue); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCouponError(usecase.ErrCouponAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapCouponError(usecase.ErrCouponLimitExceeded); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapCouponError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
