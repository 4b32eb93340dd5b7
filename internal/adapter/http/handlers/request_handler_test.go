package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nagrik_seva/internal/adapter/http/handlers/mocks"
	"nagrik_seva/internal/adapter/http/middleware"
	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func setUserHeader(req *http.Request) {
	req.Header.Set("X-User-Id", "user-1")
}

func setActorHeaders(req *http.Request) {
	req.Header.Set("X-Actor-Id", "sup-1")
	req.Header.Set("X-Actor-Name", "Meera")
	req.Header.Set("X-Actor-Role", "supervisor")
}

func sampleRequest() entities.ServiceRequest {
	now := time.Now().UTC()
	return entities.ServiceRequest{
		ID:           "req-1",
		TrackingCode: "REQ-AB12CD3",
		UserID:       "user-1",
		ServiceType:  "job",
		TargetID:     "job-42",
		TargetName:   "Junior Clerk",
		Category:     "clerical",
		Status:       entities.StatusProcessing,
		PaymentDetails: entities.PaymentDetails{
			OfficialFee: 500,
			ServiceFee:  120,
			TotalAmount: 620,
		},
		AssignedAgentID: "agent-1",
		AgentNotes:      "internal remark",
		Version:         2,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/requests", middleware.RequireUser(), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"service_type":"job","target_id":"job-42"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/requests", middleware.RequireUser(), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing target id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/requests", middleware.RequireUser(), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"service_type":"job"}`))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid application data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/requests", middleware.RequireUser(), h.Create)

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrInvalidApplicationData)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"service_type":"job","target_id":"job-42","answers":{"category":"General"}}`))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/requests", middleware.RequireUser(), h.Create)

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateRequestInput) (entities.ServiceRequest, error) {
				if in.UserID != "user-1" {
					t.Fatalf("expected user from header, got %q", in.UserID)
				}
				if in.IdempotencyKey != "key-1" {
					t.Fatalf("expected idempotency key, got %q", in.IdempotencyKey)
				}
				out := sampleRequest()
				out.Status = entities.StatusPendingVerification
				return out, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"service_type":"job","target_id":"job-42","answers":{"category":"General","gender":"Female"},"idempotency_key":"key-1"}`))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["tracking_code"] != "REQ-AB12CD3" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRequestHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/requests/:tracking_code", middleware.RequireUser(), h.Get)

		uc.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-MISSING").Return(entities.ServiceRequest{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/REQ-MISSING", nil)
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("another user's request reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/requests/:tracking_code", middleware.RequireUser(), h.Get)

		other := sampleRequest()
		other.UserID = "user-2"
		uc.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(other, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/REQ-AB12CD3", nil)
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success hides staff fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/requests/:tracking_code", middleware.RequireUser(), h.Get)

		uc.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(sampleRequest(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/REQ-AB12CD3", nil)
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "agent_notes") {
			t.Fatalf("user view must not expose agent notes: %s", w.Body.String())
		}
		if strings.Contains(w.Body.String(), "assigned_agent_id") {
			t.Fatalf("user view must not expose the assigned agent: %s", w.Body.String())
		}
	})
}

func TestRequestHandler_AttachDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing location ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/requests/:tracking_code/documents", middleware.RequireUser(), h.AttachDocument)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/REQ-AB12CD3/documents", bytes.NewBufferString(`{"name":"aadhaar.pdf"}`))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("closed request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/requests/:tracking_code/documents", middleware.RequireUser(), h.AttachDocument)

		uc.EXPECT().AttachDocument(gomock.Any(), "user-1", "REQ-AB12CD3", gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrRequestImmutable)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/REQ-AB12CD3/documents", bytes.NewBufferString(`{"name":"aadhaar.pdf","location_ref":"s3://bucket/aadhaar.pdf"}`))
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
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/requests/:tracking_code/documents", middleware.RequireUser(), h.AttachDocument)

		uc.EXPECT().AttachDocument(gomock.Any(), "user-1", "REQ-AB12CD3",
			entities.UploadedDocument{Name: "aadhaar.pdf", LocationRef: "s3://bucket/aadhaar.pdf"}).Return(sampleRequest(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/REQ-AB12CD3/documents", bytes.NewBufferString(`{"name":"aadhaar.pdf","location_ref":"s3://bucket/aadhaar.pdf"}`))
		req.Header.Set("Content-Type", "application/json")
		setUserHeader(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/staff/requests/:tracking_code/status", middleware.RequireActor(), h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/requests/REQ-AB12CD3/status", bytes.NewBufferString(`{"status":"processing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/staff/requests/:tracking_code/status", middleware.RequireActor(), h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/requests/REQ-AB12CD3/status", bytes.NewBufferString(`{"status":"processing"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Id", "sup-1")
		req.Header.Set("X-Actor-Role", "janitor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/staff/requests/:tracking_code/status", middleware.RequireActor(), h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/requests/REQ-AB12CD3/status", bytes.NewBufferString(`{"status":"paused"}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/staff/requests/:tracking_code/status", middleware.RequireActor(), h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "REQ-AB12CD3", entities.StatusActionRequired, "").Return(entities.ServiceRequest{}, usecase.ErrIllegalTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/requests/REQ-AB12CD3/status", bytes.NewBufferString(`{"status":"action_required"}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success passes actor through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/staff/requests/:tracking_code/status", middleware.RequireActor(), h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), entities.Actor{ID: "sup-1", Name: "Meera", Role: entities.RoleSupervisor}, "REQ-AB12CD3", entities.StatusProcessing, "").Return(sampleRequest(), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/requests/REQ-AB12CD3/status", bytes.NewBufferString(`{"status":"processing"}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "assigned_agent_id") {
			t.Fatalf("staff view should expose the assigned agent: %s", w.Body.String())
		}
	})
}

func TestRequestHandler_Complete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing result ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/staff/requests/:tracking_code/complete", middleware.RequireActor(), h.Complete)

		req := httptest.NewRequest(http.MethodPost, "/v1/staff/requests/REQ-AB12CD3/complete", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/staff/requests/:tracking_code/complete", middleware.RequireActor(), h.Complete)

		uc.EXPECT().CompleteRequest(gomock.Any(), gomock.Any(), "REQ-AB12CD3", "s3://bucket/result.pdf").Return(entities.ServiceRequest{}, usecase.ErrPaymentPending)

		req := httptest.NewRequest(http.MethodPost, "/v1/staff/requests/REQ-AB12CD3/complete", bytes.NewBufferString(`{"result_ref":"s3://bucket/result.pdf"}`))
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
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/staff/requests/:tracking_code/complete", middleware.RequireActor(), h.Complete)

		completed := sampleRequest()
		completed.Status = entities.StatusCompleted
		completed.ResultRef = "s3://bucket/result.pdf"
		uc.EXPECT().CompleteRequest(gomock.Any(), gomock.Any(), "REQ-AB12CD3", "s3://bucket/result.pdf").Return(completed, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/staff/requests/REQ-AB12CD3/complete", bytes.NewBufferString(`{"result_ref":"s3://bucket/result.pdf"}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequestHandler_Reassign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("agent not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assigner := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewRequestHandler(mocks.NewMockIRequestUseCase(ctrl), assigner)

		r := gin.New()
		r.POST("/v1/staff/requests/:tracking_code/reassign", middleware.RequireActor(), h.Reassign)

		assigner.EXPECT().Reassign(gomock.Any(), gomock.Any(), "REQ-AB12CD3", "agent-9").Return(entities.ServiceRequest{}, usecase.ErrAgentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/staff/requests/REQ-AB12CD3/reassign", bytes.NewBufferString(`{"agent_id":"agent-9"}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unassign with empty agent id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assigner := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewRequestHandler(mocks.NewMockIRequestUseCase(ctrl), assigner)

		r := gin.New()
		r.POST("/v1/staff/requests/:tracking_code/reassign", middleware.RequireActor(), h.Reassign)

		unassigned := sampleRequest()
		unassigned.AssignedAgentID = ""
		assigner.EXPECT().Reassign(gomock.Any(), gomock.Any(), "REQ-AB12CD3", "").Return(unassigned, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/staff/requests/REQ-AB12CD3/reassign", bytes.NewBufferString(`{"agent_id":""}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequestHandler_UpdateNotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not permitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/staff/requests/:tracking_code/notes", middleware.RequireActor(), h.UpdateNotes)

		uc.EXPECT().UpdateNotes(gomock.Any(), gomock.Any(), "REQ-AB12CD3", "note").Return(entities.ServiceRequest{}, usecase.ErrNotPermitted)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/requests/REQ-AB12CD3/notes", bytes.NewBufferString(`{"notes":"note"}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/staff/requests/:tracking_code/notes", middleware.RequireActor(), h.UpdateNotes)

		updated := sampleRequest()
		updated.AgentNotes = "called the applicant"
		uc.EXPECT().UpdateNotes(gomock.Any(), gomock.Any(), "REQ-AB12CD3", "called the applicant").Return(updated, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/requests/REQ-AB12CD3/notes", bytes.NewBufferString(`{"notes":"called the applicant"}`))
		req.Header.Set("Content-Type", "application/json")
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "called the applicant") {
			t.Fatalf("staff view should carry agent notes: %s", w.Body.String())
		}
	})
}

func TestRequestHandler_ListAssigned(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("foreign queue forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/staff/agents/:id/requests", middleware.RequireActor(), h.ListAssigned)

		uc.EXPECT().ListAssigned(gomock.Any(), gomock.Any(), "agent-2").Return(nil, usecase.ErrNotPermitted)

		req := httptest.NewRequest(http.MethodGet, "/v1/staff/agents/agent-2/requests", nil)
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc, mocks.NewMockIAssignmentUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/staff/agents/:id/requests", middleware.RequireActor(), h.ListAssigned)

		uc.EXPECT().ListAssigned(gomock.Any(), gomock.Any(), "agent-1").Return([]entities.ServiceRequest{sampleRequest()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/staff/agents/agent-1/requests", nil)
		setActorHeaders(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if len(list) != 1 || list[0]["tracking_code"] != "REQ-AB12CD3" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapRequestError(t *testing.T) {
	if got := mapRequestError(usecase.ErrInvalidRequestInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRequestError(usecase.ErrInvalidApplicationData); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapRequestError(usecase.ErrTargetNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRequestError(usecase.ErrTargetInactive); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapRequestError(usecase.ErrMissingResult); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRequestError(usecase.ErrDuplicateSubmission); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapRequestError(usecase.ErrConcurrentUpdate); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapRequestError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
