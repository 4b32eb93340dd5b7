package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nagrik_seva/internal/domain/entities"
	mock_interfaces "nagrik_seva/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type requestUseCaseMocks struct {
	requests *mock_interfaces.MockIRequestRepository
	catalog  *mock_interfaces.MockICatalogProvider
	agents   *mock_interfaces.MockIAgentRepository
	idemp    *mock_interfaces.MockIIdempotencyStore
}

func newRequestUseCaseForTest(t *testing.T, ctrl *gomock.Controller) (*RequestUseCase, requestUseCaseMocks) {
	t.Helper()
	m := requestUseCaseMocks{
		requests: mock_interfaces.NewMockIRequestRepository(ctrl),
		catalog:  mock_interfaces.NewMockICatalogProvider(ctrl),
		agents:   mock_interfaces.NewMockIAgentRepository(ctrl),
		idemp:    mock_interfaces.NewMockIIdempotencyStore(ctrl),
	}
	audit := mock_interfaces.NewMockIAuditRepository(ctrl)
	audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.AuditEntry) (entities.AuditEntry, error) { return e, nil },
	).AnyTimes()
	assigner := NewAssignmentUseCase(m.agents, m.requests, NewAuditUseCase(audit))
	uc := NewRequestUseCase(m.requests, m.catalog, assigner, NewAuditUseCase(audit), nil, m.idemp)
	return uc, m
}

func activeTarget() entities.CatalogTarget {
	return entities.CatalogTarget{
		ServiceType:   "job",
		ID:            "job-42",
		Name:          "Junior Clerk",
		Category:      "clerical",
		ServiceFee:    120,
		CategoryField: "category",
		GenderField:   "gender",
		FeeRules: []entities.FeeRule{
			{Category: "General", Gender: entities.GenderAny, Amount: 500},
			{Category: entities.CategoryAny, Gender: entities.GenderAny, Amount: 250},
		},
		IsActive: true,
	}
}

func processingRequest() entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:           "req-1",
		TrackingCode: "REQ-AB12CD3",
		UserID:       "user-1",
		ServiceType:  "job",
		TargetID:     "job-42",
		Status:       entities.StatusProcessing,
		PaymentDetails: entities.PaymentDetails{
			OfficialFee: 500,
			ServiceFee:  120,
			TotalAmount: 620,
		},
		Version: 2,
	}
}

func TestRequestUseCase_CreateRequest(t *testing.T) {
	t.Run("blank input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRequestUseCaseForTest(t, ctrl)

		_, err := uc.CreateRequest(context.Background(), CreateRequestInput{UserID: " ", ServiceType: "job", TargetID: "job-42"})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("duplicate idempotency key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.idemp.EXPECT().Reserve(gomock.Any(), "create:key-1", idempotencyTTL).Return(false, nil)

		_, err := uc.CreateRequest(context.Background(), CreateRequestInput{
			UserID: "user-1", ServiceType: "job", TargetID: "job-42", IdempotencyKey: "key-1",
		})
		if !errors.Is(err, ErrDuplicateSubmission) {
			t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
		}
	})

	t.Run("unavailable idempotency store does not block intake", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.idemp.EXPECT().Reserve(gomock.Any(), "create:key-1", idempotencyTTL).Return(false, errors.New("redis down"))
		m.catalog.EXPECT().GetTarget(gomock.Any(), "job", "job-42").Return(activeTarget(), nil)
		m.agents.EXPECT().List(gomock.Any()).Return([]entities.Agent{}, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) { return r, nil },
		)

		_, err := uc.CreateRequest(context.Background(), CreateRequestInput{
			UserID: "user-1", ServiceType: "job", TargetID: "job-42", IdempotencyKey: "key-1",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("target not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.catalog.EXPECT().GetTarget(gomock.Any(), "job", "missing").Return(entities.CatalogTarget{}, nil)

		_, err := uc.CreateRequest(context.Background(), CreateRequestInput{UserID: "user-1", ServiceType: "job", TargetID: "missing"})
		if !errors.Is(err, ErrTargetNotFound) {
			t.Fatalf("expected ErrTargetNotFound, got %v", err)
		}
	})

	t.Run("inactive target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		target := activeTarget()
		target.IsActive = false
		m.catalog.EXPECT().GetTarget(gomock.Any(), "job", "job-42").Return(target, nil)

		_, err := uc.CreateRequest(context.Background(), CreateRequestInput{UserID: "user-1", ServiceType: "job", TargetID: "job-42"})
		if !errors.Is(err, ErrTargetInactive) {
			t.Fatalf("expected ErrTargetInactive, got %v", err)
		}
	})

	t.Run("invalid application data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		target := activeTarget()
		target.FormFields = []entities.FormField{{Name: "full_name", Required: true}}
		m.catalog.EXPECT().GetTarget(gomock.Any(), "job", "job-42").Return(target, nil)

		_, err := uc.CreateRequest(context.Background(), CreateRequestInput{
			UserID: "user-1", ServiceType: "job", TargetID: "job-42", Answers: map[string]string{},
		})
		if !errors.Is(err, ErrInvalidApplicationData) {
			t.Fatalf("expected ErrInvalidApplicationData, got %v", err)
		}
	})

	t.Run("create freezes fee snapshot and assigns least loaded agent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.catalog.EXPECT().GetTarget(gomock.Any(), "job", "job-42").Return(activeTarget(), nil)
		agent := entities.Agent{
			ID: "agent-1", IsOnline: true, MaxCapacity: 5, Version: 1,
			Specializations: entities.Specialization{Tags: []string{"clerical"}},
		}
		m.agents.EXPECT().List(gomock.Any()).Return([]entities.Agent{agent}, nil)
		m.agents.EXPECT().AdjustLoad(gomock.Any(), "agent-1", 1, true, int64(1)).Return(agent, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.Status != entities.StatusPendingVerification {
					t.Fatalf("expected pending_verification, got %s", r.Status)
				}
				if r.PaymentDetails.OfficialFee != 500 || r.PaymentDetails.ServiceFee != 120 || r.PaymentDetails.TotalAmount != 620 {
					t.Fatalf("unexpected payment snapshot: %+v", r.PaymentDetails)
				}
				if r.AssignedAgentID != "agent-1" {
					t.Fatalf("expected agent-1, got %q", r.AssignedAgentID)
				}
				if !strings.HasPrefix(r.TrackingCode, "REQ-") {
					t.Fatalf("unexpected tracking code %q", r.TrackingCode)
				}
				if r.Version != 1 || r.CreatedAt.IsZero() {
					t.Fatalf("unexpected request: %+v", r)
				}
				return r, nil
			},
		)

		created, err := uc.CreateRequest(context.Background(), CreateRequestInput{
			UserID: "user-1", ServiceType: "job", TargetID: "job-42",
			Answers: map[string]string{"category": "General", "gender": "Female"},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created.TargetName != "Junior Clerk" || created.Category != "clerical" {
			t.Fatalf("unexpected request: %+v", created)
		}
	})

	t.Run("tracking code clash regenerates once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.catalog.EXPECT().GetTarget(gomock.Any(), "job", "job-42").Return(activeTarget(), nil)
		m.agents.EXPECT().List(gomock.Any()).Return([]entities.Agent{}, nil)

		var firstCode string
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				firstCode = r.TrackingCode
				return entities.ServiceRequest{}, ErrTrackingCodeConflict
			},
		)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.TrackingCode == firstCode {
					t.Fatalf("expected a fresh tracking code")
				}
				return r, nil
			},
		)

		if _, err := uc.CreateRequest(context.Background(), CreateRequestInput{
			UserID: "user-1", ServiceType: "job", TargetID: "job-42",
		}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestRequestUseCase_GetByTrackingCode(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-NOPE").Return(entities.ServiceRequest{}, nil)

		_, err := uc.GetByTrackingCode(context.Background(), "REQ-NOPE")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

func TestRequestUseCase_AttachDocument(t *testing.T) {
	doc := entities.UploadedDocument{Name: "aadhaar.pdf", LocationRef: "uploads/aadhaar.pdf"}

	t.Run("missing location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRequestUseCaseForTest(t, ctrl)

		_, err := uc.AttachDocument(context.Background(), "user-1", "REQ-AB12CD3", entities.UploadedDocument{Name: "x"})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("other user's request reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(processingRequest(), nil)

		_, err := uc.AttachDocument(context.Background(), "intruder", "REQ-AB12CD3", doc)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("terminal request immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		done := processingRequest()
		done.Status = entities.StatusRejected
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(done, nil)

		_, err := uc.AttachDocument(context.Background(), "user-1", "REQ-AB12CD3", doc)
		if !errors.Is(err, ErrRequestImmutable) {
			t.Fatalf("expected ErrRequestImmutable, got %v", err)
		}
	})

	t.Run("attach success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(processingRequest(), nil)
		m.requests.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest, _ int64) (entities.ServiceRequest, error) {
				if len(r.UploadedDocuments) != 1 || r.UploadedDocuments[0].Name != "aadhaar.pdf" {
					t.Fatalf("unexpected documents: %+v", r.UploadedDocuments)
				}
				return r, nil
			},
		)

		if _, err := uc.AttachDocument(context.Background(), "user-1", "REQ-AB12CD3", doc); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestRequestUseCase_UpdateStatus(t *testing.T) {
	t.Run("rejection needs a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRequestUseCaseForTest(t, ctrl)

		_, err := uc.UpdateStatus(context.Background(), operator(), "REQ-AB12CD3", entities.StatusRejected, "  ")
		if !errors.Is(err, ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		pending := processingRequest()
		pending.Status = entities.StatusPendingVerification
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(pending, nil)

		_, err := uc.UpdateStatus(context.Background(), operator(), "REQ-AB12CD3", entities.StatusActionRequired, "")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("completion must go through CompleteRequest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		paid := processingRequest()
		paid.PaymentDetails.IsPaid = true
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(paid, nil)

		_, err := uc.UpdateStatus(context.Background(), operator(), "REQ-AB12CD3", entities.StatusCompleted, "")
		if !errors.Is(err, ErrMissingResult) {
			t.Fatalf("expected ErrMissingResult, got %v", err)
		}
	})

	t.Run("completion of unpaid request reports payment pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(processingRequest(), nil)

		_, err := uc.UpdateStatus(context.Background(), operator(), "REQ-AB12CD3", entities.StatusCompleted, "")
		if !errors.Is(err, ErrPaymentPending) {
			t.Fatalf("expected ErrPaymentPending, got %v", err)
		}
	})

	t.Run("rejection releases the assigned agent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		assigned := processingRequest()
		assigned.AssignedAgentID = "agent-1"
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(assigned, nil)
		m.requests.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest, _ int64) (entities.ServiceRequest, error) {
				if r.Status != entities.StatusRejected || r.RejectionReason != "incomplete documents" {
					t.Fatalf("unexpected request: %+v", r)
				}
				return r, nil
			},
		)
		m.agents.EXPECT().GetByID(gomock.Any(), "agent-1").Return(entities.Agent{ID: "agent-1", CurrentLoad: 1, Version: 1}, nil)
		m.agents.EXPECT().AdjustLoad(gomock.Any(), "agent-1", -1, false, int64(1)).Return(entities.Agent{ID: "agent-1"}, nil)

		saved, err := uc.UpdateStatus(context.Background(), operator(), "REQ-AB12CD3", entities.StatusRejected, "incomplete documents")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if saved.Status != entities.StatusRejected {
			t.Fatalf("expected rejected, got %s", saved.Status)
		}
	})

	t.Run("active to active keeps the load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		assigned := processingRequest()
		assigned.AssignedAgentID = "agent-1"
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(assigned, nil)
		m.requests.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest, _ int64) (entities.ServiceRequest, error) {
				return r, nil
			},
		)

		saved, err := uc.UpdateStatus(context.Background(), operator(), "REQ-AB12CD3", entities.StatusActionRequired, "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if saved.Status != entities.StatusActionRequired {
			t.Fatalf("expected action_required, got %s", saved.Status)
		}
	})
}

func TestRequestUseCase_CompleteRequest(t *testing.T) {
	t.Run("unpaid request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(processingRequest(), nil)

		_, err := uc.CompleteRequest(context.Background(), operator(), "REQ-AB12CD3", "certificates/123.pdf")
		if !errors.Is(err, ErrPaymentPending) {
			t.Fatalf("expected ErrPaymentPending, got %v", err)
		}
	})

	t.Run("missing result reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		paid := processingRequest()
		paid.PaymentDetails.IsPaid = true
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(paid, nil)

		_, err := uc.CompleteRequest(context.Background(), operator(), "REQ-AB12CD3", "  ")
		if !errors.Is(err, ErrMissingResult) {
			t.Fatalf("expected ErrMissingResult, got %v", err)
		}
	})

	t.Run("complete success releases agent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		paid := processingRequest()
		paid.PaymentDetails.IsPaid = true
		paid.AssignedAgentID = "agent-1"
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(paid, nil)
		m.requests.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest, _ int64) (entities.ServiceRequest, error) {
				if r.Status != entities.StatusCompleted || r.ResultRef != "certificates/123.pdf" {
					t.Fatalf("unexpected request: %+v", r)
				}
				return r, nil
			},
		)
		m.agents.EXPECT().GetByID(gomock.Any(), "agent-1").Return(entities.Agent{ID: "agent-1", CurrentLoad: 1, Version: 1}, nil)
		m.agents.EXPECT().AdjustLoad(gomock.Any(), "agent-1", -1, false, int64(1)).Return(entities.Agent{ID: "agent-1"}, nil)

		saved, err := uc.CompleteRequest(context.Background(), operator(), "REQ-AB12CD3", "certificates/123.pdf")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if saved.Status != entities.StatusCompleted {
			t.Fatalf("expected completed, got %s", saved.Status)
		}
	})
}

func TestRequestUseCase_UpdateNotes(t *testing.T) {
	t.Run("unassigned operator forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		assigned := processingRequest()
		assigned.AssignedAgentID = "someone-else"
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(assigned, nil)

		_, err := uc.UpdateNotes(context.Background(), operator(), "REQ-AB12CD3", "note")
		if !errors.Is(err, ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("assigned operator allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		assigned := processingRequest()
		assigned.AssignedAgentID = "op-1"
		m.requests.EXPECT().GetByTrackingCode(gomock.Any(), "REQ-AB12CD3").Return(assigned, nil)
		m.requests.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest, _ int64) (entities.ServiceRequest, error) {
				if r.AgentNotes != "verified documents" {
					t.Fatalf("unexpected notes: %q", r.AgentNotes)
				}
				return r, nil
			},
		)

		if _, err := uc.UpdateNotes(context.Background(), operator(), "REQ-AB12CD3", "verified documents"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestRequestUseCase_ListAssigned(t *testing.T) {
	t.Run("operator reads only their own queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRequestUseCaseForTest(t, ctrl)

		_, err := uc.ListAssigned(context.Background(), operator(), "someone-else")
		if !errors.Is(err, ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("supervisor reads any queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(t, ctrl)

		m.requests.EXPECT().ListByAgent(gomock.Any(), "agent-1").Return([]entities.ServiceRequest{{ID: "req-1"}}, nil)

		out, err := uc.ListAssigned(context.Background(), supervisor(), "agent-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 request, got %d", len(out))
		}
	})
}
