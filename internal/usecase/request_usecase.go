package usecase

import (
	"context"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/infrastructure/metrics"
	"nagrik_seva/internal/usecase/interfaces"
	"nagrik_seva/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequestInput  = errors.New("invalid request input")
	ErrRequestNotFound      = errors.New("request not found")
	ErrTargetNotFound       = errors.New("target not found")
	ErrTargetInactive       = errors.New("target not accepting requests")
	ErrIllegalTransition    = errors.New("illegal status transition")
	ErrReasonRequired       = errors.New("rejection reason required")
	ErrPaymentPending       = errors.New("payment pending")
	ErrMissingResult        = errors.New("final result reference required")
	ErrRequestImmutable     = errors.New("request is closed")
	ErrDuplicateSubmission  = errors.New("duplicate submission")
	ErrTrackingCodeConflict = errors.New("tracking code conflict")
)

// idempotencyTTL bounds how long a client key blocks resubmission.
const idempotencyTTL = 10 * time.Minute

type CreateRequestInput struct {
	UserID         string
	ServiceType    string
	TargetID       string
	Answers        map[string]string
	IdempotencyKey string
}

// IRequestUseCase is the lifecycle coordinator: it owns the legal state
// graph of a request and enforces preconditions before delegating to the
// fee resolver, assignment balancer and audit recorder.

type IRequestUseCase interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (entities.ServiceRequest, error)
	GetByTrackingCode(ctx context.Context, trackingCode string) (entities.ServiceRequest, error)
	AttachDocument(ctx context.Context, userID, trackingCode string, doc entities.UploadedDocument) (entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, trackingCode string, next entities.RequestStatus, reason string) (entities.ServiceRequest, error)
	CompleteRequest(ctx context.Context, actor entities.Actor, trackingCode, resultRef string) (entities.ServiceRequest, error)
	UpdateNotes(ctx context.Context, actor entities.Actor, trackingCode, notes string) (entities.ServiceRequest, error)
	// ListAssigned returns an agent's open queue. Operators may only read
	// their own; Supervisors anyone's.
	ListAssigned(ctx context.Context, actor entities.Actor, agentID string) ([]entities.ServiceRequest, error)
}

type RequestUseCase struct {
	requests interfaces.IRequestRepository
	catalog  interfaces.ICatalogProvider
	assigner IAssignmentUseCase
	audit    IAuditUseCase
	notifier interfaces.INotifier
	idemp    interfaces.IIdempotencyStore
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(
	requests interfaces.IRequestRepository,
	catalog interfaces.ICatalogProvider,
	assigner IAssignmentUseCase,
	audit IAuditUseCase,
	notifier interfaces.INotifier,
	idemp interfaces.IIdempotencyStore,
) *RequestUseCase {
	return &RequestUseCase{
		requests: requests,
		catalog:  catalog,
		assigner: assigner,
		audit:    audit,
		notifier: notifier,
		idemp:    idemp,
	}
}

func (u *RequestUseCase) CreateRequest(ctx context.Context, in CreateRequestInput) (entities.ServiceRequest, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	in.TargetID = strings.TrimSpace(in.TargetID)
	if in.UserID == "" || in.ServiceType == "" || in.TargetID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestInput
	}

	if err := u.reserveKey(ctx, "create:"+in.IdempotencyKey, in.IdempotencyKey); err != nil {
		return entities.ServiceRequest{}, err
	}

	target, err := u.catalog.GetTarget(ctx, in.ServiceType, in.TargetID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if target.ID == "" {
		return entities.ServiceRequest{}, ErrTargetNotFound
	}
	if !target.IsActive {
		return entities.ServiceRequest{}, ErrTargetInactive
	}

	if err := ValidateApplicationData(target, in.Answers); err != nil {
		return entities.ServiceRequest{}, err
	}

	officialFee := ResolveOfficialFee(target, in.Answers)

	agentID, err := u.assigner.ClaimAgent(ctx, target.Category)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if agentID == "" {
		logger.L().Infow("no eligible agent, request stays unassigned", "target_id", target.ID, "category", target.Category)
		metrics.AssignmentFailures.Inc()
	}

	now := time.Now().UTC()
	r := entities.ServiceRequest{
		ID:              uuid.NewString(),
		TrackingCode:    newTrackingCode(),
		UserID:          in.UserID,
		ServiceType:     target.ServiceType,
		TargetID:        target.ID,
		TargetName:      target.Name,
		Category:        target.Category,
		Status:          entities.StatusPendingVerification,
		AssignedAgentID: agentID,
		ApplicationData: in.Answers,
		PaymentDetails: entities.PaymentDetails{
			OfficialFee: officialFee,
			ServiceFee:  target.ServiceFee,
			TotalAmount: officialFee + target.ServiceFee,
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.requests.Create(ctx, r)
	if err != nil {
		// Tracking codes are random; a clash is a one-in-a-blue-moon event,
		// so a single regenerate covers it.
		r.TrackingCode = newTrackingCode()
		created, err = u.requests.Create(ctx, r)
	}
	if err != nil {
		if agentID != "" {
			if rbErr := u.assigner.ReleaseAgent(ctx, agentID); rbErr != nil {
				logger.L().Errorw("load rollback failed after create failure", "agent_id", agentID, "err", rbErr)
			}
		}
		return entities.ServiceRequest{}, err
	}

	metrics.RequestsCreated.WithLabelValues(created.ServiceType).Inc()
	logger.L().Infow("request created",
		"tracking_code", created.TrackingCode, "user_id", created.UserID,
		"official_fee", officialFee, "agent_id", agentID)
	u.notifyAsync(created.UserID, "Request received",
		fmt.Sprintf("Your request %s was received and is pending verification.", created.TrackingCode))
	return created, nil
}

func (u *RequestUseCase) GetByTrackingCode(ctx context.Context, trackingCode string) (entities.ServiceRequest, error) {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestInput
	}
	r, err := u.requests.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestUseCase) AttachDocument(ctx context.Context, userID, trackingCode string, doc entities.UploadedDocument) (entities.ServiceRequest, error) {
	if strings.TrimSpace(doc.Name) == "" || strings.TrimSpace(doc.LocationRef) == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestInput
	}

	r, err := u.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.UserID != userID {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	if r.Status.IsTerminal() {
		return entities.ServiceRequest{}, ErrRequestImmutable
	}

	r.UploadedDocuments = append(r.UploadedDocuments, doc)
	return u.save(ctx, r)
}

func (u *RequestUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, trackingCode string, next entities.RequestStatus, reason string) (entities.ServiceRequest, error) {
	reason = strings.TrimSpace(reason)
	if next == entities.StatusRejected && reason == "" {
		return entities.ServiceRequest{}, ErrReasonRequired
	}

	r, err := u.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if next == entities.StatusCompleted {
		// Completion carries its own guards; route through CompleteRequest
		// so the result reference is always supplied explicitly.
		if !r.PaymentDetails.IsPaid {
			return entities.ServiceRequest{}, ErrPaymentPending
		}
		return entities.ServiceRequest{}, ErrMissingResult
	}
	if !r.Status.CanTransitionTo(next) {
		return entities.ServiceRequest{}, ErrIllegalTransition
	}

	prev := r.Status
	r.Status = next
	if next == entities.StatusRejected {
		r.RejectionReason = reason
	}

	saved, err := u.save(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	u.adjustLoadOnBoundary(ctx, saved, prev, next)
	metrics.StatusTransitions.WithLabelValues(string(prev), string(next)).Inc()

	details := fmt.Sprintf("%s -> %s", prev, next)
	if reason != "" {
		details += ": " + reason
	}
	if err := u.audit.Record(ctx, actor, entities.ActionStatusChanged, details, saved.TrackingCode); err != nil {
		return entities.ServiceRequest{}, err
	}

	switch next {
	case entities.StatusActionRequired:
		u.notifyAsync(saved.UserID, "Action required",
			fmt.Sprintf("Your request %s needs more information.", saved.TrackingCode))
	case entities.StatusRejected:
		u.notifyAsync(saved.UserID, "Request rejected",
			fmt.Sprintf("Your request %s was rejected: %s", saved.TrackingCode, reason))
	}
	return saved, nil
}

func (u *RequestUseCase) CompleteRequest(ctx context.Context, actor entities.Actor, trackingCode, resultRef string) (entities.ServiceRequest, error) {
	resultRef = strings.TrimSpace(resultRef)

	r, err := u.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !r.PaymentDetails.IsPaid {
		return entities.ServiceRequest{}, ErrPaymentPending
	}
	if resultRef == "" {
		return entities.ServiceRequest{}, ErrMissingResult
	}
	if !r.Status.CanTransitionTo(entities.StatusCompleted) {
		return entities.ServiceRequest{}, ErrIllegalTransition
	}

	prev := r.Status
	r.Status = entities.StatusCompleted
	r.ResultRef = resultRef

	saved, err := u.save(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	u.adjustLoadOnBoundary(ctx, saved, prev, entities.StatusCompleted)
	metrics.StatusTransitions.WithLabelValues(string(prev), string(entities.StatusCompleted)).Inc()

	if err := u.audit.Record(ctx, actor, entities.ActionRequestCompleted, "result: "+resultRef, saved.TrackingCode); err != nil {
		return entities.ServiceRequest{}, err
	}
	u.notifyAsync(saved.UserID, "Request completed",
		fmt.Sprintf("Your request %s is complete.", saved.TrackingCode))
	return saved, nil
}

func (u *RequestUseCase) UpdateNotes(ctx context.Context, actor entities.Actor, trackingCode, notes string) (entities.ServiceRequest, error) {
	r, err := u.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !actor.IsSupervisor() && r.AssignedAgentID != actor.ID {
		return entities.ServiceRequest{}, ErrNotPermitted
	}
	if r.Status.IsTerminal() {
		return entities.ServiceRequest{}, ErrRequestImmutable
	}

	r.AgentNotes = notes
	return u.save(ctx, r)
}

func (u *RequestUseCase) ListAssigned(ctx context.Context, actor entities.Actor, agentID string) ([]entities.ServiceRequest, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return nil, ErrInvalidRequestInput
	}
	if !actor.IsSupervisor() && actor.ID != agentID {
		return nil, ErrNotPermitted
	}
	return u.requests.ListByAgent(ctx, agentID)
}

func (u *RequestUseCase) save(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
	saved, err := u.requests.Save(ctx, r, r.Version)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if saved.ID == "" {
		return entities.ServiceRequest{}, ErrConcurrentUpdate
	}
	return saved, nil
}

// adjustLoadOnBoundary releases the assigned agent exactly when the request
// leaves the active set. Requests never re-enter it, so there is no
// increment side.
func (u *RequestUseCase) adjustLoadOnBoundary(ctx context.Context, r entities.ServiceRequest, prev, next entities.RequestStatus) {
	if r.AssignedAgentID == "" || !prev.IsActive() || next.IsActive() {
		return
	}
	if err := u.assigner.ReleaseAgent(ctx, r.AssignedAgentID); err != nil {
		logger.L().Errorw("load release failed", "agent_id", r.AssignedAgentID, "tracking_code", r.TrackingCode, "err", err)
	}
}

func (u *RequestUseCase) reserveKey(ctx context.Context, namespacedKey, rawKey string) error {
	if rawKey == "" || u.idemp == nil {
		return nil
	}
	ok, err := u.idemp.Reserve(ctx, namespacedKey, idempotencyTTL)
	if err != nil {
		// The guard is best-effort on top of storage conditions; an
		// unavailable store must not take request intake down with it.
		logger.L().Warnw("idempotency store unavailable", "err", err)
		return nil
	}
	if !ok {
		return ErrDuplicateSubmission
	}
	return nil
}

func (u *RequestUseCase) notifyAsync(userID, title, body string) {
	if u.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := u.notifier.Notify(ctx, userID, title, body); err != nil {
			logger.L().Warnw("notification hand-off failed", "user_id", userID, "err", err)
		}
	}()
}

var trackingEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func newTrackingCode() string {
	id := uuid.New()
	return "REQ-" + trackingEncoding.EncodeToString(id[:5])
}
