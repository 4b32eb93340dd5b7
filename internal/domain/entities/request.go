package entities

import "time"

// RequestStatus represents the lifecycle state of a service request.
//
// Domain notes:
//   - PendingVerification is the entry state for every new request.
//   - PaymentVerificationPending is reachable only through the manual
//     (bank transfer) payment path; the wallet path marks the request
//     paid without leaving the current state.
//   - Completed and Rejected are terminal.

type RequestStatus string

const (
	StatusPendingVerification        RequestStatus = "pending_verification"
	StatusProcessing                 RequestStatus = "processing"
	StatusActionRequired             RequestStatus = "action_required"
	StatusPaymentVerificationPending RequestStatus = "payment_verification_pending"
	StatusCompleted                  RequestStatus = "completed"
	StatusRejected                   RequestStatus = "rejected"
)

// legalTransitions is the full state graph. Rejected is reachable from any
// non-terminal state and is therefore handled in CanTransitionTo rather
// than listed per state.
var legalTransitions = map[RequestStatus][]RequestStatus{
	StatusPendingVerification:        {StatusProcessing},
	StatusProcessing:                 {StatusActionRequired, StatusPaymentVerificationPending, StatusCompleted},
	StatusActionRequired:             {StatusProcessing, StatusPaymentVerificationPending},
	StatusPaymentVerificationPending: {StatusProcessing, StatusActionRequired, StatusPendingVerification, StatusCompleted},
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPendingVerification, StatusProcessing, StatusActionRequired,
		StatusPaymentVerificationPending, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// IsActive reports whether a request in this state counts against the
// assigned agent's load.
func (s RequestStatus) IsActive() bool {
	switch s {
	case StatusPendingVerification, StatusProcessing, StatusActionRequired, StatusPaymentVerificationPending:
		return true
	}
	return false
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == StatusRejected {
		return true
	}
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentDetails is the resolved, frozen financial snapshot for one request.
// The official fee is computed once at submission; later edits to the
// catalog's fee rules never touch an already-quoted request.
type PaymentDetails struct {
	OfficialFee    int64      `json:"official_fee"`
	ServiceFee     int64      `json:"service_fee"`
	Discount       int64      `json:"discount"`
	TotalAmount    int64      `json:"total_amount"`
	CouponCode     string     `json:"coupon_code,omitempty"`
	IsPaid         bool       `json:"is_paid"`
	TransactionRef string     `json:"transaction_ref,omitempty"`
	ProofRef       string     `json:"proof_ref,omitempty"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
}

// Payable is what the user still owes before any coupon is applied at
// payment time.
func (p PaymentDetails) Payable() int64 {
	if p.TotalAmount > 0 {
		return p.TotalAmount
	}
	return p.OfficialFee + p.ServiceFee
}

// UploadedDocument is an opaque pointer into the upload collaborator.
type UploadedDocument struct {
	Name        string `json:"name"`
	LocationRef string `json:"location_ref"`
}

// ServiceRequest is the central entity: one citizen's in-flight order for
// job-application or service assistance.
//
// Storage model (DynamoDB):
//   - PK: id
//   - tracking_code is reserved separately under a conditional put to keep
//     it globally unique.
//
// Concurrency:
//   - Version guards every conditional update (optimistic locking).
type ServiceRequest struct {
	ID           string `json:"id"`
	TrackingCode string `json:"tracking_code"`
	UserID       string `json:"user_id"`

	// ServiceType discriminates which catalog table TargetID points into.
	ServiceType string `json:"service_type"`
	TargetID    string `json:"target_id"`
	TargetName  string `json:"target_name"`
	Category    string `json:"category"`

	Status          RequestStatus `json:"status"`
	AssignedAgentID string        `json:"assigned_agent_id,omitempty"`

	// ApplicationData holds the applicant's answers to the target's dynamic
	// form; keys are admin-authored and not known at compile time.
	ApplicationData map[string]string `json:"application_data"`

	PaymentDetails    PaymentDetails     `json:"payment_details"`
	UploadedDocuments []UploadedDocument `json:"uploaded_documents,omitempty"`

	ResultRef              string `json:"result_ref,omitempty"`
	RejectionReason        string `json:"rejection_reason,omitempty"`
	PaymentRejectionReason string `json:"payment_rejection_reason,omitempty"`

	// PriorStatus remembers where the request came from when it entered
	// PaymentVerificationPending, so a rejected payment can restore it.
	PriorStatus RequestStatus `json:"prior_status,omitempty"`

	// AgentNotes is staff-only text; never serialized into user-facing views.
	AgentNotes string `json:"agent_notes,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatOpen derives chat availability; no separate flag is stored.
func (r ServiceRequest) ChatOpen() bool {
	return !r.Status.IsTerminal()
}
