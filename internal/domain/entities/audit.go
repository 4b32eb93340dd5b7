package entities

import "time"

// AuditAction is the closed set of staff actions recorded in the audit log.

type AuditAction string

const (
	ActionPaymentApproved   AuditAction = "payment_approved"
	ActionPaymentRejected   AuditAction = "payment_rejected"
	ActionRequestCompleted  AuditAction = "request_completed"
	ActionStatusChanged     AuditAction = "status_changed"
	ActionTaskReassigned    AuditAction = "task_reassigned"
	ActionAgentBlocked      AuditAction = "agent_blocked"
	ActionAgentUnblocked    AuditAction = "agent_unblocked"
	ActionAgentCreated      AuditAction = "agent_created"
	ActionAgentDeleted      AuditAction = "agent_deleted"
	ActionCouponCreated     AuditAction = "coupon_created"
	ActionMasterDataChanged AuditAction = "master_data_changed"
)

func (a AuditAction) IsValid() bool {
	switch a {
	case ActionPaymentApproved, ActionPaymentRejected, ActionRequestCompleted,
		ActionStatusChanged, ActionTaskReassigned, ActionAgentBlocked,
		ActionAgentUnblocked, ActionAgentCreated, ActionAgentDeleted,
		ActionCouponCreated, ActionMasterDataChanged:
		return true
	}
	return false
}

// AuditEntry is one immutable line in the append-only staff action log.
// The engine never mutates or prunes entries; the listing cap is a display
// constraint only.
type AuditEntry struct {
	ID        string      `json:"id"`
	ActorID   string      `json:"actor_id"`
	ActorName string      `json:"actor_name"`
	ActorRole StaffRole   `json:"actor_role"`
	Action    AuditAction `json:"action"`
	Details   string      `json:"details"`
	TargetID  string      `json:"target_id"`
	CreatedAt time.Time   `json:"created_at"`
}
