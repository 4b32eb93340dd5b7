package entities

import "time"

type LedgerDirection string

const (
	LedgerCredit LedgerDirection = "credit"
	LedgerDebit  LedgerDirection = "debit"
)

type LedgerStatus string

const (
	LedgerPending  LedgerStatus = "pending"
	LedgerSuccess  LedgerStatus = "success"
	LedgerRejected LedgerStatus = "rejected"
)

// WalletLedgerEntry records one money movement on a user's wallet.
//
// Credit entries opened by a user top-up claim start Pending and move to
// Success/Rejected only through a Supervisor decision. Debit entries are
// written already Success because the balance check happens synchronously
// inside the same transaction as the debit.
type WalletLedgerEntry struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Amount          int64           `json:"amount"`
	Direction       LedgerDirection `json:"direction"`
	Status          LedgerStatus    `json:"status"`
	ExternalRef     string          `json:"external_ref,omitempty"`
	RelatedRequest  string          `json:"related_request,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
}

// UserWallet is the authoritative balance plus the per-coupon usage counters
// that cap coupon redemption.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - balance, coupon_usage and version always change in the same write.
type UserWallet struct {
	UserID      string         `json:"user_id"`
	Balance     int64          `json:"balance"`
	PINHash     string         `json:"-"`
	CouponUsage map[string]int `json:"coupon_usage,omitempty"`
	Version     int64          `json:"version"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (w UserWallet) UsageOf(couponCode string) int {
	if w.CouponUsage == nil {
		return 0
	}
	return w.CouponUsage[NormalizeCouponCode(couponCode)]
}
