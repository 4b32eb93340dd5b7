package response

import (
	"time"

	"nagrik_seva/internal/domain/entities"
)

type LedgerEntryResponse struct {
	ID              string     `json:"id"`
	Amount          int64      `json:"amount"`
	Direction       string     `json:"direction"`
	Status          string     `json:"status"`
	ExternalRef     string     `json:"external_ref,omitempty"`
	RelatedRequest  string     `json:"related_request,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
}

func FromLedgerEntry(e entities.WalletLedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:              e.ID,
		Amount:          e.Amount,
		Direction:       string(e.Direction),
		Status:          string(e.Status),
		ExternalRef:     e.ExternalRef,
		RelatedRequest:  e.RelatedRequest,
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt,
		DecidedAt:       e.DecidedAt,
	}
}

type WalletResponse struct {
	UserID  string                `json:"user_id"`
	Balance int64                 `json:"balance"`
	PinSet  bool                  `json:"pin_set"`
	Ledger  []LedgerEntryResponse `json:"ledger"`
}

func FromWallet(w entities.UserWallet, ledger []entities.WalletLedgerEntry) WalletResponse {
	resp := WalletResponse{
		UserID:  w.UserID,
		Balance: w.Balance,
		PinSet:  w.PINHash != "",
		Ledger:  make([]LedgerEntryResponse, 0, len(ledger)),
	}
	for _, e := range ledger {
		resp.Ledger = append(resp.Ledger, FromLedgerEntry(e))
	}
	return resp
}
