package interfaces

import (
	"context"
	"time"

	"nagrik_seva/internal/domain/entities"
)

// WalletDebitParams describes the all-or-nothing mutation group of a wallet
// payment: balance decrement, optional coupon-usage increment, the Success
// debit ledger entry, and the request's paid snapshot. Either every write
// lands or none does.
type WalletDebitParams struct {
	UserID        string
	RequestID     string
	Amount        int64
	CouponCode    string
	UsageLimit    int
	WalletVersion int64
	Entry         entities.WalletLedgerEntry
	Paid          entities.PaymentDetails
}

// IWalletRepository abstracts DynamoDB persistence for wallets and their
// ledger. Transactional methods return a zero-value result when any
// condition in the group fails.

type IWalletRepository interface {
	GetWallet(ctx context.Context, userID string) (entities.UserWallet, error)
	SetPIN(ctx context.Context, userID, pinHash string) error
	// DebitForRequest runs the wallet-payment transaction described by
	// WalletDebitParams.
	DebitForRequest(ctx context.Context, p WalletDebitParams) (entities.UserWallet, error)
	CreateTopUpClaim(ctx context.Context, e entities.WalletLedgerEntry) (entities.WalletLedgerEntry, error)
	GetLedgerEntry(ctx context.Context, id string) (entities.WalletLedgerEntry, error)
	// DecideTopUp moves a Pending credit to Success/Rejected; approval also
	// credits the balance in the same transaction.
	DecideTopUp(ctx context.Context, entryID string, approve bool, reason string, decidedAt time.Time) (entities.WalletLedgerEntry, error)
	// CreditInstant writes an already-Success credit entry and increments
	// the balance in one transaction (gateway top-ups).
	CreditInstant(ctx context.Context, e entities.WalletLedgerEntry) (entities.UserWallet, error)
	ListLedger(ctx context.Context, userID string, limit int) ([]entities.WalletLedgerEntry, error)
}
