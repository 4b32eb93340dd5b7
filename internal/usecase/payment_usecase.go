package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/infrastructure/metrics"
	"nagrik_seva/internal/usecase/interfaces"
	"nagrik_seva/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrWalletPinNotSet     = errors.New("wallet pin not set")
	ErrWrongPin            = errors.New("wrong wallet pin")
	ErrInvalidPin          = errors.New("invalid wallet pin")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrAlreadyPaid         = errors.New("request already paid")
	ErrPaymentConflict     = errors.New("payment conflicted with a concurrent update")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidReference    = errors.New("invalid payment reference")
	ErrTopUpNotFound       = errors.New("top-up claim not found")
	ErrTopUpAlreadyDecided = errors.New("top-up claim already decided")
	ErrGatewayDeclined     = errors.New("payment gateway declined")
	ErrNotAwaitingDecision = errors.New("request has no payment awaiting decision")
)

const walletPinLength = 4

type WalletPaymentInput struct {
	UserID         string
	TrackingCode   string
	PIN            string
	CouponCode     string
	IdempotencyKey string
}

// PaymentReceipt is what the wallet path returns on success.
type PaymentReceipt struct {
	Request    entities.ServiceRequest `json:"request"`
	Discount   int64                   `json:"discount"`
	AmountPaid int64                   `json:"amount_paid"`
	NewBalance int64                   `json:"new_balance"`
}

// IPaymentUseCase is the authoritative record of money movement: wallet
// debits, manual bank-transfer claims and their Supervisor decisions, and
// wallet top-ups.

type IPaymentUseCase interface {
	PayByWallet(ctx context.Context, in WalletPaymentInput) (PaymentReceipt, error)
	SubmitManualQuote(ctx context.Context, actor entities.Actor, trackingCode string, officialFee, serviceFee int64) (entities.ServiceRequest, error)
	ClaimManualPayment(ctx context.Context, userID, trackingCode, reference, proof string) (entities.ServiceRequest, error)
	DecideManualPayment(ctx context.Context, actor entities.Actor, trackingCode string, approve bool, reason string) (entities.ServiceRequest, error)
	SetWalletPIN(ctx context.Context, userID, pin string) error
	GetWallet(ctx context.Context, userID string) (entities.UserWallet, []entities.WalletLedgerEntry, error)
	ClaimTopUp(ctx context.Context, userID string, amount int64, reference string) (entities.WalletLedgerEntry, error)
	DecideTopUp(ctx context.Context, actor entities.Actor, entryID string, approve bool, reason string) (entities.WalletLedgerEntry, error)
	GatewayTopUp(ctx context.Context, userID string, amount int64) (entities.UserWallet, error)
}

type PaymentUseCase struct {
	requests interfaces.IRequestRepository
	wallets  interfaces.IWalletRepository
	coupons  ICouponUseCase
	audit    IAuditUseCase
	notifier interfaces.INotifier
	gateway  interfaces.ITopUpGateway
	idemp    interfaces.IIdempotencyStore
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	requests interfaces.IRequestRepository,
	wallets interfaces.IWalletRepository,
	coupons ICouponUseCase,
	audit IAuditUseCase,
	notifier interfaces.INotifier,
	gateway interfaces.ITopUpGateway,
	idemp interfaces.IIdempotencyStore,
) *PaymentUseCase {
	return &PaymentUseCase{
		requests: requests,
		wallets:  wallets,
		coupons:  coupons,
		audit:    audit,
		notifier: notifier,
		gateway:  gateway,
		idemp:    idemp,
	}
}

// PayByWallet runs the instant payment path: PIN check, balance check, then
// one all-or-nothing transaction covering the balance decrement, the coupon
// usage increment, the Success debit ledger entry and the request's paid
// snapshot.
func (u *PaymentUseCase) PayByWallet(ctx context.Context, in WalletPaymentInput) (PaymentReceipt, error) {
	logger.L().Infow("wallet payment start", "tracking_code", in.TrackingCode, "user_id", in.UserID)

	r, err := u.ownedRequest(ctx, in.UserID, in.TrackingCode)
	if err != nil {
		return PaymentReceipt{}, err
	}
	if r.PaymentDetails.IsPaid {
		return PaymentReceipt{}, ErrAlreadyPaid
	}

	if err := u.reserveKey(ctx, "pay:"+in.IdempotencyKey, in.IdempotencyKey); err != nil {
		return PaymentReceipt{}, err
	}

	wallet, err := u.wallets.GetWallet(ctx, in.UserID)
	if err != nil {
		return PaymentReceipt{}, err
	}
	if wallet.PINHash == "" {
		return PaymentReceipt{}, ErrWalletPinNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(wallet.PINHash), []byte(in.PIN)) != nil {
		return PaymentReceipt{}, ErrWrongPin
	}

	officialFee := r.PaymentDetails.OfficialFee
	serviceFee := r.PaymentDetails.ServiceFee
	payable := officialFee + serviceFee
	var discount int64
	var couponCode string
	var usageLimit int
	if strings.TrimSpace(in.CouponCode) != "" {
		quote, err := u.coupons.Quote(ctx, in.CouponCode, officialFee, serviceFee, in.UserID)
		if err != nil {
			return PaymentReceipt{}, err
		}
		discount = quote.Discount
		payable = quote.Payable
		couponCode = quote.Code
		usageLimit = quote.UsageLimitPerUser
	}

	if wallet.Balance < payable {
		return PaymentReceipt{}, ErrInsufficientBalance
	}

	now := time.Now().UTC()
	entry := entities.WalletLedgerEntry{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		Amount:         payable,
		Direction:      entities.LedgerDebit,
		Status:         entities.LedgerSuccess,
		RelatedRequest: r.ID,
		CreatedAt:      now,
	}
	paid := r.PaymentDetails
	paid.Discount = discount
	paid.CouponCode = couponCode
	paid.TotalAmount = payable
	paid.IsPaid = true
	paid.TransactionRef = entry.ID
	paid.PaymentDate = &now

	updatedWallet, err := u.wallets.DebitForRequest(ctx, interfaces.WalletDebitParams{
		UserID:        in.UserID,
		RequestID:     r.ID,
		Amount:        payable,
		CouponCode:    couponCode,
		UsageLimit:    usageLimit,
		WalletVersion: wallet.Version,
		Entry:         entry,
		Paid:          paid,
	})
	if err != nil {
		return PaymentReceipt{}, err
	}
	if updatedWallet.UserID == "" {
		// Some condition in the group failed: a concurrent debit, a racing
		// coupon commit, or a double payment. Nothing was written.
		logger.L().Warnw("wallet debit transaction cancelled", "tracking_code", in.TrackingCode, "user_id", in.UserID)
		return PaymentReceipt{}, ErrPaymentConflict
	}

	r.PaymentDetails = paid
	metrics.PaymentsProcessed.WithLabelValues("wallet", "success").Inc()
	logger.L().Infow("wallet payment success",
		"tracking_code", r.TrackingCode, "amount", payable, "discount", discount, "new_balance", updatedWallet.Balance)
	u.notifyAsync(in.UserID, "Payment received",
		fmt.Sprintf("Payment of %d for request %s was successful.", payable, r.TrackingCode))

	return PaymentReceipt{Request: r, Discount: discount, AmountPaid: payable, NewBalance: updatedWallet.Balance}, nil
}

// SubmitManualQuote lets staff set or correct the fee quote on a request
// that will be paid by bank transfer.
func (u *PaymentUseCase) SubmitManualQuote(ctx context.Context, actor entities.Actor, trackingCode string, officialFee, serviceFee int64) (entities.ServiceRequest, error) {
	if officialFee < 0 || serviceFee < 0 || officialFee+serviceFee <= 0 {
		return entities.ServiceRequest{}, ErrInvalidAmount
	}

	r, err := u.loadRequest(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.PaymentDetails.IsPaid {
		return entities.ServiceRequest{}, ErrAlreadyPaid
	}
	if r.Status.IsTerminal() {
		return entities.ServiceRequest{}, ErrRequestImmutable
	}

	r.PaymentDetails.OfficialFee = officialFee
	r.PaymentDetails.ServiceFee = serviceFee
	r.PaymentDetails.TotalAmount = officialFee + serviceFee
	r.PaymentDetails.Discount = 0
	r.PaymentDetails.CouponCode = ""

	saved, err := u.saveRequest(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	logger.L().Infow("manual quote set",
		"tracking_code", saved.TrackingCode, "official_fee", officialFee, "service_fee", serviceFee, "actor_id", actor.ID)
	return saved, nil
}

// ClaimManualPayment records the user's bank-transfer claim and parks the
// request in PaymentVerificationPending until a Supervisor decides.
func (u *PaymentUseCase) ClaimManualPayment(ctx context.Context, userID, trackingCode, reference, proof string) (entities.ServiceRequest, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.ServiceRequest{}, ErrInvalidReference
	}

	r, err := u.ownedRequest(ctx, userID, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.PaymentDetails.IsPaid {
		return entities.ServiceRequest{}, ErrAlreadyPaid
	}
	if !r.Status.CanTransitionTo(entities.StatusPaymentVerificationPending) {
		return entities.ServiceRequest{}, ErrIllegalTransition
	}

	r.PriorStatus = r.Status
	r.Status = entities.StatusPaymentVerificationPending
	r.PaymentDetails.TransactionRef = reference
	r.PaymentDetails.ProofRef = strings.TrimSpace(proof)
	r.PaymentRejectionReason = ""

	saved, err := u.saveRequest(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	logger.L().Infow("manual payment claimed", "tracking_code", saved.TrackingCode, "reference", reference)
	return saved, nil
}

// DecideManualPayment is the Supervisor verdict on a bank-transfer claim.
// Approve marks the request paid and restores its prior state; reject
// records the reason and restores the prior state without marking paid.
func (u *PaymentUseCase) DecideManualPayment(ctx context.Context, actor entities.Actor, trackingCode string, approve bool, reason string) (entities.ServiceRequest, error) {
	if !actor.IsSupervisor() {
		return entities.ServiceRequest{}, ErrNotPermitted
	}
	reason = strings.TrimSpace(reason)
	if !approve && reason == "" {
		return entities.ServiceRequest{}, ErrReasonRequired
	}

	r, err := u.loadRequest(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.Status != entities.StatusPaymentVerificationPending {
		return entities.ServiceRequest{}, ErrNotAwaitingDecision
	}
	if r.PaymentDetails.IsPaid {
		return entities.ServiceRequest{}, ErrAlreadyPaid
	}

	restored := r.PriorStatus
	if restored == "" || !restored.IsActive() {
		restored = entities.StatusProcessing
	}
	r.Status = restored
	r.PriorStatus = ""

	var action entities.AuditAction
	var details string
	if approve {
		now := time.Now().UTC()
		r.PaymentDetails.IsPaid = true
		r.PaymentDetails.PaymentDate = &now
		action = entities.ActionPaymentApproved
		details = "manual payment approved, ref " + r.PaymentDetails.TransactionRef
	} else {
		r.PaymentRejectionReason = reason
		action = entities.ActionPaymentRejected
		details = "manual payment rejected: " + reason
	}

	saved, err := u.saveRequest(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	if err := u.audit.Record(ctx, actor, action, details, saved.TrackingCode); err != nil {
		return entities.ServiceRequest{}, err
	}

	if approve {
		metrics.PaymentsProcessed.WithLabelValues("manual", "approved").Inc()
	} else {
		metrics.PaymentsProcessed.WithLabelValues("manual", "rejected").Inc()
	}

	if approve {
		u.notifyAsync(saved.UserID, "Payment verified",
			fmt.Sprintf("Payment for request %s was verified.", saved.TrackingCode))
	} else {
		u.notifyAsync(saved.UserID, "Payment rejected",
			fmt.Sprintf("Payment for request %s was rejected: %s", saved.TrackingCode, reason))
	}
	return saved, nil
}

func (u *PaymentUseCase) SetWalletPIN(ctx context.Context, userID, pin string) error {
	userID = strings.TrimSpace(userID)
	pin = strings.TrimSpace(pin)
	if userID == "" {
		return ErrInvalidRequestInput
	}
	if len(pin) != walletPinLength {
		return ErrInvalidPin
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return ErrInvalidPin
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.wallets.SetPIN(ctx, userID, string(hash))
}

func (u *PaymentUseCase) GetWallet(ctx context.Context, userID string) (entities.UserWallet, []entities.WalletLedgerEntry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserWallet{}, nil, ErrInvalidRequestInput
	}
	wallet, err := u.wallets.GetWallet(ctx, userID)
	if err != nil {
		return entities.UserWallet{}, nil, err
	}
	if wallet.UserID == "" {
		wallet = entities.UserWallet{UserID: userID}
	}
	ledger, err := u.wallets.ListLedger(ctx, userID, 50)
	if err != nil {
		return entities.UserWallet{}, nil, err
	}
	return wallet, ledger, nil
}

// ClaimTopUp opens a Pending credit claim backed by a bank UTR; only a
// Supervisor decision moves money.
func (u *PaymentUseCase) ClaimTopUp(ctx context.Context, userID string, amount int64, reference string) (entities.WalletLedgerEntry, error) {
	userID = strings.TrimSpace(userID)
	reference = strings.TrimSpace(reference)
	if userID == "" {
		return entities.WalletLedgerEntry{}, ErrInvalidRequestInput
	}
	if amount <= 0 {
		return entities.WalletLedgerEntry{}, ErrInvalidAmount
	}
	if reference == "" {
		return entities.WalletLedgerEntry{}, ErrInvalidReference
	}

	entry := entities.WalletLedgerEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		Direction:   entities.LedgerCredit,
		Status:      entities.LedgerPending,
		ExternalRef: reference,
		CreatedAt:   time.Now().UTC(),
	}
	return u.wallets.CreateTopUpClaim(ctx, entry)
}

func (u *PaymentUseCase) DecideTopUp(ctx context.Context, actor entities.Actor, entryID string, approve bool, reason string) (entities.WalletLedgerEntry, error) {
	if !actor.IsSupervisor() {
		return entities.WalletLedgerEntry{}, ErrNotPermitted
	}
	reason = strings.TrimSpace(reason)
	if !approve && reason == "" {
		return entities.WalletLedgerEntry{}, ErrReasonRequired
	}

	existing, err := u.wallets.GetLedgerEntry(ctx, entryID)
	if err != nil {
		return entities.WalletLedgerEntry{}, err
	}
	if existing.ID == "" {
		return entities.WalletLedgerEntry{}, ErrTopUpNotFound
	}
	if existing.Status != entities.LedgerPending {
		return entities.WalletLedgerEntry{}, ErrTopUpAlreadyDecided
	}

	decided, err := u.wallets.DecideTopUp(ctx, entryID, approve, reason, time.Now().UTC())
	if err != nil {
		return entities.WalletLedgerEntry{}, err
	}
	if decided.ID == "" {
		return entities.WalletLedgerEntry{}, ErrTopUpAlreadyDecided
	}

	action := entities.ActionPaymentRejected
	details := fmt.Sprintf("top-up of %d rejected: %s", decided.Amount, reason)
	title, body := "Top-up rejected", fmt.Sprintf("Your wallet top-up of %d was rejected: %s", decided.Amount, reason)
	if approve {
		action = entities.ActionPaymentApproved
		details = fmt.Sprintf("top-up of %d approved, ref %s", decided.Amount, decided.ExternalRef)
		title, body = "Wallet credited", fmt.Sprintf("Your wallet top-up of %d was approved.", decided.Amount)
	}
	if err := u.audit.Record(ctx, actor, action, details, decided.ID); err != nil {
		return entities.WalletLedgerEntry{}, err
	}
	u.notifyAsync(decided.UserID, title, body)
	return decided, nil
}

// GatewayTopUp captures an instant top-up through the external payment
// provider and credits the wallet in one transaction with the Success
// credit entry.
func (u *PaymentUseCase) GatewayTopUp(ctx context.Context, userID string, amount int64) (entities.UserWallet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserWallet{}, ErrInvalidRequestInput
	}
	if amount <= 0 {
		return entities.UserWallet{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return entities.UserWallet{}, errors.New("top-up gateway not configured")
	}

	entryID := uuid.NewString()
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": amount,
		"description":        "Wallet top-up " + entryID,
		"external_reference": entryID,
	})
	if err != nil {
		return entities.UserWallet{}, err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.L().Errorw("gateway top-up failed", "user_id", userID, "err", err)
		return entities.UserWallet{}, err
	}
	if providerStatus != "approved" {
		return entities.UserWallet{}, ErrGatewayDeclined
	}

	entry := entities.WalletLedgerEntry{
		ID:          entryID,
		UserID:      userID,
		Amount:      amount,
		Direction:   entities.LedgerCredit,
		Status:      entities.LedgerSuccess,
		ExternalRef: providerID,
		CreatedAt:   time.Now().UTC(),
	}
	wallet, err := u.wallets.CreditInstant(ctx, entry)
	if err != nil {
		return entities.UserWallet{}, err
	}
	metrics.PaymentsProcessed.WithLabelValues("gateway_topup", "success").Inc()
	logger.L().Infow("gateway top-up credited", "user_id", userID, "amount", amount, "provider_payment_id", providerID)
	u.notifyAsync(userID, "Wallet credited", fmt.Sprintf("Your wallet was credited with %d.", amount))
	return wallet, nil
}

func (u *PaymentUseCase) ownedRequest(ctx context.Context, userID, trackingCode string) (entities.ServiceRequest, error) {
	r, err := u.loadRequest(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	// Ownership failures read as not-found so tracking codes stay
	// unguessable.
	if r.UserID != strings.TrimSpace(userID) {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *PaymentUseCase) loadRequest(ctx context.Context, trackingCode string) (entities.ServiceRequest, error) {
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

func (u *PaymentUseCase) saveRequest(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
	saved, err := u.requests.Save(ctx, r, r.Version)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if saved.ID == "" {
		return entities.ServiceRequest{}, ErrConcurrentUpdate
	}
	return saved, nil
}

func (u *PaymentUseCase) reserveKey(ctx context.Context, namespacedKey, rawKey string) error {
	if rawKey == "" || u.idemp == nil {
		return nil
	}
	ok, err := u.idemp.Reserve(ctx, namespacedKey, idempotencyTTL)
	if err != nil {
		logger.L().Warnw("idempotency store unavailable", "err", err)
		return nil
	}
	if !ok {
		return ErrDuplicateSubmission
	}
	return nil
}

func (u *PaymentUseCase) notifyAsync(userID, title, body string) {
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
