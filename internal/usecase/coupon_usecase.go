package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase/interfaces"
)

var (
	ErrInvalidCouponCode   = errors.New("invalid coupon code")
	ErrInvalidCouponValue  = errors.New("invalid coupon value")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponAlreadyExists = errors.New("coupon already exists")
	ErrCouponBelowMinimum  = errors.New("order below coupon minimum")
	ErrCouponLimitExceeded = errors.New("coupon usage limit exceeded")
)

// CouponQuote is the read-only preview of a coupon against a quoted fee
// pair. Nothing is recorded: usage commits only inside the wallet debit
// transaction.
type CouponQuote struct {
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
	Payable  int64  `json:"payable"`

	// UsageLimitPerUser feeds the debit transaction's usage condition; it
	// is not part of the public quote payload.
	UsageLimitPerUser int `json:"-"`
}

// ICouponUseCase exposes coupon quoting and Supervisor administration.

type ICouponUseCase interface {
	Quote(ctx context.Context, code string, officialFee, serviceFee int64, userID string) (CouponQuote, error)
	Create(ctx context.Context, actor entities.Actor, c entities.Coupon) (entities.Coupon, error)
	Deactivate(ctx context.Context, actor entities.Actor, code string) (entities.Coupon, error)
}

type CouponUseCase struct {
	coupons interfaces.ICouponRepository
	wallets interfaces.IWalletRepository
	audit   IAuditUseCase
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(coupons interfaces.ICouponRepository, wallets interfaces.IWalletRepository, audit IAuditUseCase) *CouponUseCase {
	return &CouponUseCase{coupons: coupons, wallets: wallets, audit: audit}
}

// Quote validates the coupon for the user and computes the bounded
// discount. The discount applies to the service fee only; the official
// government fee is never reduced.
func (u *CouponUseCase) Quote(ctx context.Context, code string, officialFee, serviceFee int64, userID string) (CouponQuote, error) {
	code = entities.NormalizeCouponCode(code)
	if code == "" {
		return CouponQuote{}, ErrInvalidCouponCode
	}
	if officialFee < 0 || serviceFee < 0 {
		return CouponQuote{}, ErrInvalidCouponValue
	}

	coupon, err := u.coupons.GetByCode(ctx, code)
	if err != nil {
		return CouponQuote{}, err
	}
	if coupon.Code == "" || !coupon.IsActive {
		return CouponQuote{}, ErrCouponNotFound
	}

	if officialFee+serviceFee < coupon.MinOrderValue {
		return CouponQuote{}, ErrCouponBelowMinimum
	}

	if coupon.UsageLimitPerUser > 0 && userID != "" {
		wallet, err := u.wallets.GetWallet(ctx, userID)
		if err != nil {
			return CouponQuote{}, err
		}
		if wallet.UsageOf(code) >= coupon.UsageLimitPerUser {
			return CouponQuote{}, ErrCouponLimitExceeded
		}
	}

	discount := coupon.DiscountFor(serviceFee)
	payable := officialFee + serviceFee - discount
	if payable < 0 {
		payable = 0
	}
	return CouponQuote{Code: code, Discount: discount, Payable: payable, UsageLimitPerUser: coupon.UsageLimitPerUser}, nil
}

func (u *CouponUseCase) Create(ctx context.Context, actor entities.Actor, c entities.Coupon) (entities.Coupon, error) {
	if !actor.IsSupervisor() {
		return entities.Coupon{}, ErrNotPermitted
	}

	c.Code = entities.NormalizeCouponCode(c.Code)
	if c.Code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}
	if c.Value <= 0 {
		return entities.Coupon{}, ErrInvalidCouponValue
	}
	switch c.DiscountType {
	case entities.DiscountFlat:
	case entities.DiscountPercent:
		if c.Value > 100 {
			return entities.Coupon{}, ErrInvalidCouponValue
		}
	default:
		return entities.Coupon{}, ErrInvalidCouponValue
	}
	if c.MinOrderValue < 0 || c.UsageLimitPerUser < 0 {
		return entities.Coupon{}, ErrInvalidCouponValue
	}

	c.IsActive = true
	c.CreatedAt = time.Now().UTC()

	created, err := u.coupons.Create(ctx, c)
	if err != nil {
		return entities.Coupon{}, err
	}
	if created.Code == "" {
		return entities.Coupon{}, ErrCouponAlreadyExists
	}

	details := fmt.Sprintf("coupon %s (%s %d, min order %d, limit %d/user)",
		created.Code, created.DiscountType, created.Value, created.MinOrderValue, created.UsageLimitPerUser)
	if err := u.audit.Record(ctx, actor, entities.ActionCouponCreated, details, created.Code); err != nil {
		return entities.Coupon{}, err
	}
	return created, nil
}

func (u *CouponUseCase) Deactivate(ctx context.Context, actor entities.Actor, code string) (entities.Coupon, error) {
	if !actor.IsSupervisor() {
		return entities.Coupon{}, ErrNotPermitted
	}

	code = entities.NormalizeCouponCode(code)
	if code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}

	updated, err := u.coupons.Deactivate(ctx, code)
	if err != nil {
		return entities.Coupon{}, err
	}
	if updated.Code == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}

	if err := u.audit.Record(ctx, actor, entities.ActionMasterDataChanged, "coupon deactivated: "+code, code); err != nil {
		return entities.Coupon{}, err
	}
	return updated, nil
}
