package entities

import (
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountFlat    DiscountType = "flat"
	DiscountPercent DiscountType = "percent"
)

// Coupon is an admin-defined discount against the platform's service fee.
// The official government fee is never discounted.
type Coupon struct {
	Code              string       `json:"code"`
	DiscountType      DiscountType `json:"discount_type"`
	Value             int64        `json:"value"`
	UsageLimitPerUser int          `json:"usage_limit_per_user"`
	MinOrderValue     int64        `json:"min_order_value"`
	IsActive          bool         `json:"is_active"`
	CreatedAt         time.Time    `json:"created_at"`
}

// NormalizeCouponCode is the canonical form codes are stored and compared in.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiscountFor computes the bounded discount for a given service fee.
// Percent values floor via integer division; the result never exceeds the
// service fee.
func (c Coupon) DiscountFor(serviceFee int64) int64 {
	if serviceFee <= 0 {
		return 0
	}
	var discount int64
	switch c.DiscountType {
	case DiscountPercent:
		discount = serviceFee * c.Value / 100
	default:
		discount = c.Value
	}
	if discount < 0 {
		discount = 0
	}
	if discount > serviceFee {
		discount = serviceFee
	}
	return discount
}
