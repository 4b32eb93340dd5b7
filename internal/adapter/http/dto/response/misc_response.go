package response

import (
	"time"

	"nagrik_seva/internal/domain/entities"
)

type CouponResponse struct {
	Code              string    `json:"code"`
	DiscountType      string    `json:"discount_type"`
	Value             int64     `json:"value"`
	UsageLimitPerUser int       `json:"usage_limit_per_user"`
	MinOrderValue     int64     `json:"min_order_value"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromCoupon(c entities.Coupon) CouponResponse {
	return CouponResponse{
		Code:              c.Code,
		DiscountType:      string(c.DiscountType),
		Value:             c.Value,
		UsageLimitPerUser: c.UsageLimitPerUser,
		MinOrderValue:     c.MinOrderValue,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
	}
}

type AuditEntryResponse struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	ActorRole string    `json:"actor_role"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	TargetID  string    `json:"target_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAuditEntry(e entities.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID,
		ActorID:   e.ActorID,
		ActorName: e.ActorName,
		ActorRole: string(e.ActorRole),
		Action:    string(e.Action),
		Details:   e.Details,
		TargetID:  e.TargetID,
		CreatedAt: e.CreatedAt,
	}
}
