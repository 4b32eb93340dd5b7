package request

type WalletPayRequest struct {
	PIN            string `json:"pin" binding:"required"`
	CouponCode     string `json:"coupon_code"`
	IdempotencyKey string `json:"idempotency_key"`
}

type ManualPayClaimRequest struct {
	Reference string `json:"reference" binding:"required"`
	Proof     string `json:"proof"`
}

type ManualQuoteRequest struct {
	OfficialFee int64 `json:"official_fee"`
	ServiceFee  int64 `json:"service_fee"`
}

// DecisionRequest covers both manual-payment and top-up decisions.
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}

func (r DecisionRequest) Approved() bool {
	return r.Decision == "approve" || r.Decision == "approved"
}

type SetPINRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type TopUpRequest struct {
	Amount    int64  `json:"amount" binding:"required"`
	Reference string `json:"reference"`
}

type CouponQuoteRequest struct {
	Code        string `json:"code" binding:"required"`
	OfficialFee int64  `json:"official_fee"`
	ServiceFee  int64  `json:"service_fee" binding:"required"`
}

type CreateCouponRequest struct {
	Code              string `json:"code" binding:"required"`
	DiscountType      string `json:"discount_type" binding:"required"`
	Value             int64  `json:"value" binding:"required"`
	UsageLimitPerUser int    `json:"usage_limit_per_user"`
	MinOrderValue     int64  `json:"min_order_value"`
}
