package interfaces

import (
	"context"

	"nagrik_seva/internal/domain/entities"
)

// ICouponRepository abstracts DynamoDB persistence for Coupon.

type ICouponRepository interface {
	// Create fails when the code already exists.
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	Deactivate(ctx context.Context, code string) (entities.Coupon, error)
}
