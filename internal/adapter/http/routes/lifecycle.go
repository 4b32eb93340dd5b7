package routes

import (
	"nagrik_seva/internal/adapter/http/handlers"
	"nagrik_seva/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathWallet   = "/wallet"
	PathCoupons  = "/coupons"
)

// addLifecycleRoutes mounts the end-user surface. Every route requires the
// X-User-Id identity header.
func addLifecycleRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.RequestHandler,
	paymentHandler *handlers.PaymentHandler,
	couponHandler *handlers.CouponHandler,
) {
	requests := rg.Group(PathRequests, middleware.RequireUser())
	{
		requests.POST("", requestHandler.Create)
		requests.GET("/:tracking_code", requestHandler.Get)
		requests.POST("/:tracking_code/documents", requestHandler.AttachDocument)
		requests.POST("/:tracking_code/pay/wallet", paymentHandler.PayByWallet)
		requests.POST("/:tracking_code/pay/manual", paymentHandler.ClaimManualPayment)
	}

	wallet := rg.Group(PathWallet, middleware.RequireUser())
	{
		wallet.GET("", paymentHandler.GetWallet)
		wallet.POST("/pin", paymentHandler.SetPIN)
		wallet.POST("/topups", paymentHandler.ClaimTopUp)
		wallet.POST("/topups/gateway", paymentHandler.GatewayTopUp)
	}

	coupons := rg.Group(PathCoupons, middleware.RequireUser())
	{
		coupons.POST("/quote", couponHandler.Quote)
	}
}
