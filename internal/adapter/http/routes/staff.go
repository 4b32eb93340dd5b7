package routes

import (
	"nagrik_seva/internal/adapter/http/handlers"
	"nagrik_seva/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathStaff = "/staff"

// addStaffRoutes mounts the staff surface. Identity arrives pre-verified in
// the X-Actor-* headers; role checks live in the usecases.
func addStaffRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.RequestHandler,
	paymentHandler *handlers.PaymentHandler,
	couponHandler *handlers.CouponHandler,
	agentHandler *handlers.AgentHandler,
	auditHandler *handlers.AuditHandler,
) {
	staff := rg.Group(PathStaff, middleware.RequireActor())

	requests := staff.Group(PathRequests)
	{
		requests.PATCH("/:tracking_code/status", requestHandler.UpdateStatus)
		requests.POST("/:tracking_code/complete", requestHandler.Complete)
		requests.POST("/:tracking_code/quote", paymentHandler.SubmitManualQuote)
		requests.POST("/:tracking_code/payment-decision", paymentHandler.DecideManualPayment)
		requests.POST("/:tracking_code/reassign", requestHandler.Reassign)
		requests.PATCH("/:tracking_code/notes", requestHandler.UpdateNotes)
	}

	agents := staff.Group("/agents")
	{
		agents.GET("", agentHandler.List)
		agents.POST("", agentHandler.Create)
		agents.DELETE("/:id", agentHandler.Delete)
		agents.PATCH("/:id/block", agentHandler.SetBlocked)
		agents.POST("/:id/heartbeat", agentHandler.Heartbeat)
		agents.GET("/:id/requests", requestHandler.ListAssigned)
	}

	staff.POST("/topups/:id/decision", paymentHandler.DecideTopUp)

	coupons := staff.Group(PathCoupons)
	{
		coupons.POST("", couponHandler.Create)
		coupons.DELETE("/:code", couponHandler.Deactivate)
	}

	staff.GET("/audit", auditHandler.List)
}
