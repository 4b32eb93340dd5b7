package handlers

import (
	"errors"
	"net/http"

	request "nagrik_seva/internal/adapter/http/dto/request"
	response "nagrik_seva/internal/adapter/http/dto/response"
	"nagrik_seva/internal/adapter/http/middleware"
	"nagrik_seva/internal/usecase"
	"nagrik_seva/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles wallet payments, manual bank-transfer claims and
// wallet top-ups.

type PaymentHandler struct {
	payments usecase.IPaymentUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// PayByWallet godoc
// @Summary      Pay a request from the wallet
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        tracking_code path string true "tracking code"
// @Param        payload body request.WalletPayRequest true "payment"
// @Success      200 {object} response.PaymentReceiptResponse
// @Router       /v1/requests/{tracking_code}/pay/wallet [post]
func (h *PaymentHandler) PayByWallet(c *gin.Context) {
	var payload request.WalletPayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	receipt, err := h.payments.PayByWallet(c.Request.Context(), usecase.WalletPaymentInput{
		UserID:         middleware.UserFrom(c),
		TrackingCode:   c.Param("tracking_code"),
		PIN:            payload.PIN,
		CouponCode:     payload.CouponCode,
		IdempotencyKey: payload.IdempotencyKey,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PaymentReceiptResponse{
		Request:    response.FromServiceRequestUserView(receipt.Request),
		Discount:   receipt.Discount,
		AmountPaid: receipt.AmountPaid,
		NewBalance: receipt.NewBalance,
	})
}

func (h *PaymentHandler) ClaimManualPayment(c *gin.Context) {
	var payload request.ManualPayClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.payments.ClaimManualPayment(c.Request.Context(), middleware.UserFrom(c), c.Param("tracking_code"), payload.Reference, payload.Proof)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequestUserView(r))
}

func (h *PaymentHandler) SubmitManualQuote(c *gin.Context) {
	var payload request.ManualQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.payments.SubmitManualQuote(c.Request.Context(), middleware.ActorFrom(c), c.Param("tracking_code"), payload.OfficialFee, payload.ServiceFee)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *PaymentHandler) DecideManualPayment(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.payments.DecideManualPayment(c.Request.Context(), middleware.ActorFrom(c), c.Param("tracking_code"), payload.Approved(), payload.Reason)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *PaymentHandler) SetPIN(c *gin.Context) {
	var payload request.SetPINRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	if err := h.payments.SetWalletPIN(c.Request.Context(), middleware.UserFrom(c), payload.PIN); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PaymentHandler) GetWallet(c *gin.Context) {
	wallet, ledger, err := h.payments.GetWallet(c.Request.Context(), middleware.UserFrom(c))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWallet(wallet, ledger))
}

func (h *PaymentHandler) ClaimTopUp(c *gin.Context) {
	var payload request.TopUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	entry, err := h.payments.ClaimTopUp(c.Request.Context(), middleware.UserFrom(c), payload.Amount, payload.Reference)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLedgerEntry(entry))
}

func (h *PaymentHandler) GatewayTopUp(c *gin.Context) {
	var payload request.TopUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	wallet, err := h.payments.GatewayTopUp(c.Request.Context(), middleware.UserFrom(c), payload.Amount)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWallet(wallet, nil))
}

func (h *PaymentHandler) DecideTopUp(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	entry, err := h.payments.DecideTopUp(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.Approved(), payload.Reason)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLedgerEntry(entry))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestInput), errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidReference), errors.Is(err, usecase.ErrInvalidPin):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTopUpNotFound):
		return pkg.NewDomainErrorSimple("TOPUP_NOT_FOUND", "Top-up claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWalletPinNotSet):
		return pkg.NewDomainErrorSimple("WALLET_PIN_NOT_SET", "Wallet PIN is not set", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongPin):
		return pkg.NewDomainErrorSimple("WRONG_PIN", "Wrong wallet PIN", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInsufficientBalance):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Insufficient wallet balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Request is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentConflict), errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("PAYMENT_CONFLICT", "Payment conflicted with a concurrent update", http.StatusConflict)
	case errors.Is(err, usecase.ErrTopUpAlreadyDecided):
		return pkg.NewDomainErrorSimple("TOPUP_ALREADY_DECIDED", "Top-up claim already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAwaitingDecision):
		return pkg.NewDomainErrorSimple("NOT_AWAITING_DECISION", "No payment awaiting decision", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition), errors.Is(err, usecase.ErrRequestImmutable):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateSubmission):
		return pkg.NewDomainErrorSimple("DUPLICATE_SUBMISSION", "Duplicate submission", http.StatusConflict)
	case errors.Is(err, usecase.ErrReasonRequired):
		return pkg.NewDomainErrorSimple("REASON_REQUIRED", "A reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayDeclined):
		return pkg.NewDomainErrorSimple("GATEWAY_DECLINED", "Payment provider declined the charge", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNotPermitted):
		return pkg.NewDomainErrorSimple("NOT_PERMITTED", "Not permitted", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidCouponCode), errors.Is(err, usecase.ErrCouponNotFound),
		errors.Is(err, usecase.ErrCouponBelowMinimum), errors.Is(err, usecase.ErrCouponLimitExceeded):
		return mapCouponError(err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
