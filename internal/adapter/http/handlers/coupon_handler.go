package handlers

import (
	"errors"
	"net/http"

	request "nagrik_seva/internal/adapter/http/dto/request"
	response "nagrik_seva/internal/adapter/http/dto/response"
	"nagrik_seva/internal/adapter/http/middleware"
	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase"
	"nagrik_seva/pkg"

	"github.com/gin-gonic/gin"
)

// CouponHandler handles coupon quoting and Supervisor administration.

type CouponHandler struct {
	coupons usecase.ICouponUseCase
}

func NewCouponHandler(coupons usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// Quote godoc
// @Summary      Preview a coupon discount
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        payload body request.CouponQuoteRequest true "quote"
// @Success      200 {object} usecase.CouponQuote
// @Router       /v1/coupons/quote [post]
func (h *CouponHandler) Quote(c *gin.Context) {
	var payload request.CouponQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	quote, err := h.coupons.Quote(c.Request.Context(), payload.Code, payload.OfficialFee, payload.ServiceFee, middleware.UserFrom(c))
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *CouponHandler) Create(c *gin.Context) {
	var payload request.CreateCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.coupons.Create(c.Request.Context(), middleware.ActorFrom(c), entities.Coupon{
		Code:              payload.Code,
		DiscountType:      entities.DiscountType(payload.DiscountType),
		Value:             payload.Value,
		UsageLimitPerUser: payload.UsageLimitPerUser,
		MinOrderValue:     payload.MinOrderValue,
	})
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCoupon(created))
}

func (h *CouponHandler) Deactivate(c *gin.Context) {
	deactivated, err := h.coupons.Deactivate(c.Request.Context(), middleware.ActorFrom(c), c.Param("code"))
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupon(deactivated))
}

func mapCouponError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCouponCode), errors.Is(err, usecase.ErrInvalidCouponValue):
		return pkg.NewDomainErrorSimple("INVALID_COUPON", "Invalid coupon", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found or inactive", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCouponAlreadyExists):
		return pkg.NewDomainErrorSimple("COUPON_EXISTS", "Coupon code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCouponBelowMinimum):
		return pkg.NewDomainErrorSimple("COUPON_BELOW_MINIMUM", "Order total is below the coupon minimum", http.StatusConflict)
	case errors.Is(err, usecase.ErrCouponLimitExceeded):
		return pkg.NewDomainErrorSimple("COUPON_LIMIT_EXCEEDED", "Coupon usage limit reached", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotPermitted):
		return pkg.NewDomainErrorSimple("NOT_PERMITTED", "Not permitted", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
