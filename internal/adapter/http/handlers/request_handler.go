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

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// RequestHandler handles HTTP requests for the service-request lifecycle.

type RequestHandler struct {
	requests usecase.IRequestUseCase
	assigner usecase.IAssignmentUseCase
}

func NewRequestHandler(requests usecase.IRequestUseCase, assigner usecase.IAssignmentUseCase) *RequestHandler {
	return &RequestHandler{requests: requests, assigner: assigner}
}

// Create godoc
// @Summary      Submit a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateServiceRequest true "submission"
// @Success      201 {object} response.ServiceRequestResponse
// @Router       /v1/requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.requests.CreateRequest(c.Request.Context(), usecase.CreateRequestInput{
		UserID:         middleware.UserFrom(c),
		ServiceType:    payload.ServiceType,
		TargetID:       payload.TargetID,
		Answers:        payload.Answers,
		IdempotencyKey: payload.IdempotencyKey,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequestUserView(created))
}

// Get godoc
// @Summary      Track a service request
// @Tags         requests
// @Produce      json
// @Param        tracking_code path string true "tracking code"
// @Success      200 {object} response.ServiceRequestResponse
// @Router       /v1/requests/{tracking_code} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	r, err := h.requests.GetByTrackingCode(c.Request.Context(), c.Param("tracking_code"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if r.UserID != middleware.UserFrom(c) {
		appErr := mapRequestError(usecase.ErrRequestNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequestUserView(r))
}

func (h *RequestHandler) AttachDocument(c *gin.Context) {
	var payload request.AttachDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.requests.AttachDocument(c.Request.Context(), middleware.UserFrom(c), c.Param("tracking_code"),
		entities.UploadedDocument{Name: payload.Name, LocationRef: payload.LocationRef})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequestUserView(r))
}

// UpdateStatus is the staff transition endpoint; completion goes through
// Complete so the result reference is always explicit.
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	next := entities.RequestStatus(payload.Status)
	if !next.IsValid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown request status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	r, err := h.requests.UpdateStatus(c.Request.Context(), middleware.ActorFrom(c), c.Param("tracking_code"), next, payload.Reason)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *RequestHandler) Complete(c *gin.Context) {
	var payload request.CompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.requests.CompleteRequest(c.Request.Context(), middleware.ActorFrom(c), c.Param("tracking_code"), payload.ResultRef)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *RequestHandler) Reassign(c *gin.Context) {
	var payload request.ReassignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.assigner.Reassign(c.Request.Context(), middleware.ActorFrom(c), c.Param("tracking_code"), payload.AgentID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *RequestHandler) UpdateNotes(c *gin.Context) {
	var payload request.UpdateNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.requests.UpdateNotes(c.Request.Context(), middleware.ActorFrom(c), c.Param("tracking_code"), payload.Notes)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *RequestHandler) ListAssigned(c *gin.Context) {
	list, err := h.requests.ListAssigned(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ServiceRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, response.FromServiceRequest(r))
	}
	c.JSON(http.StatusOK, out)
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestInput), errors.Is(err, usecase.ErrReasonRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidApplicationData):
		return pkg.NewDomainErrorSimple("INVALID_APPLICATION_DATA", "Application form answers failed validation", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTargetNotFound):
		return pkg.NewDomainErrorSimple("TARGET_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTargetInactive):
		return pkg.NewDomainErrorSimple("TARGET_INACTIVE", "Service is not accepting requests", http.StatusConflict)
	case errors.Is(err, usecase.ErrAgentNotFound):
		return pkg.NewDomainErrorSimple("AGENT_NOT_FOUND", "Agent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentPending):
		return pkg.NewDomainErrorSimple("PAYMENT_PENDING", "Request cannot complete before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingResult):
		return pkg.NewDomainErrorSimple("MISSING_RESULT", "Completion requires a result reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestImmutable):
		return pkg.NewDomainErrorSimple("REQUEST_CLOSED", "Request is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateSubmission):
		return pkg.NewDomainErrorSimple("DUPLICATE_SUBMISSION", "Duplicate submission", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Concurrent update, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotPermitted):
		return pkg.NewDomainErrorSimple("NOT_PERMITTED", "Not permitted", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
