package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "nagrik_seva/internal/adapter/http/dto/response"
	"nagrik_seva/internal/adapter/http/middleware"
	"nagrik_seva/internal/usecase"
	"nagrik_seva/pkg"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the Supervisor-only audit log listing.

type AuditHandler struct {
	audit usecase.IAuditUseCase
}

func NewAuditHandler(audit usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{audit: audit}
}

func (h *AuditHandler) List(c *gin.Context) {
	limit := usecase.DefaultAuditListLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_LIMIT", "Invalid limit", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = parsed
	}

	entries, err := h.audit.List(c.Request.Context(), middleware.ActorFrom(c), limit)
	if err != nil {
		appErr := mapAuditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, response.FromAuditEntry(e))
	}
	c.JSON(http.StatusOK, out)
}

func mapAuditError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotPermitted):
		return pkg.NewDomainErrorSimple("NOT_PERMITTED", "Not permitted", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
