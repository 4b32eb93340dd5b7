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

// AgentHandler handles the Supervisor-managed agent directory and the
// agents' presence heartbeat.

type AgentHandler struct {
	agents usecase.IAgentUseCase
}

func NewAgentHandler(agents usecase.IAgentUseCase) *AgentHandler {
	return &AgentHandler{agents: agents}
}

func (h *AgentHandler) Create(c *gin.Context) {
	var payload request.CreateAgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.agents.CreateAgent(c.Request.Context(), middleware.ActorFrom(c), usecase.CreateAgentInput{
		Name:            payload.Name,
		Email:           payload.Email,
		Role:            entities.StaffRole(payload.Role),
		Specializations: payload.Specializations,
		MaxCapacity:     payload.MaxCapacity,
	})
	if err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAgent(created))
}

func (h *AgentHandler) Delete(c *gin.Context) {
	if err := h.agents.DeleteAgent(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AgentHandler) SetBlocked(c *gin.Context) {
	var payload request.BlockAgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.agents.SetBlocked(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.Blocked)
	if err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgent(updated))
}

func (h *AgentHandler) Heartbeat(c *gin.Context) {
	var payload request.HeartbeatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.agents.Heartbeat(c.Request.Context(), c.Param("id"), payload.Online)
	if err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgent(updated))
}

func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.agents.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, response.FromAgent(a))
	}
	c.JSON(http.StatusOK, out)
}

func mapAgentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAgentInput):
		return pkg.NewDomainErrorSimple("INVALID_AGENT_INPUT", "Invalid agent payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAgentNotFound):
		return pkg.NewDomainErrorSimple("AGENT_NOT_FOUND", "Agent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Concurrent update, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotPermitted):
		return pkg.NewDomainErrorSimple("NOT_PERMITTED", "Not permitted", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
