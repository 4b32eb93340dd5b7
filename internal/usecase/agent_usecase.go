package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAgentInput = errors.New("invalid agent input")
)

type CreateAgentInput struct {
	Name            string
	Email           string
	Role            entities.StaffRole
	Specializations []string
	MaxCapacity     int
}

// IAgentUseCase is the Supervisor-managed agent directory plus the agents'
// own presence toggle.

type IAgentUseCase interface {
	CreateAgent(ctx context.Context, actor entities.Actor, in CreateAgentInput) (entities.Agent, error)
	DeleteAgent(ctx context.Context, actor entities.Actor, id string) error
	SetBlocked(ctx context.Context, actor entities.Actor, id string, blocked bool) (entities.Agent, error)
	Heartbeat(ctx context.Context, agentID string, online bool) (entities.Agent, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.Agent, error)
}

type AgentUseCase struct {
	agents interfaces.IAgentRepository
	audit  IAuditUseCase
}

var _ IAgentUseCase = (*AgentUseCase)(nil)

func NewAgentUseCase(agents interfaces.IAgentRepository, audit IAuditUseCase) *AgentUseCase {
	return &AgentUseCase{agents: agents, audit: audit}
}

func (u *AgentUseCase) CreateAgent(ctx context.Context, actor entities.Actor, in CreateAgentInput) (entities.Agent, error) {
	if !actor.IsSupervisor() {
		return entities.Agent{}, ErrNotPermitted
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || !in.Role.IsValid() || in.MaxCapacity <= 0 {
		return entities.Agent{}, ErrInvalidAgentInput
	}

	now := time.Now().UTC()
	a := entities.Agent{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Email:           strings.TrimSpace(in.Email),
		Role:            in.Role,
		Specializations: entities.SpecializationFromTags(in.Specializations),
		MaxCapacity:     in.MaxCapacity,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.agents.Create(ctx, a)
	if err != nil {
		return entities.Agent{}, err
	}

	details := fmt.Sprintf("agent %s (%s, capacity %d)", created.Name, created.Role, created.MaxCapacity)
	if err := u.audit.Record(ctx, actor, entities.ActionAgentCreated, details, created.ID); err != nil {
		return entities.Agent{}, err
	}
	return created, nil
}

func (u *AgentUseCase) DeleteAgent(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.IsSupervisor() {
		return ErrNotPermitted
	}

	existing, err := u.agents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrAgentNotFound
	}

	if err := u.agents.Delete(ctx, id); err != nil {
		return err
	}
	return u.audit.Record(ctx, actor, entities.ActionAgentDeleted, "agent "+existing.Name, id)
}

func (u *AgentUseCase) SetBlocked(ctx context.Context, actor entities.Actor, id string, blocked bool) (entities.Agent, error) {
	if !actor.IsSupervisor() {
		return entities.Agent{}, ErrNotPermitted
	}

	for i := 0; i < loadAdjustRetries; i++ {
		existing, err := u.agents.GetByID(ctx, id)
		if err != nil {
			return entities.Agent{}, err
		}
		if existing.ID == "" {
			return entities.Agent{}, ErrAgentNotFound
		}
		if existing.IsBlocked == blocked {
			return existing, nil
		}

		updated, err := u.agents.SetBlocked(ctx, id, blocked, existing.Version)
		if err != nil {
			return entities.Agent{}, err
		}
		if updated.ID == "" {
			continue
		}

		action := entities.ActionAgentUnblocked
		if blocked {
			action = entities.ActionAgentBlocked
		}
		if err := u.audit.Record(ctx, actor, action, "agent "+updated.Name, updated.ID); err != nil {
			return entities.Agent{}, err
		}
		return updated, nil
	}
	return entities.Agent{}, ErrConcurrentUpdate
}

func (u *AgentUseCase) Heartbeat(ctx context.Context, agentID string, online bool) (entities.Agent, error) {
	for i := 0; i < loadAdjustRetries; i++ {
		existing, err := u.agents.GetByID(ctx, agentID)
		if err != nil {
			return entities.Agent{}, err
		}
		if existing.ID == "" {
			return entities.Agent{}, ErrAgentNotFound
		}
		if existing.IsOnline == online {
			return existing, nil
		}

		updated, err := u.agents.SetOnline(ctx, agentID, online, existing.Version)
		if err != nil {
			return entities.Agent{}, err
		}
		if updated.ID != "" {
			return updated, nil
		}
	}
	return entities.Agent{}, ErrConcurrentUpdate
}

func (u *AgentUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.Agent, error) {
	if !actor.IsSupervisor() {
		return nil, ErrNotPermitted
	}
	return u.agents.List(ctx)
}
