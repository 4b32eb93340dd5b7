package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase/interfaces"
	"nagrik_seva/pkg/logger"
)

var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrConcurrentUpdate = errors.New("concurrent update, retry")
)

// loadAdjustRetries bounds the optimistic retry loop on agent load
// counters when concurrent completions race the same agent item.
const loadAdjustRetries = 3

// IAssignmentUseCase selects and re-selects the agent responsible for a
// request, keeping load counters consistent with the active-status set.

type IAssignmentUseCase interface {
	// ClaimAgent picks the eligible agent with minimum load for the
	// category and increments its load. An empty id with nil error means
	// the pool is empty, which is a valid steady state, not a failure.
	ClaimAgent(ctx context.Context, category string) (string, error)
	// ReleaseAgent decrements an agent's load when one of its requests
	// leaves the active set.
	ReleaseAgent(ctx context.Context, agentID string) error
	// Reassign is the Supervisor-only override; it bypasses eligibility
	// and capacity checks entirely. An empty newAgentID unassigns.
	Reassign(ctx context.Context, actor entities.Actor, trackingCode, newAgentID string) (entities.ServiceRequest, error)
}

type AssignmentUseCase struct {
	agents   interfaces.IAgentRepository
	requests interfaces.IRequestRepository
	audit    IAuditUseCase
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(agents interfaces.IAgentRepository, requests interfaces.IRequestRepository, audit IAuditUseCase) *AssignmentUseCase {
	return &AssignmentUseCase{agents: agents, requests: requests, audit: audit}
}

func (u *AssignmentUseCase) ClaimAgent(ctx context.Context, category string) (string, error) {
	agents, err := u.agents.List(ctx)
	if err != nil {
		return "", err
	}

	candidates := agents[:0]
	for _, a := range agents {
		if a.Assignable(category) {
			candidates = append(candidates, a)
		}
	}
	// Minimum load first; agent id breaks ties so selection stays
	// deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].CurrentLoad != candidates[j].CurrentLoad {
			return candidates[i].CurrentLoad < candidates[j].CurrentLoad
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, candidate := range candidates {
		claimed, err := u.agents.AdjustLoad(ctx, candidate.ID, +1, true, candidate.Version)
		if err != nil {
			return "", err
		}
		if claimed.ID != "" {
			return claimed.ID, nil
		}
		// Lost the race on this candidate; the next one may still be free.
	}
	return "", nil
}

func (u *AssignmentUseCase) ReleaseAgent(ctx context.Context, agentID string) error {
	if agentID == "" {
		return nil
	}
	for i := 0; i < loadAdjustRetries; i++ {
		agent, err := u.agents.GetByID(ctx, agentID)
		if err != nil {
			return err
		}
		if agent.ID == "" || agent.CurrentLoad == 0 {
			return nil
		}
		released, err := u.agents.AdjustLoad(ctx, agentID, -1, false, agent.Version)
		if err != nil {
			return err
		}
		if released.ID != "" {
			return nil
		}
	}
	return ErrConcurrentUpdate
}

// claimUnchecked increments load without the capacity condition; manual
// authority trumps automation, but exceeding capacity is flagged.
func (u *AssignmentUseCase) claimUnchecked(ctx context.Context, agentID string) (entities.Agent, error) {
	for i := 0; i < loadAdjustRetries; i++ {
		agent, err := u.agents.GetByID(ctx, agentID)
		if err != nil {
			return entities.Agent{}, err
		}
		if agent.ID == "" {
			return entities.Agent{}, ErrAgentNotFound
		}
		claimed, err := u.agents.AdjustLoad(ctx, agentID, +1, false, agent.Version)
		if err != nil {
			return entities.Agent{}, err
		}
		if claimed.ID != "" {
			return claimed, nil
		}
	}
	return entities.Agent{}, ErrConcurrentUpdate
}

func (u *AssignmentUseCase) Reassign(ctx context.Context, actor entities.Actor, trackingCode, newAgentID string) (entities.ServiceRequest, error) {
	if !actor.IsSupervisor() {
		return entities.ServiceRequest{}, ErrNotPermitted
	}

	r, err := u.requests.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	if r.Status.IsTerminal() {
		return entities.ServiceRequest{}, ErrIllegalTransition
	}
	if newAgentID == r.AssignedAgentID {
		return r, nil
	}

	oldAgentID := r.AssignedAgentID

	if newAgentID != "" {
		claimed, err := u.claimUnchecked(ctx, newAgentID)
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		if claimed.CurrentLoad > claimed.MaxCapacity {
			logger.L().Warnw("manual reassignment exceeded agent capacity",
				"agent_id", claimed.ID, "current_load", claimed.CurrentLoad, "max_capacity", claimed.MaxCapacity)
		}
	}

	r.AssignedAgentID = newAgentID
	saved, err := u.requests.Save(ctx, r, r.Version)
	if err == nil && saved.ID == "" {
		err = ErrConcurrentUpdate
	}
	if err != nil {
		// Roll the claimed load back; the request never moved.
		if newAgentID != "" {
			if rbErr := u.ReleaseAgent(ctx, newAgentID); rbErr != nil {
				logger.L().Errorw("load rollback failed after reassign conflict", "agent_id", newAgentID, "err", rbErr)
			}
		}
		return entities.ServiceRequest{}, err
	}

	// The request left the old agent's active bucket only now that the
	// reassignment is durable.
	if oldAgentID != "" && r.Status.IsActive() {
		if err := u.ReleaseAgent(ctx, oldAgentID); err != nil {
			logger.L().Errorw("load release failed for previous agent", "agent_id", oldAgentID, "err", err)
		}
	}

	details := fmt.Sprintf("reassigned from %q to %q", oldAgentID, newAgentID)
	if err := u.audit.Record(ctx, actor, entities.ActionTaskReassigned, details, saved.TrackingCode); err != nil {
		return entities.ServiceRequest{}, err
	}
	return saved, nil
}
