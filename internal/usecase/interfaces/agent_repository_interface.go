package interfaces

import (
	"context"

	"nagrik_seva/internal/domain/entities"
)

// IAgentRepository abstracts DynamoDB persistence for Agent.
//
// Load, presence and the blocked flag live on one item and every mutation
// is version-guarded; a zero-value Agent result signals a failed guard.

type IAgentRepository interface {
	Create(ctx context.Context, a entities.Agent) (entities.Agent, error)
	GetByID(ctx context.Context, id string) (entities.Agent, error)
	List(ctx context.Context) ([]entities.Agent, error)
	Delete(ctx context.Context, id string) error
	SetBlocked(ctx context.Context, id string, blocked bool, expectedVersion int64) (entities.Agent, error)
	SetOnline(ctx context.Context, id string, online bool, expectedVersion int64) (entities.Agent, error)
	// AdjustLoad adds delta to current_load. With enforceCapacity the
	// increment additionally requires current_load < max_capacity;
	// decrements always require current_load >= 1.
	AdjustLoad(ctx context.Context, id string, delta int, enforceCapacity bool, expectedVersion int64) (entities.Agent, error)
}
