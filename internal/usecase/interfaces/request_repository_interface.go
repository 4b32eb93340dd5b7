package interfaces

import (
	"context"

	"nagrik_seva/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// Conventions (shared by all repositories here):
//   - a zero-value entity with nil error means "not found"
//   - mutating calls guarded by a version or state condition return a
//     zero-value entity when the guard fails, so use cases can map the
//     lost race to a typed failure without parsing storage errors

type IRequestRepository interface {
	// Create persists a new request and reserves its tracking code; the
	// write fails if either the id or the tracking code already exists.
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	GetByTrackingCode(ctx context.Context, code string) (entities.ServiceRequest, error)
	ListByAgent(ctx context.Context, agentID string) ([]entities.ServiceRequest, error)
	// Save writes the full request guarded by the stored version.
	Save(ctx context.Context, r entities.ServiceRequest, expectedVersion int64) (entities.ServiceRequest, error)
}
