package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"nagrik_seva/internal/domain/entities"
)

// ICatalogProvider hands the engine already-loaded job/service definitions.
// Master-data CRUD belongs to the catalog collaborator; the engine only
// reads.
type ICatalogProvider interface {
	GetTarget(ctx context.Context, serviceType, targetID string) (entities.CatalogTarget, error)
}

// INotifier is the fire-and-forget hand-off to the push-notification
// collaborator. Delivery retries and token resolution happen on the other
// side of this boundary.
type INotifier interface {
	Notify(ctx context.Context, userID, title, body string) error
}

// ITopUpGateway abstracts the external payment provider used for instant
// wallet top-ups (e.g. Mercado Pago). The raw provider response is kept for
// traceability.
type ITopUpGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// IIdempotencyStore reserves client-supplied idempotency keys. Reserve
// returns false when the key is already held, i.e. a duplicate submission.
type IIdempotencyStore interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
