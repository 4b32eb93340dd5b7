package interfaces

import (
	"context"

	"nagrik_seva/internal/domain/entities"
)

// IAuditRepository abstracts the append-only audit log. There is no update
// or delete: entries are immutable once written.

type IAuditRepository interface {
	Append(ctx context.Context, e entities.AuditEntry) (entities.AuditEntry, error)
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]entities.AuditEntry, error)
}
