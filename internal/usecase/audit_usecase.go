package usecase

import (
	"context"
	"errors"
	"time"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase/interfaces"
	"nagrik_seva/pkg/logger"

	"github.com/google/uuid"
)

var (
	// ErrNotPermitted is the generic authorization failure shared by every
	// use case; its message is intentionally uninformative.
	ErrNotPermitted = errors.New("not permitted")

	ErrInvalidAuditAction = errors.New("invalid audit action")
)

// DefaultAuditListLimit caps the audit listing response. This bounds the
// payload only; the underlying log is never pruned by the engine.
const DefaultAuditListLimit = 200

// IAuditUseCase is the append-only recorder mirrored by every staff-driven
// transition, plus the Supervisor-only read side.

type IAuditUseCase interface {
	Record(ctx context.Context, actor entities.Actor, action entities.AuditAction, details, targetID string) error
	List(ctx context.Context, actor entities.Actor, limit int) ([]entities.AuditEntry, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

func (u *AuditUseCase) Record(ctx context.Context, actor entities.Actor, action entities.AuditAction, details, targetID string) error {
	if !action.IsValid() {
		return ErrInvalidAuditAction
	}

	entry := entities.AuditEntry{
		ID:        uuid.NewString(),
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ActorRole: actor.Role,
		Action:    action,
		Details:   details,
		TargetID:  targetID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.repo.Append(ctx, entry); err != nil {
		logger.L().Errorw("audit append failed", "action", action, "target_id", targetID, "err", err)
		return err
	}
	return nil
}

func (u *AuditUseCase) List(ctx context.Context, actor entities.Actor, limit int) ([]entities.AuditEntry, error) {
	if !actor.IsSupervisor() {
		return nil, ErrNotPermitted
	}
	if limit <= 0 || limit > DefaultAuditListLimit {
		limit = DefaultAuditListLimit
	}
	return u.repo.ListRecent(ctx, limit)
}
