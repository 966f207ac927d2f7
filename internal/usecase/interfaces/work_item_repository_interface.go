package interfaces

import (
	"context"
	"time"

	"mantranwebapi/internal/domain/entities"
)

// PendingFilter narrows the unassigned-task listing. Zero values mean
// "no constraint". OrderBy/OrderDir default to field count ascending.
type PendingFilter struct {
	Kind       string
	Difficulty string
	MinFields  int
	MaxFields  int
	OrderBy    string
	OrderDir   string
}

// IWorkItemRepository abstracts the controle_api table of the external data
// service.
//
// Lookups returning a zero-ID entity mean "no such row"; the usecases map
// that to their own not-found sentinels.
//
// Claim issues the conditional update guarding the unassigned → assigned
// transition: the WHERE clause requires tecnico_id to still be null, and a
// zero-ID result means the update matched no rows, i.e. the claim lost the
// race. The atomicity of that match-and-update is the external service's
// guarantee, not ours.
type IWorkItemRepository interface {
	ListAll(ctx context.Context) ([]entities.WorkItem, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]entities.WorkItem, error)
	ListPending(ctx context.Context, f PendingFilter) ([]entities.WorkItem, error)
	ListCompleted(ctx context.Context) ([]entities.WorkItem, error)
	GetByID(ctx context.Context, id string) (entities.WorkItem, error)
	Create(ctx context.Context, w entities.WorkItem) (entities.WorkItem, error)
	Update(ctx context.Context, id string, w entities.WorkItem) (entities.WorkItem, error)
	UpdateNotes(ctx context.Context, id, notes string) (entities.WorkItem, error)
	Delete(ctx context.Context, id string) error
	Claim(ctx context.Context, id, technicianID, technicianName, screen string, startedAt time.Time) (entities.WorkItem, error)
}
