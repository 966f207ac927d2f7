package interfaces

import (
	"context"

	"mantranwebapi/internal/domain/entities"
)

// IWorkItemProcedures abstracts the stored procedures driving the work-item
// lifecycle (iniciar/pausar/retomar/finalizar_trabalho, atualizar_status).
//
// The procedures are the authority on timer bookkeeping; the lifecycle
// usecase only selects the right call and refuses illegal ones before
// calling. Start and Resume are separate procedures so the store can
// distinguish first-start from re-open; this service treats them alike
// beyond picking the matching call.
type IWorkItemProcedures interface {
	StartWork(ctx context.Context, workItemID, technicianID, technicianName string) error
	PauseWork(ctx context.Context, workItemID, technicianID string) error
	ResumeWork(ctx context.Context, workItemID, technicianID, technicianName string) error
	FinishWork(ctx context.Context, workItemID, technicianID string) error
	UpdateStatus(ctx context.Context, workItemID string, field entities.StatusField, status entities.Status) error
}
