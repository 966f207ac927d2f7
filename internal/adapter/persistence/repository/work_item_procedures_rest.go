package repository

import (
	"context"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/dataservice"
	"mantranwebapi/internal/usecase/interfaces"
)

// WorkItemProceduresRest calls the lifecycle stored procedures over the
// data service's RPC endpoint. Parameter names follow the procedure
// signatures (p_ prefix).

type WorkItemProceduresRest struct {
	ds *dataservice.Client
}

var _ interfaces.IWorkItemProcedures = (*WorkItemProceduresRest)(nil)

func NewWorkItemProceduresRest(ds *dataservice.Client) *WorkItemProceduresRest {
	return &WorkItemProceduresRest{ds: ds}
}

func (p *WorkItemProceduresRest) StartWork(ctx context.Context, workItemID, technicianID, technicianName string) error {
	return p.ds.RPC(ctx, "iniciar_trabalho", map[string]any{
		"p_controle_api_id": workItemID,
		"p_tecnico_id":      technicianID,
		"p_tecnico_nome":    technicianName,
	}, nil)
}

func (p *WorkItemProceduresRest) PauseWork(ctx context.Context, workItemID, technicianID string) error {
	return p.ds.RPC(ctx, "pausar_trabalho", map[string]any{
		"p_controle_api_id": workItemID,
		"p_tecnico_id":      technicianID,
	}, nil)
}

func (p *WorkItemProceduresRest) ResumeWork(ctx context.Context, workItemID, technicianID, technicianName string) error {
	return p.ds.RPC(ctx, "retomar_trabalho", map[string]any{
		"p_controle_api_id": workItemID,
		"p_tecnico_id":      technicianID,
		"p_tecnico_nome":    technicianName,
	}, nil)
}

func (p *WorkItemProceduresRest) FinishWork(ctx context.Context, workItemID, technicianID string) error {
	return p.ds.RPC(ctx, "finalizar_trabalho", map[string]any{
		"p_controle_api_id": workItemID,
		"p_tecnico_id":      technicianID,
	}, nil)
}

func (p *WorkItemProceduresRest) UpdateStatus(ctx context.Context, workItemID string, field entities.StatusField, status entities.Status) error {
	return p.ds.RPC(ctx, "atualizar_status", map[string]any{
		"p_controle_api_id": workItemID,
		"p_campo":           string(field),
		"p_status":          string(status),
	}, nil)
}
