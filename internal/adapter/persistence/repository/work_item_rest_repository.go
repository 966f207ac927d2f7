package repository

import (
	"context"
	"time"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/dataservice"
	"mantranwebapi/internal/usecase/interfaces"
)

const defaultWorkItemsTable = "controle_api"

var workItemColumns = []string{
	"id", "nome_tabela", "tela", "tipo_tabela", "modulo",
	"qtd_campos", "nivel_api", "peso_api",
	"tecnico_id", "tecnico_nome",
	"status_api", "status_teste", "status_documentacao",
	"observacoes", "created_at", "data_inicio", "data_fim_real",
}

// WorkItemRestRepository reads and writes controle_api rows through the
// external data service.
//
// nivel_api and peso_api are derived by a trigger from qtd_campos, so
// inserts and updates deliberately omit them.

type WorkItemRestRepository struct {
	ds    *dataservice.Client
	table string
	vocab entities.StatusVocabulary
}

var _ interfaces.IWorkItemRepository = (*WorkItemRestRepository)(nil)

func NewWorkItemRestRepository(ds *dataservice.Client, vocab entities.StatusVocabulary) *WorkItemRestRepository {
	return &WorkItemRestRepository{
		ds:    ds,
		table: getenvDefault("WORK_ITEMS_TABLE", defaultWorkItemsTable),
		vocab: vocab,
	}
}

func (r *WorkItemRestRepository) ListAll(ctx context.Context) ([]entities.WorkItem, error) {
	q := dataservice.NewQuery().
		Select(workItemColumns...).
		Order("nome_tabela", "asc")
	var rows []entities.WorkItem
	if err := r.ds.Get(ctx, r.table, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *WorkItemRestRepository) ListByTechnician(ctx context.Context, technicianID string) ([]entities.WorkItem, error) {
	q := dataservice.NewQuery().
		Select(workItemColumns...).
		Eq("tecnico_id", technicianID).
		Order("created_at", "asc")
	var rows []entities.WorkItem
	if err := r.ds.Get(ctx, r.table, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *WorkItemRestRepository) ListPending(ctx context.Context, f interfaces.PendingFilter) ([]entities.WorkItem, error) {
	q := dataservice.NewQuery().
		Select(workItemColumns...).
		IsNull("tecnico_id").
		Eq("status_api", string(r.vocab.Pending))

	if f.Kind != "" {
		q.Eq("tipo_tabela", f.Kind)
	}
	if f.Difficulty != "" {
		q.Eq("nivel_api", f.Difficulty)
	}
	if f.MinFields > 0 {
		q.Gte("qtd_campos", f.MinFields)
	}
	if f.MaxFields > 0 {
		q.Lte("qtd_campos", f.MaxFields)
	}

	orderBy := f.OrderBy
	if orderBy == "" {
		orderBy = "qtd_campos"
	}
	orderDir := f.OrderDir
	if orderDir != "desc" {
		orderDir = "asc"
	}
	q.Order(orderBy, orderDir)

	var rows []entities.WorkItem
	if err := r.ds.Get(ctx, r.table, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *WorkItemRestRepository) ListCompleted(ctx context.Context) ([]entities.WorkItem, error) {
	terminal := string(r.vocab.Terminal)
	q := dataservice.NewQuery().
		Select(workItemColumns...).
		Eq("status_api", terminal).
		Eq("status_teste", terminal).
		Eq("status_documentacao", terminal)
	var rows []entities.WorkItem
	if err := r.ds.Get(ctx, r.table, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *WorkItemRestRepository) GetByID(ctx context.Context, id string) (entities.WorkItem, error) {
	q := dataservice.NewQuery().
		Select(workItemColumns...).
		Eq("id", id).
		Limit(1)
	var rows []entities.WorkItem
	if err := r.ds.Get(ctx, r.table, q, &rows); err != nil {
		return entities.WorkItem{}, err
	}
	if len(rows) == 0 {
		return entities.WorkItem{}, nil
	}
	return rows[0], nil
}

func (r *WorkItemRestRepository) Create(ctx context.Context, w entities.WorkItem) (entities.WorkItem, error) {
	body := map[string]any{
		"nome_tabela": w.TableName,
		"tipo_tabela": string(w.Kind),
		"qtd_campos":  w.FieldCount,
		"modulo":      w.Module,
	}
	if w.RegisteredBy != "" {
		body["usuario_id"] = w.RegisteredBy
	}

	var rows []entities.WorkItem
	if err := r.ds.Insert(ctx, r.table, body, &rows); err != nil {
		return entities.WorkItem{}, err
	}
	if len(rows) == 0 {
		return entities.WorkItem{}, nil
	}
	return rows[0], nil
}

func (r *WorkItemRestRepository) Update(ctx context.Context, id string, w entities.WorkItem) (entities.WorkItem, error) {
	q := dataservice.NewQuery().Eq("id", id)
	body := map[string]any{
		"nome_tabela": w.TableName,
		"tipo_tabela": string(w.Kind),
		"qtd_campos":  w.FieldCount,
		"modulo":      w.Module,
	}
	if w.RegisteredBy != "" {
		body["usuario_id"] = w.RegisteredBy
	}

	var rows []entities.WorkItem
	if err := r.ds.Update(ctx, r.table, q, body, &rows); err != nil {
		return entities.WorkItem{}, err
	}
	if len(rows) == 0 {
		return entities.WorkItem{}, nil
	}
	return rows[0], nil
}

func (r *WorkItemRestRepository) UpdateNotes(ctx context.Context, id, notes string) (entities.WorkItem, error) {
	q := dataservice.NewQuery().Eq("id", id)
	body := map[string]any{"observacoes": notes}

	var rows []entities.WorkItem
	if err := r.ds.Update(ctx, r.table, q, body, &rows); err != nil {
		return entities.WorkItem{}, err
	}
	if len(rows) == 0 {
		return entities.WorkItem{}, nil
	}
	return rows[0], nil
}

func (r *WorkItemRestRepository) Delete(ctx context.Context, id string) error {
	return r.ds.Delete(ctx, r.table, dataservice.NewQuery().Eq("id", id))
}

// Claim is the conditional update guarding unassigned → assigned. The WHERE
// clause requires tecnico_id to still be null; the external service applies
// the match-and-update atomically, so two concurrent claims cannot both get
// a non-empty row set back. A zero-ID result means the race was lost.
func (r *WorkItemRestRepository) Claim(ctx context.Context, id, technicianID, technicianName, screen string, startedAt time.Time) (entities.WorkItem, error) {
	q := dataservice.NewQuery().
		Eq("id", id).
		IsNull("tecnico_id")
	body := map[string]any{
		"tecnico_id":   technicianID,
		"tecnico_nome": technicianName,
		"tela":         screen,
		"status_api":   string(r.vocab.Working),
		"data_inicio":  startedAt.UTC().Format(time.RFC3339),
	}

	var rows []entities.WorkItem
	if err := r.ds.Update(ctx, r.table, q, body, &rows); err != nil {
		return entities.WorkItem{}, err
	}
	if len(rows) == 0 {
		return entities.WorkItem{}, nil
	}
	return rows[0], nil
}
