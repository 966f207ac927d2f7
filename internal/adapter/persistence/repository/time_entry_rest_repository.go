package repository

import (
	"context"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/dataservice"
	"mantranwebapi/internal/usecase/interfaces"
)

const defaultTimeEntriesTable = "apontamento_tempo"

// TimeEntryRestRepository reads apontamento_tempo rows. Only the open set
// matters here; the stored procedures own all writes to this table.

type TimeEntryRestRepository struct {
	ds    *dataservice.Client
	table string
}

var _ interfaces.ITimeEntryRepository = (*TimeEntryRestRepository)(nil)

func NewTimeEntryRestRepository(ds *dataservice.Client) *TimeEntryRestRepository {
	return &TimeEntryRestRepository{
		ds:    ds,
		table: getenvDefault("TIME_ENTRIES_TABLE", defaultTimeEntriesTable),
	}
}

func (r *TimeEntryRestRepository) OpenWorkItemIDs(ctx context.Context, technicianID string) ([]string, error) {
	q := dataservice.NewQuery().Select("controle_api_id")
	if technicianID != "" {
		q.Eq("tecnico_id", technicianID)
	}
	q.IsNull("fim")

	var rows []entities.TimeEntry
	if err := r.ds.Get(ctx, r.table, q, &rows); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.WorkItemID)
	}
	return ids, nil
}
