package response

import (
	"time"

	"mantranwebapi/internal/domain/entities"
)

type WorkItemResponse struct {
	ID        string `json:"id"`
	TableName string `json:"table_name"`
	Screen    string `json:"screen,omitempty"`
	Kind      string `json:"kind"`
	Module    string `json:"module"`

	FieldCount int    `json:"field_count"`
	Difficulty string `json:"difficulty,omitempty"`
	Weight     int    `json:"weight,omitempty"`

	TechnicianID   *string `json:"technician_id"`
	TechnicianName *string `json:"technician_name"`

	StatusAPI           string `json:"status_api"`
	StatusTest          string `json:"status_test"`
	StatusDocumentation string `json:"status_documentation"`

	Notes string `json:"notes,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`

	// InProgress reflects an open time entry, independent of the three
	// sub-statuses.
	InProgress bool `json:"in_progress"`
}

func FromWorkItem(w entities.WorkItem) WorkItemResponse {
	return WorkItemResponse{
		ID:                  w.ID,
		TableName:           w.TableName,
		Screen:              w.Screen,
		Kind:                string(w.Kind),
		Module:              w.Module,
		FieldCount:          w.FieldCount,
		Difficulty:          w.Difficulty,
		Weight:              w.Weight,
		TechnicianID:        w.TechnicianID,
		TechnicianName:      w.TechnicianName,
		StatusAPI:           string(w.StatusAPI),
		StatusTest:          string(w.StatusTest),
		StatusDocumentation: string(w.StatusDocumentation),
		Notes:               w.Notes,
		CreatedAt:           w.CreatedAt,
		StartedAt:           w.StartedAt,
		FinishedAt:          w.FinishedAt,
	}
}

// FromWorkItems converts a list, flagging items present in openIDs as in
// progress. Pass nil when the open set is unknown or irrelevant.
func FromWorkItems(items []entities.WorkItem, openIDs []string) []WorkItemResponse {
	open := make(map[string]bool, len(openIDs))
	for _, id := range openIDs {
		open[id] = true
	}
	out := make([]WorkItemResponse, 0, len(items))
	for _, it := range items {
		r := FromWorkItem(it)
		r.InProgress = open[it.ID]
		out = append(out, r)
	}
	return out
}
