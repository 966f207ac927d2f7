package entities

import "time"

// TimeEntry records an interval of active work on a WorkItem by a technician
// (table apontamento_tempo). An entry is open while EndedAt is null.
//
// The external procedures enforce at most one open entry per work item; this
// service only reads the open set to derive the "in progress" signal.
type TimeEntry struct {
	ID           string     `json:"id"`
	WorkItemID   string     `json:"controle_api_id"`
	TechnicianID string     `json:"tecnico_id"`
	StartedAt    time.Time  `json:"inicio"`
	EndedAt      *time.Time `json:"fim"`
}

// Open reports whether the entry is still running.
func (e TimeEntry) Open() bool {
	return e.EndedAt == nil
}
