package interfaces

import "context"

// ITimeEntryRepository abstracts the apontamento_tempo table.
//
// The lifecycle guards and the "who is actively working" aggregation only
// need the set of work items with an open entry (fim is null).
type ITimeEntryRepository interface {
	// OpenWorkItemIDs returns ids of work items with an open time entry.
	// An empty technicianID means all technicians.
	OpenWorkItemIDs(ctx context.Context, technicianID string) ([]string, error)
}
