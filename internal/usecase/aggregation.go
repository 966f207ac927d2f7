package usecase

import (
	"math"
	"sort"
	"time"

	"mantranwebapi/internal/domain/entities"
)

// Client-side rollups over an in-memory list of work items. All functions
// here are deterministic and side-effect free; the dashboard usecase feeds
// them freshly fetched state.

// UnassignedBucket is the sentinel name for items without a technician. It
// is excluded from per-technician views but still counts in global totals.
const UnassignedBucket = "Sem Técnico"

type StatusSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Complete   int `json:"complete"`
}

type TechnicianSummary struct {
	Name string `json:"name"`
	StatusSummary
}

type ProductivityBand string

const (
	BandRed    ProductivityBand = "red"
	BandYellow ProductivityBand = "yellow"
	BandGreen  ProductivityBand = "green"
)

type ProductivityRow struct {
	TechnicianID   string           `json:"technician_id"`
	TechnicianName string           `json:"technician_name"`
	Finished       int              `json:"finished"`
	Remaining      int              `json:"remaining"`
	Target         int              `json:"target"`
	Percent        float64          `json:"percent"`
	Band           ProductivityBand `json:"band"`
}

type Projection struct {
	RemainingItems int       `json:"remaining_items"`
	RemainingHours float64   `json:"remaining_hours"`
	Date           time.Time `json:"date"`
}

// CountByCompletion partitions items into complete and incomplete using the
// all-three-terminal invariant.
func CountByCompletion(items []entities.WorkItem, v entities.StatusVocabulary) (complete, incomplete int) {
	for _, it := range items {
		if it.Complete(v) {
			complete++
		} else {
			incomplete++
		}
	}
	return complete, incomplete
}

// CountInProgress counts items with an open time entry. Being "in progress"
// is independent of the three sub-statuses.
func CountInProgress(items []entities.WorkItem, openIDs []string) int {
	open := idSet(openIDs)
	n := 0
	for _, it := range items {
		if open[it.ID] {
			n++
		}
	}
	return n
}

// Summarize produces the global dashboard cards.
func Summarize(items []entities.WorkItem, openIDs []string, v entities.StatusVocabulary) StatusSummary {
	open := idSet(openIDs)
	s := StatusSummary{Total: len(items)}
	for _, it := range items {
		if it.StatusAPI == v.Pending {
			s.Pending++
		}
		if open[it.ID] {
			s.InProgress++
		}
		if it.Complete(v) {
			s.Complete++
		}
	}
	return s
}

// GroupByTechnician tallies per technician display name, excluding the
// unassigned sentinel bucket. Rows come back sorted by name so output is
// stable.
func GroupByTechnician(items []entities.WorkItem, openIDs []string, v entities.StatusVocabulary) []TechnicianSummary {
	open := idSet(openIDs)
	byName := map[string]*StatusSummary{}

	for _, it := range items {
		name := UnassignedBucket
		if it.TechnicianName != nil && *it.TechnicianName != "" {
			name = *it.TechnicianName
		}
		if name == UnassignedBucket {
			continue
		}

		s := byName[name]
		if s == nil {
			s = &StatusSummary{}
			byName[name] = s
		}
		s.Total++
		if it.StatusAPI == v.Pending {
			s.Pending++
		}
		if open[it.ID] {
			s.InProgress++
		}
		if it.Complete(v) {
			s.Complete++
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]TechnicianSummary, 0, len(names))
	for _, name := range names {
		out = append(out, TechnicianSummary{Name: name, StatusSummary: *byName[name]})
	}
	return out
}

// Band classifies a productivity percentage. Boundaries are inclusive
// toward the higher band: 60 is yellow, 100 is green.
func Band(percent float64) ProductivityBand {
	switch {
	case percent < 60:
		return BandRed
	case percent < 100:
		return BandYellow
	default:
		return BandGreen
	}
}

// WeeklyProductivity computes per-technician progress toward the weekly
// screen target.
func WeeklyProductivity(rows []entities.TechnicianWeekScreens, target int) []ProductivityRow {
	out := make([]ProductivityRow, 0, len(rows))
	for _, r := range rows {
		remaining := target - r.ScreensFinished
		if remaining < 0 {
			remaining = 0
		}
		percent := float64(r.ScreensFinished) / float64(target) * 100
		out = append(out, ProductivityRow{
			TechnicianID:   r.TechnicianID,
			TechnicianName: r.TechnicianName,
			Finished:       r.ScreensFinished,
			Remaining:      remaining,
			Target:         target,
			Percent:        percent,
			Band:           Band(percent),
		})
	}
	return out
}

// ProjectCompletionDate walks forward from `from` one calendar day at a
// time, consuming a day of work only on weekdays, and returns the date the
// remaining work lands on. Zero remaining items means no projection (nil),
// not a zero date.
func ProjectCompletionDate(pendingCount, inProgressCount int, hoursPerItem, hoursPerDay float64, from time.Time) *Projection {
	remaining := pendingCount + inProgressCount
	if remaining == 0 {
		return nil
	}

	remainingHours := float64(remaining) * hoursPerItem
	daysNeeded := int(math.Ceil(remainingHours / hoursPerDay))

	date := from
	for daysNeeded > 0 {
		date = date.AddDate(0, 0, 1)
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			daysNeeded--
		}
	}

	return &Projection{
		RemainingItems: remaining,
		RemainingHours: remainingHours,
		Date:           date,
	}
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
