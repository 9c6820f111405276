package timeline

import (
	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/pkg/logger"
)

// PriorityDateIndex maps calendar dates (YYYY-MM-DD) to their event label
// and priority tiers. Duplicate registrations for the same date resolve
// last-write-wins; a warning is logged so the duplicate is visible.
type PriorityDateIndex struct {
	entries map[string]domain.PriorityDate
}

// NewPriorityDateIndex builds an index from the given key dates.
func NewPriorityDateIndex(dates []domain.PriorityDate) *PriorityDateIndex {
	idx := &PriorityDateIndex{entries: make(map[string]domain.PriorityDate, len(dates))}
	for _, d := range dates {
		if prev, ok := idx.entries[d.Date]; ok {
			logger.Warn("duplicate key date, keeping latest",
				"date", d.Date, "previous_event", prev.Event, "event", d.Event)
		}
		idx.entries[d.Date] = d
	}
	return idx
}

// Priority returns the priority tiers registered for the date, defaulting
// to medium when no key date matches.
func (idx *PriorityDateIndex) Priority(date string) []domain.PriorityTier {
	if d, ok := idx.entries[date]; ok && len(d.Priority) > 0 {
		return d.Priority
	}
	return []domain.PriorityTier{domain.PriorityMedium}
}

// Event returns the event label for the date, if any.
func (idx *PriorityDateIndex) Event(date string) (string, bool) {
	d, ok := idx.entries[date]
	return d.Event, ok
}

// Len returns the number of distinct key dates.
func (idx *PriorityDateIndex) Len() int {
	return len(idx.entries)
}
