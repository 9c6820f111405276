package timeline

import (
	"fmt"
	"sort"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// UpcomingEvents renders the key dates that fall inside the campaign window
// as prompt-ready lines, sorted by date. Dates outside the window are noise
// for the planner and are dropped.
func UpcomingEvents(window domain.CampaignWindow, dates []domain.PriorityDate) []string {
	start, end, err := window.Bounds()
	if err != nil {
		return nil
	}

	inWindow := make([]domain.PriorityDate, 0, len(dates))
	for _, d := range dates {
		t, ok := parseDate(d.Date)
		if !ok {
			continue
		}
		if t.Before(start) || t.After(end) {
			continue
		}
		inWindow = append(inWindow, d)
	}

	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Date < inWindow[j].Date
	})

	lines := make([]string, 0, len(inWindow))
	for _, d := range inWindow {
		tier := domain.PriorityMedium
		if len(d.Priority) > 0 {
			tier = d.Priority[0]
		}
		lines = append(lines, fmt.Sprintf("%s: %s (priority: %s)", d.Date, d.Event, tier))
	}
	return lines
}
