package outreach

import (
	"sort"
	"strings"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// PrioritizeLeads filters out leads below the qualification threshold and
// orders the rest by industry segment rank, then by score. A lead's segment
// rank comes from the first priority segment whose name appears in the
// lead's industry (case-insensitive substring); earlier segments outrank
// later ones and unlisted industries sort last. Ties keep input order.
func PrioritizeLeads(leads []domain.DiscoveredLead, criteria domain.PrioritizationCriteria) []domain.DiscoveredLead {
	qualified := make([]domain.DiscoveredLead, 0, len(leads))
	for _, lead := range leads {
		if lead.QualificationScore >= criteria.QualificationScoreThreshold {
			qualified = append(qualified, lead)
		}
	}

	rank := func(lead domain.DiscoveredLead) int {
		industry := strings.ToLower(lead.Industry)
		for i, segment := range criteria.PrioritySegments {
			if strings.Contains(industry, strings.ToLower(segment)) {
				return len(criteria.PrioritySegments) - i
			}
		}
		return 0
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		ri, rj := rank(qualified[i]), rank(qualified[j])
		if ri != rj {
			return ri > rj
		}
		return qualified[i].QualificationScore > qualified[j].QualificationScore
	})

	return qualified
}

// priorityFor maps a qualification score to a call priority tier.
func priorityFor(score float64) domain.PriorityTier {
	switch {
	case score >= 80:
		return domain.PriorityHigh
	case score >= 60:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
