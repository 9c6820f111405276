package timeline

import (
	"fmt"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// Enricher appends campaign phase, engagement score, and content priority to
// timeline slots. Enrichment recomputes every field from scratch, so running
// it twice over the same slots yields the same values.
type Enricher struct{}

// NewEnricher creates a schedule enricher.
func NewEnricher() *Enricher {
	return &Enricher{}
}

// Enrich annotates each slot in place.
func (e *Enricher) Enrich(slots []domain.TimelineSlot, window domain.CampaignWindow, optimal domain.OptimalPostingTimes) {
	for i := range slots {
		slots[i].CampaignPhase = e.phase(slots[i].ScheduledDate, window)
		slots[i].EngagementScore = e.engagementScore(slots[i], optimal)
		slots[i].ContentPriority = e.contentPriority(slots[i])
	}
}

// phase classifies how far into the window the slot falls: the first 30% is
// launch, up to 70% is growth, the rest is conclusion. Span here is the
// start-to-end delta, not the inclusive day count.
func (e *Enricher) phase(date string, window domain.CampaignWindow) domain.CampaignPhase {
	start, end, err := window.Bounds()
	if err != nil {
		return domain.PhaseUnknown
	}
	scheduled, ok := parseDate(date)
	if !ok {
		return domain.PhaseUnknown
	}

	span := end.Sub(start).Hours() / 24
	progress := 0.0
	if span > 0 {
		progress = scheduled.Sub(start).Hours() / 24 / span
	}

	switch {
	case progress < 0.3:
		return domain.PhaseLaunch
	case progress < 0.7:
		return domain.PhaseGrowth
	default:
		return domain.PhaseConclusion
	}
}

// engagementScore predicts relative engagement on a 0..1 scale. Priority,
// platform alignment, and posting-time alignment each add to a 0.5 base.
func (e *Enricher) engagementScore(slot domain.TimelineSlot, optimal domain.OptimalPostingTimes) float64 {
	score := 0.5

	if slot.HasPriority(domain.PriorityHigh) {
		score += 0.3
	} else if slot.HasPriority(domain.PriorityMedium) {
		score += 0.1
	}

	if optimal.Platform != "" && slot.Platform == optimal.Platform {
		score += 0.2
	}
	for _, t := range optimal.TimeSlots {
		if t == slot.OptimalTime {
			score += 0.2
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func (e *Enricher) contentPriority(slot domain.TimelineSlot) string {
	switch {
	case slot.HasPriority(domain.PriorityHigh):
		return "critical"
	case slot.HasPriority(domain.PriorityMedium):
		return "important"
	default:
		return "standard"
	}
}

// Insights summarizes an enriched timeline for the response payload.
func (e *Enricher) Insights(slots []domain.TimelineSlot) domain.TimelineInsights {
	platforms := make(map[string]int)
	audiences := make(map[string]int)
	contentTypes := make(map[string]struct{})
	high := 0
	var totalEngagement float64

	for _, s := range slots {
		platforms[s.Platform]++
		audiences[s.TargetSegment]++
		contentTypes[s.ContentType] = struct{}{}
		if s.HasPriority(domain.PriorityHigh) {
			high++
		}
		totalEngagement += s.EngagementScore
	}

	efficiency := 0.0
	avgEngagement := 0.0
	if len(slots) > 0 {
		efficiency = float64(high) / float64(len(slots)) * 100
		avgEngagement = totalEngagement / float64(len(slots))
	}

	prediction := "developing"
	if avgEngagement >= 0.7 {
		prediction = "high"
	} else if avgEngagement >= 0.5 {
		prediction = "moderate"
	}

	return domain.TimelineInsights{
		TotalSlots:           len(slots),
		HighPrioritySlots:    high,
		PlatformDistribution: platforms,
		AudienceCoverage:     audiences,
		EngagementPrediction: prediction,
		TimelineEfficiency:   fmt.Sprintf("%.1f%% high-priority slots", efficiency),
		ContentDiversity:     len(contentTypes),
		PlatformCoverage:     len(platforms),
	}
}
