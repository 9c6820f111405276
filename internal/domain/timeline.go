package domain

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates throughout the API.
const DateFormat = "2006-01-02"

// DateTimeFormat is the wire format for scheduled datetimes ("date + time").
const DateTimeFormat = "2006-01-02 15:04"

// ExecutionStatus reports how a scheduling run completed.
type ExecutionStatus string

const (
	// StatusSuccess means the planner produced the schedule.
	StatusSuccess ExecutionStatus = "success"
	// StatusPartialSuccess means the deterministic fallback produced the
	// schedule because the planner failed or returned unparseable output,
	// or a distribution match pass matched no slots at all.
	StatusPartialSuccess ExecutionStatus = "partial_success"
	// StatusFailed means the run produced no usable schedule.
	StatusFailed ExecutionStatus = "failed"
)

// PriorityTier classifies the importance of a date or schedule item.
type PriorityTier string

const (
	PriorityHigh   PriorityTier = "high"
	PriorityMedium PriorityTier = "medium"
	PriorityLow    PriorityTier = "low"
)

// CampaignPhase labels where in the campaign window a slot falls.
type CampaignPhase string

const (
	PhaseLaunch     CampaignPhase = "launch_phase"
	PhaseGrowth     CampaignPhase = "growth_phase"
	PhaseConclusion CampaignPhase = "conclusion_phase"
	PhaseUnknown    CampaignPhase = "unknown_phase"
)

// CampaignWindow is an inclusive calendar date range. It is immutable once a
// scheduling run begins.
type CampaignWindow struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Bounds parses the window into time values.
func (w CampaignWindow) Bounds() (start, end time.Time, err error) {
	start, err = time.Parse(DateFormat, w.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid start_date %q: %w", w.StartDate, err)
	}
	end, err = time.Parse(DateFormat, w.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid end_date %q: %w", w.EndDate, err)
	}
	return start, end, nil
}

// TotalDays returns the inclusive day count of the window. Zero or negative
// means the window is inverted.
func (w CampaignWindow) TotalDays() (int, error) {
	start, end, err := w.Bounds()
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// ContentInventoryItem describes one piece of available content. Items may be
// reused (cycled) across multiple timeline slots.
type ContentInventoryItem struct {
	ContentID   string `json:"content_id"`
	ContentType string `json:"content_type"`
	Platform    string `json:"platform"`
}

// PriorityDate marks a calendar date as carrying an event with a priority
// tier. Duplicate dates resolve last-write-wins at registration time.
type PriorityDate struct {
	Date     string         `json:"date"`
	Event    string         `json:"event"`
	Priority []PriorityTier `json:"priority"`
}

// PostingFrequency bounds how many posts per day the caller wants.
type PostingFrequency struct {
	MinPostsPerDay int `json:"min_posts_per_day"`
	MaxPostsPerDay int `json:"max_posts_per_day"`
}

// OptimalPostingTimes carries the caller's designated platform and its
// preferred posting time slots (HH:MM).
type OptimalPostingTimes struct {
	Platform  string   `json:"platform"`
	TimeSlots []string `json:"time_slots"`
}

// TimelineSlot is one scheduled posting opportunity. Created by the planner
// or the fallback builder; immutable after creation except for the
// enrichment fields, which are recomputed (never accumulated) on each
// enrichment pass.
type TimelineSlot struct {
	TimelineSlotID string         `json:"timeline_slot_id"`
	ScheduledDate  string         `json:"scheduled_date"`
	ContentType    string         `json:"content_type"`
	Platform       string         `json:"platform"`
	TargetSegment  string         `json:"target_segment"`
	Priority       []PriorityTier `json:"priority"`
	OptimalTime    string         `json:"optimal_time"`
	Reasoning      string         `json:"reasoning"`

	// Enrichment fields, appended after creation.
	CampaignPhase   CampaignPhase `json:"campaign_phase,omitempty"`
	EngagementScore float64       `json:"engagement_score,omitempty"`
	ContentPriority string        `json:"content_priority,omitempty"`
}

// HasPriority reports whether the slot carries the given tier.
func (s TimelineSlot) HasPriority(tier PriorityTier) bool {
	for _, p := range s.Priority {
		if p == tier {
			return true
		}
	}
	return false
}

// TimelineRequest is the input for one timeline optimization run.
type TimelineRequest struct {
	CampaignDuration    CampaignWindow         `json:"campaign_duration"`
	ContentInventory    []ContentInventoryItem `json:"content_inventory"`
	AudienceSegments    []string               `json:"audience_segments"`
	OptimalPostingTimes OptimalPostingTimes    `json:"optimal_posting_times"`
	PostingFrequency    PostingFrequency       `json:"posting_frequency"`
	KeyDates            []PriorityDate         `json:"key_dates"`
	BudgetConstraints   map[string]any         `json:"budget_constraints,omitempty"`
}

// TimelineInsights summarizes a produced timeline for reporting. Not used
// internally.
type TimelineInsights struct {
	TotalSlots           int            `json:"total_slots"`
	HighPrioritySlots    int            `json:"high_priority_slots"`
	PlatformDistribution map[string]int `json:"platform_distribution"`
	AudienceCoverage     map[string]int `json:"audience_coverage"`
	EngagementPrediction string         `json:"engagement_prediction"`
	TimelineEfficiency   string         `json:"timeline_efficiency"`
	ContentDiversity     int            `json:"content_diversity"`
	PlatformCoverage     int            `json:"platform_coverage"`
}

// TimelineResponse is the caller-facing result of a timeline run. The same
// shape is returned whether the planner or the fallback produced the
// timeline; only ExecutionStatus differs.
type TimelineResponse struct {
	Timeline        []TimelineSlot   `json:"optimized_timeline"`
	Insights        TimelineInsights `json:"timeline_insights"`
	ExecutionStatus ExecutionStatus  `json:"execution_status"`
}
