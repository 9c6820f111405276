package planner

import (
	"encoding/json"
	"strings"

	"github.com/osteele/liquid"

	"github.com/ignite/campaign-orchestrator/internal/audience"
	"github.com/ignite/campaign-orchestrator/internal/distribution"
	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/outreach"
)

const systemPrompt = `You are an expert marketing campaign scheduler. You design posting timelines, distribution schedules, and outreach call plans that maximize engagement without fatiguing audiences.

Rules:
1. Respect every constraint in the request exactly (date windows, frequency bounds, avoid dates).
2. Prefer conservative posting cadences over aggressive ones.
3. Respond with ONLY a JSON object in the exact shape the request asks for. No prose before or after.`

const timelineTemplate = `Design an optimized posting timeline for this campaign.

Campaign window: {{ start_date }} to {{ end_date }} (inclusive)
Audience segments: {{ segments }}
Posting frequency: {{ min_posts }} to {{ max_posts }} posts per day requested
Designated platform: {{ platform }}
Preferred posting times: {{ time_slots }}

Content inventory:
{{ inventory }}
{% if events != "" %}
Upcoming events inside the window:
{{ events }}
{% endif %}
Audience behavior profiles:
{{ profiles }}

Respond with {"optimized_timeline": [...]}. Each slot must have: timeline_slot_id, scheduled_date (YYYY-MM-DD, inside the window), content_type, platform, target_segment, priority (array of "high"/"medium"/"low"), optimal_time (HH:MM), reasoning.`

const distributionTemplate = `Build a distribution schedule pairing timeline slots with content assets.

Platform: {{ platform_name }} (max caption length {{ max_caption }})

Platform best practices:
{{ platform_analysis }}

Timeline slots:
{{ timeline }}

Available copies:
{{ copies }}

Available images:
{{ images }}

Rules: assign every image at least once before reusing any image. A slot counts as matched only when it receives copy.

Respond with {"distribution_schedule": [...]}. Each item must have: schedule_item_id, scheduled_datetime (YYYY-MM-DD HH:MM), platform, target_segment, and content_package with copy_id, copy_text, asset_ids, asset_urls.`

const outreachTemplate = `Build an outreach call schedule for these leads.

Campaign window: {{ start_date }} to {{ end_date }}
Calls per day: {{ calls_per_day }}
Qualification threshold: {{ threshold }}
Priority segments (highest first): {{ segments }}
Preferred call hours: {{ hours }}
Dates to avoid: {{ avoid_dates }}

Timezone analysis for the call window:
{{ timezone_analysis }}

Leads:
{{ leads }}

Respond with {"call_schedule": [...]}. Each item must have: schedule_id, lead_id, lead_contact_info, scheduled_datetime (YYYY-MM-DD HH:MM), call_objective, expected_duration (minutes), priority_level.`

// Prompts renders planner prompt text from request data.
type Prompts struct {
	engine *liquid.Engine
}

// NewPrompts creates the prompt renderer.
func NewPrompts() *Prompts {
	return &Prompts{engine: liquid.NewEngine()}
}

// System returns the shared system prompt.
func (p *Prompts) System() string {
	return systemPrompt
}

// Timeline renders the timeline planning prompt.
func (p *Prompts) Timeline(req domain.TimelineRequest, upcomingEvents []string) (string, error) {
	return p.engine.ParseAndRenderString(timelineTemplate, liquid.Bindings{
		"start_date": req.CampaignDuration.StartDate,
		"end_date":   req.CampaignDuration.EndDate,
		"segments":   strings.Join(req.AudienceSegments, ", "),
		"min_posts":  req.PostingFrequency.MinPostsPerDay,
		"max_posts":  req.PostingFrequency.MaxPostsPerDay,
		"platform":   req.OptimalPostingTimes.Platform,
		"time_slots": strings.Join(req.OptimalPostingTimes.TimeSlots, ", "),
		"inventory":  mustJSON(req.ContentInventory),
		"events":     strings.Join(upcomingEvents, "\n"),
		"profiles":   mustJSON(audience.Profiles(req.AudienceSegments)),
	})
}

// Distribution renders the distribution scheduling prompt.
func (p *Prompts) Distribution(req domain.DistributionRequest) (string, error) {
	return p.engine.ParseAndRenderString(distributionTemplate, liquid.Bindings{
		"platform_name":     req.PlatformSpecifications.PlatformName,
		"max_caption":       req.PlatformSpecifications.MaxCaptionLength,
		"platform_analysis": mustJSON(distribution.AnalyzePlatform(req.PlatformSpecifications)),
		"timeline":          mustJSON(req.OptimizedTimeline),
		"copies":            mustJSON(req.GeneratedCopies),
		"images":            mustJSON(req.GeneratedImages),
	})
}

// Outreach renders the call scheduling prompt.
func (p *Prompts) Outreach(req domain.OutreachRequest) (string, error) {
	return p.engine.ParseAndRenderString(outreachTemplate, liquid.Bindings{
		"start_date":        req.CampaignDuration.StartDate,
		"end_date":          req.CampaignDuration.EndDate,
		"calls_per_day":     req.CallsPerDay,
		"threshold":         req.PrioritizationCriteria.QualificationScoreThreshold,
		"segments":          strings.Join(req.PrioritizationCriteria.PrioritySegments, ", "),
		"hours":             strings.Join(req.CallWindowPreferences.PreferredHours, ", "),
		"avoid_dates":       strings.Join(req.CallWindowPreferences.AvoidDates, ", "),
		"timezone_analysis": mustJSON(outreach.AnalyzeCallWindows(req.CallWindowPreferences)),
		"leads":             mustJSON(req.DiscoveredLeads),
	})
}

func mustJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
