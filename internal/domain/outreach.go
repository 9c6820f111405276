package domain

// DiscoveredLead is a lead record from the discovery engine. Read-only
// input to the call scheduler.
type DiscoveredLead struct {
	LeadID             string  `json:"lead_id"`
	CompanyName        string  `json:"company_name"`
	ContactName        string  `json:"contact_name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone,omitempty"`
	JobTitle           string  `json:"job_title"`
	Industry           string  `json:"industry"`
	CompanySize        string  `json:"company_size"`
	Location           string  `json:"location"`
	QualificationScore float64 `json:"qualification_score"` // 0-100
	LeadSource         string  `json:"lead_source"`
	LastContactDate    string  `json:"last_contact_date,omitempty"`
	Notes              string  `json:"notes,omitempty"`
}

// CallWindowPreferences bound when calls may be placed.
type CallWindowPreferences struct {
	Timezone       string   `json:"timezone"`
	PreferredHours []string `json:"preferred_hours"`
	AvoidDates     []string `json:"avoid_dates"`
}

// PrioritizationCriteria controls lead filtering and ordering.
type PrioritizationCriteria struct {
	QualificationScoreThreshold float64  `json:"qualification_score_threshold"`
	PrioritySegments            []string `json:"priority_segments"`
}

// LeadContactInfo is the contact block copied onto each schedule item.
type LeadContactInfo struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	JobTitle    string `json:"job_title"`
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
	Location    string `json:"location"`
}

// CallPreparation is derived prep material attached to each call.
type CallPreparation struct {
	ResearchNotes []string `json:"research_notes"`
	TalkingPoints []string `json:"talking_points"`
	FollowUpPlan  string   `json:"follow_up_plan"`
}

// CallSuccessMetrics is derived outcome guidance attached to each call.
type CallSuccessMetrics struct {
	ExpectedOutcome string `json:"expected_outcome"`
	NextSteps       string `json:"next_steps"`
}

// CallScheduleItem is one scheduled outreach call.
type CallScheduleItem struct {
	ScheduleID        string             `json:"schedule_id"`
	LeadID            string             `json:"lead_id"`
	LeadContactInfo   LeadContactInfo    `json:"lead_contact_info"`
	ScheduledDatetime string             `json:"scheduled_datetime"`
	CallObjective     string             `json:"call_objective"`
	ExpectedDuration  int                `json:"expected_duration"` // minutes, 10-60
	PriorityLevel     PriorityTier       `json:"priority_level"`
	Preparation       CallPreparation    `json:"call_preparation,omitempty"`
	SuccessMetrics    CallSuccessMetrics `json:"success_metrics,omitempty"`
}

// OutreachRequest is the input for one call scheduling run.
type OutreachRequest struct {
	DiscoveredLeads        []DiscoveredLead       `json:"discovered_leads"`
	CallWindowPreferences  CallWindowPreferences  `json:"call_window_preferences"`
	CampaignDuration       CampaignWindow         `json:"campaign_duration"`
	CallsPerDay            int                    `json:"calls_per_day"`
	PrioritizationCriteria PrioritizationCriteria `json:"prioritization_criteria"`
}

// PriorityBreakdown counts scheduled calls by priority level.
type PriorityBreakdown struct {
	HighPriorityCalls   int `json:"high_priority_calls"`
	MediumPriorityCalls int `json:"medium_priority_calls"`
	LowPriorityCalls    int `json:"low_priority_calls"`
}

// OutreachSummary is the reporting block of an outreach response. Leads the
// window could not absorb are reported via CoveragePercentage, never raised.
type OutreachSummary struct {
	TotalCallsScheduled     int               `json:"total_calls_scheduled"`
	DailyDistribution       map[string]int    `json:"daily_distribution"`
	CoveragePercentage      float64           `json:"coverage_percentage"`
	EstimatedCompletionDate string            `json:"estimated_completion_date"`
	PriorityBreakdown       PriorityBreakdown `json:"priority_breakdown"`
	AverageCallDuration     float64           `json:"average_call_duration"`
}

// OutreachResponse is the caller-facing result of a call scheduling run.
type OutreachResponse struct {
	CallSchedule    []CallScheduleItem `json:"call_schedule"`
	Summary         OutreachSummary    `json:"schedule_summary"`
	ExecutionStatus ExecutionStatus    `json:"execution_status"`
}
