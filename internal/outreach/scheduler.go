package outreach

import (
	"fmt"
	"time"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// Scheduler deterministically distributes prioritized leads over the
// campaign window. It is the recovery path for planner failure.
type Scheduler struct{}

// NewScheduler creates a fallback call scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Validate checks the request preconditions shared by the planner and
// fallback paths.
func (s *Scheduler) Validate(req domain.OutreachRequest) error {
	if len(req.DiscoveredLeads) == 0 {
		return ErrNoLeads
	}
	if req.CallsPerDay < 1 {
		return ErrInvalidCallsPerDay
	}
	start, end, err := req.CampaignDuration.Bounds()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: %s after %s",
			ErrInvalidWindow, req.CampaignDuration.EndDate, req.CampaignDuration.StartDate)
	}
	return nil
}

// Build walks the campaign window day by day, skipping avoid dates, and
// assigns up to calls_per_day leads per day in priority order. Leads left
// over when the window closes are simply not scheduled; the summary's
// coverage percentage reports the shortfall.
func (s *Scheduler) Build(req domain.OutreachRequest, prioritized []domain.DiscoveredLead) []domain.CallScheduleItem {
	start, end, err := req.CampaignDuration.Bounds()
	if err != nil {
		return nil
	}

	avoid := make(map[string]struct{}, len(req.CallWindowPreferences.AvoidDates))
	for _, d := range req.CallWindowPreferences.AvoidDates {
		avoid[d] = struct{}{}
	}
	hours := req.CallWindowPreferences.PreferredHours

	var schedule []domain.CallScheduleItem
	scheduleID := 1
	leadIndex := 0

	for day := start; !day.After(end) && leadIndex < len(prioritized); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(domain.DateFormat)
		if _, skip := avoid[dateStr]; skip {
			continue
		}

		for callNum := 0; callNum < req.CallsPerDay && leadIndex < len(prioritized); callNum++ {
			lead := prioritized[leadIndex]

			callTime := "10:00"
			if len(hours) > 0 {
				callTime = hours[callNum%len(hours)]
			}

			schedule = append(schedule, domain.CallScheduleItem{
				ScheduleID:        fmt.Sprintf("call_%03d", scheduleID),
				LeadID:            lead.LeadID,
				ScheduledDatetime: dateStr + " " + callTime,
				CallObjective:     CallObjective(lead),
				ExpectedDuration:  EstimateDuration(lead),
				PriorityLevel:     priorityFor(lead.QualificationScore),
				LeadContactInfo: domain.LeadContactInfo{
					CompanyName: lead.CompanyName,
					ContactName: lead.ContactName,
					Email:       lead.Email,
					Phone:       lead.Phone,
					JobTitle:    lead.JobTitle,
					Industry:    lead.Industry,
					CompanySize: lead.CompanySize,
					Location:    lead.Location,
				},
			})
			scheduleID++
			leadIndex++
		}
	}

	return schedule
}

// completionDate estimates when the schedule wraps up: the start date plus
// the whole days of calling the volume requires.
func completionDate(window domain.CampaignWindow, totalCalls, callsPerDay int) string {
	start, err := time.Parse(domain.DateFormat, window.StartDate)
	if err != nil || callsPerDay < 1 {
		return window.EndDate
	}
	return start.AddDate(0, 0, totalCalls/callsPerDay).Format(domain.DateFormat)
}
