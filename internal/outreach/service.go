package outreach

import (
	"context"
	"math"
	"strings"

	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/pkg/logger"
)

// Planner produces a call schedule via the LLM. Errors switch the service
// onto the deterministic scheduler.
type Planner interface {
	PlanOutreach(ctx context.Context, req domain.OutreachRequest) ([]domain.CallScheduleItem, error)
}

// Service turns discovered leads into a concrete outreach call schedule:
// planner first, prioritized fallback distribution on failure.
type Service struct {
	planner   Planner
	scheduler *Scheduler
}

// NewService creates an outreach service. planner may be nil.
func NewService(planner Planner, scheduler *Scheduler) *Service {
	return &Service{planner: planner, scheduler: scheduler}
}

// Schedule runs one call scheduling pass.
func (s *Service) Schedule(ctx context.Context, req domain.OutreachRequest) (*domain.OutreachResponse, error) {
	if err := s.scheduler.Validate(req); err != nil {
		return nil, err
	}

	prioritized := PrioritizeLeads(req.DiscoveredLeads, req.PrioritizationCriteria)

	status := domain.StatusSuccess
	var schedule []domain.CallScheduleItem

	if s.planner != nil {
		planned, err := s.planner.PlanOutreach(ctx, req)
		if err != nil {
			logger.Warn("outreach planner failed, using prioritized fallback", "error", err.Error())
		} else if verr := validatePlannedCalls(planned); verr != nil {
			logger.Warn("outreach planner output rejected, using prioritized fallback", "error", verr.Error())
		} else {
			schedule = planned
		}
	}

	if schedule == nil {
		schedule = s.scheduler.Build(req, prioritized)
		status = domain.StatusPartialSuccess
		if s.planner == nil {
			status = domain.StatusSuccess
		}
	}

	for i := range schedule {
		schedule[i].Preparation = buildPreparation(schedule[i])
		schedule[i].SuccessMetrics = buildSuccessMetrics(schedule[i])
	}

	summary := buildOutreachSummary(schedule, req)
	if summary.CoveragePercentage < 100 {
		logger.Warn("campaign window cannot absorb all leads",
			"coverage_pct", summary.CoveragePercentage,
			"scheduled", len(schedule),
			"leads", len(req.DiscoveredLeads))
	}

	return &domain.OutreachResponse{
		CallSchedule:    schedule,
		Summary:         summary,
		ExecutionStatus: status,
	}, nil
}

func validatePlannedCalls(items []domain.CallScheduleItem) error {
	if len(items) == 0 {
		return ErrEmptyPlan
	}
	for i := range items {
		if items[i].ScheduleID == "" || items[i].LeadID == "" || items[i].ScheduledDatetime == "" {
			return ErrMalformedPlan
		}
		if items[i].PriorityLevel == "" {
			items[i].PriorityLevel = domain.PriorityMedium
		}
	}
	return nil
}

// buildOutreachSummary derives the reporting block from the final schedule.
func buildOutreachSummary(schedule []domain.CallScheduleItem, req domain.OutreachRequest) domain.OutreachSummary {
	daily := make(map[string]int)
	var breakdown domain.PriorityBreakdown
	totalDuration := 0

	for _, item := range schedule {
		date, _, _ := strings.Cut(item.ScheduledDatetime, " ")
		daily[date]++
		totalDuration += item.ExpectedDuration

		switch item.PriorityLevel {
		case domain.PriorityHigh:
			breakdown.HighPriorityCalls++
		case domain.PriorityMedium:
			breakdown.MediumPriorityCalls++
		default:
			breakdown.LowPriorityCalls++
		}
	}

	coverage := 0.0
	if len(req.DiscoveredLeads) > 0 {
		coverage = float64(len(schedule)) / float64(len(req.DiscoveredLeads)) * 100
	}

	avgDuration := 0.0
	if len(schedule) > 0 {
		avgDuration = float64(totalDuration) / float64(len(schedule))
	}

	return domain.OutreachSummary{
		TotalCallsScheduled:     len(schedule),
		DailyDistribution:       daily,
		CoveragePercentage:      math.Round(coverage*10) / 10,
		EstimatedCompletionDate: completionDate(req.CampaignDuration, len(schedule), req.CallsPerDay),
		PriorityBreakdown:       breakdown,
		AverageCallDuration:     avgDuration,
	}
}
