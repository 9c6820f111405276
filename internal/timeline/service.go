package timeline

import (
	"context"

	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/pkg/logger"
)

// Planner produces a timeline via the LLM. Implementations return an error
// for any failure (transport, parse, empty output); the service recovers by
// switching to the deterministic builder.
type Planner interface {
	PlanTimeline(ctx context.Context, req domain.TimelineRequest, upcomingEvents []string) ([]domain.TimelineSlot, error)
}

// Service orchestrates one timeline optimization run: planner first, the
// deterministic fallback on any planner failure. Request validation errors
// are the only errors it returns.
type Service struct {
	planner  Planner
	builder  *Builder
	enricher *Enricher
}

// NewService creates a timeline service. planner may be nil, in which case
// every run takes the fallback path.
func NewService(planner Planner, builder *Builder) *Service {
	return &Service{
		planner:  planner,
		builder:  builder,
		enricher: NewEnricher(),
	}
}

// Optimize runs the full pipeline: plan (or fall back), enrich, summarize.
func (s *Service) Optimize(ctx context.Context, req domain.TimelineRequest) (*domain.TimelineResponse, error) {
	if err := s.builder.Validate(req); err != nil {
		return nil, err
	}

	status := domain.StatusSuccess
	var slots []domain.TimelineSlot

	if s.planner != nil {
		planned, err := s.planner.PlanTimeline(ctx, req, UpcomingEvents(req.CampaignDuration, req.KeyDates))
		if err != nil {
			logger.Warn("timeline planner failed, using fallback distribution", "error", err.Error())
		} else if verr := validatePlannedSlots(planned, req.CampaignDuration); verr != nil {
			logger.Warn("timeline planner output rejected, using fallback distribution", "error", verr.Error())
		} else {
			slots = planned
		}
	}

	if slots == nil {
		built, err := s.builder.Build(req)
		if err != nil {
			return nil, err
		}
		slots = built
		status = domain.StatusPartialSuccess
		if s.planner == nil {
			// No planner configured: the fallback is the intended path.
			status = domain.StatusSuccess
		}
	}

	s.enricher.Enrich(slots, req.CampaignDuration, req.OptimalPostingTimes)

	return &domain.TimelineResponse{
		Timeline:        slots,
		Insights:        s.enricher.Insights(slots),
		ExecutionStatus: status,
	}, nil
}

// validatePlannedSlots rejects planner output that would corrupt downstream
// stages: empty schedules, missing IDs, or dates outside the window.
func validatePlannedSlots(slots []domain.TimelineSlot, window domain.CampaignWindow) error {
	if len(slots) == 0 {
		return ErrEmptyPlan
	}
	start, end, err := window.Bounds()
	if err != nil {
		return err
	}
	for i := range slots {
		if slots[i].TimelineSlotID == "" {
			return ErrMalformedPlan
		}
		t, ok := parseDate(slots[i].ScheduledDate)
		if !ok || t.Before(start) || t.After(end) {
			return ErrMalformedPlan
		}
		if len(slots[i].Priority) == 0 {
			slots[i].Priority = []domain.PriorityTier{domain.PriorityMedium}
		}
	}
	return nil
}
