package distribution

import (
	"context"
	"fmt"

	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/pkg/logger"
)

// Planner produces a distribution schedule via the LLM. Errors switch the
// service onto the deterministic matcher.
type Planner interface {
	PlanDistribution(ctx context.Context, req domain.DistributionRequest) ([]domain.DistributionScheduleItem, error)
}

// Service turns an optimized timeline plus content assets into a concrete
// posting schedule: planner first, matcher-driven fallback on failure.
type Service struct {
	planner Planner
	matcher *Matcher
}

// NewService creates a distribution service. planner may be nil.
func NewService(planner Planner, matcher *Matcher) *Service {
	return &Service{planner: planner, matcher: matcher}
}

// Schedule runs one distribution pass. Validation errors are the only
// errors returned; everything else degrades to partial_success.
func (s *Service) Schedule(ctx context.Context, req domain.DistributionRequest) (*domain.DistributionResponse, error) {
	if len(req.OptimizedTimeline) == 0 {
		return nil, ErrEmptyTimeline
	}
	if len(req.GeneratedCopies) == 0 {
		return nil, ErrNoCopies
	}

	// The match pass always runs: it drives the fallback schedule and the
	// utilization numbers in the summary.
	match := s.matcher.Match(req.OptimizedTimeline, req.GeneratedCopies, req.GeneratedImages)

	status := domain.StatusSuccess
	var schedule []domain.DistributionScheduleItem

	if s.planner != nil {
		planned, err := s.planner.PlanDistribution(ctx, req)
		if err != nil {
			logger.Warn("distribution planner failed, using matched fallback", "error", err.Error())
		} else if verr := validatePlannedSchedule(planned); verr != nil {
			logger.Warn("distribution planner output rejected, using matched fallback", "error", verr.Error())
		} else {
			schedule = planned
		}
	}

	if schedule == nil {
		schedule = s.fallbackSchedule(match, req.PlatformSpecifications)
		status = domain.StatusPartialSuccess
		if s.planner == nil {
			status = domain.StatusSuccess
		}
	}

	for i := range schedule {
		schedule[i].Optimization = domain.ContentOptimization{
			PlatformCompliance: checkCompliance(schedule[i], req.PlatformSpecifications),
			EngagementScore:    itemEngagementScore(schedule[i]),
			ContentQuality:     assessQuality(schedule[i]),
		}
		schedule[i].ExecutionNotes = executionNotes(schedule[i], req.PlatformSpecifications)
	}

	status = matchStatus(status, match)
	if len(match.Unmatched) > 0 {
		logger.Warn("timeline slots left unmatched",
			"unmatched", len(match.Unmatched), "total", len(req.OptimizedTimeline))
	}

	return &domain.DistributionResponse{
		Schedule:        schedule,
		UnmatchedSlots:  match.Unmatched,
		Summary:         buildSummary(schedule, req, match.Utilization),
		ExecutionStatus: status,
	}, nil
}

// matchStatus degrades the run only when the match pass produced nothing.
// Unmatched slots are excluded from the schedule and reported in the
// response; they do not change the execution status on their own.
func matchStatus(status domain.ExecutionStatus, match MatchResult) domain.ExecutionStatus {
	if len(match.Matched) == 0 {
		return domain.StatusPartialSuccess
	}
	return status
}

// fallbackSchedule builds the deterministic schedule from matched slots.
// Copy text is truncated to the platform caption limit and hashtags capped
// at five.
func (s *Service) fallbackSchedule(match MatchResult, specs domain.PlatformSpecifications) []domain.DistributionScheduleItem {
	schedule := make([]domain.DistributionScheduleItem, 0, len(match.Matched))

	for i, m := range match.Matched {
		assetIDs := make([]string, 0, len(m.Images))
		assetURLs := make([]string, 0, len(m.Images))
		for _, img := range m.Images {
			assetIDs = append(assetIDs, img.ImageID)
			assetURLs = append(assetURLs, img.ImageURL)
		}

		copyText := m.Copy.CopyText
		if specs.MaxCaptionLength > 0 && len(copyText) > specs.MaxCaptionLength {
			copyText = copyText[:specs.MaxCaptionLength]
		}

		hashtags := m.Copy.Hashtags
		if len(hashtags) > 5 {
			hashtags = hashtags[:5]
		}

		schedule = append(schedule, domain.DistributionScheduleItem{
			ScheduleItemID:    fmt.Sprintf("post_%03d", i+1),
			ScheduledDatetime: m.Slot.ScheduledDate + " " + m.Slot.OptimalTime,
			Platform:          m.Slot.Platform,
			TargetSegment:     m.Slot.TargetSegment,
			ContentPackage: domain.ContentPackage{
				CopyID:    m.Copy.CopyID,
				CopyText:  copyText,
				AssetIDs:  assetIDs,
				AssetURLs: assetURLs,
			},
			PostingParameters: domain.PostingParameters{
				Hashtags: hashtags,
				Mentions: []string{},
			},
		})
	}

	return schedule
}

// validatePlannedSchedule rejects planner output missing the fields the
// enhancement pass depends on.
func validatePlannedSchedule(items []domain.DistributionScheduleItem) error {
	if len(items) == 0 {
		return fmt.Errorf("empty distribution schedule")
	}
	for _, item := range items {
		if item.ScheduleItemID == "" || item.ScheduledDatetime == "" {
			return fmt.Errorf("schedule item missing id or datetime")
		}
		if item.ContentPackage.CopyID == "" {
			return fmt.Errorf("schedule item %s has no copy assigned", item.ScheduleItemID)
		}
	}
	return nil
}

// buildSummary derives the reporting block from the final schedule.
func buildSummary(schedule []domain.DistributionScheduleItem, req domain.DistributionRequest, util Utilization) domain.DistributionSummary {
	postsByPlatform := make(map[string]int)
	for _, item := range schedule {
		platform := item.Platform
		if platform == "" {
			platform = "unknown"
		}
		postsByPlatform[platform]++
	}

	timelineCoverage := 0.0
	if len(req.OptimizedTimeline) > 0 {
		timelineCoverage = float64(len(schedule)) / float64(len(req.OptimizedTimeline)) * 100
	}

	totalCopies := util.TotalCopies
	if totalCopies < 1 {
		totalCopies = 1
	}
	utilization := float64(util.CopiesUsed) / float64(totalCopies) * 100

	platformDistribution := "focused"
	if len(postsByPlatform) > 1 {
		platformDistribution = "balanced"
	}

	return domain.DistributionSummary{
		TotalPosts:      len(schedule),
		PostsByPlatform: postsByPlatform,
		Coverage: domain.CampaignCoverage{
			TimelineCoverage:     fmt.Sprintf("%.1f%%", timelineCoverage),
			ContentUtilization:   fmt.Sprintf("%.1f%%", utilization),
			PlatformDistribution: platformDistribution,
			ScheduleEfficiency:   fmt.Sprintf("%d/%d slots scheduled", len(schedule), len(req.OptimizedTimeline)),
		},
	}
}
