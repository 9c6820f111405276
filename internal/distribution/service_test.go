package distribution

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

type distPlannerFunc func(ctx context.Context, req domain.DistributionRequest) ([]domain.DistributionScheduleItem, error)

func (f distPlannerFunc) PlanDistribution(ctx context.Context, req domain.DistributionRequest) ([]domain.DistributionScheduleItem, error) {
	return f(ctx, req)
}

func distributionRequest() domain.DistributionRequest {
	return domain.DistributionRequest{
		OptimizedTimeline: slotsOn("instagram", 3),
		GeneratedCopies:   testCopies,
		GeneratedImages:   imagePool(2),
		PlatformSpecifications: domain.PlatformSpecifications{
			PlatformName:     "Instagram",
			MaxCaptionLength: 2200,
			SupportedFormats: []string{"image", "video"},
		},
	}
}

func TestScheduleFallbackBuildsFromMatches(t *testing.T) {
	svc := NewService(nil, NewMatcher(rand.New(rand.NewSource(1))))

	resp, err := svc.Schedule(context.Background(), distributionRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, resp.ExecutionStatus)
	require.Len(t, resp.Schedule, 3)

	first := resp.Schedule[0]
	assert.Equal(t, "post_001", first.ScheduleItemID)
	assert.Equal(t, "2025-12-01 09:00", first.ScheduledDatetime)
	assert.Equal(t, "instagram", first.Platform)
	assert.NotEmpty(t, first.ContentPackage.CopyID)
	assert.Equal(t, []string{"img_001", "img_002"}, first.ContentPackage.AssetIDs)

	// Enhancement runs on every item.
	assert.True(t, first.Optimization.PlatformCompliance.OverallCompliance)
	assert.Greater(t, first.Optimization.EngagementScore, 0.0)
	assert.NotEmpty(t, first.Optimization.ContentQuality)

	assert.Equal(t, 3, resp.Summary.TotalPosts)
	assert.Equal(t, map[string]int{"instagram": 3}, resp.Summary.PostsByPlatform)
	assert.Equal(t, "100.0%", resp.Summary.Coverage.TimelineCoverage)
	assert.Equal(t, "focused", resp.Summary.Coverage.PlatformDistribution)
	assert.Equal(t, "3/3 slots scheduled", resp.Summary.Coverage.ScheduleEfficiency)
}

func TestSchedulePlannerSuccess(t *testing.T) {
	planned := []domain.DistributionScheduleItem{
		{
			ScheduleItemID:    "post_001",
			ScheduledDatetime: "2025-12-01 09:00",
			Platform:          "instagram",
			TargetSegment:     "professionals",
			ContentPackage: domain.ContentPackage{
				CopyID:    "social_copy_1",
				CopyText:  strings.Repeat("engaging content ", 5),
				AssetIDs:  []string{"img_001"},
				AssetURLs: []string{"https://cdn.example.com/img_001.png"},
			},
			PostingParameters: domain.PostingParameters{Hashtags: []string{"a", "b", "c"}},
		},
	}
	svc := NewService(distPlannerFunc(func(ctx context.Context, req domain.DistributionRequest) ([]domain.DistributionScheduleItem, error) {
		return planned, nil
	}), NewMatcher(rand.New(rand.NewSource(1))))

	resp, err := svc.Schedule(context.Background(), distributionRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, resp.ExecutionStatus)
	require.Len(t, resp.Schedule, 1)
	// 0.5 base + 0.2 hashtags in range + 0.2 assets + 0.1 substantial copy.
	assert.InDelta(t, 1.0, resp.Schedule[0].Optimization.EngagementScore, 1e-9)
	assert.Equal(t, "high", resp.Schedule[0].Optimization.ContentQuality)
}

func TestSchedulePlannerFailureFallsBack(t *testing.T) {
	svc := NewService(distPlannerFunc(func(ctx context.Context, req domain.DistributionRequest) ([]domain.DistributionScheduleItem, error) {
		return nil, errors.New("model unavailable")
	}), NewMatcher(rand.New(rand.NewSource(1))))

	resp, err := svc.Schedule(context.Background(), distributionRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPartialSuccess, resp.ExecutionStatus)
	assert.Len(t, resp.Schedule, 3)
}

func TestSchedulePlannerOutputRejected(t *testing.T) {
	svc := NewService(distPlannerFunc(func(ctx context.Context, req domain.DistributionRequest) ([]domain.DistributionScheduleItem, error) {
		return []domain.DistributionScheduleItem{{ScheduleItemID: "post_001"}}, nil
	}), NewMatcher(rand.New(rand.NewSource(1))))

	resp, err := svc.Schedule(context.Background(), distributionRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPartialSuccess, resp.ExecutionStatus)
	assert.Len(t, resp.Schedule, 3)
}

func TestScheduleTruncatesCaptionToLimit(t *testing.T) {
	req := distributionRequest()
	req.PlatformSpecifications.MaxCaptionLength = 5
	svc := NewService(nil, NewMatcher(rand.New(rand.NewSource(1))))

	resp, err := svc.Schedule(context.Background(), req)
	require.NoError(t, err)

	for _, item := range resp.Schedule {
		assert.LessOrEqual(t, len(item.ContentPackage.CopyText), 5)
		assert.True(t, item.Optimization.PlatformCompliance.CaptionWithinLimit)
	}
}

func TestScheduleValidation(t *testing.T) {
	svc := NewService(nil, NewMatcher(rand.New(rand.NewSource(1))))

	noTimeline := distributionRequest()
	noTimeline.OptimizedTimeline = nil
	_, err := svc.Schedule(context.Background(), noTimeline)
	assert.ErrorIs(t, err, ErrEmptyTimeline)

	noCopies := distributionRequest()
	noCopies.GeneratedCopies = nil
	_, err = svc.Schedule(context.Background(), noCopies)
	assert.ErrorIs(t, err, ErrNoCopies)
}

func TestUnmatchedSlotsDoNotDegradeStatus(t *testing.T) {
	someMatched := MatchResult{
		Matched:   []MatchedSlot{{Slot: slotsOn("linkedin", 1)[0]}},
		Unmatched: slotsOn("linkedin", 2),
	}
	assert.Equal(t, domain.StatusSuccess, matchStatus(domain.StatusSuccess, someMatched))
	// A planner-failure status is preserved, not upgraded.
	assert.Equal(t, domain.StatusPartialSuccess, matchStatus(domain.StatusPartialSuccess, someMatched))

	nothingMatched := MatchResult{Unmatched: slotsOn("linkedin", 2)}
	assert.Equal(t, domain.StatusPartialSuccess, matchStatus(domain.StatusSuccess, nothingMatched))
}

func TestScheduleExecutionNotesFlagMissingAssets(t *testing.T) {
	req := distributionRequest()
	req.GeneratedImages = nil
	svc := NewService(nil, NewMatcher(rand.New(rand.NewSource(1))))

	resp, err := svc.Schedule(context.Background(), req)
	require.NoError(t, err)

	for _, item := range resp.Schedule {
		assert.Contains(t, item.ExecutionNotes,
			"No visual assets assigned - consider adding images for better engagement")
	}
}
