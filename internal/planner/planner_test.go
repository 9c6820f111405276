package planner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/pkg/cache"
)

type fakeInvoker struct {
	reply string
	err   error
	calls int
	last  string
}

func (f *fakeInvoker) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.last = user
	return f.reply, f.err
}

func timelineReq() domain.TimelineRequest {
	return domain.TimelineRequest{
		CampaignDuration: domain.CampaignWindow{StartDate: "2025-12-01", EndDate: "2025-12-31"},
		ContentInventory: []domain.ContentInventoryItem{
			{ContentID: "c1", ContentType: "video", Platform: "instagram"},
		},
		AudienceSegments: []string{"professionals"},
		OptimalPostingTimes: domain.OptimalPostingTimes{
			Platform: "instagram", TimeSlots: []string{"09:00"},
		},
		PostingFrequency: domain.PostingFrequency{MaxPostsPerDay: 1},
	}
}

func TestPlanTimelineEnvelope(t *testing.T) {
	inv := &fakeInvoker{reply: `{"optimized_timeline": [
		{"timeline_slot_id": "slot_001", "scheduled_date": "2025-12-05",
		 "content_type": "video", "platform": "instagram",
		 "target_segment": "professionals", "priority": ["high"],
		 "optimal_time": "09:00", "reasoning": "launch push"}
	]}`}
	svc := NewService(inv, nil, 0, 0)

	slots, err := svc.PlanTimeline(context.Background(), timelineReq(), []string{"2025-12-25: Christmas (priority: high)"})
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, "slot_001", slots[0].TimelineSlotID)
	assert.True(t, slots[0].HasPriority(domain.PriorityHigh))

	// The prompt carries the request constraints and event context.
	assert.Contains(t, inv.last, "2025-12-01 to 2025-12-31")
	assert.Contains(t, inv.last, "Christmas")
	assert.Contains(t, inv.last, "professionals")
}

func TestPlanTimelineBareArray(t *testing.T) {
	inv := &fakeInvoker{reply: "```json\n[{\"timeline_slot_id\": \"slot_001\", \"scheduled_date\": \"2025-12-05\"}]\n```"}
	svc := NewService(inv, nil, 0, 0)

	slots, err := svc.PlanTimeline(context.Background(), timelineReq(), nil)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestPlanTimelineUnusableReply(t *testing.T) {
	cases := map[string]string{
		"prose":         "Sorry, I cannot help with that.",
		"empty array":   `{"optimized_timeline": []}`,
		"wrong shape":   `{"something_else": true}`,
		"empty":         "",
	}

	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(&fakeInvoker{reply: reply}, nil, 0, 0)
			_, err := svc.PlanTimeline(context.Background(), timelineReq(), nil)
			assert.ErrorIs(t, err, ErrUnusableResponse)
		})
	}
}

func TestPlanTimelineInvokerError(t *testing.T) {
	svc := NewService(&fakeInvoker{err: errors.New("throttled")}, nil, 0, 0)

	_, err := svc.PlanTimeline(context.Background(), timelineReq(), nil)
	assert.ErrorContains(t, err, "throttled")
}

func TestPlanTimelineCachesByPrompt(t *testing.T) {
	inv := &fakeInvoker{reply: `{"optimized_timeline": [{"timeline_slot_id": "slot_001", "scheduled_date": "2025-12-05"}]}`}
	svc := NewService(inv, cache.NewMemoryCache(), time.Minute, 0)

	ctx := context.Background()
	_, err := svc.PlanTimeline(ctx, timelineReq(), nil)
	require.NoError(t, err)
	_, err = svc.PlanTimeline(ctx, timelineReq(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, inv.calls)

	// A different request misses the cache.
	other := timelineReq()
	other.CampaignDuration.EndDate = "2025-12-15"
	_, err = svc.PlanTimeline(ctx, other, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, inv.calls)
}

func TestPlanDistribution(t *testing.T) {
	inv := &fakeInvoker{reply: `{"distribution_schedule": [
		{"schedule_item_id": "dist_001", "scheduled_datetime": "2025-12-05 09:00",
		 "platform": "instagram",
		 "content_package": {"copy_id": "copy_1", "copy_text": "hello", "asset_ids": ["img_1"], "asset_urls": ["https://cdn/img_1.png"]}}
	]}`}
	svc := NewService(inv, nil, 0, 0)

	items, err := svc.PlanDistribution(context.Background(), domain.DistributionRequest{
		PlatformSpecifications: domain.PlatformSpecifications{PlatformName: "instagram", MaxCaptionLength: 2200},
	})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "copy_1", items[0].ContentPackage.CopyID)
	assert.Contains(t, inv.last, "instagram")
	// The platform analysis rides along in the prompt.
	assert.Contains(t, inv.last, "5-10 hashtags optimal")
}

func TestPlanOutreach(t *testing.T) {
	inv := &fakeInvoker{reply: `{"call_schedule": [
		{"schedule_id": "call_001", "lead_id": "lead_1",
		 "scheduled_datetime": "2025-12-05 10:00",
		 "call_objective": "intro", "expected_duration": 30, "priority_level": "high"}
	]}`}
	svc := NewService(inv, nil, 0, 0)

	items, err := svc.PlanOutreach(context.Background(), domain.OutreachRequest{
		CampaignDuration:      domain.CampaignWindow{StartDate: "2025-12-01", EndDate: "2025-12-10"},
		CallsPerDay:           3,
		CallWindowPreferences: domain.CallWindowPreferences{Timezone: "PST"},
	})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, domain.PriorityHigh, items[0].PriorityLevel)
	assert.True(t, strings.Contains(inv.last, "Calls per day: 3"))
	// The timezone analysis rides along in the prompt.
	assert.Contains(t, inv.last, "9 AM - 6 PM PST")
}
