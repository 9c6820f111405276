package timeline

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// Policy holds the conservative-distribution tuning constants. The weekly
// caps guard against audience fatigue: unless the caller explicitly asks
// for daily posting (min_posts_per_day >= 1) the timeline stays at the
// conservative weekly ceiling.
type Policy struct {
	ConservativePostsPerWeek  float64
	ExplicitDailyPostsPerWeek float64
	MaxSlots                  int
}

// DefaultPolicy returns the stock anti-fatigue policy.
func DefaultPolicy() Policy {
	return Policy{
		ConservativePostsPerWeek:  3,
		ExplicitDailyPostsPerWeek: 5,
		MaxSlots:                  20,
	}
}

// defaultTimeSlots is used when the caller supplies no optimal posting
// times. Matches the standard business-hours engagement peaks.
var defaultTimeSlots = []string{"09:00", "12:00", "18:00"}

// Builder deterministically distributes timeline slots across a campaign
// window. It is the recovery path for planner failure, so it never calls
// out and never errs once inputs validate.
type Builder struct {
	policy Policy
}

// NewBuilder creates a fallback schedule builder with the given policy.
func NewBuilder(policy Policy) *Builder {
	return &Builder{policy: policy}
}

// Validate checks the request preconditions shared by the planner and
// fallback paths. Violations are fatal and reported to the caller.
func (b *Builder) Validate(req domain.TimelineRequest) error {
	totalDays, err := req.CampaignDuration.TotalDays()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if totalDays < 1 {
		return fmt.Errorf("%w: %s after %s",
			ErrInvalidWindow, req.CampaignDuration.EndDate, req.CampaignDuration.StartDate)
	}
	if len(req.ContentInventory) == 0 {
		return ErrEmptyInventory
	}
	if len(req.AudienceSegments) == 0 {
		return ErrEmptySegments
	}
	if req.PostingFrequency.MinPostsPerDay < 0 || req.PostingFrequency.MaxPostsPerDay < 0 ||
		req.PostingFrequency.MaxPostsPerDay < req.PostingFrequency.MinPostsPerDay {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidFrequency,
			req.PostingFrequency.MinPostsPerDay, req.PostingFrequency.MaxPostsPerDay)
	}
	return nil
}

// SlotCount computes the conservative target slot count for the window.
// Exposed for insight reporting and tests.
func (b *Builder) SlotCount(totalDays int, freq domain.PostingFrequency, keyDates int) int {
	avgPerDay := (float64(freq.MinPostsPerDay) + float64(freq.MaxPostsPerDay)) / 2
	postsPerWeek := avgPerDay * 7

	if freq.MinPostsPerDay >= 1 {
		// Caller explicitly asked for daily posting; respect it but cap.
		postsPerWeek = math.Min(postsPerWeek, b.policy.ExplicitDailyPostsPerWeek)
	} else {
		postsPerWeek = math.Min(postsPerWeek, b.policy.ConservativePostsPerWeek)
	}

	total := int(math.Round(float64(totalDays) / 7 * postsPerWeek))

	minSlots := keyDates + 2
	if minSlots < 1 {
		minSlots = 1
	}
	maxSlots := b.policy.MaxSlots
	if totalDays < maxSlots {
		maxSlots = totalDays
	}

	if total > maxSlots {
		total = maxSlots
	}
	if total < minSlots {
		total = minSlots
	}
	return total
}

// Build produces an evenly spaced, priority-aware timeline. Called when
// the planner is unavailable or returned unparseable output. The output is
// fully deterministic for fixed inputs.
func (b *Builder) Build(req domain.TimelineRequest) ([]domain.TimelineSlot, error) {
	if err := b.Validate(req); err != nil {
		return nil, err
	}

	start, end, err := req.CampaignDuration.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	totalDays, _ := req.CampaignDuration.TotalDays()

	totalSlots := b.SlotCount(totalDays, req.PostingFrequency, len(req.KeyDates))
	keyDates := NewPriorityDateIndex(req.KeyDates)

	timeSlots := req.OptimalPostingTimes.TimeSlots
	if len(timeSlots) == 0 {
		timeSlots = defaultTimeSlots
	}

	slots := make([]domain.TimelineSlot, 0, totalSlots)
	for slotID := 1; slotID <= totalSlots; slotID++ {
		// Distribute evenly: slot i lands floor((i-1)*days/slots) days in.
		dayOffset := (slotID - 1) * totalDays / totalSlots
		scheduled := start.AddDate(0, 0, dayOffset)
		if scheduled.After(end) {
			scheduled = end
		}
		dateStr := scheduled.Format(domain.DateFormat)

		item := req.ContentInventory[slotID%len(req.ContentInventory)]
		segment := req.AudienceSegments[slotID%len(req.AudienceSegments)]

		slots = append(slots, domain.TimelineSlot{
			TimelineSlotID: fmt.Sprintf("slot_%03d", slotID),
			ScheduledDate:  dateStr,
			ContentType:    item.ContentType,
			Platform:       item.Platform,
			TargetSegment:  segment,
			Priority:       keyDates.Priority(dateStr),
			OptimalTime:    timeSlots[slotID%len(timeSlots)],
			Reasoning: fmt.Sprintf(
				"Distributed slot %d for %s audience on %s during optimal engagement time",
				slotID, segment, dateStr),
		})
	}

	// Stable sort keeps the original slot order for same-day slots.
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].ScheduledDate < slots[j].ScheduledDate
	})

	return slots, nil
}

// parseDate is a small helper for enrichment math; bad dates return zero.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(domain.DateFormat, s)
	return t, err == nil
}
