package distribution

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

func newTestMatcher() *Matcher {
	return NewMatcher(rand.New(rand.NewSource(1)))
}

func slotsOn(platform string, n int) []domain.TimelineSlot {
	slots := make([]domain.TimelineSlot, 0, n)
	for i := 1; i <= n; i++ {
		slots = append(slots, domain.TimelineSlot{
			TimelineSlotID: fmt.Sprintf("slot_%03d", i),
			ScheduledDate:  fmt.Sprintf("2025-12-%02d", i),
			ContentType:    "social_caption",
			Platform:       platform,
			TargetSegment:  "professionals",
			OptimalTime:    "09:00",
		})
	}
	return slots
}

func imagePool(n int) []domain.GeneratedImage {
	images := make([]domain.GeneratedImage, 0, n)
	for i := 1; i <= n; i++ {
		images = append(images, domain.GeneratedImage{
			ImageID:  fmt.Sprintf("img_%03d", i),
			ImageURL: fmt.Sprintf("https://cdn.example.com/img_%03d.png", i),
		})
	}
	return images
}

var testCopies = []domain.GeneratedCopy{
	{CopyID: "social_copy_1", CopyText: "social one", Hashtags: []string{"a", "b", "c"}},
	{CopyID: "social_copy_2", CopyText: "social two"},
	{CopyID: "ad_copy_1", CopyText: "ad one"},
	{CopyID: "blog_copy_1", CopyText: "blog one"},
}

func TestMatchCopyFromTypedPool(t *testing.T) {
	m := newTestMatcher()

	res := m.Match(slotsOn("linkedin", 4), testCopies, nil)

	require.Len(t, res.Matched, 4)
	assert.Empty(t, res.Unmatched)
	for _, ms := range res.Matched {
		// social_caption slots only draw from the social pool.
		assert.Contains(t, []string{"social_copy_1", "social_copy_2"}, ms.Copy.CopyID)
		assert.Equal(t, typedPoolScore, ms.Score)
	}
	assert.Equal(t, 4, res.Utilization.CopiesUsed)
}

func TestMatchGeneralContentTypeScoresAsTypedPool(t *testing.T) {
	m := newTestMatcher()
	slots := slotsOn("linkedin", 1)
	slots[0].ContentType = "general"

	res := m.Match(slots, testCopies, nil)

	// "general" is a keyed pool, not a fallback: direct hits score full.
	require.Len(t, res.Matched, 1)
	assert.Equal(t, typedPoolScore, res.Matched[0].Score)
}

func TestMatchCopyFallsBackToGeneralPool(t *testing.T) {
	m := newTestMatcher()
	slots := slotsOn("linkedin", 1)
	slots[0].ContentType = "podcast"

	res := m.Match(slots, testCopies, nil)

	require.Len(t, res.Matched, 1)
	assert.Equal(t, generalPoolScore, res.Matched[0].Score)
}

func TestMatchNoCopiesLeavesSlotsUnmatched(t *testing.T) {
	m := newTestMatcher()

	res := m.Match(slotsOn("linkedin", 3), nil, imagePool(2))

	assert.Empty(t, res.Matched)
	assert.Len(t, res.Unmatched, 3)
	assert.Equal(t, 0, res.Utilization.CopiesUsed)
}

func TestMatchImagesUseOnceThenCycle(t *testing.T) {
	m := newTestMatcher()

	// 8 single-image slots over a 5-image pool: the first five slots consume
	// the pool in order, then slots six through eight cycle from the start.
	res := m.Match(slotsOn("linkedin", 8), testCopies, imagePool(5))
	require.Len(t, res.Matched, 8)

	for i := 0; i < 5; i++ {
		require.Len(t, res.Matched[i].Images, 1)
		assert.Equal(t, fmt.Sprintf("img_%03d", i+1), res.Matched[i].Images[0].ImageID)
	}
	for i, want := range []string{"img_001", "img_002", "img_003"} {
		require.Len(t, res.Matched[5+i].Images, 1)
		assert.Equal(t, want, res.Matched[5+i].Images[0].ImageID)
	}

	assert.Equal(t, 8, res.Utilization.ImagesUsed)
	assert.Equal(t, 5, res.Utilization.TotalImages)
}

func TestMatchInstagramTakesTwoImages(t *testing.T) {
	m := newTestMatcher()

	res := m.Match(slotsOn("instagram", 4), testCopies, imagePool(5))
	require.Len(t, res.Matched, 4)

	// Slots one and two take pairs, slot three takes the last unused image
	// alone (a first assignment never mixes unused with recycled), and slot
	// four starts the cycle offset by the three image-carrying slots.
	assert.Equal(t, []string{"img_001", "img_002"}, imageIDs(res.Matched[0].Images))
	assert.Equal(t, []string{"img_003", "img_004"}, imageIDs(res.Matched[1].Images))
	assert.Equal(t, []string{"img_005"}, imageIDs(res.Matched[2].Images))
	assert.Equal(t, []string{"img_004", "img_005"}, imageIDs(res.Matched[3].Images))
}

func TestMatchNoImages(t *testing.T) {
	m := newTestMatcher()

	res := m.Match(slotsOn("instagram", 2), testCopies, nil)

	require.Len(t, res.Matched, 2)
	for _, ms := range res.Matched {
		assert.Empty(t, ms.Images)
	}
	assert.Equal(t, 0, res.Utilization.ImagesUsed)
}

func TestMatchDeterministicWithSeed(t *testing.T) {
	first := NewMatcher(rand.New(rand.NewSource(7))).Match(slotsOn("linkedin", 6), testCopies, imagePool(3))
	second := NewMatcher(rand.New(rand.NewSource(7))).Match(slotsOn("linkedin", 6), testCopies, imagePool(3))

	assert.Equal(t, first, second)
}

func imageIDs(images []domain.GeneratedImage) []string {
	ids := make([]string, 0, len(images))
	for _, img := range images {
		ids = append(ids, img.ImageID)
	}
	return ids
}
