package distribution

import (
	"math/rand"
	"strings"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// MatchedSlot pairs a timeline slot with its assigned content. A slot is
// matched if and only if it received copy; images alone do not match.
type MatchedSlot struct {
	Slot   domain.TimelineSlot
	Copy   *domain.GeneratedCopy
	Images []domain.GeneratedImage
	Score  float64
}

// Utilization reports how much of the content pool a match pass consumed.
type Utilization struct {
	CopiesUsed  int `json:"copies_used"`
	ImagesUsed  int `json:"images_used"`
	TotalCopies int `json:"total_copies"`
	TotalImages int `json:"total_images"`
}

// MatchResult is the outcome of matching content assets to a timeline.
type MatchResult struct {
	Matched     []MatchedSlot
	Unmatched   []domain.TimelineSlot
	Utilization Utilization
}

// Matcher assigns copy and images to timeline slots. Copy selection is
// randomized within the matching pool, so the caller injects the RNG and
// controls the seed. Image assignment is use-once-then-cycle: every image
// is assigned once before any image repeats.
type Matcher struct {
	rng *rand.Rand
}

// NewMatcher creates a matcher using the given RNG.
func NewMatcher(rng *rand.Rand) *Matcher {
	return &Matcher{rng: rng}
}

// typedPoolScore and generalPoolScore weight how well the chosen copy fits
// the slot's content type.
const (
	typedPoolScore   = 0.4
	generalPoolScore = 0.2
	imageScore       = 0.3
)

// buildCopyPools groups copies by the type keyword embedded in their IDs.
// The general pool holds every copy and backstops slots whose content type
// has no dedicated pool.
func buildCopyPools(copies []domain.GeneratedCopy) map[string][]domain.GeneratedCopy {
	pools := map[string][]domain.GeneratedCopy{
		"general": copies,
	}
	for _, c := range copies {
		id := strings.ToLower(c.CopyID)
		if strings.Contains(id, "social") || strings.Contains(id, "caption") {
			pools["social_caption"] = append(pools["social_caption"], c)
		}
		if strings.Contains(id, "ad") {
			pools["ad_copy"] = append(pools["ad_copy"], c)
		}
		if strings.Contains(id, "blog") {
			pools["blog_post"] = append(pools["blog_post"], c)
		}
		if strings.Contains(id, "email") {
			pools["email"] = append(pools["email"], c)
		}
		if strings.Contains(id, "educational") {
			pools["educational"] = append(pools["educational"], c)
		}
	}
	return pools
}

// maxImagesFor returns the platform's image cap per post.
func maxImagesFor(platform string) int {
	lower := strings.ToLower(platform)
	if strings.Contains(lower, "instagram") || strings.Contains(lower, "facebook") {
		return 2
	}
	return 1
}

// Match assigns content to every slot in timeline order.
func (m *Matcher) Match(slots []domain.TimelineSlot, copies []domain.GeneratedCopy, images []domain.GeneratedImage) MatchResult {
	result := MatchResult{
		Utilization: Utilization{TotalCopies: len(copies), TotalImages: len(images)},
	}

	pools := buildCopyPools(copies)
	usedImageIDs := make(map[string]struct{}, len(images))
	matchedWithImages := 0

	for _, slot := range slots {
		chosen, score := m.selectCopy(pools, slot.ContentType)
		assigned := m.assignImages(slot.Platform, images, usedImageIDs, matchedWithImages)
		if len(assigned) > 0 {
			score += imageScore
		}

		if chosen == nil {
			result.Unmatched = append(result.Unmatched, slot)
			continue
		}

		result.Matched = append(result.Matched, MatchedSlot{
			Slot:   slot,
			Copy:   chosen,
			Images: assigned,
			Score:  score,
		})
		if len(assigned) > 0 {
			matchedWithImages++
		}
		result.Utilization.CopiesUsed++
		result.Utilization.ImagesUsed += len(assigned)
	}

	return result
}

// selectCopy picks from the pool keyed by the slot's content type, the
// general pool included, falling back to the general pool with a lower
// match score when no pool carries that key.
func (m *Matcher) selectCopy(pools map[string][]domain.GeneratedCopy, contentType string) (*domain.GeneratedCopy, float64) {
	key := strings.ToLower(contentType)
	if pool := pools[key]; len(pool) > 0 {
		pick := pool[m.rng.Intn(len(pool))]
		return &pick, typedPoolScore
	}
	if general := pools["general"]; len(general) > 0 {
		pick := general[m.rng.Intn(len(general))]
		return &pick, generalPoolScore
	}
	return nil, 0
}

// assignImages hands out up to the platform cap. Unused images go first, in
// pool order, and a first assignment never mixes unused with recycled
// images. Once every image has been used the pool cycles, offset by how
// many matched slots already carry images so consecutive posts rotate
// through different images.
func (m *Matcher) assignImages(platform string, images []domain.GeneratedImage, usedIDs map[string]struct{}, matchedWithImages int) []domain.GeneratedImage {
	if len(images) == 0 {
		return nil
	}
	maxImages := maxImagesFor(platform)

	var unused []domain.GeneratedImage
	for _, img := range images {
		if _, ok := usedIDs[img.ImageID]; !ok {
			unused = append(unused, img)
		}
	}

	if len(unused) > 0 {
		n := maxImages
		if len(unused) < n {
			n = len(unused)
		}
		assigned := unused[:n]
		for _, img := range assigned {
			usedIDs[img.ImageID] = struct{}{}
		}
		return assigned
	}

	start := matchedWithImages % len(images)
	n := maxImages
	if len(images) < n {
		n = len(images)
	}
	assigned := make([]domain.GeneratedImage, 0, n)
	for i := 0; i < n; i++ {
		assigned = append(assigned, images[(start+i)%len(images)])
	}
	return assigned
}
