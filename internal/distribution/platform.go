package distribution

import (
	"fmt"
	"strings"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// PlatformAnalysis carries derived best practices for the posting platform.
// It feeds the planner prompt and the execution notes.
type PlatformAnalysis struct {
	PlatformName            string            `json:"platform_name"`
	MaxCaptionLength        int               `json:"max_caption_length"`
	SupportedFormats        []string          `json:"supported_formats"`
	AspectRatioRequirements string            `json:"aspect_ratio_requirements"`
	BestPractices           map[string]string `json:"best_practices"`
	ContentOptimization     map[string]string `json:"content_optimization"`
}

// AnalyzePlatform derives best practices from the platform name. Matching
// is case-insensitive substring.
func AnalyzePlatform(specs domain.PlatformSpecifications) PlatformAnalysis {
	analysis := PlatformAnalysis{
		PlatformName:            specs.PlatformName,
		MaxCaptionLength:        specs.MaxCaptionLength,
		SupportedFormats:        specs.SupportedFormats,
		AspectRatioRequirements: specs.AspectRatioRequirements,
	}

	name := strings.ToLower(specs.PlatformName)
	switch {
	case strings.Contains(name, "instagram"):
		analysis.BestPractices = map[string]string{
			"hashtag_count": "5-10 hashtags optimal",
			"caption_style": "Engaging, visual-first content",
			"posting_times": "Morning (8-9 AM) and Evening (6-8 PM)",
			"content_mix":   "70% visual, 30% text",
		}
		analysis.ContentOptimization = map[string]string{
			"image_priority":      "High-quality, visually appealing images",
			"caption_optimization": "Hook in first line, call-to-action at end",
			"engagement_tactics":  "Ask questions, use polls, encourage shares",
		}
	case strings.Contains(name, "facebook"):
		analysis.BestPractices = map[string]string{
			"hashtag_count": "1-3 hashtags maximum",
			"caption_style": "Informative, community-focused",
			"posting_times": "Midday (12-1 PM) and Evening (7-9 PM)",
			"content_mix":   "60% text, 40% visual",
		}
		analysis.ContentOptimization = map[string]string{
			"image_priority":      "Clear, informative images",
			"caption_optimization": "Detailed descriptions, community engagement",
			"engagement_tactics":  "Encourage comments, shares, and discussions",
		}
	case strings.Contains(name, "linkedin"):
		analysis.BestPractices = map[string]string{
			"hashtag_count": "3-5 professional hashtags",
			"caption_style": "Professional, industry-focused",
			"posting_times": "Morning (8-9 AM) and Lunch (12-1 PM)",
			"content_mix":   "80% text, 20% visual",
		}
		analysis.ContentOptimization = map[string]string{
			"image_priority":      "Professional, data-driven visuals",
			"caption_optimization": "Industry insights, professional tone",
			"engagement_tactics":  "Encourage professional discussions, networking",
		}
	default:
		analysis.BestPractices = map[string]string{
			"hashtag_count": "3-7 hashtags",
			"caption_style": "Balanced, engaging content",
			"posting_times": "Peak hours vary by platform",
			"content_mix":   "Balanced text and visual content",
		}
		analysis.ContentOptimization = map[string]string{
			"image_priority":      "High-quality, relevant images",
			"caption_optimization": "Clear, engaging captions",
			"engagement_tactics":  "Encourage interaction and sharing",
		}
	}

	return analysis
}

// checkCompliance verifies a schedule item against the platform limits.
// Hashtag counts above ten fail the appropriateness check but do not fail
// overall compliance; only caption overflow does.
func checkCompliance(item domain.DistributionScheduleItem, specs domain.PlatformSpecifications) domain.ComplianceCheck {
	captionLen := len(item.ContentPackage.CopyText)
	hashtags := len(item.PostingParameters.Hashtags)

	check := domain.ComplianceCheck{
		CaptionLength:      captionLen,
		CaptionWithinLimit: captionLen <= specs.MaxCaptionLength,
		HashtagCount:       hashtags,
		HashtagAppropriate: hashtags <= 10,
		OverallCompliance:  true,
	}
	if !check.CaptionWithinLimit {
		check.OverallCompliance = false
	}
	return check
}

// itemEngagementScore predicts engagement for a schedule item on a 0..1
// scale from hashtag count, visual assets, and copy substance.
func itemEngagementScore(item domain.DistributionScheduleItem) float64 {
	score := 0.5

	hashtags := len(item.PostingParameters.Hashtags)
	if hashtags >= 3 && hashtags <= 7 {
		score += 0.2
	}
	if len(item.ContentPackage.AssetURLs) > 0 {
		score += 0.2
	}
	if len(item.ContentPackage.CopyText) > 50 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// assessQuality grades an item by how many content elements it carries.
func assessQuality(item domain.DistributionScheduleItem) string {
	elements := 0
	if item.ContentPackage.CopyText != "" {
		elements++
	}
	if len(item.ContentPackage.AssetURLs) > 0 {
		elements++
	}
	if len(item.PostingParameters.Hashtags) > 0 {
		elements++
	}

	switch {
	case elements >= 3:
		return "high"
	case elements >= 2:
		return "medium"
	default:
		return "basic"
	}
}

// executionNotes flags follow-ups for the person executing the post.
func executionNotes(item domain.DistributionScheduleItem, specs domain.PlatformSpecifications) []string {
	var notes []string

	captionLen := len(item.ContentPackage.CopyText)
	if float64(captionLen) > float64(specs.MaxCaptionLength)*0.9 {
		notes = append(notes, fmt.Sprintf(
			"Caption length (%d chars) is close to platform limit (%d chars)",
			captionLen, specs.MaxCaptionLength))
	}
	if n := len(item.PostingParameters.Hashtags); n > 7 {
		notes = append(notes, fmt.Sprintf(
			"Consider reducing hashtag count (%d) for better engagement", n))
	}
	if len(item.ContentPackage.AssetURLs) == 0 {
		notes = append(notes, "No visual assets assigned - consider adding images for better engagement")
	}

	return notes
}
