package domain

// GeneratedCopy is a copy asset produced by an external content generator.
// Consumed read-only by the asset matcher.
type GeneratedCopy struct {
	CopyID    string   `json:"copy_id"`
	CopyText  string   `json:"copy_text"`
	WordCount int      `json:"word_count"`
	Hashtags  []string `json:"hashtags"`
	Emojis    []string `json:"emojis"`
}

// GeneratedImage is an image asset produced by an external image generator.
// Consumed read-only. The matcher guarantees no image is assigned twice
// until every image in the pool has been assigned at least once.
type GeneratedImage struct {
	ImageID  string         `json:"image_id"`
	ImageURL string         `json:"image_url"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// PlatformSpecifications carries the constraints of the posting platform.
type PlatformSpecifications struct {
	PlatformName             string   `json:"platform_name"`
	MaxCaptionLength         int      `json:"max_caption_length"`
	SupportedFormats         []string `json:"supported_formats"`
	AspectRatioRequirements  string   `json:"aspect_ratio_requirements"`
}

// ContentPackage bundles the copy and assets chosen for one schedule item.
type ContentPackage struct {
	CopyID    string   `json:"copy_id"`
	CopyText  string   `json:"copy_text"`
	AssetIDs  []string `json:"asset_ids"`
	AssetURLs []string `json:"asset_urls"`
}

// PostingParameters are the platform posting options for one item.
type PostingParameters struct {
	Hashtags    []string `json:"hashtags"`
	Mentions    []string `json:"mentions"`
	LocationTag *string  `json:"location_tag"`
}

// ComplianceCheck records whether an item fits the platform constraints.
type ComplianceCheck struct {
	CaptionLength      int  `json:"caption_length"`
	CaptionWithinLimit bool `json:"caption_within_limit"`
	HashtagCount       int  `json:"hashtag_count"`
	HashtagAppropriate bool `json:"hashtag_appropriate"`
	OverallCompliance  bool `json:"overall_compliance"`
}

// ContentOptimization is derived quality metadata attached to each item.
type ContentOptimization struct {
	PlatformCompliance ComplianceCheck `json:"platform_compliance"`
	EngagementScore    float64         `json:"engagement_score"`
	ContentQuality     string          `json:"content_quality"`
}

// DistributionScheduleItem is one concrete "post this, here, at this time"
// instruction, derived by combining a timeline slot with matched assets.
type DistributionScheduleItem struct {
	ScheduleItemID    string              `json:"schedule_item_id"`
	ScheduledDatetime string              `json:"scheduled_datetime"`
	Platform          string              `json:"platform"`
	ContentPackage    ContentPackage      `json:"content_package"`
	PostingParameters PostingParameters   `json:"posting_parameters"`
	TargetSegment     string              `json:"target_segment"`
	Optimization      ContentOptimization `json:"content_optimization,omitempty"`
	ExecutionNotes    []string            `json:"execution_notes,omitempty"`
}

// DistributionRequest is the input for one distribution scheduling run.
type DistributionRequest struct {
	OptimizedTimeline      []TimelineSlot         `json:"optimized_timeline"`
	GeneratedCopies        []GeneratedCopy        `json:"generated_copies"`
	GeneratedImages        []GeneratedImage       `json:"generated_images,omitempty"`
	VideoURL               string                 `json:"video_url,omitempty"`
	PlatformSpecifications PlatformSpecifications `json:"platform_specifications"`
}

// CampaignCoverage summarizes how much of the timeline and content pool a
// distribution run consumed.
type CampaignCoverage struct {
	TimelineCoverage     string `json:"timeline_coverage"`
	ContentUtilization   string `json:"content_utilization"`
	PlatformDistribution string `json:"platform_distribution"` // "balanced" | "focused"
	ScheduleEfficiency   string `json:"schedule_efficiency"`
}

// DistributionSummary is the reporting block of a distribution response.
type DistributionSummary struct {
	TotalPosts      int              `json:"total_posts"`
	PostsByPlatform map[string]int   `json:"posts_by_platform"`
	Coverage        CampaignCoverage `json:"campaign_coverage"`
}

// DistributionResponse is the caller-facing result of a distribution run.
type DistributionResponse struct {
	Schedule        []DistributionScheduleItem `json:"distribution_schedule"`
	UnmatchedSlots  []TimelineSlot             `json:"unmatched_slots,omitempty"`
	Summary         DistributionSummary        `json:"schedule_summary"`
	ExecutionStatus ExecutionStatus            `json:"execution_status"`
}
