// Package audience derives behavior profiles from audience segment names.
// Profiles feed the planner prompt and the distribution stage's posting
// parameter defaults.
package audience

import "strings"

// BehaviorProfile describes when a segment is most reachable and how it
// tends to engage.
type BehaviorProfile struct {
	Segment         string   `json:"segment"`
	PeakHours       []string `json:"peak_hours"`
	PeakDays        []string `json:"peak_days"`
	EngagementStyle string   `json:"engagement_style"`
}

// defaultProfile is used when no keyword matches the segment name.
var defaultProfile = BehaviorProfile{
	PeakHours:       []string{"09:00", "12:00", "18:00"},
	PeakDays:        []string{"Monday", "Wednesday", "Friday"},
	EngagementStyle: "general",
}

// ProfileFor matches a segment name against known behavior patterns. The
// match is case-insensitive substring matching, first pattern wins.
func ProfileFor(segment string) BehaviorProfile {
	lower := strings.ToLower(segment)

	var profile BehaviorProfile
	switch {
	case strings.Contains(lower, "professional") || strings.Contains(lower, "business"):
		profile = BehaviorProfile{
			PeakHours:       []string{"08:00", "12:00", "17:00"},
			PeakDays:        []string{"Tuesday", "Wednesday", "Thursday"},
			EngagementStyle: "informational",
		}
	case strings.Contains(lower, "millennial") || strings.Contains(lower, "gen z"):
		profile = BehaviorProfile{
			PeakHours:       []string{"11:00", "15:00", "20:00"},
			PeakDays:        []string{"Friday", "Saturday", "Sunday"},
			EngagementStyle: "visual",
		}
	case strings.Contains(lower, "fitness") || strings.Contains(lower, "health"):
		profile = BehaviorProfile{
			PeakHours:       []string{"06:00", "12:00", "18:00"},
			PeakDays:        []string{"Monday", "Tuesday", "Saturday"},
			EngagementStyle: "motivational",
		}
	default:
		profile = defaultProfile
	}

	profile.Segment = segment
	return profile
}

// Profiles maps each segment to its behavior profile, preserving order.
func Profiles(segments []string) []BehaviorProfile {
	out := make([]BehaviorProfile, 0, len(segments))
	for _, s := range segments {
		out = append(out, ProfileFor(s))
	}
	return out
}
