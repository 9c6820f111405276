package outreach

import (
	"strings"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// TimezoneAnalysis describes when calls land best in the target timezone.
// It feeds the planner prompt context.
type TimezoneAnalysis struct {
	Timezone               string            `json:"timezone"`
	PreferredHours         []string          `json:"preferred_hours"`
	AvoidDates             []string          `json:"avoid_dates"`
	OptimalCallingWindows  map[string]string `json:"optimal_calling_windows"`
	TimezoneConsiderations map[string]string `json:"timezone_considerations"`
}

// AnalyzeCallWindows derives optimal calling windows for the preferences'
// timezone. Matching is case-insensitive substring over common US zone
// names; anything else gets the generic business-hours analysis.
func AnalyzeCallWindows(prefs domain.CallWindowPreferences) TimezoneAnalysis {
	analysis := TimezoneAnalysis{
		Timezone:       prefs.Timezone,
		PreferredHours: prefs.PreferredHours,
		AvoidDates:     prefs.AvoidDates,
	}

	tz := strings.ToLower(prefs.Timezone)
	switch {
	case strings.Contains(tz, "est") || strings.Contains(tz, "eastern"):
		analysis.OptimalCallingWindows = map[string]string{
			"morning":   "09:00-11:00",
			"afternoon": "14:00-16:00",
			"evening":   "17:00-18:00",
		}
		analysis.TimezoneConsiderations = map[string]string{
			"business_hours": "9 AM - 6 PM EST",
			"lunch_break":    "12:00-13:00",
			"avoid_times":    "Early morning (before 9 AM), Late evening (after 6 PM)",
		}
	case strings.Contains(tz, "pst") || strings.Contains(tz, "pacific"):
		analysis.OptimalCallingWindows = map[string]string{
			"morning":   "10:00-12:00",
			"afternoon": "14:00-16:00",
			"evening":   "17:00-18:00",
		}
		analysis.TimezoneConsiderations = map[string]string{
			"business_hours": "9 AM - 6 PM PST",
			"lunch_break":    "12:00-13:00",
			"avoid_times":    "Early morning (before 9 AM), Late evening (after 6 PM)",
		}
	case strings.Contains(tz, "cst") || strings.Contains(tz, "central"):
		analysis.OptimalCallingWindows = map[string]string{
			"morning":   "09:30-11:30",
			"afternoon": "14:00-16:00",
			"evening":   "17:00-18:00",
		}
		analysis.TimezoneConsiderations = map[string]string{
			"business_hours": "9 AM - 6 PM CST",
			"lunch_break":    "12:00-13:00",
			"avoid_times":    "Early morning (before 9 AM), Late evening (after 6 PM)",
		}
	default:
		analysis.OptimalCallingWindows = map[string]string{
			"morning":   "09:00-11:00",
			"afternoon": "14:00-16:00",
			"evening":   "17:00-18:00",
		}
		analysis.TimezoneConsiderations = map[string]string{
			"business_hours": "9 AM - 6 PM",
			"lunch_break":    "12:00-13:00",
			"avoid_times":    "Early morning, Late evening",
		}
	}

	return analysis
}
