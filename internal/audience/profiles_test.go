package audience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileForMatchesKeywords(t *testing.T) {
	cases := []struct {
		segment string
		style   string
		firstHr string
	}{
		{"Young Professionals", "informational", "08:00"},
		{"small business owners", "informational", "08:00"},
		{"Millennials", "visual", "11:00"},
		{"Gen Z creators", "visual", "11:00"},
		{"fitness enthusiasts", "motivational", "06:00"},
		{"Health-conscious parents", "motivational", "06:00"},
		{"pet owners", "general", "09:00"},
	}

	for _, tc := range cases {
		p := ProfileFor(tc.segment)
		assert.Equal(t, tc.style, p.EngagementStyle, tc.segment)
		assert.Equal(t, tc.firstHr, p.PeakHours[0], tc.segment)
		assert.Equal(t, tc.segment, p.Segment)
	}
}

func TestProfilesPreservesOrder(t *testing.T) {
	profiles := Profiles([]string{"students", "professionals"})

	assert.Len(t, profiles, 2)
	assert.Equal(t, "students", profiles[0].Segment)
	assert.Equal(t, "professionals", profiles[1].Segment)
}
