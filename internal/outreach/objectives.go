package outreach

import (
	"strings"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// CallObjective derives the objective for a call from the lead's industry,
// role, and company size. Industry rules win over company-size rules.
func CallObjective(lead domain.DiscoveredLead) string {
	industry := strings.ToLower(lead.Industry)
	jobTitle := strings.ToLower(lead.JobTitle)
	companySize := strings.ToLower(lead.CompanySize)

	switch {
	case strings.Contains(industry, "technology") || strings.Contains(industry, "software"):
		if strings.Contains(jobTitle, "cto") || strings.Contains(jobTitle, "vp") {
			return "Discuss technology solutions and digital transformation opportunities"
		}
		return "Introduce our software solutions and schedule product demo"
	case strings.Contains(industry, "healthcare"):
		return "Present healthcare solutions and compliance benefits"
	case strings.Contains(industry, "finance") || strings.Contains(industry, "banking"):
		return "Discuss financial services solutions and security features"
	case strings.Contains(industry, "retail") || strings.Contains(industry, "ecommerce"):
		return "Present retail solutions and customer engagement tools"
	case strings.Contains(industry, "manufacturing"):
		return "Discuss manufacturing solutions and operational efficiency"
	}

	switch {
	case strings.Contains(companySize, "enterprise") || strings.Contains(companySize, "large"):
		return "Schedule executive meeting to discuss enterprise solutions"
	case strings.Contains(companySize, "small") || strings.Contains(companySize, "startup"):
		return "Introduce our solutions and discuss growth opportunities"
	default:
		return "Introduce our services and explore partnership opportunities"
	}
}

// EstimateDuration predicts call length in minutes from a 15-minute base,
// adjusted for company size, seniority, and lead quality, clamped to the
// 10-60 minute range.
func EstimateDuration(lead domain.DiscoveredLead) int {
	duration := 15

	companySize := strings.ToLower(lead.CompanySize)
	if strings.Contains(companySize, "enterprise") || strings.Contains(companySize, "large") {
		duration += 10
	} else if strings.Contains(companySize, "small") || strings.Contains(companySize, "startup") {
		duration -= 5
	}

	jobTitle := strings.ToLower(lead.JobTitle)
	if strings.Contains(jobTitle, "ceo") || strings.Contains(jobTitle, "president") {
		duration += 15
	} else if strings.Contains(jobTitle, "manager") || strings.Contains(jobTitle, "director") {
		duration += 5
	}

	if lead.QualificationScore >= 80 {
		duration += 10
	} else if lead.QualificationScore >= 60 {
		duration += 5
	}

	if duration > 60 {
		duration = 60
	}
	if duration < 10 {
		duration = 10
	}
	return duration
}
