package outreach

import (
	"fmt"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// buildPreparation derives research notes, talking points, and a follow-up
// plan for one scheduled call.
func buildPreparation(item domain.CallScheduleItem) domain.CallPreparation {
	contact := item.LeadContactInfo

	return domain.CallPreparation{
		ResearchNotes: []string{
			fmt.Sprintf("Research %s recent news and developments", contact.CompanyName),
			fmt.Sprintf("Understand %s industry trends and challenges", contact.Industry),
			"Review contact's LinkedIn profile and background",
			"Prepare industry-specific value propositions",
		},
		TalkingPoints: []string{
			"Opening: Introduce yourself and company",
			fmt.Sprintf("Objective: %s", item.CallObjective),
			"Discovery: Ask about current challenges",
			"Value proposition: Present relevant solutions",
			"Next steps: Schedule follow-up or demo",
		},
		FollowUpPlan: followUpPlan(item.PriorityLevel),
	}
}

func followUpPlan(priority domain.PriorityTier) string {
	switch priority {
	case domain.PriorityHigh:
		return "Send detailed proposal within 24 hours, schedule demo within 48 hours"
	case domain.PriorityMedium:
		return "Send follow-up email within 48 hours, schedule next call within 1 week"
	default:
		return "Send follow-up email within 1 week, add to nurture campaign"
	}
}

// buildSuccessMetrics predicts the call outcome and the next steps.
func buildSuccessMetrics(item domain.CallScheduleItem) domain.CallSuccessMetrics {
	return domain.CallSuccessMetrics{
		ExpectedOutcome: expectedOutcome(item),
		NextSteps:       nextSteps(item.PriorityLevel),
	}
}

func expectedOutcome(item domain.CallScheduleItem) string {
	switch {
	case item.PriorityLevel == domain.PriorityHigh && item.ExpectedDuration >= 30:
		return "High probability of scheduling demo or next meeting"
	case item.PriorityLevel == domain.PriorityHigh:
		return "Good chance of interest and follow-up"
	case item.PriorityLevel == domain.PriorityMedium:
		return "Moderate interest, may need nurturing"
	default:
		return "Initial contact, build awareness"
	}
}

func nextSteps(priority domain.PriorityTier) string {
	switch priority {
	case domain.PriorityHigh:
		return "Schedule product demo, send proposal, involve sales manager"
	case domain.PriorityMedium:
		return "Send case studies, schedule follow-up call, add to nurture sequence"
	default:
		return "Add to nurture campaign, send educational content, quarterly check-in"
	}
}
