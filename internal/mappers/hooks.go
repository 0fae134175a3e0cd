package mappers

import "course-forge/internal/domain"

// HooksFromOutline returns the marketing copy. The copy is the same for
// every outline.
func HooksFromOutline(_ domain.Outline) domain.MarketingHooks {
	return domain.MarketingHooks{
		PainPoints: []string{
			"Tired of manual repetitive tasks?",
			"Want to scale without hiring?",
			"Missing out on automation opportunities?",
		},
		Benefits: []string{
			"Save 10+ hours per week",
			"Increase productivity by 300%",
			"Generate passive income",
		},
		SocialProof: []string{
			"Join 1000+ successful students",
			"Average student saves $5000/month",
			"30-day money-back guarantee",
		},
	}
}
