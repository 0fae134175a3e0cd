package mappers

import (
	"fmt"

	"course-forge/internal/domain"
)

func CourseTitle(topic string) string {
	return fmt.Sprintf("Complete %s Masterclass", topic)
}

// CourseFromOutline assembles content, pricing and hooks into a Course.
func CourseFromOutline(o domain.Outline) (domain.Course, error) {
	pricing, err := PricingFromOutline(o)
	if err != nil {
		return domain.Course{}, fmt.Errorf("mappers: course %q: %w", o.Topic, err)
	}

	return domain.Course{
		Title:            CourseTitle(o.Topic),
		Outline:          o,
		ContentStructure: ContentFromOutline(o),
		PricingStrategy:  pricing,
		MarketingHooks:   HooksFromOutline(o),
	}, nil
}
