package pipeline

import (
	"fmt"
	"io"

	"course-forge/internal/domain"
)

// PackageCourse bundles c for sale and writes the two-line summary to w.
func PackageCourse(w io.Writer, c domain.Course) (domain.Package, error) {
	pkg := domain.Package{
		Course:           c,
		DeliveryPlatform: "Teachable/Thinkific",
		MarketingChannels: []string{
			"Social media ads",
			"Affiliate partnerships",
			"Content marketing",
			"Email sequences",
		},
		RevenueProjection: domain.RevenueProjection{
			Conservative: "$5000/month",
			Realistic:    "$12500/month",
			Optimistic:   "$25000/month",
		},
		LaunchTimeline: "21 days",
	}

	if _, err := fmt.Fprintf(w, "📦 PACKAGED COURSE: %s\n", c.Title); err != nil {
		return domain.Package{}, fmt.Errorf("pipeline: write summary: %w", err)
	}
	if _, err := fmt.Fprintf(w, "💰 Revenue Projection: %s\n", pkg.RevenueProjection.Realistic); err != nil {
		return domain.Package{}, fmt.Errorf("pipeline: write summary: %w", err)
	}

	return pkg, nil
}
