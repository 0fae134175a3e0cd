package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"course-forge/internal/domain"
)

// Keep header order EXACT, downstream sheets index by column.
var catalogHeader = []string{
	"COURSE_ID",
	"COURSE_TITLE",
	"TOPIC",
	"MARKET_DEMAND",
	"COMPETITION",
	"PRICE_RANGE",
	"DURATION",
	"FORMAT",
	"TARGET_AUDIENCE",
	"MODULE_COUNT",
	"MODULES",
	"LAUNCH_PRICE",
	"REGULAR_PRICE",
	"BUNDLE_PRICE",
	"PAYMENT_PLANS",
	"DELIVERY_PLATFORM",
	"MARKETING_CHANNELS",
	"REVENUE_CONSERVATIVE",
	"REVENUE_REALISTIC",
	"REVENUE_OPTIMISTIC",
	"LAUNCH_TIMELINE",
}

// WriteCatalogCSV writes one row per package.
func WriteCatalogCSV(w io.Writer, pkgs []domain.Package) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(catalogHeader); err != nil {
		return err
	}

	for _, p := range pkgs {
		if err := cw.Write(toCatalogRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toCatalogRow(p domain.Package) []string {
	c := p.Course
	md := c.Outline.MarketData

	priceRange := ""
	if md.PriceRange.Valid() {
		priceRange = md.PriceRange.String()
	}

	return []string{
		buildCourseID(c.Outline.Topic),             // COURSE_ID
		c.Title,                                    // COURSE_TITLE
		c.Outline.Topic,                            // TOPIC
		md.MarketDemand.String(),                   // MARKET_DEMAND
		md.Competition.String(),                    // COMPETITION
		priceRange,                                 // PRICE_RANGE
		c.Outline.Duration,                         // DURATION
		c.Outline.Format,                           // FORMAT
		c.Outline.TargetAudience,                   // TARGET_AUDIENCE
		strconv.Itoa(len(c.Outline.Modules)),       // MODULE_COUNT
		joinClean(c.ContentStructure.ModuleVideos), // MODULES
		c.PricingStrategy.LaunchPrice,              // LAUNCH_PRICE
		c.PricingStrategy.RegularPrice,             // REGULAR_PRICE
		c.PricingStrategy.BundlePrice,              // BUNDLE_PRICE
		c.PricingStrategy.PaymentPlans,             // PAYMENT_PLANS
		p.DeliveryPlatform,                         // DELIVERY_PLATFORM
		joinClean(p.MarketingChannels),             // MARKETING_CHANNELS
		p.RevenueProjection.Conservative,           // REVENUE_CONSERVATIVE
		p.RevenueProjection.Realistic,              // REVENUE_REALISTIC
		p.RevenueProjection.Optimistic,             // REVENUE_OPTIMISTIC
		p.LaunchTimeline,                           // LAUNCH_TIMELINE
	}
}

// joinClean joins with " | " so list cells never need quoting for commas.
func joinClean(in []string) string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		s = strings.ReplaceAll(s, "\n", " ")
		s = strings.ReplaceAll(s, "\r", " ")
		out = append(out, s)
	}
	return strings.Join(out, " | ")
}
