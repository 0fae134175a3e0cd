package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"course-forge/internal/domain"
)

/*
Catalog XML layout:

<Course_Catalog>
  <Course course_id="CRS+crypto-trading-bots">
    <title>Complete Crypto Trading Bots Masterclass</title>
    <topic>Crypto Trading Bots</topic>
    <market_demand>Very High</market_demand>
    <competition>High</competition>
    <price_range>$497-1997</price_range>
    <duration>8 hours</duration>
    <format>Video + Code + Live trading</format>
    <target_audience>Traders, developers</target_audience>
    <modules>
      <module>Module 1: Crypto Market Fundamentals</module>
    </modules>
    <pricing>
      <launch_price>$998</launch_price>
      ...
    </pricing>
    ...
  </Course>
</Course_Catalog>
*/

type xmlCatalog struct {
	XMLName xml.Name    `xml:"Course_Catalog"`
	Courses []xmlCourse `xml:"Course"`
}

type xmlCourse struct {
	CourseID string `xml:"course_id,attr"`

	Title          string `xml:"title"`
	Topic          string `xml:"topic"`
	MarketDemand   string `xml:"market_demand,omitempty"`
	Competition    string `xml:"competition,omitempty"`
	PriceRange     string `xml:"price_range,omitempty"`
	Duration       string `xml:"duration,omitempty"`
	Format         string `xml:"format,omitempty"`
	TargetAudience string `xml:"target_audience,omitempty"`

	IntroVideo   string   `xml:"intro_video,omitempty"`
	Modules      []string `xml:"modules>module"`
	BonusContent []string `xml:"bonus_content>item,omitempty"`
	Assignments  []string `xml:"assignments>item,omitempty"`
	FinalProject string   `xml:"final_project,omitempty"`

	Pricing xmlPricing `xml:"pricing"`
	Hooks   xmlHooks   `xml:"marketing_hooks"`

	DeliveryPlatform  string     `xml:"delivery_platform,omitempty"`
	MarketingChannels []string   `xml:"marketing_channels>channel,omitempty"`
	Revenue           xmlRevenue `xml:"revenue_projection"`
	LaunchTimeline    string     `xml:"launch_timeline,omitempty"`
}

type xmlPricing struct {
	LaunchPrice   string   `xml:"launch_price"`
	RegularPrice  string   `xml:"regular_price"`
	BundlePrice   string   `xml:"bundle_price"`
	PaymentPlans  string   `xml:"payment_plans,omitempty"`
	LaunchBonuses []string `xml:"launch_bonuses>bonus,omitempty"`
}

type xmlHooks struct {
	PainPoints  []string `xml:"pain_points>item,omitempty"`
	Benefits    []string `xml:"benefits>item,omitempty"`
	SocialProof []string `xml:"social_proof>item,omitempty"`
}

type xmlRevenue struct {
	Conservative string `xml:"conservative"`
	Realistic    string `xml:"realistic"`
	Optimistic   string `xml:"optimistic"`
}

// WriteCatalogXML writes packages as a single Course_Catalog document.
func WriteCatalogXML(w io.Writer, pkgs []domain.Package) error {
	out := xmlCatalog{Courses: make([]xmlCourse, 0, len(pkgs))}

	for _, p := range pkgs {
		c := p.Course
		md := c.Outline.MarketData

		row := xmlCourse{
			CourseID:       buildCourseID(c.Outline.Topic),
			Title:          c.Title,
			Topic:          c.Outline.Topic,
			Duration:       c.Outline.Duration,
			Format:         c.Outline.Format,
			TargetAudience: c.Outline.TargetAudience,

			IntroVideo:   c.ContentStructure.IntroVideo,
			Modules:      c.ContentStructure.ModuleVideos,
			BonusContent: c.ContentStructure.BonusContent,
			Assignments:  c.ContentStructure.Assignments,
			FinalProject: c.ContentStructure.FinalProject,

			Pricing: xmlPricing{
				LaunchPrice:   c.PricingStrategy.LaunchPrice,
				RegularPrice:  c.PricingStrategy.RegularPrice,
				BundlePrice:   c.PricingStrategy.BundlePrice,
				PaymentPlans:  c.PricingStrategy.PaymentPlans,
				LaunchBonuses: c.PricingStrategy.LaunchBonuses,
			},
			Hooks: xmlHooks{
				PainPoints:  c.MarketingHooks.PainPoints,
				Benefits:    c.MarketingHooks.Benefits,
				SocialProof: c.MarketingHooks.SocialProof,
			},

			DeliveryPlatform:  p.DeliveryPlatform,
			MarketingChannels: p.MarketingChannels,
			Revenue: xmlRevenue{
				Conservative: p.RevenueProjection.Conservative,
				Realistic:    p.RevenueProjection.Realistic,
				Optimistic:   p.RevenueProjection.Optimistic,
			},
			LaunchTimeline: p.LaunchTimeline,
		}

		// unknown enums stay out of the document
		if md.MarketDemand != domain.DemandUnknown {
			row.MarketDemand = md.MarketDemand.String()
		}
		if md.Competition != domain.CompetitionUnknown {
			row.Competition = md.Competition.String()
		}
		if md.PriceRange.Valid() {
			row.PriceRange = md.PriceRange.String()
		}

		out.Courses = append(out.Courses, row)
	}

	b, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal xml: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("export: write xml: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("export: write xml: %w", err)
	}
	return nil
}
