package domain

// Outline is the curriculum attached to one supported topic.
// MarketData carries the topic record it was resolved from.
type Outline struct {
	Topic          string      `json:"topic" yaml:"topic"`
	Modules        []string    `json:"modules" yaml:"modules"`
	Duration       string      `json:"duration" yaml:"duration"`
	Format         string      `json:"format" yaml:"format"`
	TargetAudience string      `json:"target_audience" yaml:"target_audience"`
	MarketData     TopicRecord `json:"market_data" yaml:"market_data"`
}

type ContentStructure struct {
	IntroVideo   string   `json:"intro_video" yaml:"intro_video"`
	ModuleVideos []string `json:"module_videos" yaml:"module_videos"`
	BonusContent []string `json:"bonus_content" yaml:"bonus_content"`
	Assignments  []string `json:"assignments" yaml:"assignments"`
	FinalProject string   `json:"final_project" yaml:"final_project"`
}

// PricingStrategy holds currency strings ("$998"), not numbers.
type PricingStrategy struct {
	LaunchPrice   string   `json:"launch_price" yaml:"launch_price"`
	RegularPrice  string   `json:"regular_price" yaml:"regular_price"`
	BundlePrice   string   `json:"bundle_price" yaml:"bundle_price"`
	PaymentPlans  string   `json:"payment_plans" yaml:"payment_plans"`
	LaunchBonuses []string `json:"launch_bonuses" yaml:"launch_bonuses"`
}

type MarketingHooks struct {
	PainPoints  []string `json:"pain_points" yaml:"pain_points"`
	Benefits    []string `json:"benefits" yaml:"benefits"`
	SocialProof []string `json:"social_proof" yaml:"social_proof"`
}

// Course is the sellable unit built from an Outline.
type Course struct {
	Title            string           `json:"title" yaml:"title"`
	Outline          Outline          `json:"outline" yaml:"outline"`
	ContentStructure ContentStructure `json:"content_structure" yaml:"content_structure"`
	PricingStrategy  PricingStrategy  `json:"pricing_strategy" yaml:"pricing_strategy"`
	MarketingHooks   MarketingHooks   `json:"marketing_hooks" yaml:"marketing_hooks"`
}

type RevenueProjection struct {
	Conservative string `json:"conservative" yaml:"conservative"`
	Realistic    string `json:"realistic" yaml:"realistic"`
	Optimistic   string `json:"optimistic" yaml:"optimistic"`
}

// Package is the final bundle for one course. All destinations (stdout,
// export files) render from this model.
type Package struct {
	Course            Course            `json:"course" yaml:"course"`
	DeliveryPlatform  string            `json:"delivery_platform" yaml:"delivery_platform"`
	MarketingChannels []string          `json:"marketing_channels" yaml:"marketing_channels"`
	RevenueProjection RevenueProjection `json:"revenue_projection" yaml:"revenue_projection"`
	LaunchTimeline    string            `json:"launch_timeline" yaml:"launch_timeline"`
}
