package mappers

import (
	"fmt"

	"course-forge/internal/domain"
)

// PricingFromOutline derives price tiers from the upper bound B of the
// topic's price range: launch B/2, regular B, bundle floor(B*1.5).
func PricingFromOutline(o domain.Outline) (domain.PricingStrategy, error) {
	return pricingFromRange(o.MarketData.PriceRange)
}

// PricingFromString parses a raw "$A-B" range before pricing it.
func PricingFromString(priceRange string) (domain.PricingStrategy, error) {
	pr, err := domain.ParsePriceRange(priceRange)
	if err != nil {
		return domain.PricingStrategy{}, err
	}
	return pricingFromRange(pr)
}

func pricingFromRange(pr domain.PriceRange) (domain.PricingStrategy, error) {
	if !pr.Valid() {
		return domain.PricingStrategy{}, fmt.Errorf("mappers: pricing %q: %w", pr.String(), domain.ErrInvalidPriceRange)
	}

	base := pr.High
	return domain.PricingStrategy{
		LaunchPrice:  pr.Format(base / 2),
		RegularPrice: pr.Format(base),
		BundlePrice:  pr.Format(base * 3 / 2),
		PaymentPlans: "3 payments available",
		LaunchBonuses: []string{
			"Free 30-minute strategy call",
			"Bonus automation templates",
			"Lifetime updates",
		},
	}, nil
}
