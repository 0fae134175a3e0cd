package topics

import (
	"context"

	"course-forge/internal/domain"
)

// Static is the built-in trending topic table.
type Static struct{}

func (Static) Name() string { return "static" }

func (Static) ListTopics(ctx context.Context) ([]domain.TopicRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Trending(), nil
}

// Trending returns a fresh copy of the built-in table, in source order.
func Trending() []domain.TopicRecord {
	return []domain.TopicRecord{
		{
			Topic:        "GitHub Actions Mastery",
			MarketDemand: domain.DemandHigh,
			Competition:  domain.CompetitionLow,
			PriceRange:   domain.MustParsePriceRange("$197-497"),
		},
		{
			Topic:        "AI Automation for Business",
			MarketDemand: domain.DemandVeryHigh,
			Competition:  domain.CompetitionMedium,
			PriceRange:   domain.MustParsePriceRange("$297-997"),
		},
		{
			Topic:        "Serverless Development",
			MarketDemand: domain.DemandHigh,
			Competition:  domain.CompetitionMedium,
			PriceRange:   domain.MustParsePriceRange("$397-797"),
		},
		{
			Topic:        "Crypto Trading Bots",
			MarketDemand: domain.DemandVeryHigh,
			Competition:  domain.CompetitionHigh,
			PriceRange:   domain.MustParsePriceRange("$497-1997"),
		},
		{
			Topic:        "No-Code SaaS Building",
			MarketDemand: domain.DemandHigh,
			Competition:  domain.CompetitionLow,
			PriceRange:   domain.MustParsePriceRange("$297-697"),
		},
	}
}
