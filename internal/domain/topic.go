package domain

import (
	"fmt"
	"strings"
)

type Demand int

const (
	DemandUnknown Demand = iota
	DemandLow
	DemandMedium
	DemandHigh
	DemandVeryHigh
)

var demandNames = map[Demand]string{
	DemandLow:      "Low",
	DemandMedium:   "Medium",
	DemandHigh:     "High",
	DemandVeryHigh: "Very High",
}

func (d Demand) String() string {
	if s, ok := demandNames[d]; ok {
		return s
	}
	return "Unknown"
}

func (d Demand) MarshalText() ([]byte, error) {
	if _, ok := demandNames[d]; !ok {
		return nil, fmt.Errorf("domain: invalid market demand %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Demand) UnmarshalText(b []byte) error {
	v, err := ParseDemand(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDemand accepts "Very High", "very_high", "VeryHigh" and friends.
func ParseDemand(s string) (Demand, error) {
	switch normalizeLevel(s) {
	case "low":
		return DemandLow, nil
	case "medium":
		return DemandMedium, nil
	case "high":
		return DemandHigh, nil
	case "veryhigh":
		return DemandVeryHigh, nil
	}
	return DemandUnknown, fmt.Errorf("domain: unknown market demand %q", s)
}

type Competition int

const (
	CompetitionUnknown Competition = iota
	CompetitionLow
	CompetitionMedium
	CompetitionHigh
)

var competitionNames = map[Competition]string{
	CompetitionLow:    "Low",
	CompetitionMedium: "Medium",
	CompetitionHigh:   "High",
}

func (c Competition) String() string {
	if s, ok := competitionNames[c]; ok {
		return s
	}
	return "Unknown"
}

func (c Competition) MarshalText() ([]byte, error) {
	if _, ok := competitionNames[c]; !ok {
		return nil, fmt.Errorf("domain: invalid competition %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Competition) UnmarshalText(b []byte) error {
	v, err := ParseCompetition(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func ParseCompetition(s string) (Competition, error) {
	switch normalizeLevel(s) {
	case "low":
		return CompetitionLow, nil
	case "medium":
		return CompetitionMedium, nil
	case "high":
		return CompetitionHigh, nil
	}
	return CompetitionUnknown, fmt.Errorf("domain: unknown competition %q", s)
}

func normalizeLevel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return r.Replace(s)
}

// TopicRecord is one candidate subject with its market data.
type TopicRecord struct {
	Topic        string      `json:"topic" yaml:"topic"`
	MarketDemand Demand      `json:"market_demand" yaml:"market_demand"`
	Competition  Competition `json:"competition" yaml:"competition"`
	PriceRange   PriceRange  `json:"price_range" yaml:"price_range"`
}
