package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"course-forge/internal/domain"
)

func samplePackages() []domain.Package {
	return []domain.Package{{
		Course: domain.Course{
			Title: "Complete Crypto Trading Bots Masterclass",
			Outline: domain.Outline{
				Topic:          "Crypto Trading Bots",
				Modules:        []string{"Crypto Market Fundamentals", "Bot Programming Basics"},
				Duration:       "8 hours",
				Format:         "Video + Code + Live trading",
				TargetAudience: "Traders, developers",
				MarketData: domain.TopicRecord{
					Topic:        "Crypto Trading Bots",
					MarketDemand: domain.DemandVeryHigh,
					Competition:  domain.CompetitionHigh,
					PriceRange:   domain.MustParsePriceRange("$497-1997"),
				},
			},
			ContentStructure: domain.ContentStructure{
				IntroVideo:   "Welcome and course overview",
				ModuleVideos: []string{"Module 1: Crypto Market Fundamentals", "Module 2: Bot Programming Basics"},
				FinalProject: "Build and deploy real automation",
			},
			PricingStrategy: domain.PricingStrategy{
				LaunchPrice:  "$998",
				RegularPrice: "$1997",
				BundlePrice:  "$2995",
				PaymentPlans: "3 payments available",
			},
		},
		DeliveryPlatform:  "Teachable/Thinkific",
		MarketingChannels: []string{"Social media ads", "Email sequences"},
		RevenueProjection: domain.RevenueProjection{
			Conservative: "$5000/month",
			Realistic:    "$12500/month",
			Optimistic:   "$25000/month",
		},
		LaunchTimeline: "21 days",
	}}
}

func TestBuildCourseID(t *testing.T) {
	testCases := []struct {
		topic    string
		expected string
	}{
		{"GitHub Actions Mastery", "CRS+github-actions-mastery"},
		{"No-Code SaaS Building", "CRS+no-code-saas-building"},
		{"  AI Automation for Business ", "CRS+ai-automation-for-business"},
		{"C++ / Rust!", "CRS+c-rust"},
		{"", "CRS+untitled"},
		{"???", "CRS+untitled"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, buildCourseID(tc.topic), tc.topic)
	}
}

func TestFormatFor(t *testing.T) {
	testCases := []struct {
		path       string
		format     Format
		compressed bool
	}{
		{"out/catalog.xml", FormatXML, false},
		{"catalog.CSV", FormatCSV, false},
		{"catalog.yml", FormatYAML, false},
		{"catalog.yaml.br", FormatYAML, true},
		{"/tmp/catalog.json.br", FormatJSON, true},
	}

	for _, tc := range testCases {
		f, c, err := FormatFor(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.format, f, tc.path)
		assert.Equal(t, tc.compressed, c, tc.path)
	}

	_, _, err := FormatFor("catalog.txt")
	assert.Error(t, err)
	_, _, err = FormatFor("catalog.br")
	assert.Error(t, err)
}

func TestWriteCatalogXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCatalogXML(&buf, samplePackages()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `<Course course_id="CRS+crypto-trading-bots">`)
	assert.Contains(t, out, "<market_demand>Very High</market_demand>")
	assert.Contains(t, out, "<price_range>$497-1997</price_range>")
	assert.Contains(t, out, "<module>Module 2: Bot Programming Basics</module>")
	assert.Contains(t, out, "<bundle_price>$2995</bundle_price>")
	assert.Contains(t, out, "<realistic>$12500/month</realistic>")

	var back xmlCatalog
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back.Courses, 1)
	assert.Equal(t, "Complete Crypto Trading Bots Masterclass", back.Courses[0].Title)
}

func TestWriteCatalogXMLOmitsUnknownMarketData(t *testing.T) {
	pkgs := samplePackages()
	pkgs[0].Course.Outline.MarketData = domain.TopicRecord{}

	var buf bytes.Buffer
	require.NoError(t, WriteCatalogXML(&buf, pkgs))
	assert.NotContains(t, buf.String(), "<market_demand>")
	assert.NotContains(t, buf.String(), "<price_range>")
}

func TestWriteCatalogCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCatalogCSV(&buf, samplePackages()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, catalogHeader, rows[0])
	assert.Len(t, rows[1], len(catalogHeader))

	row := rows[1]
	assert.Equal(t, "CRS+crypto-trading-bots", row[0])
	assert.Equal(t, "Very High", row[3])
	assert.Equal(t, "$497-1997", row[5])
	assert.Equal(t, "2", row[9])
	assert.Equal(t, "Module 1: Crypto Market Fundamentals | Module 2: Bot Programming Basics", row[10])
	assert.Equal(t, "$998", row[11])
	assert.Equal(t, "21 days", row[20])
}

func TestJoinClean(t *testing.T) {
	assert.Equal(t, "a | b c", joinClean([]string{" a ", "", "b\nc"}))
	assert.Equal(t, "", joinClean(nil))
}

func TestRenderJSONAndYAML(t *testing.T) {
	b, err := Render(FormatJSON, samplePackages())
	require.NoError(t, err)
	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Len(t, doc["courses"], 1)
	assert.Equal(t, "21 days", doc["courses"][0]["launch_timeline"])

	b, err = Render(FormatYAML, samplePackages())
	require.NoError(t, err)
	assert.Contains(t, string(b), "market_demand: Very High")
	assert.Regexp(t, `price_range: "?\$497-1997"?`, string(b))

	var ydoc struct {
		Courses []domain.Package `yaml:"courses"`
	}
	require.NoError(t, yaml.Unmarshal(b, &ydoc))
	require.Len(t, ydoc.Courses, 1)
	assert.Equal(t, domain.DemandVeryHigh, ydoc.Courses[0].Course.Outline.MarketData.MarketDemand)
	assert.Equal(t, 1997, ydoc.Courses[0].Course.Outline.MarketData.PriceRange.High)

	_, err = Render(Format("pdf"), nil)
	assert.Error(t, err)
}

func TestWriteCatalogFileBrotliRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "catalog.xml.br")

	rendered, err := WriteCatalogFile(p, samplePackages())
	require.NoError(t, err)

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.NotEqual(t, rendered, raw)

	back, err := ReadCatalogFile(p)
	require.NoError(t, err)
	assert.Equal(t, rendered, back)
}

func TestWriteCatalogFilePlain(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalog.csv")

	rendered, err := WriteCatalogFile(p, samplePackages())
	require.NoError(t, err)

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, rendered, raw)
}

func TestWriteCatalogFileBadExtension(t *testing.T) {
	_, err := WriteCatalogFile(filepath.Join(t.TempDir(), "catalog.doc"), samplePackages())
	assert.Error(t, err)
}

func TestDiffCatalog(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalog.yaml")

	first, err := Render(FormatYAML, samplePackages())
	require.NoError(t, err)

	diff, err := DiffCatalog(p, first)
	require.NoError(t, err)
	assert.Contains(t, diff, "+++ generated/catalog.yaml")
	assert.Regexp(t, `(?m)^\+\s+launch_timeline: 21 days$`, diff)

	_, err = WriteCatalogFile(p, samplePackages())
	require.NoError(t, err)

	diff, err = DiffCatalog(p, first)
	require.NoError(t, err)
	assert.Empty(t, diff)

	changed := samplePackages()
	changed[0].LaunchTimeline = "30 days"
	second, err := Render(FormatYAML, changed)
	require.NoError(t, err)

	diff, err = DiffCatalog(p, second)
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^-\s+launch_timeline: 21 days$`, diff)
	assert.Regexp(t, `(?m)^\+\s+launch_timeline: 30 days$`, diff)
}
