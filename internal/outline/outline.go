// Package outline maps topics to their fixed course curricula.
package outline

import (
	"errors"
	"fmt"
	"strings"

	"course-forge/internal/domain"
)

// ErrUnsupportedTopic is returned for topics with no curriculum yet.
var ErrUnsupportedTopic = errors.New("unsupported topic")

type Kind int

const (
	Unknown Kind = iota
	GitHubActions
	AIAutomation
	CryptoBots
	Serverless
	NoCodeSaaS
)

var canonicalNames = map[Kind]string{
	GitHubActions: "GitHub Actions Mastery",
	AIAutomation:  "AI Automation for Business",
	CryptoBots:    "Crypto Trading Bots",
	Serverless:    "Serverless Development",
	NoCodeSaaS:    "No-Code SaaS Building",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(canonicalNames))
	for k, name := range canonicalNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KindOf maps a topic name to its Kind. Names are matched case-insensitively.
func KindOf(name string) Kind {
	if k, ok := kindByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return Unknown
}

// Title is the canonical topic name for k, or "" for Unknown.
func (k Kind) Title() string {
	return canonicalNames[k]
}

func (k Kind) String() string {
	switch k {
	case GitHubActions:
		return "github-actions"
	case AIAutomation:
		return "ai-automation"
	case CryptoBots:
		return "crypto-bots"
	case Serverless:
		return "serverless"
	case NoCodeSaaS:
		return "no-code-saas"
	default:
		return "unknown"
	}
}

type curriculum struct {
	modules        []string
	duration       string
	format         string
	targetAudience string
}

func curriculumFor(k Kind) (curriculum, bool) {
	switch k {
	case AIAutomation:
		return curriculum{
			modules: []string{
				"Introduction to Business Automation",
				"AI Tools and Platforms Overview",
				"Building Your First Automation",
				"Advanced AI Integrations",
				"Scaling and Monetizing Automation",
			},
			duration:       "6 hours",
			format:         "Video + Worksheets + Templates",
			targetAudience: "Entrepreneurs, business owners",
		}, true
	case GitHubActions:
		return curriculum{
			modules: []string{
				"GitHub Actions Fundamentals",
				"Building Custom Workflows",
				"CI/CD Pipeline Creation",
				"Advanced Automation Patterns",
				"Monetizing Your Skills",
			},
			duration:       "4 hours",
			format:         "Hands-on coding + Projects",
			targetAudience: "Developers, DevOps engineers",
		}, true
	case CryptoBots:
		return curriculum{
			modules: []string{
				"Crypto Market Fundamentals",
				"Trading Strategy Development",
				"Bot Programming Basics",
				"Risk Management Systems",
				"Deployment and Scaling",
			},
			duration:       "8 hours",
			format:         "Video + Code + Live trading",
			targetAudience: "Traders, developers",
		}, true
	case Serverless, NoCodeSaaS, Unknown:
		// Known topics without a curriculum yet.
		return curriculum{}, false
	}
	return curriculum{}, false
}

// Supported reports whether Resolve produces an outline for k.
func (k Kind) Supported() bool {
	_, ok := curriculumFor(k)
	return ok
}

// Resolve returns the outline for rec, with rec attached as market data.
// Outline.Topic is always the canonical spelling, whatever casing rec used.
// Topics without a curriculum yield ErrUnsupportedTopic.
func Resolve(rec domain.TopicRecord) (domain.Outline, error) {
	k := KindOf(rec.Topic)
	c, ok := curriculumFor(k)
	if !ok {
		return domain.Outline{}, fmt.Errorf("outline: %q (%s): %w", rec.Topic, k, ErrUnsupportedTopic)
	}

	return domain.Outline{
		Topic:          k.Title(),
		Modules:        append([]string(nil), c.modules...),
		Duration:       c.duration,
		Format:         c.format,
		TargetAudience: c.targetAudience,
		MarketData:     rec,
	}, nil
}
