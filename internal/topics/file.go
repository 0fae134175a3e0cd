package topics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"course-forge/internal/domain"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// File reads topic records from a YAML catalog. The file holds either a
// `topics:` list or a top-level list.
type File struct {
	Path string
}

type catalogFile struct {
	Topics []catalogTopic `yaml:"topics"`
}

type catalogTopic struct {
	Topic        string `yaml:"topic" validate:"required"`
	MarketDemand string `yaml:"market_demand" validate:"required"`
	Competition  string `yaml:"competition" validate:"required"`
	PriceRange   string `yaml:"price_range" validate:"required"`
}

func (f File) Name() string { return "file:" + f.Path }

func (f File) ListTopics(ctx context.Context) ([]domain.TopicRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("topics: read catalog: %w", err)
	}

	entries, err := decodeCatalog(data)
	if err != nil {
		return nil, err
	}

	out := make([]domain.TopicRecord, 0, len(entries))
	for i, e := range entries {
		rec, err := e.toRecord()
		if err != nil {
			return nil, fmt.Errorf("topics: entry %d (%q): %w", i+1, e.Topic, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeCatalog(data []byte) ([]catalogTopic, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err == nil && file.Topics != nil {
		return file.Topics, nil
	}

	var list []catalogTopic
	if err := yaml.Unmarshal(data, &list); err == nil && list != nil {
		return list, nil
	}

	return nil, errors.New("topics: catalog must contain `topics:` list or a top-level list")
}

func (e catalogTopic) toRecord() (domain.TopicRecord, error) {
	e.Topic = strings.TrimSpace(e.Topic)
	if err := getValidator().Struct(e); err != nil {
		return domain.TopicRecord{}, err
	}

	demand, err := domain.ParseDemand(e.MarketDemand)
	if err != nil {
		return domain.TopicRecord{}, err
	}
	comp, err := domain.ParseCompetition(e.Competition)
	if err != nil {
		return domain.TopicRecord{}, err
	}
	pr, err := domain.ParsePriceRange(e.PriceRange)
	if err != nil {
		return domain.TopicRecord{}, err
	}

	return domain.TopicRecord{
		Topic:        e.Topic,
		MarketDemand: demand,
		Competition:  comp,
		PriceRange:   pr,
	}, nil
}
