// Package pipeline runs topic -> outline -> course -> package for every
// topic of a source, in source order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"course-forge/internal/domain"
	"course-forge/internal/mappers"
	"course-forge/internal/outline"
	"course-forge/internal/topics"
)

type Generator struct {
	Source topics.TopicSource

	// Token is kept for a future publishing step; nothing sends it.
	Token string

	// Out receives the human-readable progress lines.
	Out io.Writer
	Log zerolog.Logger
}

// Result holds everything one run produced. Skipped lists topics that have
// no curriculum.
type Result struct {
	Outlines []domain.Outline
	Packages []domain.Package
	Skipped  []string
}

func New(src topics.TopicSource, token string, out io.Writer, log zerolog.Logger) *Generator {
	return &Generator{Source: src, Token: token, Out: out, Log: log}
}

func (g *Generator) Run(ctx context.Context) (Result, error) {
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	src := g.Source
	if src == nil {
		src = topics.Static{}
	}
	log := g.Log.With().Str("source", src.Name()).Logger()

	if _, err := fmt.Fprintln(out, "🎓 GENERATING PROFITABLE COURSES..."); err != nil {
		return Result{}, fmt.Errorf("pipeline: write header: %w", err)
	}
	if g.Token == "" {
		log.Debug().Msg("no access token configured")
	}

	recs, err := src.ListTopics(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: list topics: %w", err)
	}
	log.Debug().Int("topics", len(recs)).Msg("topics loaded")

	var res Result
	for _, rec := range recs {
		o, err := outline.Resolve(rec)
		if errors.Is(err, outline.ErrUnsupportedTopic) {
			log.Debug().Str("topic", rec.Topic).Msg("skipping topic without outline")
			res.Skipped = append(res.Skipped, rec.Topic)
			continue
		}
		if err != nil {
			return res, err
		}
		res.Outlines = append(res.Outlines, o)
	}

	for _, o := range res.Outlines {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		course, err := mappers.CourseFromOutline(o)
		if err != nil {
			return res, fmt.Errorf("pipeline: %w", err)
		}

		pkg, err := PackageCourse(out, course)
		if err != nil {
			return res, err
		}
		log.Info().
			Str("title", course.Title).
			Str("regular_price", course.PricingStrategy.RegularPrice).
			Msg("course packaged")
		res.Packages = append(res.Packages, pkg)
	}

	return res, nil
}

// GenerateProfitableCourses runs the pipeline and returns the resolved
// outlines in source order.
func (g *Generator) GenerateProfitableCourses(ctx context.Context) ([]domain.Outline, error) {
	res, err := g.Run(ctx)
	if err != nil {
		return nil, err
	}
	return res.Outlines, nil
}
