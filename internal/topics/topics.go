package topics

import (
	"context"

	"course-forge/internal/domain"
)

// TopicSource emits the ordered list of candidate topics for a run.
type TopicSource interface {
	Name() string
	ListTopics(ctx context.Context) ([]domain.TopicRecord, error)
}
