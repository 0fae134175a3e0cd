package mappers

import (
	"fmt"

	"course-forge/internal/domain"
)

// ContentFromOutline builds the video/bonus layout for a course.
// Module videos keep outline order and are numbered from 1.
func ContentFromOutline(o domain.Outline) domain.ContentStructure {
	videos := make([]string, 0, len(o.Modules))
	for i, m := range o.Modules {
		videos = append(videos, fmt.Sprintf("Module %d: %s", i+1, m))
	}

	return domain.ContentStructure{
		IntroVideo:   "Welcome and course overview",
		ModuleVideos: videos,
		BonusContent: []string{"Private community access", "Monthly Q&A calls", "Done-for-you templates"},
		Assignments:  []string{"Practical exercises for each module"},
		FinalProject: "Build and deploy real automation",
	}
}
