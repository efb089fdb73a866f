package scheduler

import (
	"time"

	"github.com/rhyrak/timetable-wizard/pkg/model"
)

const defaultCheckEvery = 4096

type Configuration struct {
	CatalogFiles    []string
	TopK            int
	MaxCombinations int64
	Timeout         time.Duration
	HomeworkWeight  float64
	TeamWeight      float64
	GradingWeight   float64
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		CatalogFiles:    []string{"./res/catalog.csv"},
		TopK:            3,
		MaxCombinations: 0, // lazy top-k keeps memory flat, no cap by default
		Timeout:         10 * time.Second,
		HomeworkWeight:  1.0,
		TeamWeight:      1.0,
		GradingWeight:   1.0,
	}
}

// Options tunes resource limits of a single BuildSchedules call.
type Options struct {
	// MaxCombinations rejects products larger than this. Zero disables the cap.
	MaxCombinations int64
	// CheckEvery is how many combinations pass between context checks.
	CheckEvery int
}

// Options derives the per-call limits from the configuration.
func (c *Configuration) Options() Options {
	return Options{MaxCombinations: c.MaxCombinations}
}

// dedupe drops repeated ids, keeping the first occurrence.
func dedupe(ids []model.CourseID) []model.CourseID {
	seen := make(map[model.CourseID]bool, len(ids))
	out := make([]model.CourseID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
