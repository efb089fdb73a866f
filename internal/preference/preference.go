// Package preference turns lecture-evaluation percentages into a single
// preference score per course.
package preference

import (
	"errors"
	"fmt"
	"math"

	"github.com/rhyrak/timetable-wizard/pkg/model"
)

var ErrInvalidWeights = errors.New("invalid weights")

// Weights scale how much each metric matters. Zero ignores the metric.
type Weights struct {
	Homework    float64 `json:"homework"`
	TeamProject float64 `json:"teamProject"`
	Grading     float64 `json:"grading"`
}

func DefaultWeights() Weights {
	return Weights{Homework: 1, TeamProject: 1, Grading: 1}
}

func (w Weights) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"homework", w.Homework},
		{"team project", w.TeamProject},
		{"grading", w.Grading},
	}
	for _, c := range checks {
		if c.value < 0 || math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s weight must be a non-negative number, got %v", ErrInvalidWeights, c.name, c.value)
		}
	}
	return nil
}

// metric scores a question where "none" counts double and "mid" counts once.
// Inputs are percentages, so a course everyone rates "none" scores 2.
func metric(none, mid float64) float64 {
	return (2*clean(none) + clean(mid)) / 100
}

// clean clamps a percentage into 0..100. Non-finite values count as 0.
func clean(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return min(max(v, 0), 100)
}

// Score computes the weighted preference of a single course. A sum that
// overflows counts as 0.
func Score(c *model.Course, w Weights) float64 {
	s := w.Homework*metric(c.HwNone, c.HwMid) +
		w.TeamProject*metric(c.TeamNone, c.TeamMid) +
		w.Grading*metric(c.GradeEasy, c.GradeMid)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return s
}

// Apply fills Preference on every course.
func Apply(courses []*model.Course, w Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	for _, c := range courses {
		c.Preference = Score(c, w)
	}
	return nil
}

// Scores flattens courses into the lookup the scheduler consumes. When an id
// appears more than once the first row wins.
func Scores(courses []*model.Course) map[model.CourseID]float64 {
	out := make(map[model.CourseID]float64, len(courses))
	for _, c := range courses {
		if _, ok := out[c.ID]; ok {
			continue
		}
		out[c.ID] = c.Preference
	}
	return out
}
