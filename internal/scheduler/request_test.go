package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rhyrak/timetable-wizard/internal/preference"
	"github.com/rhyrak/timetable-wizard/pkg/model"
	"github.com/stretchr/testify/require"
)

func testCourses() []*model.Course {
	return []*model.Course{
		{ID: "A", HwNone: 50},    // 1.0
		{ID: "B", TeamNone: 100}, // 2.0
		{ID: "C", GradeMid: 100}, // 1.0
	}
}

func TestRun(t *testing.T) {
	cfg := NewDefaultConfiguration()
	req := Request{
		Required: []model.CourseID{"A"},
		Groups:   []model.ChoiceGroup{{Name: "pick one", Courses: []model.CourseID{"C", "B"}}},
	}

	res, err := Run(context.Background(), testCourses(), req, cfg)
	require.NoError(t, err)
	require.True(t, res.Valid, res.Report)
	require.Len(t, res.Candidates, 2)
	require.Equal(t, []model.CourseID{"A", "B"}, res.Candidates[0].Courses)
	require.InDelta(t, 3.0, res.Candidates[0].Score, 1e-9)
}

func TestRunOutOfRangePercentages(t *testing.T) {
	courses := []*model.Course{
		{ID: "A", HwNone: 1e308},  // clamped to 100, 2.0
		{ID: "B", HwNone: -1e308}, // clamped to 0
		{ID: "C", HwNone: 50},
		{ID: "D", HwNone: 100},
	}
	req := Request{Groups: []model.ChoiceGroup{
		{Courses: []model.CourseID{"A", "C", "D"}},
		{Courses: []model.CourseID{"B", "C"}},
	}}

	res, err := Run(context.Background(), courses, req, NewDefaultConfiguration())
	require.NoError(t, err)
	require.True(t, res.Valid, res.Report)
	require.Equal(t, []model.Candidate{
		{Score: 3, Courses: []model.CourseID{"A", "C"}},
		{Score: 3, Courses: []model.CourseID{"D", "C"}},
		{Score: 2, Courses: []model.CourseID{"A", "B"}},
	}, res.Candidates)
}

func TestRunOverrides(t *testing.T) {
	cfg := NewDefaultConfiguration()
	one := 1
	req := Request{
		Groups:  []model.ChoiceGroup{{Courses: []model.CourseID{"B", "C"}}},
		Weights: &preference.Weights{Grading: 1},
		TopK:    &one,
	}

	res, err := Run(context.Background(), testCourses(), req, cfg)
	require.NoError(t, err)
	require.Equal(t, []model.Candidate{{Score: 1, Courses: []model.CourseID{"C"}}}, res.Candidates)
}

func TestRunErrors(t *testing.T) {
	cfg := NewDefaultConfiguration()

	_, err := Run(context.Background(), testCourses(), Request{Weights: &preference.Weights{Homework: -2}}, cfg)
	require.ErrorIs(t, err, preference.ErrInvalidWeights)

	_, err = Run(context.Background(), testCourses(), Request{Groups: []model.ChoiceGroup{{Name: "empty"}}}, cfg)
	require.ErrorIs(t, err, ErrInvalidInput)

	cfg.MaxCombinations = 1
	_, err = Run(context.Background(), testCourses(), Request{Groups: []model.ChoiceGroup{{Courses: []model.CourseID{"A", "B"}}}}, cfg)
	require.ErrorIs(t, err, ErrTooManyCombinations)
}

func TestRunTimeout(t *testing.T) {
	cfg := NewDefaultConfiguration()
	cfg.Timeout = time.Nanosecond

	groups := make([]model.ChoiceGroup, 8)
	for i, g := range largeGroups(8, 8) {
		groups[i] = model.ChoiceGroup{Courses: g}
	}
	_, err := Run(context.Background(), nil, Request{Groups: groups}, cfg)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
