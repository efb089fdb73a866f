package preference

import (
	"math"
	"testing"

	"github.com/rhyrak/timetable-wizard/pkg/model"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	testCases := []struct {
		course   model.Course
		weights  Weights
		expected float64
	}{
		{model.Course{}, DefaultWeights(), 0},
		{model.Course{HwNone: 100}, DefaultWeights(), 2},
		{model.Course{HwNone: 50, HwMid: 50}, DefaultWeights(), 1.5},
		{model.Course{HwNone: 100, TeamNone: 100, GradeEasy: 100}, DefaultWeights(), 6},
		{model.Course{HwNone: 100, TeamNone: 100, GradeEasy: 100}, Weights{Homework: 0.5, TeamProject: 0, Grading: 2}, 5},
		{model.Course{GradeMid: 40}, Weights{Grading: 1}, 0.4},
		{model.Course{HwNone: math.NaN(), HwMid: 10}, DefaultWeights(), 0.1},
		{model.Course{HwNone: math.Inf(1), HwMid: 10}, DefaultWeights(), 0.1},
		{model.Course{HwNone: 1e308}, DefaultWeights(), 2},
		{model.Course{HwNone: -1e308, TeamNone: 50}, DefaultWeights(), 1},
		{model.Course{HwNone: 100}, Weights{Homework: math.MaxFloat64}, 0},
	}

	for _, tc := range testCases {
		got := Score(&tc.course, tc.weights)
		require.InDelta(t, tc.expected, got, 1e-9, "Score(%+v, %+v)", tc.course, tc.weights)
	}
}

func TestApplyAndScores(t *testing.T) {
	courses := []*model.Course{
		{ID: "A", HwNone: 100},
		{ID: "B", TeamMid: 100},
		{ID: "A", GradeEasy: 100},
	}
	require.NoError(t, Apply(courses, DefaultWeights()))
	require.InDelta(t, 2.0, courses[0].Preference, 1e-9)
	require.InDelta(t, 1.0, courses[1].Preference, 1e-9)

	scores := Scores(courses)
	require.Len(t, scores, 2)
	require.InDelta(t, 2.0, scores["A"], 1e-9)
}

func TestApplyRejectsNegativeWeights(t *testing.T) {
	err := Apply(nil, Weights{Homework: -1})
	require.ErrorIs(t, err, ErrInvalidWeights)

	err = Apply(nil, Weights{Grading: math.Inf(1)})
	require.ErrorIs(t, err, ErrInvalidWeights)
}

func TestValidateNamesFirstInvalidWeight(t *testing.T) {
	w := Weights{Homework: -1, TeamProject: -1, Grading: math.NaN()}
	for i := 0; i < 20; i++ {
		err := w.Validate()
		require.ErrorIs(t, err, ErrInvalidWeights)
		require.Contains(t, err.Error(), "homework weight")
	}

	err := Weights{Homework: 1, TeamProject: -1, Grading: -1}.Validate()
	require.Contains(t, err.Error(), "team project weight")
}
