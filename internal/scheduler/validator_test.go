package scheduler

import (
	"math"
	"testing"

	"github.com/rhyrak/timetable-wizard/pkg/model"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	required := ids("A")
	groups := [][]model.CourseID{ids("B", "C")}

	valid, msg := Validate(required, groups, []model.Candidate{
		{Score: 6, Courses: ids("A", "C")},
		{Score: 3, Courses: ids("A", "B")},
	}, 2)
	require.True(t, valid, msg)
	require.Contains(t, msg, "[  OK]: Ranking order check.")

	valid, msg = Validate(required, groups, []model.Candidate{
		{Score: 3, Courses: ids("A", "B")},
		{Score: 6, Courses: ids("C")},
	}, 2)
	require.False(t, valid)
	require.Contains(t, msg, "[FAIL]: Ranking order check.")
	require.Contains(t, msg, "[FAIL]: Required course check.")
	require.Contains(t, msg, "missing required course A")

	valid, msg = Validate(required, groups, []model.Candidate{{Score: 6, Courses: ids("A", "C")}}, 5)
	require.False(t, valid)
	require.Contains(t, msg, "[FAIL]: Candidate count check.")

	valid, _ = Validate(nil, nil, []model.Candidate{}, 3)
	require.True(t, valid)
}

func TestValidateNaNScore(t *testing.T) {
	groups := [][]model.CourseID{ids("A", "B")}

	valid, msg := Validate(nil, groups, []model.Candidate{
		{Score: math.NaN(), Courses: ids("A")},
		{Score: 1, Courses: ids("B")},
	}, 2)
	require.False(t, valid)
	require.Contains(t, msg, "[FAIL]: Ranking order check.")

	valid, msg = Validate(nil, groups, []model.Candidate{
		{Score: 1, Courses: ids("B")},
		{Score: math.NaN(), Courses: ids("A")},
	}, 2)
	require.False(t, valid)
	require.Contains(t, msg, "[FAIL]: Ranking order check.")
}
