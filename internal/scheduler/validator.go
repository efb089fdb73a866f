package scheduler

import (
	"fmt"
	"slices"

	"github.com/rhyrak/timetable-wizard/pkg/model"
)

// Validate checks generated candidates for ordering, size and missing required courses.
// Returns false and a message for invalid results.
func Validate(required []model.CourseID, groups [][]model.CourseID, candidates []model.Candidate, topK int) (bool, string) {
	var message string
	var valid bool = true
	var hasOrderViolation bool = false
	var hasMissingRequired bool = false

	expected := 0
	if len(groups) > 0 || len(dedupe(required)) > 0 {
		n := Combinations(groups)
		if n > int64(topK) {
			n = int64(topK)
		}
		expected = int(n)
	}
	sizeOK := len(candidates) == expected
	if !sizeOK {
		valid = false
		message += fmt.Sprintf("- Expected %d candidates, got %d\n", expected, len(candidates))
	}

	for i := 1; i < len(candidates); i++ {
		// NaN compares false both ways, so it fails this check too.
		if !(candidates[i-1].Score >= candidates[i].Score) {
			valid = false
			hasOrderViolation = true
			message += fmt.Sprintf("- Candidate %d (%.2f) ranked above %d (%.2f)\n",
				i, candidates[i-1].Score, i+1, candidates[i].Score)
		}
	}

	for i, c := range candidates {
		for _, id := range required {
			if !slices.Contains(c.Courses, id) {
				valid = false
				hasMissingRequired = true
				message += fmt.Sprintf("- Candidate %d is missing required course %s\n", i+1, id)
			}
		}
	}

	if hasMissingRequired {
		message = "[FAIL]: Required course check.\n" + message
	} else {
		message = "[  OK]: Required course check.\n" + message
	}
	if hasOrderViolation {
		message = "[FAIL]: Ranking order check.\n" + message
	} else {
		message = "[  OK]: Ranking order check.\n" + message
	}
	if !sizeOK {
		message = "[FAIL]: Candidate count check.\n" + message
	} else {
		message = "[  OK]: Candidate count check.\n" + message
	}

	return valid, message
}
