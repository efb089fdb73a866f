package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rhyrak/timetable-wizard/internal/preference"
	"github.com/rhyrak/timetable-wizard/pkg/model"
)

// parseWeights applies "hw=1,team=0.5,grade=2" on top of base.
func parseWeights(raw string, base preference.Weights) (preference.Weights, error) {
	w := base
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return w, fmt.Errorf("%w: expected key=value, got %q", preference.ErrInvalidWeights, pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return w, fmt.Errorf("%w: %s: %v", preference.ErrInvalidWeights, key, err)
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "hw", "homework":
			w.Homework = v
		case "team", "teamproject":
			w.TeamProject = v
		case "grade", "grading":
			w.Grading = v
		default:
			return w, fmt.Errorf("%w: unknown weight %q", preference.ErrInvalidWeights, key)
		}
	}
	return w, w.Validate()
}

// parseGroup reads "name:A,B,C" or just "A,B,C". An all-blank list yields an
// empty group, which the scheduler rejects.
func parseGroup(raw string, index int) model.ChoiceGroup {
	g := model.ChoiceGroup{Name: fmt.Sprintf("group %d", index+1)}
	if name, rest, ok := strings.Cut(raw, ":"); ok {
		g.Name = strings.TrimSpace(name)
		raw = rest
	}
	g.Courses = parseIDs([]string{raw})
	return g
}

func parseIDs(raw []string) []model.CourseID {
	var out []model.CourseID
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, model.CourseID(part))
			}
		}
	}
	return out
}
