package scheduler

import (
	"context"

	"github.com/rhyrak/timetable-wizard/internal/preference"
	"github.com/rhyrak/timetable-wizard/pkg/model"
)

// Request is one "generate schedules" action: what the student picked plus
// optional overrides of the configured weights and result count.
type Request struct {
	Required []model.CourseID    `json:"required"`
	Groups   []model.ChoiceGroup `json:"groups"`
	Weights  *preference.Weights `json:"weights,omitempty"`
	TopK     *int                `json:"topK,omitempty"`
}

type Result struct {
	Candidates []model.Candidate `json:"schedules"`
	Valid      bool              `json:"valid"`
	Report     string            `json:"report"`
}

// Weights returns the request weights, falling back to the configured ones.
func (c *Configuration) Weights(req Request) preference.Weights {
	if req.Weights != nil {
		return *req.Weights
	}
	return preference.Weights{Homework: c.HomeworkWeight, TeamProject: c.TeamWeight, Grading: c.GradingWeight}
}

// Run scores the catalog with the effective weights and builds schedules
// under the configured timeout. Preference on the given courses is overwritten.
func Run(ctx context.Context, courses []*model.Course, req Request, cfg *Configuration) (Result, error) {
	if err := preference.Apply(courses, cfg.Weights(req)); err != nil {
		return Result{}, err
	}
	topK := cfg.TopK
	if req.TopK != nil {
		topK = *req.TopK
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	groups := model.IDs(req.Groups)
	candidates, err := BuildSchedules(ctx, req.Required, groups, preference.Scores(courses), topK, cfg.Options())
	if err != nil {
		return Result{}, err
	}
	valid, report := Validate(req.Required, groups, candidates, topK)
	return Result{Candidates: candidates, Valid: valid, Report: report}, nil
}
