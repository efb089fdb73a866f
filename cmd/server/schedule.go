package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/timetable-wizard/internal/config"
	"github.com/rhyrak/timetable-wizard/internal/csvio"
	"github.com/rhyrak/timetable-wizard/internal/preference"
	"github.com/rhyrak/timetable-wizard/internal/scheduler"
	"github.com/rhyrak/timetable-wizard/internal/store"
	"github.com/rhyrak/timetable-wizard/pkg/model"
	"github.com/rs/zerolog"
)

type server struct {
	store *store.Store
	cfg   *config.Config
	log   zerolog.Logger
}

// loadCourses parses a stored catalog. Courses are fresh on every call so
// applying weights never leaks between requests.
func (s *server) loadCourses(ctx context.Context, id string) ([]*model.Course, error) {
	rec, err := s.store.GetCatalog(ctx, id)
	if err != nil {
		return nil, err
	}
	return csvio.LoadCatalog(strings.NewReader(rec.Data), ',')
}

// queryWeights reads optional hw/team/grade query parameters on top of the
// configured weights.
func (s *server) queryWeights(c *gin.Context) (preference.Weights, error) {
	w := s.cfg.PreferenceWeights()
	for key, dst := range map[string]*float64{"hw": &w.Homework, "team": &w.TeamProject, "grade": &w.Grading} {
		raw, ok := c.GetQuery(key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return w, errors.Join(preference.ErrInvalidWeights, err)
		}
		*dst = v
	}
	return w, w.Validate()
}

func splitIDs(raw string) []model.CourseID {
	var out []model.CourseID
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, model.CourseID(part))
		}
	}
	return out
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, scheduler.ErrInvalidInput),
		errors.Is(err, preference.ErrInvalidWeights),
		errors.Is(err, csvio.ErrUnsupportedFormat),
		errors.Is(err, csvio.ErrMissingCourseID):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scheduler.ErrTooManyCombinations):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= 500 {
		s.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
