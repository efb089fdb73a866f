package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/timetable-wizard/pkg/model"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrMissingCourseID   = errors.New("catalog row has no course_id")
)

// DelimiterFor picks the field separator from a catalog file name.
func DelimiterFor(path string) (rune, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", "":
		return ',', nil
	case ".tsv":
		return '\t', nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// LoadCatalogFile reads and parses the given catalog file.
func LoadCatalogFile(path string) ([]*model.Course, error) {
	delim, err := DelimiterFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	courses, err := LoadCatalog(f, delim)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return courses, nil
}

// LoadCatalog parses catalog rows with the given delimiter. Rating cells that
// are blank or not numbers count as 0.
func LoadCatalog(in io.Reader, delim rune) ([]*model.Course, error) {
	r := csv.NewReader(in)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows := []*model.CourseCSV{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, err
	}

	courses := make([]*model.Course, 0, len(rows))
	for i, row := range rows {
		id := strings.TrimSpace(row.ID)
		if id == "" {
			// +2: header line and 1-based numbering
			return nil, fmt.Errorf("%w (line %d)", ErrMissingCourseID, i+2)
		}
		courses = append(courses, &model.Course{
			ID:         model.CourseID(id),
			Name:       strings.TrimSpace(row.Name),
			Instructor: strings.TrimSpace(row.Instructor),
			Time:       strings.TrimSpace(row.Time),
			HwNone:     parsePercent(row.HwNoneSTR),
			HwMid:      parsePercent(row.HwMidSTR),
			TeamNone:   parsePercent(row.TeamNoneSTR),
			TeamMid:    parsePercent(row.TeamMidSTR),
			GradeEasy:  parsePercent(row.GradeEasySTR),
			GradeMid:   parsePercent(row.GradeMidSTR),
		})
	}
	return courses, nil
}

func parsePercent(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 100)
}
