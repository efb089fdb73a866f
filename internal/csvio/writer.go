package csvio

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rhyrak/timetable-wizard/internal/catalog"
	"github.com/rhyrak/timetable-wizard/pkg/model"
)

// ExportSchedules formats ranked candidates into ScheduleCSVRow structs and
// writes them to the CSV file specified by the given path.
func ExportSchedules(candidates []model.Candidate, cat *catalog.Catalog, path string) error {
	rows := formatSchedules(candidates, cat)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ExportSchedulesString is ExportSchedules into a string.
func ExportSchedulesString(candidates []model.Candidate, cat *catalog.Catalog) (string, error) {
	rows := formatSchedules(candidates, cat)
	return gocsv.MarshalString(&rows)
}

// PrintSchedules prints every candidate as a table, best first.
func PrintSchedules(w io.Writer, candidates []model.Candidate, cat *catalog.Catalog) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No schedules. Pick required courses or fill a group first.")
		return
	}
	for i, c := range candidates {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetTitle(fmt.Sprintf("Option %d - total %.2f", i+1, c.Score))
		t.AppendHeader(table.Row{"Course", "Name", "Instructor", "Time"})
		for _, id := range c.Courses {
			name, instructor, slot := describe(cat, id)
			t.AppendRow(table.Row{id, name, instructor, slot})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}
}

// PrintCourses prints catalog rows with their preference score.
func PrintCourses(w io.Writer, courses []*model.Course) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Course", "Name", "Instructor", "Time", "Preference"})
	for _, c := range courses {
		t.AppendRow(table.Row{c.ID, c.Name, c.Instructor, c.Time, fmt.Sprintf("%.2f", c.Preference)})
	}
	t.AppendFooter(table.Row{"", "", "", "Rows", len(courses)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func describe(cat *catalog.Catalog, id model.CourseID) (string, string, string) {
	if cat == nil {
		return "", "", ""
	}
	c, ok := cat.Lookup(id)
	if !ok {
		return "(not in catalog)", "", ""
	}
	return c.Name, c.Instructor, c.Time
}

func formatSchedules(candidates []model.Candidate, cat *catalog.Catalog) []*model.ScheduleCSVRow {
	formatted := []*model.ScheduleCSVRow{}
	for rank, c := range candidates {
		for _, id := range c.Courses {
			name, instructor, slot := describe(cat, id)
			formatted = append(formatted, &model.ScheduleCSVRow{
				Rank:       rank + 1,
				Score:      c.Score,
				CourseID:   string(id),
				CourseName: strings.ReplaceAll(name, "\n", " "),
				Instructor: instructor,
				Time:       slot,
			})
		}
	}
	return formatted
}

// MarshalCatalog writes courses back into the catalog CSV layout that
// LoadCatalog reads, so merged uploads can be stored as one file.
func MarshalCatalog(courses []*model.Course) (string, error) {
	rows := make([]*model.CourseCSV, len(courses))
	for i, c := range courses {
		rows[i] = &model.CourseCSV{
			ID:           string(c.ID),
			Name:         c.Name,
			Instructor:   c.Instructor,
			Time:         c.Time,
			HwNoneSTR:    formatPercent(c.HwNone),
			HwMidSTR:     formatPercent(c.HwMid),
			TeamNoneSTR:  formatPercent(c.TeamNone),
			TeamMidSTR:   formatPercent(c.TeamMid),
			GradeEasySTR: formatPercent(c.GradeEasy),
			GradeMidSTR:  formatPercent(c.GradeMid),
		}
	}
	return gocsv.MarshalString(&rows)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
