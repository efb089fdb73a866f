package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rhyrak/timetable-wizard/pkg/model"
)

// Catalog is an ordered list of courses with lookup by id.
type Catalog struct {
	courses []*model.Course
	byID    map[model.CourseID]*model.Course
}

// New indexes courses. When an id repeats, the first row wins lookups but every
// row stays in the listing.
func New(courses []*model.Course) *Catalog {
	c := &Catalog{courses: courses, byID: make(map[model.CourseID]*model.Course, len(courses))}
	for _, course := range courses {
		if _, ok := c.byID[course.ID]; !ok {
			c.byID[course.ID] = course
		}
	}
	return c
}

// Merge concatenates several uploads into one catalog.
func Merge(catalogs ...*Catalog) *Catalog {
	var all []*model.Course
	for _, c := range catalogs {
		all = append(all, c.courses...)
	}
	return New(all)
}

func (c *Catalog) Courses() []*model.Course { return c.courses }

func (c *Catalog) Len() int { return len(c.courses) }

func (c *Catalog) Lookup(id model.CourseID) (*model.Course, bool) {
	course, ok := c.byID[id]
	return course, ok
}

// Search returns courses whose id or name contains query, ignoring case.
func (c *Catalog) Search(query string) []*model.Course {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var hits []*model.Course
	for _, course := range c.courses {
		if strings.Contains(strings.ToLower(string(course.ID)), q) ||
			strings.Contains(strings.ToLower(course.Name), q) {
			hits = append(hits, course)
		}
	}
	return hits
}

// Recommend returns the k best-rated courses that are not already chosen.
func (c *Catalog) Recommend(chosen []model.CourseID, k int) []*model.Course {
	if k <= 0 {
		return nil
	}
	var rest []*model.Course
	for _, course := range c.courses {
		if !slices.Contains(chosen, course.ID) {
			rest = append(rest, course)
		}
	}
	slices.SortStableFunc(rest, func(a, b *model.Course) int {
		return cmp.Compare(b.Preference, a.Preference)
	})
	if len(rest) > k {
		rest = rest[:k]
	}
	return rest
}
