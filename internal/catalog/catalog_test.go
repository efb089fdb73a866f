package catalog

import (
	"testing"

	"github.com/rhyrak/timetable-wizard/pkg/model"
	"github.com/stretchr/testify/require"
)

func sample() *Catalog {
	return New([]*model.Course{
		{ID: "CSE101-01", Name: "Intro to Programming", Preference: 1.2},
		{ID: "CSE101-02", Name: "Intro to Programming", Preference: 2.5},
		{ID: "MAT201-01", Name: "Linear Algebra", Preference: 0.4},
		{ID: "ENG110-01", Name: "Academic Writing", Preference: 2.5},
	})
}

func courseIDs(courses []*model.Course) []model.CourseID {
	out := make([]model.CourseID, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	cat := sample()
	require.Equal(t, []model.CourseID{"CSE101-01", "CSE101-02"}, courseIDs(cat.Search("cse101")))
	require.Equal(t, []model.CourseID{"MAT201-01"}, courseIDs(cat.Search("  ALGEBRA ")))
	require.Empty(t, cat.Search("physics"))
	require.Empty(t, cat.Search(""))
}

func TestRecommend(t *testing.T) {
	cat := sample()
	got := cat.Recommend([]model.CourseID{"CSE101-02"}, 2)
	require.Equal(t, []model.CourseID{"ENG110-01", "CSE101-01"}, courseIDs(got))

	// ties keep catalog order
	got = cat.Recommend(nil, 2)
	require.Equal(t, []model.CourseID{"CSE101-02", "ENG110-01"}, courseIDs(got))

	require.Nil(t, cat.Recommend(nil, 0))
	require.Len(t, cat.Recommend(nil, 10), 4)
}

func TestLookupAndMerge(t *testing.T) {
	a := New([]*model.Course{{ID: "A", Name: "first"}})
	b := New([]*model.Course{{ID: "A", Name: "second"}, {ID: "B"}})
	merged := Merge(a, b)

	require.Equal(t, 3, merged.Len())
	course, ok := merged.Lookup("A")
	require.True(t, ok)
	require.Equal(t, "first", course.Name)

	_, ok = merged.Lookup("C")
	require.False(t, ok)
}
