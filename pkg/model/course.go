package model

type CourseID string

// CourseCSV is one raw catalog row. Ratings are kept as text because
// evaluation exports mix numbers, blanks and "35%" style cells.
type CourseCSV struct {
	ID           string `csv:"course_id"`
	Name         string `csv:"course_name"`
	Instructor   string `csv:"instructor"`
	Time         string `csv:"time"`
	HwNoneSTR    string `csv:"homework_none"`
	HwMidSTR     string `csv:"homework_mid"`
	TeamNoneSTR  string `csv:"team_none"`
	TeamMidSTR   string `csv:"team_mid"`
	GradeEasySTR string `csv:"grading_lenient"`
	GradeMidSTR  string `csv:"grading_mid"`
}

// Course is a catalog entry. The rating fields are percentages of students
// who picked the given answer in the lecture evaluation.
type Course struct {
	ID         CourseID `json:"id"`
	Name       string   `json:"name"`
	Instructor string   `json:"instructor"`
	Time       string   `json:"time"`
	HwNone     float64  `json:"-"`
	HwMid      float64  `json:"-"`
	TeamNone   float64  `json:"-"`
	TeamMid    float64  `json:"-"`
	GradeEasy  float64  `json:"-"`
	GradeMid   float64  `json:"-"`
	Preference float64  `json:"preference"`
}

// ChoiceGroup holds alternatives of which exactly one goes into a schedule.
type ChoiceGroup struct {
	Name    string     `json:"name"`
	Courses []CourseID `json:"courses"`
}

// IDs flattens groups into the shape the scheduler consumes.
func IDs(groups []ChoiceGroup) [][]CourseID {
	out := make([][]CourseID, len(groups))
	for i, g := range groups {
		out[i] = g.Courses
	}
	return out
}
