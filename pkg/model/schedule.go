package model

// Candidate is one combination of required and chosen courses.
type Candidate struct {
	Score   float64    `json:"score"`
	Courses []CourseID `json:"courses"`
}

type ScheduleCSVRow struct {
	Rank       int     `csv:"rank"`
	Score      float64 `csv:"score"`
	CourseID   string  `csv:"course_id"`
	CourseName string  `csv:"course_name"`
	Instructor string  `csv:"instructor"`
	Time       string  `csv:"time"`
}
