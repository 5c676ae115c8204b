package model

type Grade string

const (
	GradeA1   Grade = "A1"
	GradeA2   Grade = "A2"
	GradeB1   Grade = "B1"
	GradeB2   Grade = "B2"
	GradeC    Grade = "C"
	GradeD    Grade = "D"
	GradeE    Grade = "E"
	GradeFail Grade = "FAIL"
)

// gradeThresholds is checked top-down; the first minimum the percentage
// reaches wins.
var gradeThresholds = []struct {
	min   float64
	grade Grade
}{
	{90, GradeA1},
	{80, GradeA2},
	{70, GradeB1},
	{60, GradeB2},
	{50, GradeC},
	{40, GradeD},
	{35, GradeE},
}

func GradeFor(percentage float64) Grade {
	for _, t := range gradeThresholds {
		if percentage >= t.min {
			return t.grade
		}
	}
	return GradeFail
}
