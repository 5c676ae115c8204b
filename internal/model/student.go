package model

import (
	"errors"
	"fmt"
	"math"
)

const (
	SubjectCount = 5
	MinMark      = 0.0
	MaxMark      = 100.0
	MaxTotal     = SubjectCount * MaxMark
)

var ErrMarkOutOfRange = errors.New("mark must be between 0 and 100")

type Subject int

const (
	SIC Subject = iota
	OOPC
	CST
	ESE
	CGD
)

func (s Subject) String() string {
	switch s {
	case SIC:
		return "SIC"
	case OOPC:
		return "OOPC"
	case CST:
		return "CST"
	case ESE:
		return "ESE"
	case CGD:
		return "CGD"
	default:
		return fmt.Sprintf("Subject(%d)", int(s))
	}
}

// Subjects returns the subjects in mark order.
func Subjects() [SubjectCount]Subject {
	return [SubjectCount]Subject{SIC, OOPC, CST, ESE, CGD}
}

// Marks holds one score per subject, indexed by Subject.
type Marks [SubjectCount]float64

func ValidMark(v float64) bool {
	return !math.IsNaN(v) && v >= MinMark && v <= MaxMark
}

// Student is a finalized record. Fields are only set by NewStudent, so the
// derived total, percentage and grade always agree with the marks.
type Student struct {
	name       string
	rollNumber int
	marks      Marks
	total      float64
	percentage float64
	grade      Grade
}

func NewStudent(name string, rollNumber int, marks Marks) (Student, error) {
	var total float64
	for i, m := range marks {
		if !ValidMark(m) {
			return Student{}, fmt.Errorf("%s: %v: %w", Subject(i), m, ErrMarkOutOfRange)
		}
		total += m
	}

	// Scaling first keeps whole-number totals exact at grade boundaries.
	percentage := total * 100 / MaxTotal
	return Student{
		name:       name,
		rollNumber: rollNumber,
		marks:      marks,
		total:      total,
		percentage: percentage,
		grade:      GradeFor(percentage),
	}, nil
}

func (s Student) Name() string        { return s.name }
func (s Student) RollNumber() int     { return s.rollNumber }
func (s Student) Marks() Marks        { return s.marks }
func (s Student) Total() float64      { return s.total }
func (s Student) Percentage() float64 { return s.percentage }
func (s Student) Grade() Grade        { return s.grade }

func (s Student) Mark(subject Subject) float64 {
	return s.marks[subject]
}
