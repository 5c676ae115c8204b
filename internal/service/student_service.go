package service

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"tracker/internal/model"
)

var (
	ErrNotFound    = errors.New("student not found")
	ErrEmptyRoster = errors.New("no students in roster")
	ErrExport      = errors.New("unable to write report")
)

// StudentService owns the roster. Students are only ever appended, in the
// order they were entered.
type StudentService struct {
	students []model.Student
}

func NewStudentService() *StudentService {
	return &StudentService{}
}

func (s *StudentService) AddStudent(name string, rollNumber int, marks model.Marks) (model.Student, error) {
	student, err := model.NewStudent(name, rollNumber, marks)
	if err != nil {
		return model.Student{}, err
	}
	s.students = append(s.students, student)
	return student, nil
}

func (s *StudentService) Count() int {
	return len(s.students)
}

// Students returns a copy of the roster in insertion order.
func (s *StudentService) Students() []model.Student {
	students := make([]model.Student, len(s.students))
	copy(students, s.students)
	return students
}

// FindByRoll returns the first student entered with the given roll number.
func (s *StudentService) FindByRoll(rollNumber int) (model.Student, error) {
	for _, student := range s.students {
		if student.RollNumber() == rollNumber {
			return student, nil
		}
	}
	return model.Student{}, fmt.Errorf("roll number %d: %w", rollNumber, ErrNotFound)
}

// RankByPercentage returns the roster sorted by percentage, highest first.
// Equal percentages keep their insertion order.
func (s *StudentService) RankByPercentage() ([]model.Student, error) {
	if len(s.students) == 0 {
		return nil, ErrEmptyRoster
	}

	ranked := s.Students()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage() > ranked[j].Percentage()
	})
	return ranked, nil
}

func (s *StudentService) TopStudent() (model.Student, error) {
	if len(s.students) == 0 {
		return model.Student{}, ErrEmptyRoster
	}

	top := s.students[0]
	for _, student := range s.students[1:] {
		if student.Percentage() > top.Percentage() {
			top = student
		}
	}
	return top, nil
}

// ExportReport writes the full progress report to filePath, replacing any
// existing file.
func (s *StudentService) ExportReport(filePath string) error {
	if len(s.students) == 0 {
		return ErrEmptyRoster
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, s.students); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	outFile, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	if _, err := buf.WriteTo(outFile); err != nil {
		outFile.Close()
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := outFile.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	log.Printf("Exported %d students to %s\n", len(s.students), filePath)
	return nil
}
