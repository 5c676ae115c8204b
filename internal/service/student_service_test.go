package service_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"tracker/internal/model"
	"tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// marksFor returns five equal marks, giving a percentage equal to mark.
func marksFor(mark float64) model.Marks {
	return model.Marks{mark, mark, mark, mark, mark}
}

func setupRoster(t *testing.T, rolls []int, percentages []float64) *service.StudentService {
	t.Helper()
	studentService := service.NewStudentService()
	for i, roll := range rolls {
		_, err := studentService.AddStudent("Student "+strings.Repeat("I", i+1), roll, marksFor(percentages[i]))
		require.NoError(t, err)
	}
	return studentService
}

func TestAddStudent(t *testing.T) {
	studentService := service.NewStudentService()

	student, err := studentService.AddStudent("Alice", 101, model.Marks{90, 80, 70, 60, 50})
	require.NoError(t, err)
	assert.Equal(t, "Alice", student.Name())
	assert.InDelta(t, 350, student.Total(), 1e-6)
	assert.InDelta(t, 70, student.Percentage(), 1e-6)
	assert.Equal(t, model.GradeB1, student.Grade())
	assert.Equal(t, 1, studentService.Count())

	// Out of range marks never reach the roster
	_, err = studentService.AddStudent("Bob", 102, model.Marks{150, 80, 70, 60, 50})
	assert.ErrorIs(t, err, model.ErrMarkOutOfRange)
	_, err = studentService.AddStudent("Bob", 102, model.Marks{-5, 80, 70, 60, 50})
	assert.ErrorIs(t, err, model.ErrMarkOutOfRange)
	assert.Equal(t, 1, studentService.Count())

	// Duplicate roll numbers are allowed
	_, err = studentService.AddStudent("Alice Again", 101, marksFor(40))
	require.NoError(t, err)
	assert.Equal(t, 2, studentService.Count())
}

func TestStudentsReturnsCopy(t *testing.T) {
	studentService := setupRoster(t, []int{1, 2}, []float64{50, 60})

	students := studentService.Students()
	students[0] = model.Student{}

	again := studentService.Students()
	assert.Equal(t, 1, again[0].RollNumber())
}

func TestFindByRoll(t *testing.T) {
	studentService := setupRoster(t, []int{101, 102, 103}, []float64{50, 60, 70})

	student, err := studentService.FindByRoll(102)
	require.NoError(t, err)
	assert.Equal(t, 102, student.RollNumber())
	assert.Equal(t, "Student II", student.Name())

	_, err = studentService.FindByRoll(999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestFindByRollReturnsFirstMatch(t *testing.T) {
	studentService := service.NewStudentService()
	_, err := studentService.AddStudent("First", 5, marksFor(10))
	require.NoError(t, err)
	_, err = studentService.AddStudent("Second", 5, marksFor(90))
	require.NoError(t, err)

	student, err := studentService.FindByRoll(5)
	require.NoError(t, err)
	assert.Equal(t, "First", student.Name())
}

func TestRankByPercentage(t *testing.T) {
	studentService := setupRoster(t, []int{1, 2, 3}, []float64{72, 95, 60})

	ranked, err := studentService.RankByPercentage()
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.InDelta(t, 95, ranked[0].Percentage(), 1e-6)
	assert.InDelta(t, 72, ranked[1].Percentage(), 1e-6)
	assert.InDelta(t, 60, ranked[2].Percentage(), 1e-6)

	// Roster itself keeps insertion order
	students := studentService.Students()
	assert.Equal(t, []int{1, 2, 3}, []int{students[0].RollNumber(), students[1].RollNumber(), students[2].RollNumber()})
}

func TestRankByPercentageKeepsInsertionOrderOnTies(t *testing.T) {
	studentService := setupRoster(t, []int{1, 2, 3, 4}, []float64{80, 90, 80, 90})

	ranked, err := studentService.RankByPercentage()
	require.NoError(t, err)

	var rolls []int
	for _, student := range ranked {
		rolls = append(rolls, student.RollNumber())
	}
	assert.Equal(t, []int{2, 4, 1, 3}, rolls)
}

func TestTopStudent(t *testing.T) {
	studentService := setupRoster(t, []int{1, 2, 3}, []float64{72, 95, 95})

	top, err := studentService.TopStudent()
	require.NoError(t, err)
	assert.Equal(t, 2, top.RollNumber())

	ranked, err := studentService.RankByPercentage()
	require.NoError(t, err)
	assert.Equal(t, ranked[0], top)
}

func TestEmptyRoster(t *testing.T) {
	studentService := service.NewStudentService()

	_, err := studentService.RankByPercentage()
	assert.ErrorIs(t, err, service.ErrEmptyRoster)

	_, err = studentService.TopStudent()
	assert.ErrorIs(t, err, service.ErrEmptyRoster)

	filePath := filepath.Join(t.TempDir(), "report.txt")
	err = studentService.ExportReport(filePath)
	assert.ErrorIs(t, err, service.ErrEmptyRoster)

	_, statErr := os.Stat(filePath)
	assert.True(t, os.IsNotExist(statErr), "export should not create a file for an empty roster")
}

const twoStudentReport = `======== STUDENT PROGRESS REPORT ========

Name: Alice
Roll No.: 101
Marks:
  SIC: 95
  OOPC: 87.5
  CST: 72
  ESE: 60
  CGD: 91
Total Marks: 405.5/500
Percentage: 81.1%
Grade: A2
-----------------------------------

Name: Bob
Roll No.: 102
Marks:
  SIC: 30
  OOPC: 20
  CST: 40
  ESE: 35
  CGD: 25
Total Marks: 150/500
Percentage: 30%
Grade: FAIL
-----------------------------------

`

func TestExportReport(t *testing.T) {
	studentService := service.NewStudentService()
	_, err := studentService.AddStudent("Alice", 101, model.Marks{95, 87.5, 72, 60, 91})
	require.NoError(t, err)
	_, err = studentService.AddStudent("Bob", 102, model.Marks{30, 20, 40, 35, 25})
	require.NoError(t, err)

	filePath := filepath.Join(t.TempDir(), "student_reports.txt")
	require.NoError(t, studentService.ExportReport(filePath))

	content, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, twoStudentReport, string(content))
	assert.Equal(t, 2, strings.Count(string(content), "Name: "))

	// A second export replaces the file instead of appending
	require.NoError(t, studentService.ExportReport(filePath))
	content, err = os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, twoStudentReport, string(content))
	assert.Equal(t, 1, strings.Count(string(content), "STUDENT PROGRESS REPORT"))
}

func TestExportReportOverwritesLongerFile(t *testing.T) {
	studentService := setupRoster(t, []int{1}, []float64{50})

	filePath := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(filePath, []byte(strings.Repeat("old data\n", 500)), 0644))

	require.NoError(t, studentService.ExportReport(filePath))
	content, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "old data")
}

func TestExportReportIOFailure(t *testing.T) {
	studentService := setupRoster(t, []int{1}, []float64{50})

	filePath := filepath.Join(t.TempDir(), "missing-dir", "report.txt")
	err := studentService.ExportReport(filePath)
	assert.ErrorIs(t, err, service.ErrExport)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
