package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"tracker/internal/model"
)

// name, roll, then one mark per subject
const importFieldCount = 2 + model.SubjectCount

type ImportProgress struct {
	FileName     string
	TotalRecords int
	Processed    int
	Skipped      int
	Status       string // "processing", "completed", "error"
	Error        string
	StartTime    time.Time
	EndTime      time.Time
}

type ImportService struct {
	studentService *StudentService
}

func NewImportService(studentService *StudentService) *ImportService {
	return &ImportService{studentService: studentService}
}

// ImportCSV adds every valid row of the CSV at filePath to the roster, in file
// order. Rows that cannot become a student are logged and skipped.
func (s *ImportService) ImportCSV(filePath string) (*ImportProgress, error) {
	progress := &ImportProgress{
		FileName:  filepath.Base(filePath),
		Status:    "processing",
		StartTime: time.Now(),
	}

	totalRecords, err := s.countRecords(filePath)
	if err != nil {
		progress.fail("Failed to count records: " + err.Error())
		return progress, err
	}
	progress.TotalRecords = totalRecords

	file, err := os.Open(filePath)
	if err != nil {
		progress.fail("Failed to open file: " + err.Error())
		return progress, err
	}
	defer file.Close()

	reader := newImportReader(file)
	reader.Read() // Skip header row

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			progress.fail("Failed to read record: " + err.Error())
			return progress, err
		}

		if err := s.importRecord(record); err != nil {
			log.Printf("Skipping %s line %d: %v\n", progress.FileName, line, err)
			progress.Skipped++
			continue
		}
		progress.Processed++
	}

	progress.Status = "completed"
	progress.EndTime = time.Now()
	log.Printf("Import completed for %s in %v (%d added, %d skipped)\n",
		progress.FileName, progress.EndTime.Sub(progress.StartTime), progress.Processed, progress.Skipped)

	return progress, nil
}

func (p *ImportProgress) fail(errorMsg string) {
	p.Status = "error"
	p.Error = errorMsg
	p.EndTime = time.Now()
}

func (s *ImportService) importRecord(record []string) error {
	if len(record) != importFieldCount {
		return fmt.Errorf("expected %d fields, got %d", importFieldCount, len(record))
	}

	rollNumber, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return fmt.Errorf("invalid roll number %q", record[1])
	}

	var marks model.Marks
	for i, subject := range model.Subjects() {
		raw := strings.TrimSpace(record[2+i])
		mark, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid %s mark %q", subject, raw)
		}
		marks[subject] = mark
	}

	_, err = s.studentService.AddStudent(strings.TrimSpace(record[0]), rollNumber, marks)
	return err
}

func (s *ImportService) countRecords(filePath string) (int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := newImportReader(file)
	if _, err := reader.Read(); err != nil { // Skip header
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for {
		_, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// Field counts are checked per row so a short row is skipped rather than
// failing the whole file.
func newImportReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}
