package handler

import (
	"errors"
	"log"
	"tracker/internal/model"
	"tracker/internal/service"
)

// Roster is the part of the student service the console handlers use.
type Roster interface {
	AddStudent(name string, rollNumber int, marks model.Marks) (model.Student, error)
	Count() int
	FindByRoll(rollNumber int) (model.Student, error)
	RankByPercentage() ([]model.Student, error)
	TopStudent() (model.Student, error)
	ExportReport(filePath string) error
}

type StudentHandler struct {
	roster     Roster
	console    *Console
	reportPath string
}

func NewStudentHandler(roster Roster, console *Console, reportPath string) *StudentHandler {
	return &StudentHandler{roster: roster, console: console, reportPath: reportPath}
}

// AddStudents asks how many students to enter and adds each one. Invalid
// numbers and out of range marks are asked for again.
func (h *StudentHandler) AddStudents() error {
	count, err := h.console.ReadInt("How many students do you want to add? ")
	if err != nil {
		return err
	}
	for count <= 0 {
		if count, err = h.console.ReadInt("Please enter a positive number: "); err != nil {
			return err
		}
	}

	for i := 0; i < count; i++ {
		h.console.Printf("\nEntering data for Student %d:\n", i+1)
		name, rollNumber, marks, err := h.readStudent()
		if err != nil {
			return err
		}

		if _, err := h.roster.AddStudent(name, rollNumber, marks); err != nil {
			log.Printf("Error adding student %d: %v\n", rollNumber, err)
			h.console.Printf("Error: %v\n", err)
			continue
		}
		h.console.Printf("Student data added successfully!\n")
	}
	return nil
}

func (h *StudentHandler) readStudent() (string, int, model.Marks, error) {
	var marks model.Marks

	h.console.Printf("Enter student's name: ")
	name, err := h.console.ReadLine()
	if err != nil {
		return "", 0, marks, err
	}

	rollNumber, err := h.console.ReadInt("Enter student's roll number: ")
	if err != nil {
		return "", 0, marks, err
	}

	h.console.Printf("Enter marks in the format (sic oopc cst ese cgd): ")
	for _, subject := range model.Subjects() {
		mark, err := h.console.ReadFloat("")
		for err == nil && !model.ValidMark(mark) {
			h.console.Discard()
			mark, err = h.console.ReadFloat("Invalid marks! Please enter a value between 0 and 100: ")
		}
		if err != nil {
			return "", 0, marks, err
		}
		marks[subject] = mark
	}

	return name, rollNumber, marks, nil
}

func (h *StudentHandler) ViewReport() error {
	if h.roster.Count() == 0 {
		h.console.Printf("No students added yet!\n")
		return nil
	}

	rollNumber, err := h.console.ReadInt("Enter student roll number: ")
	if err != nil {
		return err
	}

	student, err := h.roster.FindByRoll(rollNumber)
	if errors.Is(err, service.ErrNotFound) {
		h.console.Printf("Student with roll number %d not found!\n", rollNumber)
		return nil
	}
	if err != nil {
		return err
	}

	h.console.Printf("\n%s", service.FormatStudent(student))
	return nil
}

func (h *StudentHandler) CompareStudents() error {
	top, err := h.roster.TopStudent()
	if errors.Is(err, service.ErrEmptyRoster) {
		h.console.Printf("No students to compare!\n")
		return nil
	}
	if err != nil {
		return err
	}

	ranked, err := h.roster.RankByPercentage()
	if err != nil {
		return err
	}

	h.console.Printf("\n========== COMPARISON RESULTS ==========\n")
	h.console.Printf("Highest scoring student: %s\n", top.Name())
	h.console.Printf("Roll No.: %d\n", top.RollNumber())
	h.console.Printf("Percentage: %s%%\n", service.FormatNumber(top.Percentage()))
	h.console.Printf("Grade: %s\n", top.Grade())

	h.console.Printf("\nAll students sorted by percentage (highest to lowest):\n")
	for _, student := range ranked {
		h.console.Printf("%s (Roll No. %d): %s%% - Grade: %s\n",
			student.Name(), student.RollNumber(), service.FormatNumber(student.Percentage()), student.Grade())
	}
	h.console.Printf("======================================\n")
	return nil
}

func (h *StudentHandler) SaveReports() error {
	err := h.roster.ExportReport(h.reportPath)
	switch {
	case errors.Is(err, service.ErrEmptyRoster):
		h.console.Printf("No student data to save!\n")
	case errors.Is(err, service.ErrExport):
		log.Println("Error exporting report:", err)
		h.console.Printf("Error: Unable to open file for writing!\n")
	case err != nil:
		return err
	default:
		h.console.Printf("The information has been successfully stored in '%s'!\n", h.reportPath)
	}
	return nil
}
